package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// MockOTPLedger implements domain.OTPLedger for testing. Without
// overrides it behaves as an in-memory TTL store whose clock can be
// controlled through NowFunc.
type MockOTPLedger struct {
	PutFunc    func(ctx context.Context, subject, code string, ttl time.Duration) error
	GetFunc    func(ctx context.Context, subject string) (string, error)
	DeleteFunc func(ctx context.Context, subject string) error
	NowFunc    func() time.Time

	mu      sync.Mutex
	records map[string]ledgerRecord
}

type ledgerRecord struct {
	code      string
	expiresAt time.Time
}

// NewMockOTPLedger creates a new MockOTPLedger with default behaviors
func NewMockOTPLedger() *MockOTPLedger {
	return &MockOTPLedger{records: make(map[string]ledgerRecord)}
}

func (m *MockOTPLedger) now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now()
}

func (m *MockOTPLedger) Put(ctx context.Context, subject, code string, ttl time.Duration) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, subject, code, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[subject] = ledgerRecord{code: code, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *MockOTPLedger) Get(ctx context.Context, subject string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, subject)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[subject]
	if !ok || m.now().After(rec.expiresAt) {
		return "", domain.ErrOTPNotFound
	}
	return rec.code, nil
}

func (m *MockOTPLedger) Delete(ctx context.Context, subject string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, subject)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, subject)
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPLedger = (*MockOTPLedger)(nil)
