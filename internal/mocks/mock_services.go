package mocks

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// MockNotifier implements domain.Notifier for testing. Sent messages
// are recorded for assertions.
type MockNotifier struct {
	SendFunc func(to, subject, body string) error

	mu   sync.Mutex
	Sent []SentMessage
}

type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotifier creates a new MockNotifier with default behaviors
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMessage{To: to, Subject: subject, Body: body})
	return nil
}

// LastSent returns the most recent recorded message, or nil
func (m *MockNotifier) LastSent() *SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	msg := m.Sent[len(m.Sent)-1]
	return &msg
}

// MockPINService implements domain.PINService for testing. The default
// "hash" is reversible so tests can assert on it without bcrypt cost.
type MockPINService struct {
	HashFunc   func(pin string) (string, error)
	VerifyFunc func(hash, pin string) bool
}

// NewMockPINService creates a new MockPINService with default behaviors
func NewMockPINService() *MockPINService {
	return &MockPINService{}
}

func (m *MockPINService) Hash(pin string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(pin)
	}
	return "hashed:" + pin, nil
}

func (m *MockPINService) Verify(hash, pin string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, pin)
	}
	return hash == "hashed:"+pin
}

// MockContentStore implements domain.ContentStore for testing
type MockContentStore struct {
	PutFunc    func(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error

	mu      sync.Mutex
	Deleted []string
}

// NewMockContentStore creates a new MockContentStore with default behaviors
func NewMockContentStore() *MockContentStore {
	return &MockContentStore{}
}

func (m *MockContentStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, body, size, contentType)
	}
	return "https://store.example/" + key, nil
}

func (m *MockContentStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, key)
	return nil
}

// DeletedKeys returns a copy of the recorded deletions
func (m *MockContentStore) DeletedKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Deleted...)
}

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc   func(ctx context.Context, subject string) (string, error)
	VerifyFunc  func(ctx context.Context, subject, code string) error
	ConsumeFunc func(ctx context.Context, subject string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) Issue(ctx context.Context, subject string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, subject)
	}
	return "123456", nil
}

func (m *MockOTPService) Verify(ctx context.Context, subject, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, subject, code)
	}
	return nil
}

func (m *MockOTPService) Consume(ctx context.Context, subject string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, subject)
	}
	return nil
}

// MockQuotaService implements domain.QuotaService for testing
type MockQuotaService struct {
	QuotaForFunc    func(role domain.Role) int64
	ExpiryForFunc   func(role domain.Role) time.Duration
	AdmitUploadFunc func(user *domain.User, incomingSize int64) error
	CommitFunc      func(ctx context.Context, userID string, size int64) error
	ReclaimFunc     func(ctx context.Context, userID string, size int64) error
}

// NewMockQuotaService creates a new MockQuotaService with default behaviors
func NewMockQuotaService() *MockQuotaService {
	return &MockQuotaService{}
}

func (m *MockQuotaService) QuotaFor(role domain.Role) int64 {
	if m.QuotaForFunc != nil {
		return m.QuotaForFunc(role)
	}
	return 5 * 1024 * 1024
}

func (m *MockQuotaService) ExpiryFor(role domain.Role) time.Duration {
	if m.ExpiryForFunc != nil {
		return m.ExpiryForFunc(role)
	}
	return 12 * time.Hour
}

func (m *MockQuotaService) AdmitUpload(user *domain.User, incomingSize int64) error {
	if m.AdmitUploadFunc != nil {
		return m.AdmitUploadFunc(user, incomingSize)
	}
	return nil
}

func (m *MockQuotaService) Commit(ctx context.Context, userID string, size int64) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx, userID, size)
	}
	return nil
}

func (m *MockQuotaService) Reclaim(ctx context.Context, userID string, size int64) error {
	if m.ReclaimFunc != nil {
		return m.ReclaimFunc(ctx, userID, size)
	}
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.Notifier     = (*MockNotifier)(nil)
	_ domain.PINService   = (*MockPINService)(nil)
	_ domain.ContentStore = (*MockContentStore)(nil)
	_ domain.OTPService   = (*MockOTPService)(nil)
	_ domain.QuotaService = (*MockQuotaService)(nil)
)
