package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// MasterSubject is the sentinel ledger subject for the dual-approval
// channel used by privileged registrations.
const MasterSubject = "MASTER_APPROVAL"

// OTPServiceImpl implements domain.OTPService over the TTL ledger
type OTPServiceImpl struct {
	ledger domain.OTPLedger
	config OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(ledger domain.OTPLedger, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		ledger: ledger,
		config: config,
	}
}

// Issue implements domain.OTPService. A fresh code replaces any
// outstanding code for the subject.
func (s *OTPServiceImpl) Issue(ctx context.Context, subject string) (string, error) {
	code, err := generateNumericCode(s.config.Length)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	if err := s.ledger.Put(ctx, subject, code, s.config.TTL); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}

	return code, nil
}

// Verify implements domain.OTPService. The record is left in place so
// verification can be repeated until registration consumes it.
func (s *OTPServiceImpl) Verify(ctx context.Context, subject, code string) error {
	stored, err := s.ledger.Get(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrOTPNotFound) {
			return domain.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("failed to read OTP: %w", err)
	}

	if stored != code {
		return domain.ErrInvalidOrExpiredToken
	}

	return nil
}

// Consume implements domain.OTPService
func (s *OTPServiceImpl) Consume(ctx context.Context, subject string) error {
	return s.ledger.Delete(ctx, subject)
}
