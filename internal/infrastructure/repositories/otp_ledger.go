package repositories

import (
	"context"
	"time"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"github.com/redis/go-redis/v9"
)

// OTPLedgerImpl implements domain.OTPLedger using Redis TTL keys.
// Codes are deliberately not written to durable storage; a restart with
// an empty Redis invalidates every outstanding code.
type OTPLedgerImpl struct {
	client *redis.Client
	prefix string
}

// NewOTPLedger creates a new Redis-backed OTP ledger
func NewOTPLedger(client *redis.Client) domain.OTPLedger {
	return &OTPLedgerImpl{
		client: client,
		prefix: "otp:",
	}
}

// Put implements domain.OTPLedger. SET replaces any prior code for the
// subject, enforcing the single-outstanding-code policy.
func (l *OTPLedgerImpl) Put(ctx context.Context, subject, code string, ttl time.Duration) error {
	return l.client.Set(ctx, l.prefix+subject, code, ttl).Err()
}

// Get implements domain.OTPLedger. Expiry is lazy: Redis drops the key
// once the TTL passes, so an expired code is indistinguishable from a
// missing one.
func (l *OTPLedgerImpl) Get(ctx context.Context, subject string) (string, error) {
	code, err := l.client.Get(ctx, l.prefix+subject).Result()
	if err == redis.Nil {
		return "", domain.ErrOTPNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

// Delete implements domain.OTPLedger
func (l *OTPLedgerImpl) Delete(ctx context.Context, subject string) error {
	return l.client.Del(ctx, l.prefix+subject).Err()
}
