package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAGHAVAN7777/vault-backend/domain"
	"github.com/RAGHAVAN7777/vault-backend/internal/infrastructure/repositories"
)

// newOTPServiceForTest wires the OTP service against a miniredis-backed
// ledger so tests control the clock via FastForward
func newOTPServiceForTest(t *testing.T) (domain.OTPService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ledger := repositories.NewOTPLedger(client)

	return NewOTPService(ledger, OTPConfig{Length: 6, TTL: 5 * time.Minute}), mr
}

func TestOTPService_IssueAndVerify(t *testing.T) {
	svc, _ := newOTPServiceForTest(t)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	require.NoError(t, svc.Verify(ctx, "a@x.com", code))

	// Verification does not consume the record
	require.NoError(t, svc.Verify(ctx, "a@x.com", code))
}

func TestOTPService_VerifyWrongCode(t *testing.T) {
	svc, _ := newOTPServiceForTest(t)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	assert.ErrorIs(t, svc.Verify(ctx, "a@x.com", wrong), domain.ErrInvalidOrExpiredToken)
}

func TestOTPService_VerifyUnknownSubject(t *testing.T) {
	svc, _ := newOTPServiceForTest(t)

	err := svc.Verify(context.Background(), "nobody@x.com", "123456")
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestOTPService_ExpiredCode(t *testing.T) {
	svc, mr := newOTPServiceForTest(t)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	mr.FastForward(5*time.Minute + time.Second)

	assert.ErrorIs(t, svc.Verify(ctx, "a@x.com", code), domain.ErrInvalidOrExpiredToken)
}

func TestOTPService_ReissueOverwrites(t *testing.T) {
	svc, _ := newOTPServiceForTest(t)
	ctx := context.Background()

	first, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	var second string
	// Regenerate until the code differs; six random digits collide rarely
	for i := 0; i < 20; i++ {
		second, err = svc.Issue(ctx, "a@x.com")
		require.NoError(t, err)
		if second != first {
			break
		}
	}
	require.NotEqual(t, first, second)

	assert.ErrorIs(t, svc.Verify(ctx, "a@x.com", first), domain.ErrInvalidOrExpiredToken)
	assert.NoError(t, svc.Verify(ctx, "a@x.com", second))
}

func TestOTPService_Consume(t *testing.T) {
	svc, _ := newOTPServiceForTest(t)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, svc.Consume(ctx, "a@x.com"))
	assert.ErrorIs(t, svc.Verify(ctx, "a@x.com", code), domain.ErrInvalidOrExpiredToken)
}

func TestOTPService_MasterSubjectIsIndependent(t *testing.T) {
	svc, _ := newOTPServiceForTest(t)
	ctx := context.Background()

	userCode, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)
	masterCode, err := svc.Issue(ctx, MasterSubject)
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, "a@x.com", userCode))
	require.NoError(t, svc.Verify(ctx, MasterSubject, masterCode))

	require.NoError(t, svc.Consume(ctx, "a@x.com"))
	assert.NoError(t, svc.Verify(ctx, MasterSubject, masterCode))
}
