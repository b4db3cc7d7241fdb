package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

const recoveryTTL = 5 * time.Minute

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo      domain.UserRepository
	otpSvc        domain.OTPService
	pinSvc        domain.PINService
	notifier      domain.Notifier
	operatorEmail string
	patternSecret string
}

// NewAuthService creates a new auth service. operatorEmail is the fixed
// address master approvals and bootstrap OTPs are delivered to;
// patternSecret is the shared secret for privileged pattern login.
func NewAuthService(
	userRepo domain.UserRepository,
	otpSvc domain.OTPService,
	pinSvc domain.PINService,
	notifier domain.Notifier,
	operatorEmail string,
	patternSecret string,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		otpSvc:        otpSvc,
		pinSvc:        pinSvc,
		notifier:      notifier,
		operatorEmail: operatorEmail,
		patternSecret: patternSecret,
	}
}

// RequestOTP implements domain.AuthService. If the registrant asks for
// the privileged role and no privileged user exists yet, the code is
// redirected to the operator address: the first privileged account can
// only be bootstrapped with operator involvement.
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, email string, role domain.Role) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil && existing.Verified {
		return domain.ErrAlreadyRegistered
	}

	code, err := s.otpSvc.Issue(ctx, email)
	if err != nil {
		return err
	}

	target := email
	if role == domain.RolePrivileged {
		exists, err := s.userRepo.RoleExists(ctx, domain.RolePrivileged)
		if err != nil {
			return fmt.Errorf("failed to check privileged bootstrap state: %w", err)
		}
		if !exists {
			target = s.operatorEmail
		}
	}

	body := fmt.Sprintf("Your OTP is: %s. Valid for 5 minutes.", code)
	if err := s.notifier.Send(target, "Vault - Verification OTP", body); err != nil {
		// Do not leave a deliverable code behind when delivery failed.
		_ = s.otpSvc.Consume(ctx, email)
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	log.Info().Str("subject", email).Str("role", string(role)).Bool("redirected", target != email).Msg("otp issued")
	return nil
}

// VerifyOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) error {
	return s.otpSvc.Verify(ctx, email, code)
}

// RequestMasterApproval implements domain.AuthService. The code goes
// only to the operator address, never to the registrant.
func (s *AuthServiceImpl) RequestMasterApproval(ctx context.Context) error {
	code, err := s.otpSvc.Issue(ctx, MasterSubject)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"CRITICAL: A privileged registration attempt is in progress.\n\nMASTER_AUTHORIZATION_TOKEN: %s\n\nValid for 5 minutes.", code)
	if err := s.notifier.Send(s.operatorEmail, "Vault - MASTER_AUTHORIZATION_REQUIRED", body); err != nil {
		_ = s.otpSvc.Consume(ctx, MasterSubject)
		return fmt.Errorf("failed to send master OTP: %w", err)
	}

	log.Info().Msg("master approval token issued")
	return nil
}

// VerifyMasterApproval implements domain.AuthService
func (s *AuthServiceImpl) VerifyMasterApproval(ctx context.Context, code string) error {
	return s.otpSvc.Verify(ctx, MasterSubject, code)
}

// Register implements domain.AuthService. Both OTPs are re-validated
// here: a client that skipped the verify calls cannot complete a
// privileged registration without a currently-valid master record.
func (s *AuthServiceImpl) Register(ctx context.Context, userID, email string, role domain.Role, pin, otp, masterOTP string) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if err := s.otpSvc.Verify(ctx, email, otp); err != nil {
		return nil, err
	}

	if role == domain.RolePrivileged {
		if err := s.otpSvc.Verify(ctx, MasterSubject, masterOTP); err != nil {
			return nil, domain.ErrMasterAuthorizationMissing
		}
	}

	if _, err := s.userRepo.FindByUserID(ctx, userID); err == nil {
		return nil, domain.ErrUserIDTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	// A verified account may already hold this email under another user
	// id; surface that as a conflict rather than a constraint error.
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	pinHash, err := s.pinSvc.Hash(pin)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	user := &domain.User{
		UserID:   userID,
		Email:    email,
		Role:     role,
		PINHash:  pinHash,
		Verified: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otpSvc.Consume(ctx, email); err != nil {
		log.Warn().Err(err).Str("subject", email).Msg("failed to consume user OTP")
	}
	if role == domain.RolePrivileged {
		if err := s.otpSvc.Consume(ctx, MasterSubject); err != nil {
			log.Warn().Err(err).Msg("failed to consume master OTP")
		}
	}

	log.Info().Str("user_id", userID).Str("role", string(role)).Msg("user registered")
	return user, nil
}

// Login implements domain.AuthService. Session material is the
// caller's concern; only identity and role come back.
func (s *AuthServiceImpl) Login(ctx context.Context, userID, pin string) (*domain.User, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.pinSvc.Verify(user.PINHash, pin) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// LoginByPattern implements domain.AuthService. The comparison is
// constant-time; there is no lockout or backoff on failures.
func (s *AuthServiceImpl) LoginByPattern(pattern string) error {
	if s.patternSecret == "" {
		log.Error().Msg("ADMIN_PATTERN is not configured; pattern login unavailable")
		return domain.ErrPatternNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(pattern), []byte(s.patternSecret)) != 1 {
		log.Warn().Msg("pattern login rejected")
		return domain.ErrInvalidPattern
	}

	return nil
}

// RequestRecoveryOTP implements domain.AuthService. Recovery codes
// live on the user record, not in the ledger, so they survive a ledger
// restart mid-recovery.
func (s *AuthServiceImpl) RequestRecoveryOTP(ctx context.Context, userID, email string) error {
	user, err := s.userRepo.FindByUserIDAndEmail(ctx, userID, email)
	if err != nil {
		return err
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return fmt.Errorf("failed to generate recovery code: %w", err)
	}

	if err := s.userRepo.SetRecovery(ctx, userID, code, time.Now().Add(recoveryTTL)); err != nil {
		return fmt.Errorf("failed to store recovery code: %w", err)
	}

	body := fmt.Sprintf("Your recovery OTP is: %s. Valid for 5 minutes.", code)
	if err := s.notifier.Send(user.Email, "Vault - Recovery OTP", body); err != nil {
		return fmt.Errorf("failed to send recovery OTP: %w", err)
	}

	return nil
}

// VerifyRecoveryOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyRecoveryOTP(ctx context.Context, userID, code string) error {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.ErrInvalidOrExpiredToken
	}
	if !recoveryCodeValid(user, code) {
		return domain.ErrInvalidOrExpiredToken
	}
	return nil
}

// ResetPIN implements domain.AuthService
func (s *AuthServiceImpl) ResetPIN(ctx context.Context, userID, code, newPIN string) error {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.ErrUnauthorized
	}
	if !recoveryCodeValid(user, code) {
		return domain.ErrUnauthorized
	}

	pinHash, err := s.pinSvc.Hash(newPIN)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	user.PINHash = pinHash
	user.RecoveryCode = ""
	user.RecoveryExpiry = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to reset PIN: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("pin reset")
	return nil
}

func recoveryCodeValid(user *domain.User, code string) bool {
	return user.RecoveryCode != "" &&
		user.RecoveryCode == code &&
		user.RecoveryExpiry != nil &&
		time.Now().Before(*user.RecoveryExpiry)
}
