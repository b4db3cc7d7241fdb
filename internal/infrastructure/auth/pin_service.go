package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// pinLength is the fixed credential length; PINs are numeric only.
const pinLength = 6

// PINServiceImpl implements domain.PINService over bcrypt
type PINServiceImpl struct {
	cost int
}

// NewPINService creates a new PIN hashing service
func NewPINService() domain.PINService {
	return &PINServiceImpl{
		cost: bcrypt.DefaultCost,
	}
}

// Hash implements domain.PINService. The shape is enforced here so a
// malformed PIN can never reach the credential store, regardless of
// which flow produced it.
func (p *PINServiceImpl) Hash(pin string) (string, error) {
	if !validPIN(pin) {
		return "", domain.ErrInvalidPIN
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PINService
func (p *PINServiceImpl) Verify(hash, pin string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	return err == nil
}

func validPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
