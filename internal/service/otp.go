package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"helpdesk/internal/apperror"
	"helpdesk/internal/mailer"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

const otpMailSubject = "Email Verification OTP"

// OTPService issues and verifies one-time passcodes proving control
// of an email address before signup.
type OTPService struct {
	otps  repository.IOTPRepository
	users repository.IUserRepository
	mail  mailer.Mailer
	ttl   time.Duration
	now   func() time.Time
}

func NewOTPService(otps repository.IOTPRepository, users repository.IUserRepository, mail mailer.Mailer, ttlSeconds int) *OTPService {
	return &OTPService{
		otps:  otps,
		users: users,
		mail:  mail,
		ttl:   time.Duration(ttlSeconds) * time.Second,
		now:   time.Now,
	}
}

// Issue generates a fresh code for the email, persists it and hands
// it to the mail collaborator. A delivery failure leaves the record
// in place; retrying issuance is safe because verification only ever
// honors the newest record.
func (s *OTPService) Issue(ctx context.Context, email string) (string, error) {
	if !strings.Contains(email, "@") {
		return "", apperror.ErrInvalidEmail
	}

	existing, err := s.users.FindByUsername(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if existing != nil {
		return "", apperror.ErrAlreadyRegistered
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	if _, err := s.otps.Create(ctx, &model.OTP{Email: email, Code: code}); err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}

	body := fmt.Sprintf("Your OTP for registration is: %s", code)
	if err := s.mail.Send(email, otpMailSubject, body); err != nil {
		log.Printf("[OTP] delivery to %s failed: %v", email, err)
		return "", fmt.Errorf("%w: %v", apperror.ErrDeliveryFailed, err)
	}
	log.Printf("[OTP] sent to %s", email)

	return code, nil
}

// Verify reports whether code matches the newest unexpired record for
// the email. An expired record never matches, even with the right
// code.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	cutoff := s.now().Add(-s.ttl)

	// Expiry is enforced by the query window; purging older records
	// here just keeps the collection small.
	if _, err := s.otps.DeleteExpired(ctx, cutoff); err != nil {
		log.Printf("[OTP] expired purge failed: %v", err)
	}

	latest, err := s.otps.FindLatest(ctx, email, cutoff)
	if err != nil {
		return false, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if latest == nil {
		return false, nil
	}
	return latest.Code == code, nil
}

// Consume removes every record for the email. Called once signup
// succeeds.
func (s *OTPService) Consume(ctx context.Context, email string) error {
	if _, err := s.otps.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	return nil
}

// generateCode draws a uniformly random 6-digit code in
// [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
