package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/cryptox"
	"github.com/prepdeck/prepdeck/pkg/slogx"
)

// DefaultOTPTTL is how long a recovery code stays valid after issue.
const DefaultOTPTTL = 10 * time.Minute

// CodeDeliverer gets the generated recovery code to the user out-of-band
// (SMS, email). The code is handed to the deliverer only; it is never part of
// the API response to the requesting client.
type CodeDeliverer interface {
	DeliverOTP(ctx context.Context, phone, code string) error
}

// LogDeliverer is the development deliverer: it writes the code to the debug
// log instead of sending an SMS.
type LogDeliverer struct{}

func (LogDeliverer) DeliverOTP(ctx context.Context, phone, code string) error {
	slogx.FromContext(ctx).Debug("otp delivery (dev mode)", "phone", phone, "code", code)
	return nil
}

// RecoveryService runs the phone/OTP password reset flow: request-otp issues
// and stores a code, verify-otp checks it, reset-password consumes it.
type RecoveryService struct {
	Store     store.Store
	Deliverer CodeDeliverer
	OTPTTL    time.Duration
}

func (s *RecoveryService) ttl() time.Duration {
	if s.OTPTTL > 0 {
		return s.OTPTTL
	}
	return DefaultOTPTTL
}

// RequestOTP generates a fresh six-digit code for the user registered under
// phone, overwriting any prior pending code, and hands it to the deliverer.
func (s *RecoveryService) RequestOTP(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(phone) {
		return validationErr("phone must be exactly 10 digits")
	}

	user, err := s.Store.Users().GetUserByPhone(ctx, phone)
	if err != nil {
		return err // store.ErrNotFound surfaces as unknown phone
	}

	code, err := cryptox.GenerateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().UTC().Add(s.ttl())
	if err := s.Store.Users().SetOTP(ctx, user.ID, code, expiresAt); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if err := s.Deliverer.DeliverOTP(ctx, phone, code); err != nil {
		return fmt.Errorf("deliver otp: %w", err)
	}

	return nil
}

// VerifyOTP checks the submitted code against the user's pending one.
// Verification does not consume the code: a client may confirm the OTP before
// submitting the new password in a separate step. The code stays valid and
// replayable until reset-password consumes it or it expires.
func (s *RecoveryService) VerifyOTP(ctx context.Context, phone, submitted string) error {
	user, err := s.Store.Users().GetUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	return checkOTP(user, submitted, time.Now().UTC())
}

// ResetPassword re-validates the OTP, re-hashes the password and consumes the
// pending code in the same transaction. The consume is guarded on the code
// still being the stored one, so when two resets race only one of them wins
// and the other reports ErrNoPendingOTP.
func (s *RecoveryService) ResetPassword(ctx context.Context, phone, newPassword, submitted string) error {
	if newPassword == "" {
		return validationErr("new password must not be empty")
	}

	user, err := s.Store.Users().GetUserByPhone(ctx, phone)
	if err != nil {
		return err
	}

	if err := checkOTP(user, submitted, time.Now().UTC()); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		consumed, err := tx.Users().ConsumeOTP(ctx, user.ID, submitted)
		if err != nil {
			return fmt.Errorf("consume otp: %w", err)
		}
		if !consumed {
			// A concurrent reset took the code between our check and here.
			return ErrNoPendingOTP
		}
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		return nil
	})
}

// checkOTP applies the verification rules in order: a pending code must
// exist, the submitted string must equal it exactly, and it must not have
// expired. The comparison is a string compare so format drift (leading zeros,
// whitespace) is caught rather than coerced.
func checkOTP(user domain.User, submitted string, now time.Time) error {
	if !user.HasPendingOTP() {
		return ErrNoPendingOTP
	}
	if submitted != *user.OTPCode {
		return ErrOTPMismatch
	}
	if !now.Before(*user.OTPExpiresAt) {
		return ErrOTPExpired
	}
	return nil
}
