package domain

import "time"

// User is an account in the credential store. Phone and email are each
// globally unique. The pending OTP fields are set together by request-otp and
// cleared together by a successful reset-password; one is never present
// without the other.
type User struct {
	ID           string
	Phone        string // exactly 10 digits
	Email        string
	PasswordHash string // bcrypt encoded, never the plaintext

	OTPCode      *string    // pending recovery code (6 digits)
	OTPExpiresAt *time.Time // recovery code expiry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPendingOTP reports whether a recovery code is currently stored for the
// user. It does not check expiry.
func (u User) HasPendingOTP() bool {
	return u.OTPCode != nil && u.OTPExpiresAt != nil
}
