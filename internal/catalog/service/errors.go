package service

import "errors"

// ValidationError reports malformed or missing input, detected before any
// storage is touched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

var (
	// ErrInvalidCredentials deliberately does not differentiate between an
	// unknown identifier and a wrong password, to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// The OTP flow is multi-step, so its failures are differentiated to give
	// the user actionable feedback.
	ErrNoPendingOTP = errors.New("no_pending_otp")
	ErrOTPMismatch  = errors.New("otp_mismatch")
	ErrOTPExpired   = errors.New("otp_expired")
)
