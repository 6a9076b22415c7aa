package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTP codes are drawn uniformly from [100000, 999999] so the code is always
// six digits with no leading zero that could shorten its display.
const (
	otpMin   = 100000
	otpRange = 900000
)

// GenerateOTP returns a uniformly random six-digit numeric code as a string.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("cryptox: generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+otpMin), nil
}
