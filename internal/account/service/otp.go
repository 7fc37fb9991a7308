package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpDigits = 6

var otpMax = big.NewInt(1000000)

// GenerateOTP draws a uniform 6-digit code from the crypto random source.
// The code is rendered as a string so leading zeros survive.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("otp generation: %w", err)
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
