package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP returns a random 6-digit delivery verification code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// HashOTP stores delivery codes the same way passwords are stored.
func HashOTP(otp string) (string, error) {
	return HashPassword(otp, 0)
}

// CompareOTP verifies a delivery code against its hash.
func CompareOTP(hashed, otp string) error {
	return ComparePassword(hashed, otp)
}
