package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const otpTTL = 5 * time.Minute

// generateNumericOTP generates a secure random numeric OTP of the given length.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

// InitiateSignupOTP generates a 6-digit OTP and stores it in Redis with a
// 5-minute TTL, keyed by the registrant's email. The caller is responsible
// for delivering the code.
func InitiateSignupOTP(email string) (string, error) {
	otp, err := generateNumericOTP(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := GetOTPCacheClient().Set(ctx, otpKey(email), otp, otpTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return otp, nil
}

// VerifySignupOTP checks the provided OTP against the stored record and
// consumes it on success.
func VerifySignupOTP(email, provided string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client := GetOTPCacheClient()
	stored, err := client.Get(ctx, otpKey(email)).Result()
	if err != nil {
		return fmt.Errorf("invalid or expired OTP")
	}
	if stored != provided {
		return fmt.Errorf("invalid or expired OTP")
	}
	client.Del(ctx, otpKey(email))
	return nil
}
