package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateNumericCode generates a fixed-length numeric code. The code
// itself carries no security weight; brute force is handled by attempt
// limits, not code entropy.
func GenerateNumericCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

// GenerateInviteToken generates a random token used as a deep-link
// credential. Tokens must not be guessable via enumeration.
func GenerateInviteToken(length int) (string, error) {
	if length <= 0 {
		length = 32
	}

	b := make([]byte, (length+1)/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}

	return hex.EncodeToString(b)[:length], nil
}
