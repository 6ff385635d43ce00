package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/centraplate/registry/models"
)

// GenerateOtpCode produces a passcode of the given length. Each digit is an
// independent uniform draw from [models.OtpAlphabet], backed by crypto/rand.
//
// Returns an error if length is not positive or the system entropy source
// fails.
func GenerateOtpCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid otp length: %d", length)
	}

	alphabet := models.OtpAlphabet
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error drawing otp digit: %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
