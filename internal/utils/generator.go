package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	DefaultShortCodeLength = 6
	alphabet               = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

func GenerateShortCode() (string, error) {
	return GenerateShortCodeWithLength(DefaultShortCodeLength)
}

// GenerateShortCodeWithLength выбирает length символов равномерно из
// алфавита в 62 символа (A-Z, a-z, 0-9)
func GenerateShortCodeWithLength(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("short code length must be positive, got %d", length)
	}

	code := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range code {
		randomIndex, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[randomIndex.Int64()]
	}

	return string(code), nil
}
