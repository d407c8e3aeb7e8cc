package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const analyticsTokenBytes = 16

// GenerateAnalyticsToken создает непрозрачный URL-safe секрет для доступа к статистике
func GenerateAnalyticsToken() (string, error) {
	buf := make([]byte, analyticsTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
