package utils

import (
	"regexp"
	"strings"
	"unicode"

	apperrors "github.com/Kosench/memshort/internal/errors"
)

// схема, хост, затем необязательный порт/путь/query/fragment
var urlPattern = regexp.MustCompile(`(?i)^https?://[a-z0-9.-]+([:/?#]\S*)?$`)

// IsValidURL is a purely syntactic check; nothing is resolved.
func IsValidURL(candidate string) bool {
	// RE2 \s знает только ASCII пробелы, поэтому Unicode пробелы и управляющие символы отсекаем отдельно
	if strings.IndexFunc(candidate, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return false
	}
	return urlPattern.MatchString(candidate)
}

func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return apperrors.NewValidationError("url", "URL cannot be empty")
	}

	if !IsValidURL(rawURL) {
		return apperrors.NewValidationError("url", "Invalid URL format")
	}

	return nil
}

// IsValidShortCode reports whether code is exactly DefaultShortCodeLength ASCII alphanumerics.
func IsValidShortCode(code string) bool {
	if len(code) != DefaultShortCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

func ValidateShortCode(code string) error {
	if !IsValidShortCode(code) {
		return apperrors.NewValidationError("short_code", "Invalid short code format")
	}
	return nil
}

// SanitizeInput только обрезает пробелы по краям. Всё остальное остаётся
// как есть и проверяется валидатором: URL не переписывается молча.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
