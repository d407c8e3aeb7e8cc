package utils

import (
	"testing"

	apperrors "github.com/Kosench/memshort/internal/errors"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"plain http", "http://example.com", true},
		{"https with path", "https://example.com/page", true},
		{"query string", "https://google.com/search?q=test", true},
		{"port", "http://localhost:8080/health", true},
		{"fragment", "https://example.com#top", true},
		{"uppercase scheme", "HTTPS://EXAMPLE.COM", true},
		{"dashed host", "https://my-site.example.org/a/b?c=d&e=f", true},
		{"empty", "", false},
		{"no scheme", "example.com", false},
		{"ftp scheme", "ftp://example.com", false},
		{"no host", "https://", false},
		{"not a url", "not-a-url", false},
		{"space in path", "https://example.com/a b", false},
		{"space in host", "https://exa mple.com", false},
		{"trailing newline", "https://example.com/\n", false},
		{"underscore host", "https://bad_host.com", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"vertical tab", "https://example.com/a\vb", false},
		{"form feed", "https://example.com/a\fb", false},
		{"nul byte", "https://example.com/a\x00b", false},
		{"delete char", "https://example.com/a\x7fb", false},
		{"no-break space", "https://example.com/a\u00a0b", false},
		{"ideographic space", "https://example.com/a\u3000b", false},
		{"line separator", "https://example.com/a\u2028b", false},
		{"non-ascii path", "https://example.com/caf\u00e9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidURL(tt.url); got != tt.want {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		message string
	}{
		{
			name:    "valid https URL",
			url:     "https://api.github.com/repos/user/repo?sort=updated",
			wantErr: false,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
			message: "URL cannot be empty",
		},
		{
			name:    "invalid URL format",
			url:     "not-a-url",
			wantErr: true,
			message: "Invalid URL format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)

			if !tt.wantErr {
				if err != nil {
					t.Errorf("ValidateURL() unexpected error = %v", err)
				}
				return
			}

			if !apperrors.IsValidationError(err) {
				t.Fatalf("ValidateURL() expected validation error, got %T", err)
			}

			validationErr := apperrors.GetValidationError(err)
			if validationErr.Field != "url" {
				t.Errorf("ValidateURL() field = %q, want url", validationErr.Field)
			}
			if validationErr.Message != tt.message {
				t.Errorf("ValidateURL() message = %q, want %q", validationErr.Message, tt.message)
			}
		})
	}
}

func TestIsValidShortCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"abc123", true},
		{"ZZZZZZ", true},
		{"000000", true},
		{"abc", false},
		{"abc1234", false},
		{"", false},
		{"abc-12", false},
		{"abc 12", false},
		{"abcdé1", false},
	}

	for _, tt := range tests {
		if got := IsValidShortCode(tt.code); got != tt.want {
			t.Errorf("IsValidShortCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestValidateShortCode(t *testing.T) {
	if err := ValidateShortCode("abc123"); err != nil {
		t.Errorf("ValidateShortCode(abc123) unexpected error = %v", err)
	}

	err := ValidateShortCode("abc")
	if !apperrors.IsValidationError(err) {
		t.Fatalf("ValidateShortCode(abc) expected validation error, got %v", err)
	}
	if got := apperrors.GetValidationError(err).Field; got != "short_code" {
		t.Errorf("ValidateShortCode(abc) field = %q, want short_code", got)
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "https://example.com",
			expected: "https://example.com",
		},
		{
			name:     "string with spaces",
			input:    "  https://example.com  ",
			expected: "https://example.com",
		},
		{
			name:     "control characters are not removed",
			input:    "https://example.com/a\x00b",
			expected: "https://example.com/a\x00b",
		},
		{
			name:     "tabs and newlines at the edges",
			input:    "\thttps://example.com\t\n\r",
			expected: "https://example.com",
		},
		{
			name:     "embedded space is kept",
			input:    "https://example.com/a b",
			expected: "https://example.com/a b",
		},
		{
			name:     "only spaces",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeInput(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeInput() = %q, want %q", result, tt.expected)
			}
		})
	}
}
