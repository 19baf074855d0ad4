package errors

import (
	"strings"
	"unicode"
)

// maxInputLength bounds search text and logins; GitHub logins are at most
// 39 characters but search queries may contain display names.
const maxInputLength = 256

// ValidateUsername trims the input and rejects it when empty.
//
// Any other text is accepted: names may contain spaces and punctuation,
// and the GitHub search API decides what matches. Control characters are
// rejected because they can only come from a broken caller.
func ValidateUsername(input string) (string, error) {
	return validateText(input, "username")
}

// ValidateQuery applies the username rules to search text.
func ValidateQuery(input string) (string, error) {
	return validateText(input, "search query")
}

func validateText(input, what string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", New(ErrCodeInvalidInput, "%s cannot be empty", what)
	}
	if len(trimmed) > maxInputLength {
		return "", New(ErrCodeInvalidInput, "%s too long (max %d characters)", what, maxInputLength)
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", New(ErrCodeInvalidInput, "%s contains invalid control characters", what)
		}
	}
	return trimmed, nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
