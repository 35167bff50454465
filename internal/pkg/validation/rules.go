package validation

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,10}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// contentPolicy strips all HTML from user-submitted text. Posts and comments
// are plain text; markup survives only as its text content.
var contentPolicy = bluemonday.StrictPolicy()

// SanitizeContent removes markup from user-submitted content and trims
// surrounding whitespace.
func SanitizeContent(s string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(s))
}

// IsValidEmail reports whether the email matches the expected format
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(email))
}

// IsValidPassword reports whether a password satisfies the minimum strength
// rules: length, at least one letter and at least one digit.
func IsValidPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// IsValidName reports whether a display name has an acceptable length
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}
