package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFilterLength caps free-text filter input, in runes.
const MaxFilterLength = 100

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeInput removes HTML tags and control characters, trims whitespace and
// truncates the result to MaxFilterLength runes.
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	sanitized = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, sanitized)

	sanitized = strings.TrimSpace(sanitized)

	if utf8.RuneCountInString(sanitized) > MaxFilterLength {
		sanitized = strings.TrimSpace(string([]rune(sanitized)[:MaxFilterLength]))
	}
	return sanitized
}
