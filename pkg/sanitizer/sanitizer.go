package sanitizer

import (
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for performance
var (
	// Runs of separator characters collapse to a single hyphen
	separatorRegex = regexp.MustCompile(`[ _-]+`)

	// Identifier filtering; note the hyphen survives
	nonIdentifierRegex = regexp.MustCompile(`[^A-Za-z0-9-]`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Identifier normalises a free-form label into a safe identifier: runs of
// spaces, underscores and hyphens collapse to a single hyphen, then every
// character outside [A-Za-z0-9-] is stripped. Letter case is preserved.
// An input that reduces to the empty string yields "", meaning "absent".
func Identifier(raw string) string {
	s := separatorRegex.ReplaceAllString(raw, "-")
	return nonIdentifierRegex.ReplaceAllString(s, "")
}

// Apply runs a value through a sanitisation chain in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable sanitisation pipeline.
// Preferred over repeated Apply calls when the same chain is used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
