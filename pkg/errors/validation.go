package errors

import (
	"strings"
	"unicode"
)

// ValidatePackageName checks the package name a search is built from.
// The only requirement is that it is non-empty once surrounding whitespace is
// removed; everything else is passed to the search API verbatim.
func ValidatePackageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "package name cannot be empty")
	}
	return nil
}

// ValidateCount checks a requested page size. Only positive values are
// accepted; there is no upper bound, the API rejects unreasonable values itself.
func ValidateCount(count int) error {
	if count <= 0 {
		return New(ErrCodeInvalidCount, "count must be positive, got %d", count)
	}
	return nil
}

// ValidateHeaderValue checks that value can be sent in the HTTP header named
// field. Control characters (CR, LF, NUL, DEL and friends) are rejected;
// horizontal tab is allowed as in RFC 7230.
func ValidateHeaderValue(field, value string) error {
	for _, r := range value {
		if r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "%s header value contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
