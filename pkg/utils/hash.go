package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// PhoneFingerprint returns a short, log-safe identifier for a phone number.
// Formatting characters are dropped first so "(123) 456-7890" and "1234567890" match.
func PhoneFingerprint(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	return HashString(digits)[:12]
}
