package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail masks an email address for logging: "alice@example.com" -> "a***@example.com".
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	return firstRune(parts[0]) + "***@" + parts[1]
}

// MaskUsername keeps the first character of a username.
func MaskUsername(username string) string {
	if username == "" {
		return ""
	}
	return firstRune(username) + "***"
}

func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
