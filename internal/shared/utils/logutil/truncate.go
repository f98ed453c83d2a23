// Package logutil keeps log fields bounded.
package logutil

import "unicode/utf8"

// TruncateForLog cuts s to at most maxLen runes and marks the cut with
// "...". Runes, not bytes, so Arabic text is never split mid-character.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
