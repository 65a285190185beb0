package services

import (
	"strings"
	"unicode"
)

// inferNameFromEmail turns the local part of an address into a display
// name: "jane.doe+talks42@example.com" becomes "Jane Doe". Returns ""
// when nothing usable remains.
func inferNameFromEmail(email string) string {
	local, _, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return ""
	}
	// Drop a +tag suffix and any trailing digits.
	local, _, _ = strings.Cut(local, "+")
	local = strings.TrimRightFunc(local, unicode.IsDigit)
	if local == "" {
		return ""
	}

	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
