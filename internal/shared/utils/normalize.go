package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer decomposes to NFD and drops combining marks, so "Café" and
// "cafe" compare equal after lowering.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s and strips diacritics. It backs the normalize()
// SQL function used by catalog search, and is safe for the UI to reuse.
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		// Transform only fails on malformed input; fall back to plain
		// lowering so search still works on whatever the user typed.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// StripIdentifier removes the separators commonly found in scanned ISBNs.
func StripIdentifier(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSpace(s)
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
