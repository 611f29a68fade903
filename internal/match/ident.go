package match

import (
	"strings"
	"unicode"
)

// TokenizeIdent splits an identifier into lower-case words. Separators
// ('_', '-', ' ', ':') end a word, as do case changes: "parseHTTPHeader"
// gives ["parse" "http" "header"].
func TokenizeIdent(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if separator(r) {
			flush()
			continue
		}

		if i > 0 && boundary(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return words
}

// NormalizeIdent folds an identifier to its words joined without separators.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

func separator(r rune) bool {
	switch r {
	case '_', '-', ' ', ':':
		return true
	}

	return false
}

// boundary reports whether a new word starts at runes[i]: either a lower to
// upper step, or the last capital of an acronym followed by lower case.
func boundary(runes []rune, i int) bool {
	cur, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(cur) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return !separator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
