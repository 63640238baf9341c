package ident

import (
	"strings"
	"unicode"
)

// ToID normalizes s so it can serve as (part of) a DOM id.
// Every run of characters outside [A-Za-z0-9_] collapses to a single
// underscore and the result is lowercased, e.g. "  aB$)\t  Cd$$ " -> "_ab_cd_".
func ToID(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	inRun := false

	for _, r := range s {
		if isWordRune(r) {
			b.WriteRune(unicode.ToLower(r))

			inRun = false

			continue
		}

		if !inRun {
			b.WriteByte('_')
		}

		inRun = true
	}

	return b.String()
}

// isWordRune reports whether r is an ASCII letter, digit or underscore.
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// NormalizeKey folds a series key for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase and separators.
// 2. Case-fold to lower.
// 3. Join without separators.
func NormalizeKey(s string) string {
	return strings.Join(TokenizeKey(s), "")
}

// TokenizeKey splits a key into normalized lowercase tokens.
// Examples:
//   - "SalesQ1" -> ["sales", "q1"]
//   - "north-america" -> ["north", "america"]
//   - "GDPGrowth" -> ["gdp", "growth"]
func TokenizeKey(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true for anything that is not a letter or digit.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "salesTotal" -> split before 'T'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "GDPGrowth" -> "GDP" + "Growth", split before 'G'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
