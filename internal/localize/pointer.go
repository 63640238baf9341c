package localize

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const defsSegment = "$defs"

var quoteEscaper = strings.NewReplacer(`\`, `\\`, "'", `\'`)

// ToJSONPath converts a fragment pointer such as "#/datasets/0/series" into
// a JSONPath expression such as "$.datasets[0].series".
func ToJSONPath(ptr string) (string, error) {
	rest, ok := strings.CutPrefix(ptr, "#")
	if !ok {
		return "", fmt.Errorf("pointer %q does not start with #", ptr)
	}

	if rest == "" {
		return "$", nil
	}

	if !strings.HasPrefix(rest, "/") {
		return "", fmt.Errorf("pointer %q: expected / after #", ptr)
	}

	var b strings.Builder

	b.WriteByte('$')

	for _, raw := range strings.Split(rest[1:], "/") {
		seg, err := unescape(raw)
		if err != nil {
			return "", fmt.Errorf("pointer %q: %w", ptr, err)
		}

		switch {
		case isIndex(seg):
			b.WriteString("[" + seg + "]")
		case seg != defsSegment && isIdent(seg):
			b.WriteString("." + seg)
		default:
			b.WriteString("['" + quoteEscaper.Replace(seg) + "']")
		}
	}

	return b.String(), nil
}

// unescape decodes percent-encoding, then the ~1 and ~0 pointer escapes.
func unescape(seg string) (string, error) {
	decoded, err := url.PathUnescape(seg)
	if err != nil {
		return "", err
	}

	if strings.Contains(strings.ReplaceAll(strings.ReplaceAll(decoded, "~0", ""), "~1", ""), "~") {
		return "", errors.New("invalid ~ escape in segment " + seg)
	}

	decoded = strings.ReplaceAll(decoded, "~1", "/")

	return strings.ReplaceAll(decoded, "~0", "~"), nil
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}

	return true
}

// isIdent checks if s can follow a dot in a JSONPath expression.
func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
