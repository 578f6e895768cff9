// Package normalize turns loosely written numbers into canonical digit strings.
//
// Number accepts what people type on the command line or paste from a
// document: ASCII, Persian (U+06F0–U+06F9), Arabic-Indic (U+0660–U+0669)
// and full-width digits, grouped with commas, underscores, apostrophes,
// spaces or the Arabic thousands separator. The result is an optionally
// signed run of ASCII digits suitable for numtext.Converter.ConvertString.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Decimal fractions are rejected; "1.5" and "۱٫۵" are not numbers here.
//   - Grouping is not checked, so "1,00,0" normalizes to "1000".
//   - Leading zeros are kept; the converter ignores them.
package normalize

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotNumeric reports input that is not an optionally signed number.
var ErrNotNumeric = errors.New("normalize: not numeric")

// maxInputBytes is the maximum input size for Number.
const maxInputBytes = 1 << 20 // 1 MiB

// separators are dropped anywhere in the input.
var separators = runes.Predicate(func(r rune) bool {
	switch r {
	case ',', '_', '\'', '\u066c', '\u060c', '\u00a0', '\u202f', '\u2009':
		return true
	}
	return unicode.IsSpace(r)
})

// foldDigit maps Persian and Arabic-Indic digits and the Unicode minus to ASCII.
func foldDigit(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	case r == '\u2212':
		return '-'
	}
	return r
}

// newTransformer returns a fresh chain; transform.Chain is stateful and
// must not be shared between goroutines.
func newTransformer() transform.Transformer {
	return transform.Chain(norm.NFKC, runes.Map(foldDigit), runes.Remove(separators))
}

// Number returns s as an optionally signed string of ASCII digits.
// A leading "+" is dropped. It returns ErrNotNumeric when no digits remain
// or anything other than digits and separators is present.
func Number(s string) (string, error) {
	if s == "" || len(s) > maxInputBytes {
		return "", ErrNotNumeric
	}

	out, _, err := transform.String(newTransformer(), s)
	if err != nil {
		return "", ErrNotNumeric
	}

	sign := ""
	switch {
	case strings.HasPrefix(out, "-"):
		sign, out = "-", out[1:]
	case strings.HasPrefix(out, "+"):
		out = out[1:]
	}
	if !isDigits(out) {
		return "", ErrNotNumeric
	}
	return sign + out, nil
}

// IsNumber reports whether Number accepts s.
func IsNumber(s string) bool {
	_, err := Number(s)
	return err == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
