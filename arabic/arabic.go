// Package arabic converts integers to Arabic words.
//
// Scale nouns agree with their count: a count of one leaves only the noun
// ("ألف"), two selects the dual ("ألفان"), three to ten the plural
// ("ثلاثة آلاف"), and larger counts the singular, in the accusative
// ("ألفاً") when another group follows:
//
//	arabic.Convert(2000)   // "ألفان"
//	arabic.Convert(11_005) // "أحد عشر ألفاً و خمسة"
//
// Units precede tens ("ثلاثة و عشرون"). A converter built with
// numtext.WithGender(numtext.Feminine) uses feminine units in the ones group.
//
// Known limitations:
//
//   - Ordinals are masculine and definite ("الثالث", "الحادي و العشرون");
//     only the last word or unit-tens pair is made ordinal.
//   - Names beyond سكستيليون are composed with a zero-width non-joiner.
//
// All functions are safe for concurrent use.
package arabic

import (
	"math/big"
	"strings"

	"github.com/az-ai-labs/num2words/numtext"
)

const (
	and  = " و "
	zwnj = "\u200c"
)

type grammar struct{}

func (grammar) Lang() string               { return "ar" }
func (grammar) ZeroWord() string           { return "صفر" }
func (grammar) NegativeWord() string       { return "سالب" }
func (grammar) Conjunction() string        { return and }
func (grammar) Joiner() string             { return zwnj }
func (grammar) Scales() numtext.ScaleTable { return Scales }
func (grammar) FirstWord() string          { return "الأول" }
func (grammar) TenthWord() string          { return "العاشر" }

func (grammar) Group(c numtext.Chunk) string {
	if c.Level == 0 {
		return small(c)
	}

	h, r := c.Value/100, c.Value%100
	switch {
	case c.Value == 1:
		return c.Scale(numtext.Normal)
	case c.Value == 2:
		return dual(c)
	case h > 0 && r == 1:
		return hundreds[h] + and + c.Scale(numtext.Normal)
	case c.Value <= 10:
		return small(c) + " " + c.Scale(numtext.Plural)
	case c.Final:
		return small(c) + " " + c.Scale(numtext.Normal)
	}
	return small(c) + " " + c.Scale(numtext.Appended)
}

// small renders 1–999 with units before tens. A bare two hundred above the
// ones group takes the construct form "مئتا".
func small(c numtext.Chunk) string {
	h, r := c.Value/100, c.Value%100

	parts := make([]string, 0, 3)
	if h > 0 {
		if h == 2 && r == 0 && c.Level > 0 {
			parts = append(parts, c.Hundred(numtext.Genitive))
		} else {
			parts = append(parts, hundreds[h])
		}
	}
	switch {
	case r == 0:
	case r < 20:
		parts = append(parts, units.Word(r, c.Gender))
	default:
		if o := r % 10; o > 0 {
			parts = append(parts, units.Word(o, c.Gender))
		}
		parts = append(parts, tens[r-r%10])
	}
	return strings.Join(parts, and)
}

// dual appends the dual ending to the first component of the scale name.
func dual(c numtext.Chunk) string {
	s := c.Scale(numtext.Genitive)
	if head, tail, ok := strings.Cut(s, zwnj); ok {
		return head + "ن" + zwnj + tail
	}
	return s + "ن"
}

// Ordinal makes the last unit, or the last unit-tens pair, definite and
// ordinal; any other final word only takes the article.
func (grammar) Ordinal(cardinal string) string {
	parts := strings.Split(cardinal, and)
	n := len(parts)
	last := parts[n-1]

	if isTens(last) && n > 1 {
		if ord, ok := compoundOrdinals[parts[n-2]]; ok {
			parts[n-2] = "ال" + ord
			parts[n-1] = "ال" + last
			return strings.Join(parts, and)
		}
	}

	fields := strings.Fields(last)
	switch {
	case len(fields) == 1:
		if ord, ok := ordinals[last]; ok {
			parts[n-1] = "ال" + ord
			return strings.Join(parts, and)
		}
	case len(fields) == 2 && (fields[1] == "عشر" || fields[1] == "عشرة"):
		if ord, ok := compoundOrdinals[fields[0]]; ok {
			parts[n-1] = "ال" + ord + " " + fields[1]
			return strings.Join(parts, and)
		}
	}

	parts[n-1] = "ال" + last
	return strings.Join(parts, and)
}

func isTens(w string) bool {
	for _, t := range tens {
		if w == t {
			return true
		}
	}
	return false
}

// New returns an Arabic converter.
func New(opts ...numtext.Option) *numtext.Converter {
	return numtext.New(grammar{}, opts...)
}

var std = New()

// Convert returns the cardinal words for n.
func Convert(n int64) string {
	s, _ := std.ConvertInt(n)
	return s
}

// ConvertBigInt returns the cardinal words for n.
func ConvertBigInt(n *big.Int) string {
	s, _ := std.ConvertBigInt(n)
	return s
}

// ConvertString returns the cardinal words for a base-10 digit string.
func ConvertString(s string) (string, error) {
	return std.ConvertString(s)
}

// ConvertOrdinal returns the ordinal words for n.
func ConvertOrdinal(n int64) string {
	s, _ := std.OrdinalInt(n)
	return s
}

// ConvertOrdinalBigInt returns the ordinal words for n.
func ConvertOrdinalBigInt(n *big.Int) string {
	s, _ := std.OrdinalBigInt(n)
	return s
}

// ConvertOrdinalString returns the ordinal words for a base-10 digit string.
func ConvertOrdinalString(s string) (string, error) {
	return std.OrdinalString(s)
}
