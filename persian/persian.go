// Package persian converts integers to Persian words.
//
//	persian.Convert(1001)  // "هزار و یک"
//	persian.Convert(2_500) // "دو هزار و پانصد"
//
// Three scale tables are provided: Iran (the default), Europe and US. Names
// beyond the table are composed with a zero-width non-joiner, for example
// "هزار‌تریلیون" for 10^15 with the Iran table.
//
// Ordinals follow the cardinal: a final "ی" takes "‌ام", a final "سه"
// becomes "سوم", anything else takes "م". 1 and 10 are "اول" and "دهم".
//
// All functions are safe for concurrent use.
package persian

import (
	"math/big"
	"strings"

	"github.com/az-ai-labs/num2words/numtext"
)

const zwnj = "\u200c"

type grammar struct{}

func (grammar) Lang() string               { return "fa" }
func (grammar) ZeroWord() string           { return "صفر" }
func (grammar) NegativeWord() string       { return "منفی" }
func (grammar) Conjunction() string        { return and }
func (grammar) Joiner() string             { return zwnj }
func (grammar) Scales() numtext.ScaleTable { return Iran }
func (grammar) FirstWord() string          { return "اول" }
func (grammar) TenthWord() string          { return "دهم" }

// Group omits the count before a lone thousand: "هزار", not "یک هزار".
func (grammar) Group(c numtext.Chunk) string {
	if c.Level == 1 && c.Value == 1 {
		return c.Scale(numtext.Normal)
	}
	w := composer.Compose(c.Value, numtext.Masculine)
	if c.Level == 0 {
		return w
	}
	return w + " " + c.Scale(numtext.Normal)
}

func (grammar) Ordinal(cardinal string) string {
	switch {
	case strings.HasSuffix(cardinal, "ی"):
		return cardinal + zwnj + "ام"
	case strings.HasSuffix(cardinal, "سه"):
		return strings.TrimSuffix(cardinal, "ه") + "وم"
	}
	return cardinal + "م"
}

// New returns a Persian converter.
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
