// Package english converts integers to English words.
//
// Numbers are title-cased and groups are separated by commas:
//
//	english.Convert(1001)      // "One Thousand, One"
//	english.Convert(2_000_003) // "Two Million, Three"
//
// The default scale table stops at Billion; larger groups are named by
// composition ("One Thousand Billion"). Use New with numtext.WithScales(ShortScale)
// for Trillion through Decillion, and numtext.WithLimit(ClassicLimit()) to
// reject values above 999,999,999,999.
//
// All functions are safe for concurrent use.
package english

import (
	"math/big"
	"strings"

	"github.com/az-ai-labs/num2words/numtext"
)

type grammar struct{}

func (grammar) Lang() string               { return "en" }
func (grammar) ZeroWord() string           { return "Zero" }
func (grammar) NegativeWord() string       { return "Negative" }
func (grammar) Conjunction() string        { return ", " }
func (grammar) Joiner() string             { return " " }
func (grammar) Scales() numtext.ScaleTable { return Classic }
func (grammar) FirstWord() string          { return "First" }
func (grammar) TenthWord() string          { return "Tenth" }

func (grammar) Group(c numtext.Chunk) string {
	w := composer.Compose(c.Value, numtext.Masculine)
	if c.Level == 0 {
		return w
	}
	return w + " " + c.Scale(numtext.Normal)
}

// Ordinal rewrites the last word of the cardinal.
func (grammar) Ordinal(cardinal string) string {
	i := strings.LastIndexByte(cardinal, ' ') + 1
	head, last := cardinal[:i], cardinal[i:]
	if w, ok := irregularOrdinals[last]; ok {
		return head + w
	}
	if rest, ok := strings.CutSuffix(last, "y"); ok {
		return head + rest + "ieth"
	}
	return head + last + "th"
}

// New returns an English converter.
func New(opts ...numtext.Option) *numtext.Converter {
	return numtext.New(grammar{}, opts...)
}

// ClassicLimit returns 999,999,999,999, the largest value the Classic table
// names without composition.
func ClassicLimit() *big.Int {
	return big.NewInt(999_999_999_999)
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
