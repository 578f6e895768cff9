// Package tajik converts integers to Tajik words in Cyrillic script.
//
//	tajik.Convert(121)  // "саду бисту як"
//	tajik.Convert(1001) // "ҳазору як"
//
// The connective "-у" is written glued to the word before it, so the
// conjunction is "у " rather than a separate word. After "сӣ" it is "-ю":
// "сию ду".
//
// All functions are safe for concurrent use.
package tajik

import (
	"math/big"
	"strings"

	"github.com/az-ai-labs/num2words/numtext"
)

type grammar struct{}

func (grammar) Lang() string               { return "tg" }
func (grammar) ZeroWord() string           { return "сифр" }
func (grammar) NegativeWord() string       { return "манфӣ" }
func (grammar) Conjunction() string        { return and }
func (grammar) Joiner() string             { return " " }
func (grammar) Scales() numtext.ScaleTable { return Scales }
func (grammar) FirstWord() string          { return "якум" }
func (grammar) TenthWord() string          { return "даҳум" }

// Group omits the count before a lone thousand: "ҳазор", not "як ҳазор".
func (grammar) Group(c numtext.Chunk) string {
	if c.Level == 1 && c.Value == 1 {
		return c.Scale(numtext.Normal)
	}
	w := strings.ReplaceAll(composer.Compose(c.Value, numtext.Masculine), "сӣ"+and, "сию ")
	if c.Level == 0 {
		return w
	}
	return w + " " + c.Scale(numtext.Normal)
}

// Ordinal appends -юм, except after "сӣ" (-июм), "се" (-вум) and "як" (-ум).
func (grammar) Ordinal(cardinal string) string {
	switch {
	case strings.HasSuffix(cardinal, "ӣ"):
		return strings.TrimSuffix(cardinal, "ӣ") + "июм"
	case strings.HasSuffix(cardinal, "се"):
		return cardinal + "вум"
	case strings.HasSuffix(cardinal, "як"):
		return cardinal + "ум"
	}
	return cardinal + "юм"
}

// New returns a Tajik converter.
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
