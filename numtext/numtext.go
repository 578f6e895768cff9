// Package numtext converts integers into words for a pluggable set of
// language grammars.
//
// The conversion pipeline is shared by every language:
//
//   - the number is split into base-1000 groups;
//   - each non-zero group is rendered by the grammar together with its
//     scale word (thousand, million, ...), which the grammar inflects
//     through the Chunk it receives;
//   - rendered groups are joined, most significant first, with the
//     grammar's conjunction.
//
// Zero short-circuits to the grammar's zero word. Negative numbers are
// prefixed with the grammar's negative word.
//
// A Converter is built once with New and a Grammar, plus options that fix
// the scale table, the grammatical gender of the ones group and an optional
// upper bound. Converters are immutable and safe for concurrent use by
// multiple goroutines.
//
// Known limitations:
//
//   - Ordinals are available only for grammars implementing Ordinaler.
//   - Scale names beyond the end of a table are synthesized by repeating
//     the largest scale word; they are regular, not necessarily idiomatic.
package numtext

import (
	"fmt"
	"math/big"

	"github.com/az-ai-labs/num2words/internal/group"
)

// Converter renders integers as words in one language.
type Converter struct {
	grammar Grammar
	scales  ScaleTable
	gender  Gender
	limit   *big.Int // inclusive bound on |n|; nil means unbounded
}

// Option configures a Converter.
type Option func(*Converter)

// WithScales replaces the grammar's default scale table.
// Tables with fewer than two entries are ignored.
func WithScales(t ScaleTable) Option {
	return func(c *Converter) {
		if len(t) >= 2 {
			c.scales = t
		}
	}
}

// WithGender sets the grammatical gender used for the ones group.
func WithGender(g Gender) Option {
	return func(c *Converter) {
		c.gender = g
	}
}

// WithLimit bounds the absolute value accepted by the converter.
// Values above n fail with ErrRange. A nil or negative n removes the bound.
func WithLimit(n *big.Int) Option {
	return func(c *Converter) {
		if n == nil || n.Sign() < 0 {
			c.limit = nil
			return
		}
		c.limit = new(big.Int).Set(n)
	}
}

// New returns a Converter for g.
func New(g Grammar, opts ...Option) *Converter {
	c := &Converter{
		grammar: g,
		scales:  g.Scales(),
		gender:  Masculine,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lang returns the BCP 47 code of the converter's grammar.
func (c *Converter) Lang() string {
	return c.grammar.Lang()
}

// Limit returns a copy of the configured bound, or nil when unbounded.
func (c *Converter) Limit() *big.Int {
	if c.limit == nil {
		return nil
	}
	return new(big.Int).Set(c.limit)
}

// Scales returns the scale table in use.
func (c *Converter) Scales() ScaleTable {
	return c.scales
}

// HasOrdinals reports whether the grammar supports ordinal forms.
func (c *Converter) HasOrdinals() bool {
	_, ok := c.grammar.(Ordinaler)
	return ok
}

// ConvertInt returns the cardinal words for n.
func (c *Converter) ConvertInt(n int64) (string, error) {
	neg, abs := splitInt(n)
	if err := c.checkUint(abs); err != nil {
		return "", numError("ConvertInt", fmt.Sprint(n), err)
	}
	return c.cardinal(neg, group.FromUint64(abs)), nil
}

// ConvertUint returns the cardinal words for n.
func (c *Converter) ConvertUint(n uint64) (string, error) {
	if err := c.checkUint(n); err != nil {
		return "", numError("ConvertUint", fmt.Sprint(n), err)
	}
	return c.cardinal(false, group.FromUint64(n)), nil
}

// ConvertBigInt returns the cardinal words for n. A nil n is zero.
func (c *Converter) ConvertBigInt(n *big.Int) (string, error) {
	if err := c.checkBig(n); err != nil {
		return "", numError("ConvertBigInt", n.String(), err)
	}
	return c.cardinal(n != nil && n.Sign() < 0, group.FromBigInt(n)), nil
}

// ConvertString returns the cardinal words for a base-10 digit string with
// an optional leading sign. The output is identical to ConvertBigInt for the
// same value.
func (c *Converter) ConvertString(s string) (string, error) {
	neg, groups, err := c.parse(s)
	if err != nil {
		return "", numError("ConvertString", s, err)
	}
	return c.cardinal(neg, groups), nil
}

// Convert dispatches on the dynamic type of v: any Go integer type,
// *big.Int, big.Int or a digit string. Other types fail with ErrType.
func (c *Converter) Convert(v any) (string, error) {
	switch n := v.(type) {
	case string:
		return c.ConvertString(n)
	case *big.Int:
		return c.ConvertBigInt(n)
	case big.Int:
		return c.ConvertBigInt(&n)
	}
	if i, ok := asInt64(v); ok {
		return c.ConvertInt(i)
	}
	if u, ok := asUint64(v); ok {
		return c.ConvertUint(u)
	}
	return "", numError("Convert", fmt.Sprintf("%T", v), ErrType)
}

// OrdinalInt returns the ordinal words for n.
func (c *Converter) OrdinalInt(n int64) (string, error) {
	neg, abs := splitInt(n)
	if err := c.checkUint(abs); err != nil {
		return "", numError("OrdinalInt", fmt.Sprint(n), err)
	}
	s, err := c.ordinal(neg, group.FromUint64(abs))
	if err != nil {
		return "", numError("OrdinalInt", fmt.Sprint(n), err)
	}
	return s, nil
}

// OrdinalUint returns the ordinal words for n.
func (c *Converter) OrdinalUint(n uint64) (string, error) {
	if err := c.checkUint(n); err != nil {
		return "", numError("OrdinalUint", fmt.Sprint(n), err)
	}
	s, err := c.ordinal(false, group.FromUint64(n))
	if err != nil {
		return "", numError("OrdinalUint", fmt.Sprint(n), err)
	}
	return s, nil
}

// OrdinalBigInt returns the ordinal words for n. A nil n is zero.
func (c *Converter) OrdinalBigInt(n *big.Int) (string, error) {
	if err := c.checkBig(n); err != nil {
		return "", numError("OrdinalBigInt", n.String(), err)
	}
	s, err := c.ordinal(n != nil && n.Sign() < 0, group.FromBigInt(n))
	if err != nil {
		return "", numError("OrdinalBigInt", n.String(), err)
	}
	return s, nil
}

// OrdinalString returns the ordinal words for a base-10 digit string.
func (c *Converter) OrdinalString(s string) (string, error) {
	neg, groups, err := c.parse(s)
	if err != nil {
		return "", numError("OrdinalString", s, err)
	}
	out, err := c.ordinal(neg, groups)
	if err != nil {
		return "", numError("OrdinalString", s, err)
	}
	return out, nil
}

// Ordinal is the ordinal counterpart of Convert.
func (c *Converter) Ordinal(v any) (string, error) {
	switch n := v.(type) {
	case string:
		return c.OrdinalString(n)
	case *big.Int:
		return c.OrdinalBigInt(n)
	case big.Int:
		return c.OrdinalBigInt(&n)
	}
	if i, ok := asInt64(v); ok {
		return c.OrdinalInt(i)
	}
	if u, ok := asUint64(v); ok {
		return c.OrdinalUint(u)
	}
	return "", numError("Ordinal", fmt.Sprintf("%T", v), ErrType)
}
