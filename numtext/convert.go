// Unexported assembly shared by every grammar.
package numtext

import (
	"strings"

	"github.com/az-ai-labs/num2words/internal/group"
)

const growGroup = 48 // estimated bytes per rendered group

// cardinal renders groups, least significant first, as a full cardinal.
func (c *Converter) cardinal(neg bool, groups []group.Group) string {
	if group.IsZero(groups) {
		return c.grammar.ZeroWord()
	}
	words := c.render(groups, c.gender)
	if neg {
		return c.grammar.NegativeWord() + " " + words
	}
	return words
}

// render joins the non-zero groups, most significant first, with gender
// applied to the ones group. Callers must ensure at least one group is
// non-zero.
func (c *Converter) render(groups []group.Group, gender Gender) string {
	lowest := 0
	for _, g := range groups {
		if g.Value != 0 {
			lowest = g.Level
			break
		}
	}

	conj := c.grammar.Conjunction()
	joiner := c.grammar.Joiner()

	var b strings.Builder
	b.Grow(growGroup * len(groups))

	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g.Value == 0 {
			continue
		}
		gg := Masculine
		if g.Level == 0 {
			gg = gender
		}
		part := c.grammar.Group(Chunk{
			Value:  g.Value,
			Level:  g.Level,
			Final:  g.Level == lowest,
			Gender: gg,
			scales: c.scales,
			joiner: joiner,
		})
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(conj)
		}
		b.WriteString(part)
	}
	return b.String()
}

// ordinal renders groups as an ordinal.
// 1 and 10 map to the grammar's irregular words. Ordinals are suffixed onto
// the masculine cardinal whatever the converter's gender.
func (c *Converter) ordinal(neg bool, groups []group.Group) (string, error) {
	o, ok := c.grammar.(Ordinaler)
	if !ok {
		return "", ErrNoOrdinal
	}
	if group.IsZero(groups) {
		return o.Ordinal(c.grammar.ZeroWord()), nil
	}

	var s string
	switch {
	case len(groups) == 1 && groups[0].Value == 1:
		s = o.FirstWord()
	case len(groups) == 1 && groups[0].Value == 10:
		s = o.TenthWord()
	default:
		cardinal := c.render(groups, Masculine)
		if cardinal == "" {
			return "", nil
		}
		s = o.Ordinal(cardinal)
	}

	if neg && s != "" {
		return c.grammar.NegativeWord() + " " + s, nil
	}
	return s, nil
}
