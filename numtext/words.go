package numtext

import "strings"

// SmallWord holds the masculine and feminine spelling of one lexicon entry.
// An empty Feminine falls back to Masculine.
type SmallWord struct {
	Masculine string
	Feminine  string
}

// For returns the spelling for gender g.
func (w SmallWord) For(g Gender) string {
	switch g {
	case Masculine:
		return w.Masculine
	case Feminine:
		if w.Feminine != "" {
			return w.Feminine
		}
		return w.Masculine
	}
	return w.Masculine
}

// Lexicon maps exact values in 1–999 to their words.
type Lexicon map[int]SmallWord

// Uniform builds a Lexicon for a language without gendered numerals.
func Uniform(words map[int]string) Lexicon {
	lex := make(Lexicon, len(words))
	for n, w := range words {
		lex[n] = SmallWord{Masculine: w}
	}
	return lex
}

// Lookup returns the word for exactly n.
func (l Lexicon) Lookup(n int, g Gender) (string, bool) {
	w, ok := l[n]
	if !ok {
		return "", false
	}
	return w.For(g), true
}

// Word returns the word for n, or "" when n has no entry.
func (l Lexicon) Word(n int, g Gender) string {
	w, _ := l.Lookup(n, g)
	return w
}

// Composer renders 1–999 as hundreds, then tens, then ones.
type Composer struct {
	Lexicon Lexicon
	// Hundred renders h·100 for h in 1–9.
	Hundred func(h int, g Gender) string
	// Sep follows the hundreds word when a remainder exists.
	Sep string
	// TensSep joins a tens word to a ones word.
	TensSep string
}

// Compose returns the words for n, or "" when n is outside 1–999.
// An exact lexicon entry always wins over composition.
func (c Composer) Compose(n int, g Gender) string {
	if n <= 0 || n > 999 {
		return ""
	}
	if w, ok := c.Lexicon.Lookup(n, g); ok {
		return w
	}

	var b strings.Builder
	h, r := n/100, n%100
	if h > 0 {
		b.WriteString(c.Hundred(h, g))
		if r == 0 {
			return b.String()
		}
		b.WriteString(c.Sep)
	}

	if w, ok := c.Lexicon.Lookup(r, g); ok {
		b.WriteString(w)
		return b.String()
	}
	b.WriteString(c.Lexicon.Word(r-r%10, g))
	if o := r % 10; o > 0 {
		b.WriteString(c.TensSep)
		b.WriteString(c.Lexicon.Word(o, g))
	}
	return b.String()
}
