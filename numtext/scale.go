package numtext

import "strings"

// ScaleWord is the set of inflected forms of one power of 1000.
// Empty forms fall back to Normal.
type ScaleWord struct {
	Normal   string
	Genitive string
	Appended string
	Plural   string
}

// Plain returns a ScaleWord with a single form.
func Plain(word string) ScaleWord {
	return ScaleWord{Normal: word}
}

// Inflect returns the form f of w.
func (w ScaleWord) Inflect(f Form) string {
	var s string
	switch f {
	case Normal:
		return w.Normal
	case Genitive:
		s = w.Genitive
	case Appended:
		s = w.Appended
	case Plural:
		s = w.Plural
	}
	if s == "" {
		return w.Normal
	}
	return s
}

// ScaleTable lists scale words by ascending magnitude. Index 0 is the
// hundred, index 1 the thousand, index 2 the million, and so on.
type ScaleTable []ScaleWord

// Resolve returns the scale word for level in form f.
//
// Levels past the end of the table are synthesized from the largest entry
// H = len(t)-1: with d = level/H and m = level%H the name is t[m] (when m is
// non-zero) followed by d copies of t[H], joined with joiner. Only the first
// component is inflected.
func (t ScaleTable) Resolve(level int, f Form, joiner string) string {
	if level < 0 || len(t) == 0 {
		return ""
	}
	if level < len(t) {
		return t[level].Inflect(f)
	}

	top := len(t) - 1
	if top == 0 {
		return ""
	}
	d, m := level/top, level%top

	parts := make([]string, 0, d+1)
	if m != 0 {
		parts = append(parts, t[m].Inflect(f))
	}
	for range d {
		if len(parts) == 0 {
			parts = append(parts, t[top].Inflect(f))
			continue
		}
		parts = append(parts, t[top].Normal)
	}
	return strings.Join(parts, joiner)
}
