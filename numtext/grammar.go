package numtext

import (
	"fmt"
	"strings"
)

// Gender is the grammatical gender of the counted noun.
type Gender int

const (
	Masculine Gender = iota
	Feminine
)

var genderNames = [...]string{
	Masculine: "masculine",
	Feminine:  "feminine",
}

// String returns the lowercase name of the gender.
func (g Gender) String() string {
	if g < 0 || int(g) >= len(genderNames) {
		return fmt.Sprintf("Gender(%d)", int(g))
	}
	return genderNames[g]
}

// ParseGender accepts "masculine", "feminine" and their short forms
// "m", "f", "male", "female", in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "masculine", "m", "male":
		return Masculine, nil
	case "feminine", "f", "female":
		return Feminine, nil
	}
	return Masculine, fmt.Errorf("numtext: unknown gender %q", s)
}

// Form selects an inflection of a scale word.
type Form int

const (
	Normal   Form = iota // nominative singular
	Genitive             // construct form, the base of duals
	Appended             // singular with the accusative suffix, used before another group
	Plural               // used after counts 3 through 10
)

var formNames = [...]string{
	Normal:   "normal",
	Genitive: "genitive",
	Appended: "appended",
	Plural:   "plural",
}

func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", int(f))
	}
	return formNames[f]
}

// Grammar supplies the language-specific pieces of a conversion.
// Implementations must be immutable.
type Grammar interface {
	// Lang returns the BCP 47 code of the language.
	Lang() string
	ZeroWord() string
	NegativeWord() string
	// Conjunction is written verbatim between rendered groups.
	Conjunction() string
	// Joiner separates the components of a synthesized scale name.
	Joiner() string
	// Scales is the default scale table.
	Scales() ScaleTable
	// Group renders one non-zero group together with its scale word.
	Group(c Chunk) string
}

// Ordinaler is implemented by grammars with ordinal forms.
type Ordinaler interface {
	FirstWord() string
	TenthWord() string
	// Ordinal derives the ordinal from a non-empty cardinal rendering.
	Ordinal(cardinal string) string
}

// Chunk is a single non-zero group handed to Grammar.Group.
type Chunk struct {
	Value  int    // 1–999
	Level  int    // 0 = ones, 1 = thousands, ...
	Final  bool   // no non-zero group follows
	Gender Gender // gender of the counted noun; fixed to Masculine above level 0

	scales ScaleTable
	joiner string
}

// Scale returns the scale word for the chunk's level in form f.
// It is empty at level 0.
func (c Chunk) Scale(f Form) string {
	if c.Level == 0 {
		return ""
	}
	return c.scales.Resolve(c.Level, f, c.joiner)
}

// Hundred returns the hundred word of the scale table in form f.
func (c Chunk) Hundred(f Form) string {
	return c.scales.Resolve(0, f, c.joiner)
}
