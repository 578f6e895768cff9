// Package langs maps language codes to configured converters.
//
// Languages are looked up by ISO 639-1 code, English name or BCP 47 tag
// ("fa", "Persian", "fa-IR"). Each language has a default scale table and,
// for Persian and English, alternative named tables.
package langs

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/az-ai-labs/num2words/arabic"
	"github.com/az-ai-labs/num2words/detect"
	"github.com/az-ai-labs/num2words/english"
	"github.com/az-ai-labs/num2words/numtext"
	"github.com/az-ai-labs/num2words/persian"
	"github.com/az-ai-labs/num2words/tajik"
)

var (
	// ErrUnknownLanguage reports a code that names no supported language.
	ErrUnknownLanguage = errors.New("langs: unknown language")
	// ErrUnknownScale reports a scale name the language does not define.
	ErrUnknownScale = errors.New("langs: unknown scale")
)

// Options select how a converter is built. The zero value gives the
// language defaults.
type Options struct {
	Scale  string         // named scale table; "" selects the default
	Gender numtext.Gender // gender of the ones group
	Limit  *big.Int       // inclusive bound on |n|; nil means unbounded
}

type entry struct {
	newFunc func(...numtext.Option) *numtext.Converter
	scales  map[string]numtext.ScaleTable
	def     string
}

var registry = map[detect.Language]entry{
	detect.Arabic: {
		newFunc: arabic.New,
		scales:  map[string]numtext.ScaleTable{"default": arabic.Scales},
		def:     "default",
	},
	detect.English: {
		newFunc: english.New,
		scales: map[string]numtext.ScaleTable{
			"classic": english.Classic,
			"short":   english.ShortScale,
		},
		def: "classic",
	},
	detect.Persian: {
		newFunc: persian.New,
		scales: map[string]numtext.ScaleTable{
			"iran":   persian.Iran,
			"europe": persian.Europe,
			"us":     persian.US,
		},
		def: "iran",
	},
	detect.Tajik: {
		newFunc: tajik.New,
		scales:  map[string]numtext.ScaleTable{"default": tajik.Scales},
		def:     "default",
	},
}

// Codes returns the ISO 639-1 codes of the supported languages, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for lang := range registry {
		codes = append(codes, lang.Code())
	}
	slices.Sort(codes)
	return codes
}

// Lookup resolves code to a supported language.
func Lookup(code string) (detect.Language, error) {
	lang, err := detect.Parse(code)
	if err != nil {
		return detect.Unknown, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	if _, ok := registry[lang]; !ok {
		return detect.Unknown, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return lang, nil
}

// Scales returns the scale table names defined for code, sorted, with the
// default first.
func Scales(code string) ([]string, error) {
	lang, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	e := registry[lang]
	names := make([]string, 0, len(e.scales))
	for name := range e.scales {
		if name != e.def {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return append([]string{e.def}, names...), nil
}

// New returns a converter for code configured by opts.
func New(code string, opts Options) (*numtext.Converter, error) {
	lang, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	return For(lang, opts)
}

// For returns a converter for lang configured by opts.
func For(lang detect.Language, opts Options) (*numtext.Converter, error) {
	e, ok := registry[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}

	name := strings.ToLower(strings.TrimSpace(opts.Scale))
	if name == "" {
		name = e.def
	}
	table, ok := e.scales[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownScale, opts.Scale, lang)
	}

	return e.newFunc(
		numtext.WithScales(table),
		numtext.WithGender(opts.Gender),
		numtext.WithLimit(opts.Limit),
	), nil
}
