package config

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/az-ai-labs/num2words/langs"
	"github.com/az-ai-labs/num2words/numtext"
)

// LangAuto selects the language from the argument script and the locale.
const LangAuto = "auto"

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically; commands call it again after applying flags.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Lang, validation.Required, validation.By(validLang)),
		validation.Field(&c.Scale, validation.By(c.validScale)),
		validation.Field(&c.Gender, validation.By(validGender)),
		validation.Field(&c.Max, validation.Match(digitsRe).Error("must be a non-negative integer")),
		validation.Field(&c.Log),
	)
}

// Validate checks the level and format names.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.Format, validation.In("json", "text")),
	)
}

func validLang(value any) error {
	s, _ := value.(string)
	if strings.EqualFold(s, LangAuto) {
		return nil
	}
	if _, err := langs.Lookup(s); err != nil {
		return errors.New("must be auto or one of " + strings.Join(langs.Codes(), ", "))
	}
	return nil
}

func (c *Config) validScale(value any) error {
	s, _ := value.(string)
	if s == "" || strings.EqualFold(c.Lang, LangAuto) {
		return nil
	}
	names, err := langs.Scales(c.Lang)
	if err != nil {
		// reported on Lang
		return nil
	}
	for _, name := range names {
		if strings.EqualFold(s, name) {
			return nil
		}
	}
	return errors.New("must be one of " + strings.Join(names, ", "))
}

func validGender(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := numtext.ParseGender(s)
	return err
}
