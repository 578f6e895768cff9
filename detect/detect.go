// Package detect picks the output language for a number.
//
// Two sources are consulted:
//
//   - Detect inspects the script of the argument itself: Extended
//     Arabic-Indic digits or Persian letters mean Persian, Arabic-Indic
//     digits or Arabic letters mean Arabic, Tajik Cyrillic letters mean
//     Tajik and Latin letters mean English.
//   - FromLocale reads the POSIX locale variables (LC_ALL, LC_MESSAGES,
//     LANG) and matches them against the supported languages.
//
// Plain ASCII digits carry no script and detect as Unknown.
//
// All functions are safe for concurrent use by multiple goroutines.
package detect

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// Language identifies one of the supported output languages.
type Language int

const (
	Unknown Language = iota // zero value, nothing detected
	Arabic
	English
	Persian
	Tajik
)

var languageNames = [...]string{
	Unknown: "Unknown",
	Arabic:  "Arabic",
	English: "English",
	Persian: "Persian",
	Tajik:   "Tajik",
}

// languageCodes maps Language values to ISO 639-1 codes.
var languageCodes = [...]string{
	Unknown: "",
	Arabic:  "ar",
	English: "en",
	Persian: "fa",
	Tajik:   "tg",
}

// supported is indexed by Language; the first entry is the matcher default.
var supported = []language.Tag{
	Unknown: language.Und,
	Arabic:  language.Arabic,
	English: language.English,
	Persian: language.Persian,
	Tajik:   language.MustParse("tg"),
}

var matcher = language.NewMatcher(supported)

// Languages lists the supported languages, excluding Unknown.
func Languages() []Language {
	return []Language{Arabic, English, Persian, Tajik}
}

// String returns the English name of the language.
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Code returns the ISO 639-1 code, or "" for Unknown.
func (l Language) Code() string {
	if int(l) >= 0 && int(l) < len(languageCodes) {
		return languageCodes[l]
	}
	return ""
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if int(l) >= 0 && int(l) < len(supported) {
		return supported[l]
	}
	return language.Und
}

// MarshalJSON encodes the language as its ISO 639-1 code (e.g. "fa").
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Code())
}

// UnmarshalJSON accepts a code or a name (e.g. "fa" or "Persian").
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*l = Unknown
		return nil
	}
	lang, err := Parse(s)
	if err != nil {
		return err
	}
	*l = lang
	return nil
}

// Parse resolves a language name ("persian"), code ("fa") or BCP 47 tag
// ("fa-IR", "ar-EG") to a Language.
func Parse(s string) (Language, error) {
	for i, name := range languageNames {
		if i != int(Unknown) && strings.EqualFold(s, name) {
			return Language(i), nil
		}
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Unknown, fmt.Errorf("detect: unknown language %q: %w", s, err)
	}
	if lang := FromTag(tag); lang != Unknown {
		return lang, nil
	}
	return Unknown, fmt.Errorf("detect: unsupported language %q", s)
}

// FromTag matches tag against the supported languages.
func FromTag(tag language.Tag) Language {
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return Unknown
	}
	return Language(i)
}

// localeVars are consulted in POSIX precedence order.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// FromLocale returns the language of the first set locale variable, read
// through getenv (usually os.Getenv). Values such as "fa_IR.UTF-8" and
// "tg_TJ@cyrillic" are accepted; "C" and "POSIX" yield Unknown.
func FromLocale(getenv func(string) string) Language {
	for _, key := range localeVars {
		v := getenv(key)
		if v == "" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "C" || v == "POSIX" {
			return Unknown
		}
		tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			return Unknown
		}
		return FromTag(tag)
	}
	return Unknown
}

// Letters specific to Persian (not used in Arabic) and to Tajik Cyrillic.
const (
	persianLetters = "پچژگکی"
	tajikLetters   = "ҳҷӣӯқғҲҶӢӮҚҒ"
)

// Detect guesses the language from the scripts used in s.
// Persian evidence wins over Arabic, since Persian text is written in
// Arabic script.
func Detect(s string) Language {
	var fa, ar, tg, cyrl, latn int
	for _, r := range s {
		switch {
		case r >= '۰' && r <= '۹':
			fa++
		case r >= '٠' && r <= '٩':
			ar++
		case strings.ContainsRune(persianLetters, r):
			fa++
		case unicode.Is(unicode.Arabic, r) && unicode.IsLetter(r):
			ar++
		case strings.ContainsRune(tajikLetters, r):
			tg++
		case unicode.Is(unicode.Cyrillic, r):
			cyrl++
		case unicode.Is(unicode.Latin, r):
			latn++
		}
	}

	switch {
	case fa > 0:
		return Persian
	case ar > 0:
		return Arabic
	case tg > 0 || cyrl > 0:
		return Tajik
	case latn > 0:
		return English
	}
	return Unknown
}
