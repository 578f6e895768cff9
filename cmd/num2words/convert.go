package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	goerrors "github.com/goliatone/go-errors"

	"github.com/az-ai-labs/num2words/detect"
	"github.com/az-ai-labs/num2words/internal/config"
	"github.com/az-ai-labs/num2words/langs"
	"github.com/az-ai-labs/num2words/normalize"
	"github.com/az-ai-labs/num2words/numtext"
)

const (
	codeNotNumeric = "NUMBER_NOT_NUMERIC"
	codeOutOfRange = "NUMBER_OUT_OF_RANGE"
	codeConvert    = "NUMBER_CONVERT_FAILED"
)

// result is the outcome for one argument.
type result struct {
	Input    string          `json:"input"`
	Number   string          `json:"number,omitempty"`
	Lang     detect.Language `json:"lang,omitempty"`
	Cardinal string          `json:"cardinal,omitempty"`
	Ordinal  string          `json:"ordinal,omitempty"`
	Error    *failure        `json:"error,omitempty"`
}

type failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// runner converts arguments with converters built lazily per language.
type runner struct {
	cfg        *config.Config
	getenv     func(string) string
	log        *slog.Logger
	converters map[detect.Language]*numtext.Converter
}

func newRunner(cfg *config.Config, getenv func(string) string, log *slog.Logger) *runner {
	return &runner{
		cfg:        cfg,
		getenv:     getenv,
		log:        log,
		converters: make(map[detect.Language]*numtext.Converter),
	}
}

func (r *runner) run(w io.Writer, args []string, jsonMode bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	var failed int
	for _, arg := range args {
		res := r.convert(arg)
		if res.Error != nil {
			failed++
		}
		if jsonMode {
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			continue
		}
		writeText(w, res)
	}
	r.log.Debug("done", "args", len(args), "failed", failed)
	return nil
}

func writeText(w io.Writer, res result) {
	if res.Error != nil {
		fmt.Fprintln(w, res.Error.Message)
		return
	}
	fmt.Fprintln(w, res.Number)
	fmt.Fprintln(w, res.Cardinal)
	if res.Ordinal != "" {
		fmt.Fprintln(w, res.Ordinal)
	}
}

// convert turns one argument into a result; failures are recorded in
// result.Error and logged, never returned.
func (r *runner) convert(arg string) result {
	res := result{Input: arg}

	lang := r.language(arg)
	res.Lang = lang

	err := r.fill(&res, arg, lang)
	if err == nil {
		return res
	}

	var ge *goerrors.Error
	if errors.As(err, &ge) {
		res.Error = &failure{Code: ge.TextCode, Message: ge.Message}
	} else {
		res.Error = &failure{Code: codeConvert, Message: fmt.Sprintf("%s: %v", arg, err)}
	}
	r.log.Warn("argument rejected", "input", arg, "lang", lang.Code(), "code", res.Error.Code, "error", err)
	return res
}

func (r *runner) fill(res *result, arg string, lang detect.Language) error {
	digits, err := normalize.Number(arg)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, arg+": non-numeric argument").
			WithTextCode(codeNotNumeric)
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return goerrors.Wrap(normalize.ErrNotNumeric, goerrors.CategoryValidation, arg+": non-numeric argument").
			WithTextCode(codeNotNumeric)
	}
	res.Number = humanize.BigComma(n)

	c, err := r.converter(lang)
	if err != nil {
		return err
	}

	words, err := c.ConvertString(digits)
	if errors.Is(err, numtext.ErrRange) {
		msg := fmt.Sprintf("%s: number can not be more than %s", res.Number, humanize.BigComma(c.Limit()))
		return goerrors.Wrap(err, goerrors.CategoryValidation, msg).WithTextCode(codeOutOfRange)
	}
	if err != nil {
		return err
	}
	res.Cardinal = words

	if r.cfg.Ordinal && c.HasOrdinals() {
		ord, err := c.OrdinalString(digits)
		if err != nil {
			return err
		}
		res.Ordinal = ord
	}

	r.log.Debug("converted", "input", arg, "lang", lang.Code(), "digits", len(strings.TrimPrefix(digits, "-")))
	return nil
}

// language resolves the configured language for arg. In auto mode the
// script of arg wins, then the locale; English is the fallback.
func (r *runner) language(arg string) detect.Language {
	if !strings.EqualFold(r.cfg.Lang, config.LangAuto) {
		lang, err := langs.Lookup(r.cfg.Lang)
		if err == nil {
			return lang
		}
	}
	if lang := detect.Detect(arg); lang != detect.Unknown {
		return lang
	}
	if lang := detect.FromLocale(r.getenv); lang != detect.Unknown {
		return lang
	}
	return detect.English
}

func (r *runner) converter(lang detect.Language) (*numtext.Converter, error) {
	if c, ok := r.converters[lang]; ok {
		return c, nil
	}

	gender := numtext.Masculine
	if r.cfg.Gender != "" {
		g, err := numtext.ParseGender(r.cfg.Gender)
		if err != nil {
			return nil, err
		}
		gender = g
	}
	opts := langs.Options{
		Scale:  r.cfg.Scale,
		Gender: gender,
		Limit:  r.cfg.Limit(),
	}

	c, err := langs.For(lang, opts)
	if errors.Is(err, langs.ErrUnknownScale) && strings.EqualFold(r.cfg.Lang, config.LangAuto) {
		r.log.Debug("scale not defined for language, using default", "scale", opts.Scale, "lang", lang.Code())
		opts.Scale = ""
		c, err = langs.For(lang, opts)
	}
	if err != nil {
		return nil, err
	}

	r.converters[lang] = c
	return c, nil
}
