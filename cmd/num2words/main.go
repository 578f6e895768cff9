// Command num2words prints numbers as words.
//
//	num2words 1,234,567
//	num2words --lang fa ۱۲۳ 1000000
//	num2words --lang en --scale short --json 1000000000000
//
// Each argument is converted independently: a non-numeric or out-of-range
// argument is reported and the remaining arguments are still converted.
// Defaults come from the environment (NUM2WORDS_*, LOG_*) and the optional
// YAML file named by NUM2WORDS_CONFIG; flags override both.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/num2words/internal/config"
	"github.com/az-ai-labs/num2words/internal/logger"
	"github.com/az-ai-labs/num2words/langs"
)

func main() {
	if err := newRootCommand(os.Getenv, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the command. getenv supplies the locale for
// --lang auto; logs go to logw.
func newRootCommand(getenv func(string) string, logw io.Writer) *cobra.Command {
	var (
		cfg      *config.Config
		log      *slog.Logger
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "num2words [flags] NUMBER...",
		Short: "Spell out numbers in Arabic, English, Persian or Tajik",
		Long: "Spell out numbers in Arabic, English, Persian or Tajik.\n\n" +
			"Arguments may use ASCII, Persian or Arabic-Indic digits and may be\n" +
			"grouped with commas, underscores or spaces.\n\n" +
			"Environment:\n" + config.Usage(),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, loaded); err != nil {
				return err
			}
			cfg = loaded
			log = logger.New(cfg.Log, logw)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRunner(cfg, getenv, log)
			return r.run(cmd.OutOrStdout(), args, jsonMode)
		},
	}

	flags := cmd.Flags()
	flags.String("lang", config.LangAuto, fmt.Sprintf("language: auto or one of %v", langs.Codes()))
	flags.String("scale", "", "named scale table (fa: iran, europe, us; en: classic, short)")
	flags.String("gender", "masculine", "gender of the ones group: masculine or feminine")
	flags.String("max", "", "largest magnitude accepted; empty means unbounded")
	flags.Bool("ordinal", true, "also print the ordinal")
	flags.BoolVar(&jsonMode, "json", false, "print one JSON object per argument")

	cmd.AddCommand(newLangsCommand())
	return cmd
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"lang":   &cfg.Lang,
		"scale":  &cfg.Scale,
		"gender": &cfg.Gender,
		"max":    &cfg.Max,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if flags.Changed("ordinal") {
		v, err := flags.GetBool("ordinal")
		if err != nil {
			return err
		}
		cfg.Ordinal = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func newLangsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List supported languages and their scale tables",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, code := range langs.Codes() {
				lang, err := langs.Lookup(code)
				if err != nil {
					return err
				}
				scales, err := langs.Scales(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%v\n", code, lang, scales)
			}
			return nil
		},
	}
}
