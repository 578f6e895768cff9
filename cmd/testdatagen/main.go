// Command testdatagen regenerates the golden conversion files.
//
// Run from the repository root:
//
//	go run ./cmd/testdatagen
//	go run ./cmd/testdatagen --lang fa --lang tg --out /tmp/golden
//
// Output: data/golden/<language>.gz and data/golden/<language>-ordinal.gz
// (commit these files). Regenerate after changing a grammar and review the
// diff of the decompressed files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/num2words/detect"
	"github.com/az-ai-labs/num2words/internal/config"
	"github.com/az-ai-labs/num2words/internal/golden"
	"github.com/az-ai-labs/num2words/internal/logger"
	"github.com/az-ai-labs/num2words/langs"
)

const defaultOutput = "data/golden"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		outDir string
		codes  []string
		level  string
	)

	cmd := &cobra.Command{
		Use:          "testdatagen",
		Short:        "Write golden conversion files for the fixed number sample",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.New(config.LogConfig{Level: level, Format: "text"}, cmd.ErrOrStderr())

			languages, err := resolve(codes)
			if err != nil {
				return err
			}
			return generate(cmd.Context(), outDir, languages)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", defaultOutput, "output directory")
	cmd.Flags().StringSliceVarP(&codes, "lang", "l", nil, "languages to generate (default all)")
	cmd.Flags().StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

func resolve(codes []string) ([]detect.Language, error) {
	if len(codes) == 0 {
		codes = langs.Codes()
	}
	out := make([]detect.Language, 0, len(codes))
	for _, code := range codes {
		lang, err := langs.Lookup(code)
		if err != nil {
			return nil, err
		}
		out = append(out, lang)
	}
	return out, nil
}

// fileName returns the golden file base name for lang, e.g. "persian".
func fileName(lang detect.Language) string {
	return strings.ToLower(lang.String())
}

// generate writes the cardinal and ordinal files of every language
// concurrently.
func generate(ctx context.Context, dir string, languages []detect.Language) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	sample := golden.Sample()
	g, ctx := errgroup.WithContext(ctx)

	for _, lang := range languages {
		c, err := langs.For(lang, langs.Options{})
		if err != nil {
			return err
		}
		base := filepath.Join(dir, fileName(lang))

		g.Go(func() error {
			return writeFile(ctx, base+".gz", sample, c.ConvertString)
		})
		if c.HasOrdinals() {
			g.Go(func() error {
				return writeFile(ctx, base+"-ordinal.gz", sample, c.OrdinalString)
			})
		}
	}

	return g.Wait()
}

func writeFile(ctx context.Context, path string, sample []string, convert func(string) (string, error)) error {
	records := make([]golden.Record, 0, len(sample))
	for _, digits := range sample {
		if err := ctx.Err(); err != nil {
			return err
		}
		words, err := convert(digits)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, golden.Record{Digits: digits, Words: words})
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := golden.Write(f, records); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}

	slog.Info("wrote golden file", "path", path, "records", len(records))
	return nil
}
