// Command smoketest checks conversion invariants over the golden sample
// and a seeded random set of numbers, for every language concurrently.
//
//	go run ./cmd/smoketest
//	go run ./cmd/smoketest --count 100000 --digits 120 --seed 7
//
// Exits non-zero when any invariant fails.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/num2words/detect"
	"github.com/az-ai-labs/num2words/internal/config"
	"github.com/az-ai-labs/num2words/internal/golden"
	"github.com/az-ai-labs/num2words/internal/logger"
	"github.com/az-ai-labs/num2words/langs"
	"github.com/az-ai-labs/num2words/numtext"
)

const maxReported = 20 // failures printed per language

// conjunctions are the group separators checked for stray placement.
var conjunctions = map[detect.Language]string{
	detect.Arabic:  " و ",
	detect.English: ", ",
	detect.Persian: " و ",
	detect.Tajik:   "у ",
}

type options struct {
	seed   uint64
	count  int
	digits int
	level  string
}

// Stats holds per-language check counts.
type Stats struct {
	mu       sync.Mutex
	checked  map[detect.Language]int
	failures map[detect.Language][]string
}

func (s *Stats) record(lang detect.Language, checked int, failures []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checked[lang] += checked
	s.failures[lang] = append(s.failures[lang], failures...)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "smoketest",
		Short:        "Check conversion invariants across all languages",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.New(config.LogConfig{Level: opts.level, Format: "text"}, cmd.ErrOrStderr())
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.count, "count", 10_000, "random numbers per language")
	cmd.Flags().IntVar(&opts.digits, "digits", 60, "maximum digits of a random number")
	cmd.Flags().StringVar(&opts.level, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts options) error {
	if opts.digits < 1 {
		return fmt.Errorf("digits must be positive (got %d)", opts.digits)
	}

	numbers := append(golden.Sample(), randomNumbers(opts)...)
	stats := &Stats{
		checked:  make(map[detect.Language]int),
		failures: make(map[detect.Language][]string),
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for _, lang := range detect.Languages() {
		c, err := langs.For(lang, langs.Options{})
		if err != nil {
			return err
		}
		g.Go(func() error {
			var failures []string
			for _, n := range numbers {
				if err := ctx.Err(); err != nil {
					return err
				}
				failures = append(failures, check(c, conjunctions[lang], n)...)
			}
			stats.record(lang, len(numbers), failures)
			slog.Debug("language checked", "lang", lang.Code(), "numbers", len(numbers), "failures", len(failures))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("completed", "elapsed", time.Since(start).Round(time.Millisecond))
	return report(out, stats)
}

// randomNumbers returns opts.count digit strings of 1 to opts.digits
// digits, about a tenth of them negative.
func randomNumbers(opts options) []string {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	out := make([]string, 0, opts.count)
	var b strings.Builder
	for range opts.count {
		b.Reset()
		if rng.IntN(10) == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(byte('1' + rng.IntN(9)))
		for range rng.IntN(opts.digits) {
			b.WriteByte(byte('0' + rng.IntN(10)))
		}
		out = append(out, b.String())
	}
	return out
}

// check returns the invariants n violates under c.
func check(c *numtext.Converter, conj, n string) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf("%s: ", n)+fmt.Sprintf(format, args...))
	}

	words, err := c.ConvertString(n)
	if err != nil {
		fail("ConvertString: %v", err)
		return failures
	}

	bn, _ := new(big.Int).SetString(n, 10)
	if got, err := c.ConvertBigInt(bn); err != nil || got != words {
		fail("ConvertBigInt = %q, %v; want %q", got, err, words)
	}
	if bn.IsInt64() {
		if got, err := c.ConvertInt(bn.Int64()); err != nil || got != words {
			fail("ConvertInt = %q, %v; want %q", got, err, words)
		}
	}

	switch {
	case words == "":
		fail("empty rendering")
	case words != strings.TrimSpace(words):
		fail("surrounding space in %q", words)
	case strings.Contains(words, "  "):
		fail("double space in %q", words)
	case strings.HasPrefix(words, conj) || strings.HasSuffix(words, conj):
		fail("stray conjunction in %q", words)
	case strings.Contains(words, conj+conj):
		fail("double conjunction in %q", words)
	}

	if bn.Sign() < 0 {
		pos, err := c.ConvertBigInt(new(big.Int).Neg(bn))
		if err != nil || !strings.HasSuffix(words, " "+pos) {
			fail("negative %q does not end with %q", words, pos)
		}
	}

	if c.HasOrdinals() {
		ord, err := c.OrdinalString(n)
		switch {
		case err != nil:
			fail("OrdinalString: %v", err)
		case ord == "":
			fail("empty ordinal")
		case ord == words && bn.Sign() != 0:
			fail("ordinal equals cardinal %q", words)
		}
	}
	return failures
}

func report(out io.Writer, stats *Stats) error {
	var total int
	for _, lang := range detect.Languages() {
		failures := stats.failures[lang]
		total += len(failures)
		fmt.Fprintf(out, "%-8s checked %7d  failures %d\n", lang, stats.checked[lang], len(failures))
		for i, f := range failures {
			if i == maxReported {
				fmt.Fprintf(out, "  ... %d more\n", len(failures)-maxReported)
				break
			}
			fmt.Fprintf(out, "  %s\n", f)
		}
	}
	if total > 0 {
		return fmt.Errorf("%d invariant failures", total)
	}
	return nil
}
