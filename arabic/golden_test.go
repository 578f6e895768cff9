package arabic

import (
	"flag"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/az-ai-labs/num2words/data"
	"github.com/az-ai-labs/num2words/internal/golden"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

const goldenDir = "../data/golden"

func TestGolden(t *testing.T) {
	if *updateGolden {
		writeGolden(t, "arabic.gz", ConvertString)
		writeGolden(t, "arabic-ordinal.gz", ConvertOrdinalString)
		return
	}

	t.Run("cardinal", func(t *testing.T) {
		t.Parallel()
		checkGolden(t, "arabic.gz", ConvertString, ConvertBigInt)
	})
	t.Run("ordinal", func(t *testing.T) {
		t.Parallel()
		checkGolden(t, "arabic-ordinal.gz", ConvertOrdinalString, ConvertOrdinalBigInt)
	})
}

func checkGolden(t *testing.T, name string, fromString func(string) (string, error), fromBig func(*big.Int) string) {
	t.Helper()

	records, err := golden.Open(data.Golden(), name)
	if err != nil {
		t.Fatalf("loading golden file: %v", err)
	}
	if len(records) != len(golden.Sample()) {
		t.Errorf("%s has %d records, sample has %d; run with -update", name, len(records), len(golden.Sample()))
	}

	for _, rec := range records {
		got, err := fromString(rec.Digits)
		if err != nil {
			t.Errorf("%s: error: %v", rec.Digits, err)
			continue
		}
		if got != rec.Words {
			t.Errorf("%s: string = %q, want %q", rec.Digits, got, rec.Words)
		}

		bn, ok := new(big.Int).SetString(rec.Digits, 10)
		if !ok {
			t.Fatalf("%s: not a number", rec.Digits)
		}
		if got := fromBig(bn); got != rec.Words {
			t.Errorf("%s: big.Int = %q, want %q", rec.Digits, got, rec.Words)
		}
	}
}

func writeGolden(t *testing.T, name string, convert func(string) (string, error)) {
	t.Helper()

	sample := golden.Sample()
	records := make([]golden.Record, 0, len(sample))
	for _, digits := range sample {
		words, err := convert(digits)
		if err != nil {
			t.Fatalf("%s: %v", digits, err)
		}
		records = append(records, golden.Record{Digits: digits, Words: words})
	}

	f, err := os.Create(filepath.Join(goldenDir, name))
	if err != nil {
		t.Fatalf("creating golden file: %v", err)
	}
	defer f.Close()
	if err := golden.Write(f, records); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Logf("golden file updated, review with: git diff data/golden/%s", name)
}
