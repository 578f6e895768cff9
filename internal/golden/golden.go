// Package golden reads and writes golden conversion files and enumerates
// the fixed sample of numbers they cover.
//
// A golden file is a gzip stream of UTF-8 lines, one record per line:
//
//	<digits>\t<words>\n
//
// where digits is the canonical base-10 form of a non-negative integer.
package golden

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"strings"
)

// Record is one golden line.
type Record struct {
	Digits string
	Words  string
}

// maxLine bounds a single record; the longest renderings are a few KB.
const maxLine = 1 << 20

// Read decodes every record from a gzip-compressed golden stream.
func Read(r io.Reader) ([]Record, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("golden: open gzip: %w", err)
	}
	defer zr.Close()

	sc := bufio.NewScanner(zr)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var records []Record
	for line := 1; sc.Scan(); line++ {
		digits, words, ok := strings.Cut(sc.Text(), "\t")
		if !ok || digits == "" {
			return nil, fmt.Errorf("golden: line %d: malformed record %q", line, sc.Text())
		}
		records = append(records, Record{Digits: digits, Words: words})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("golden: read: %w", err)
	}
	return records, nil
}

// Open reads the golden file name from fsys.
func Open(fsys fs.FS, name string) ([]Record, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("golden: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return records, nil
}

// Write encodes records as a gzip-compressed golden stream.
// Nothing is written when a record contains a separator.
func Write(w io.Writer, records []Record) error {
	for _, rec := range records {
		if strings.ContainsAny(rec.Digits, "\t\n") || strings.Contains(rec.Words, "\n") {
			return fmt.Errorf("golden: record %q contains a separator", rec.Digits)
		}
	}

	zw := gzip.NewWriter(w)
	bw := bufio.NewWriter(zw)
	for _, rec := range records {
		bw.WriteString(rec.Digits)
		bw.WriteByte('\t')
		bw.WriteString(rec.Words)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("golden: write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("golden: close gzip: %w", err)
	}
	return nil
}

// span is a half-open range walked with a fixed stride.
type span struct {
	from, to, step int64
}

// spans are prime-ish strides, so every group shape is hit without
// enumerating whole ranges. The 71_171 and 7_113_221 strides start a decade
// early; the bounds match the golden files first published, so the sample
// must not be "tidied".
var spans = []span{
	{0, 100, 1},
	{100, 1_000, 7},
	{1_000, 10_000, 71},
	{10_000, 100_000, 719},
	{100_000, 10_000_000, 71_171},
	{10_000_000, 100_000_000, 711_121},
	{10_000_000, 1_000_000_000, 7_113_221},
	{10_000_000, 10_100_000, 71},
}

// repeaters multiply a four-digit seed into numbers whose groups repeat.
var repeaters = []string{
	"1001001",
	"1001001001",
	"1001001001001",
	"1001001001001001",
}

// Max is the largest value in the sample.
const Max = "999999999999"

// Sample returns the fixed, deterministic list of numbers covered by golden
// files, as canonical digit strings in generation order.
func Sample() []string {
	var out []string
	for _, s := range spans {
		for n := s.from; n < s.to; n += s.step {
			out = append(out, fmt.Sprint(n))
		}
	}

	seed := new(big.Int)
	prod := new(big.Int)
	for _, r := range repeaters {
		mul, _ := new(big.Int).SetString(r, 10)
		for n := int64(1_000); n < 10_000; n += 71 {
			seed.SetInt64(n)
			out = append(out, prod.Mul(seed, mul).String())
		}
	}

	return append(out, Max)
}
