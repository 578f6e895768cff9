package english

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/az-ai-labs/num2words/numtext"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "Zero"},
		{"one", 1, "One"},
		{"nineteen", 19, "Nineteen"},
		{"twenty", 20, "Twenty"},
		{"twenty-one", 21, "Twenty One"},
		{"hundred", 100, "One Hundred"},
		{"hundred ten", 110, "One Hundred Ten"},
		{"nine hundred ninety-nine", 999, "Nine Hundred Ninety Nine"},
		{"thousand", 1000, "One Thousand"},
		{"thousand one", 1001, "One Thousand, One"},
		{"million three", 2_000_003, "Two Million, Three"},
		{"billion", 1_000_000_000, "One Billion"},
		{"max classic", 999_999_999_999, "Nine Hundred Ninety Nine Billion, Nine Hundred Ninety Nine Million, " +
			"Nine Hundred Ninety Nine Thousand, Nine Hundred Ninety Nine"},
		{"composed trillion", 1_000_000_000_000, "One Thousand Billion"},
		{"composed quintillion", 1_000_000_000_000_000_000, "One Billion Billion"},
		{"negative", -42, "Negative Forty Two"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Convert(tt.input); got != tt.want {
				t.Errorf("Convert(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input int64
		want  string
	}{
		{0, "Zeroth"},
		{1, "First"},
		{2, "Second"},
		{3, "Third"},
		{4, "Fourth"},
		{5, "Fifth"},
		{8, "Eighth"},
		{9, "Ninth"},
		{10, "Tenth"},
		{11, "Eleventh"},
		{12, "Twelfth"},
		{20, "Twentieth"},
		{21, "Twenty First"},
		{99, "Ninety Ninth"},
		{100, "One Hundredth"},
		{101, "One Hundred First"},
		{1000, "One Thousandth"},
		{1002, "One Thousand, Second"},
		{-3, "Negative Third"},
	}

	for _, tt := range cases {
		if got := ConvertOrdinal(tt.input); got != tt.want {
			t.Errorf("ConvertOrdinal(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestShortScale(t *testing.T) {
	t.Parallel()

	c := New(numtext.WithScales(ShortScale))

	cases := []struct {
		input string
		want  string
	}{
		{"1000000000000", "One Trillion"},
		{"7" + strings.Repeat("000", 11), "Seven Decillion"},
		{"1" + strings.Repeat("000", 12), "One Thousand Decillion"},
		{"2" + strings.Repeat("000", 22), "Two Decillion Decillion"},
	}
	for _, tt := range cases {
		got, err := c.ConvertString(tt.input)
		if err != nil {
			t.Fatalf("ConvertString(%s) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ConvertString(%s) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClassicLimit(t *testing.T) {
	t.Parallel()

	c := New(numtext.WithLimit(ClassicLimit()))

	if _, err := c.ConvertInt(999_999_999_999); err != nil {
		t.Errorf("ConvertInt(max) error: %v", err)
	}
	if _, err := c.ConvertInt(1_000_000_000_000); !errors.Is(err, numtext.ErrRange) {
		t.Errorf("ConvertInt(max+1) error = %v, want ErrRange", err)
	}
	if _, err := c.ConvertString("1000000000000"); !errors.Is(err, numtext.ErrRange) {
		t.Errorf("ConvertString(max+1) error = %v, want ErrRange", err)
	}
}

func TestEntryPoints(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 7, 1001, 71_171_000, math.MaxInt64, -1_000_001} {
		s, err := ConvertString(big.NewInt(n).String())
		if err != nil {
			t.Fatalf("ConvertString(%d) error: %v", n, err)
		}
		if s != Convert(n) || s != ConvertBigInt(big.NewInt(n)) {
			t.Errorf("entry points disagree for %d", n)
		}

		o, err := ConvertOrdinalString(big.NewInt(n).String())
		if err != nil {
			t.Fatalf("ConvertOrdinalString(%d) error: %v", n, err)
		}
		if o != ConvertOrdinal(n) || o != ConvertOrdinalBigInt(big.NewInt(n)) {
			t.Errorf("ordinal entry points disagree for %d", n)
		}
	}

	if _, err := ConvertString("12x"); !errors.Is(err, numtext.ErrSyntax) {
		t.Errorf("ConvertString(12x) error = %v, want ErrSyntax", err)
	}
}

func BenchmarkConvert(b *testing.B) {
	for b.Loop() {
		Convert(999_999_999_999)
	}
}
