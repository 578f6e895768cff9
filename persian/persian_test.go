package persian

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/num2words/numtext"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "صفر"},
		{"three", 3, "سه"},
		{"thirteen", 13, "سیزده"},
		{"twenty-three", 23, "بیست و سه"},
		{"hundred one", 101, "صد و یک"},
		{"four hundred", 400, "چهارصد"},
		{"nine hundred ninety-nine", 999, "نهصد و نود و نه"},
		{"lone thousand", 1000, "هزار"},
		{"thousand one", 1001, "هزار و یک"},
		{"two thousand", 2000, "دو هزار"},
		{"two thousand five hundred", 2500, "دو هزار و پانصد"},
		{"million", 1_000_000, "یک میلیون"},
		{"milliard", 1_000_000_000, "یک میلیارد"},
		{"trillion", 1_000_000_000_000, "یک تریلیون"},
		{"composed", 1_000_000_000_000_000, "یک هزار\u200cتریلیون"},
		{"negative", -7, "منفی هفت"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Convert(tt.input), "Convert(%d)", tt.input)
		})
	}
}

func TestConvertOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input int64
		want  string
	}{
		{1, "اول"},
		{2, "دوم"},
		{3, "سوم"},
		{10, "دهم"},
		{13, "سیزدهم"},
		{23, "بیست و سوم"},
		{30, "سی\u200cام"},
		{101, "صد و یکم"},
		{1000, "هزارم"},
		{0, "صفرم"},
		{-7, "منفی هفتم"},
	}
	for _, tt := range cases {
		assert.Equal(t, tt.want, ConvertOrdinal(tt.input), "ConvertOrdinal(%d)", tt.input)
	}
}

func TestScaleTables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		table  numtext.ScaleTable
		digits string
		want   string
	}{
		{"iran milliard", Iran, "2" + strings.Repeat("000", 3), "دو میلیارد"},
		{"europe billion", Europe, "2" + strings.Repeat("000", 4), "دو بیلیون"},
		{"europe trilliard", Europe, "2" + strings.Repeat("000", 7), "دو تریلیارد"},
		{"us billion", US, "2" + strings.Repeat("000", 3), "دو بیلیون"},
		{"us sextillion", US, "2" + strings.Repeat("000", 7), "دو سکستیلیون"},
		{"us composed", US, "2" + strings.Repeat("000", 8), "دو هزار\u200cسکستیلیون"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := New(numtext.WithScales(tt.table)).ConvertString(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntryPoints(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 3, 1000, 1001, 2_500_000, -30} {
		s, err := ConvertString(big.NewInt(n).String())
		require.NoError(t, err)
		assert.Equal(t, Convert(n), s)
		assert.Equal(t, ConvertBigInt(big.NewInt(n)), s)

		o, err := ConvertOrdinalString(big.NewInt(n).String())
		require.NoError(t, err)
		assert.Equal(t, ConvertOrdinal(n), o)
		assert.Equal(t, ConvertOrdinalBigInt(big.NewInt(n)), o)
	}
}

func TestNoStrayConjunction(t *testing.T) {
	t.Parallel()

	for n := int64(1); n < 1_000_000_000_000; n = n*7 + 13 {
		got := Convert(n)
		assert.False(t, strings.HasPrefix(got, and) || strings.HasSuffix(got, and) || strings.Contains(got, and+and),
			"Convert(%d) = %q", n, got)
	}
}
