package tajik

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "сифр"},
		{"three", 3, "се"},
		{"twenty-three", 23, "бисту се"},
		{"thirty", 30, "сӣ"},
		{"thirty-four", 34, "сию чор"},
		{"hundred one", 101, "саду як"},
		{"hundred twenty-one", 121, "саду бисту як"},
		{"four hundred", 400, "чорсад"},
		{"nine hundred ninety-nine", 999, "нӯҳсаду наваду нӯҳ"},
		{"lone thousand", 1000, "ҳазор"},
		{"thousand one", 1001, "ҳазору як"},
		{"two thousand five hundred", 2500, "ду ҳазору панҷсад"},
		{"million", 1_000_000, "як миллион"},
		{"composed", 1_000_000_000_000_000, "як ҳазор триллион"},
		{"negative", -7, "манфӣ ҳафт"},
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
		{1, "якум"},
		{2, "дуюм"},
		{3, "севум"},
		{10, "даҳум"},
		{23, "бисту севум"},
		{30, "сиюм"},
		{40, "чилюм"},
		{101, "саду якум"},
		{1000, "ҳазорюм"},
		{2000, "ду ҳазорюм"},
		{4, "чорюм"},
		{0, "сифрюм"},
		{-7, "манфӣ ҳафтюм"},
	}
	for _, tt := range cases {
		assert.Equal(t, tt.want, ConvertOrdinal(tt.input), "ConvertOrdinal(%d)", tt.input)
	}
}

func TestEntryPoints(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 3, 1000, 1001, 34_034, -30} {
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
