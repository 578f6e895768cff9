package group

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []int
	}{
		{"0", []int{0}},
		{"000", []int{0}},
		{"1", []int{1}},
		{"12", []int{12}},
		{"123", []int{123}},
		{"1234", []int{234, 1}},
		{"12345", []int{345, 12}},
		{"123456", []int{456, 123}},
		{"1234567", []int{567, 234, 1}},
		{"1000", []int{0, 1}},
		{"100000", []int{0, 100}},
		{"001001", []int{1, 1}},
		{"999999999999", []int{999, 999, 999, 999}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := FromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values(got))
			for i, g := range got {
				assert.Equal(t, i, g.Level)
			}
		})
	}
}

func TestFromStringSyntax(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "-1", "+1", "1,000", "12a", " 1", "١٢", "1.5"} {
		_, err := FromString(in)
		assert.ErrorIs(t, err, ErrSyntax, "FromString(%q)", in)
	}
}

func TestFromUint64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0}, values(FromUint64(0)))
	assert.Equal(t, []int{7}, values(FromUint64(7)))
	assert.Equal(t, []int{0, 1}, values(FromUint64(1000)))
	assert.Equal(t, []int{807, 775, 854, 36, 372, 223, 9}, values(FromUint64(9_223_372_036_854_775_807)))
	assert.Equal(t, []int{615, 551, 709, 73, 744, 446, 18}, values(FromUint64(18_446_744_073_709_551_615)))
}

func TestFromBigInt(t *testing.T) {
	t.Parallel()

	bn, ok := new(big.Int).SetString("9872677829654774585269", 10)
	require.True(t, ok)
	assert.Equal(t, []int{269, 585, 774, 654, 829, 677, 872, 9}, values(FromBigInt(bn)))

	assert.Equal(t, []int{0}, values(FromBigInt(nil)))
	assert.Equal(t, []int{0}, values(FromBigInt(new(big.Int))))
	assert.Equal(t, []int{0, 2}, values(FromBigInt(big.NewInt(-2000))))
}

// TestEntryPointsAgree checks that every constructor yields the same groups.
func TestEntryPointsAgree(t *testing.T) {
	t.Parallel()

	step := big.NewInt(7_113_221_017)
	n := new(big.Int)
	for range 200 {
		s := n.String()
		fromString, err := FromString(s)
		require.NoError(t, err)
		fromBig := FromBigInt(n)
		assert.Equal(t, fromString, fromBig, "value %s", s)
		if n.IsUint64() {
			assert.Equal(t, fromString, FromUint64(n.Uint64()), "value %s", s)
		}
		n.Mul(n, big.NewInt(3))
		n.Add(n, step)
	}

	for _, v := range []uint64{0, 1, 999, 1000, 1001, 999_999, 1_000_000, 10_100_000} {
		fromString, err := FromString(strconv.FormatUint(v, 10))
		require.NoError(t, err)
		assert.Equal(t, fromString, FromUint64(v))
	}
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, IsZero(FromUint64(0)))
	assert.True(t, IsZero([]Group{{0, 0}, {1, 0}}))
	assert.False(t, IsZero(FromUint64(1000)))
}

func TestTrimZeros(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", TrimZeros("0"))
	assert.Equal(t, "0", TrimZeros("0000"))
	assert.Equal(t, "10", TrimZeros("0010"))
	assert.Equal(t, "", TrimZeros(""))
}

func values(groups []Group) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = g.Value
	}
	return out
}

func BenchmarkFromString(b *testing.B) {
	for b.Loop() {
		FromString("9872677829654774585269")
	}
}

func BenchmarkFromBigInt(b *testing.B) {
	bn, _ := new(big.Int).SetString("9872677829654774585269", 10)
	for b.Loop() {
		FromBigInt(bn)
	}
}
