// Package group splits non-negative integers into base-1000 groups.
//
// Groups are returned least significant first: the group at index i holds
// the digits for 1000^i and has Level i. Zero produces a single group
// {Level: 0, Value: 0}, never an empty slice.
//
// FromString, FromUint64 and FromBigInt return identical sequences for the
// same numeric value.
package group

import (
	"errors"
	"math/big"
)

// ErrSyntax is returned when a digit string is empty or holds a non-digit.
var ErrSyntax = errors.New("invalid digit string")

// Group is one base-1000 chunk of a number.
type Group struct {
	Level int // 0 = ones, 1 = thousands, 2 = millions, ...
	Value int // 0–999
}

var bigThousand = big.NewInt(1000)

// FromString splits a base-10 digit string into groups.
// Leading zeros are ignored. The string must not carry a sign.
func FromString(s string) ([]Group, error) {
	if s == "" {
		return nil, ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, ErrSyntax
		}
	}
	s = TrimZeros(s)

	n := len(s)
	full, rest := n/3, n%3
	groups := make([]Group, 0, full+1)
	for i := range full {
		end := n - 3*i
		groups = append(groups, Group{Level: i, Value: atoi(s[end-3 : end])})
	}
	if rest > 0 {
		groups = append(groups, Group{Level: full, Value: atoi(s[:rest])})
	}
	return groups, nil
}

// FromUint64 splits n into groups.
func FromUint64(n uint64) []Group {
	if n == 0 {
		return []Group{{}}
	}
	groups := make([]Group, 0, 7)
	for level := 0; n > 0; level++ {
		groups = append(groups, Group{Level: level, Value: int(n % 1000)})
		n /= 1000
	}
	return groups
}

// FromBigInt splits the absolute value of n into groups.
// A nil n is treated as zero.
func FromBigInt(n *big.Int) []Group {
	if n == nil || n.Sign() == 0 {
		return []Group{{}}
	}
	if n.IsUint64() {
		return FromUint64(n.Uint64())
	}

	q := new(big.Int).Abs(n)
	m := new(big.Int)
	groups := make([]Group, 0, len(q.Bits())*7)
	for level := 0; q.Sign() > 0; level++ {
		q.QuoRem(q, bigThousand, m)
		groups = append(groups, Group{Level: level, Value: int(m.Int64())})
	}
	return groups
}

// IsZero reports whether every group is zero.
func IsZero(groups []Group) bool {
	for _, g := range groups {
		if g.Value != 0 {
			return false
		}
	}
	return true
}

// TrimZeros drops leading '0' bytes from a digit string, keeping at least one.
func TrimZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// atoi parses at most three ASCII digits. Callers validate the input.
func atoi(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}
