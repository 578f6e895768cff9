// Input handling: sign splitting, digit strings and limit checks.
package numtext

import (
	"math/big"

	"github.com/az-ai-labs/num2words/internal/group"
)

// parse splits an optionally signed digit string into groups and checks
// it against the converter's limit.
func (c *Converter) parse(s string) (neg bool, groups []group.Group, err error) {
	digits := s
	if digits != "" && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	groups, err = group.FromString(digits)
	if err != nil {
		return false, nil, ErrSyntax
	}
	if err := c.checkDigits(group.TrimZeros(digits)); err != nil {
		return false, nil, err
	}
	return neg, groups, nil
}

// checkDigits compares a canonical digit string against the limit by
// length, then lexically.
func (c *Converter) checkDigits(digits string) error {
	if c.limit == nil {
		return nil
	}
	limit := c.limit.String()
	if len(digits) > len(limit) || (len(digits) == len(limit) && digits > limit) {
		return ErrRange
	}
	return nil
}

func (c *Converter) checkUint(n uint64) error {
	if c.limit == nil || !c.limit.IsUint64() {
		return nil
	}
	if n > c.limit.Uint64() {
		return ErrRange
	}
	return nil
}

func (c *Converter) checkBig(n *big.Int) error {
	if c.limit == nil || n == nil {
		return nil
	}
	if n.CmpAbs(c.limit) > 0 {
		return ErrRange
	}
	return nil
}

// splitInt returns the sign and magnitude of n. It handles math.MinInt64.
func splitInt(n int64) (bool, uint64) {
	if n < 0 {
		return true, uint64(-(n + 1)) + 1
	}
	return false, uint64(n)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}
