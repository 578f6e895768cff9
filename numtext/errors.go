package numtext

import (
	"errors"
	"strconv"
)

var (
	// ErrRange reports a value whose magnitude exceeds the converter's limit.
	ErrRange = errors.New("value out of range")
	// ErrSyntax reports a string that is not an optionally signed run of ASCII digits.
	ErrSyntax = errors.New("invalid syntax")
	// ErrType reports a value of a type Convert does not accept.
	ErrType = errors.New("unsupported type")
	// ErrNoOrdinal reports an ordinal request to a grammar without ordinals.
	ErrNoOrdinal = errors.New("ordinals not supported")
)

// NumError records a failed conversion.
type NumError struct {
	Func string // the failing method (ConvertInt, OrdinalString, ...)
	Num  string // the input
	Err  error  // the reason
}

func (e *NumError) Error() string {
	return "numtext." + e.Func + " " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func numError(fn, num string, err error) error {
	return &NumError{Func: fn, Num: num, Err: err}
}
