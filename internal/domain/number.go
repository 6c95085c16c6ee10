package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError is returned when free text is not an integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as an integer: %s", e.Input, cause(e.Err))
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseNumber parses text as a base-10 integer in the int32 range.
// The text is taken as is: surrounding whitespace, decimals and out-of-range
// values are all a *ParseError.
func ParseNumber(text string) (int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, &ParseError{Input: text, Err: err}
	}
	return int(n), nil
}

// cause strips strconv's "strconv.ParseInt: parsing ..." prefix down to the reason.
func cause(err error) string {
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		return err.Error()
	}
	switch {
	case errors.Is(numErr.Err, strconv.ErrSyntax):
		if numErr.Num == "" {
			return "cannot parse integer from empty string"
		}
		return "invalid digit found in string"
	case errors.Is(numErr.Err, strconv.ErrRange):
		if strings.HasPrefix(numErr.Num, "-") {
			return "number too small to fit in target type"
		}
		return "number too large to fit in target type"
	default:
		return numErr.Err.Error()
	}
}
