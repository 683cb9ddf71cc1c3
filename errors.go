package num

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package. Every returned
// error also matches one of the sentinels below with errors.Is.
var Error = errs.Class("num")

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrSize           = errors.New("size exceeded")
	ErrInvalidString  = errors.New("invalid string")
)

// errorf builds an error in the Error class that wraps kind.
func errorf(kind error, format string, args ...any) error {
	return Error.Wrap(fmt.Errorf("%w: "+format, append([]any{kind}, args...)...))
}
