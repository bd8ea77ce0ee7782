package units

import "github.com/cockroachdb/errors"

// Errors returned while parsing and converting quantities. Returned errors
// carry their own message and are marked with one of these; test with
// errors.Is.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrMalformedInput  = errors.New("malformed input")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidUnit     = errors.New("invalid unit")
	ErrOverflow        = errors.New("overflow")
)

// IsInputError reports whether err was caused by bad caller input rather
// than a failure inside the program.
func IsInputError(err error) bool {
	return errors.IsAny(err,
		ErrMissingArgument,
		ErrMalformedInput,
		ErrInvalidQuantity,
		ErrInvalidUnit,
		ErrOverflow,
	)
}
