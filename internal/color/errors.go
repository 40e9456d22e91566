package color

import "github.com/pkg/errors"

// Validation failures returned by Resolve. They are always wrapped with the
// offending input, so compare with errors.Is.
var (
	ErrEmptyInput  = errors.New("empty color input")
	ErrInvalidHex  = errors.New("invalid hex color")
	ErrUnknownName = errors.New("unknown color name")
)

// IsValidation returns true if err is one of the validation failures above.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidHex) ||
		errors.Is(err, ErrUnknownName)
}
