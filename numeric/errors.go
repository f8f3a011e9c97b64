package numeric

import "errors"

var (
	// ErrNotNatural indicates a string that does not parse as an unsigned
	// decimal integer (signs, fractions and garbage all land here).
	ErrNotNatural = errors.New("numeric: value is not a natural number")
)
