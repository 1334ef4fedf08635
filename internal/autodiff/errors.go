package autodiff

import "errors"

// ErrInvalidExponent is returned by Pow when the exponent is NaN or infinite.
var ErrInvalidExponent = errors.New("invalid exponent: must be a finite real number")
