package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrUnsupportedDType   = errors.New("unsupported dtype")
	ErrUnsupportedShape   = errors.New("only scalar entries are supported")
	ErrInvalidTensorName  = errors.New("invalid tensor name")
	ErrTruncatedData      = errors.New("data section shorter than header declares")
	ErrInvalidDataOffsets = errors.New("invalid data offsets")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Kind    error  // One of the sentinel errors above
	Tensor  string // Primary tensor name involved
	Tensor2 string // Secondary tensor name (for overlap errors)
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Tensor2 != "" {
		return fmt.Sprintf("%v: tensors %q and %q: %s", e.Kind, e.Tensor, e.Tensor2, e.Details)
	}
	if e.Tensor != "" {
		return fmt.Sprintf("%v: tensor %q: %s", e.Kind, e.Tensor, e.Details)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Details)
}

// Unwrap lets errors.Is match the sentinel kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}
