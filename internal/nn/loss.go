package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
)

// ErrLengthMismatch is returned when predictions and targets differ in
// length, or when both are empty.
var ErrLengthMismatch = errors.New("predictions and targets must have the same non-zero length")

func checkLengths(predictions []*autodiff.Value, targets []float64) error {
	if len(predictions) == 0 || len(predictions) != len(targets) {
		return fmt.Errorf("%d predictions, %d targets: %w", len(predictions), len(targets), ErrLengthMismatch)
	}
	return nil
}

// SumSquaredError computes Σ (predictionᵢ - targetᵢ)².
func SumSquaredError(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	if err := checkLengths(predictions, targets); err != nil {
		return nil, err
	}

	terms := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		diff := p.SubScalar(targets[i])
		terms[i] = diff.Mul(diff)
	}

	return autodiff.Sum(terms...), nil
}

// MSE computes mean((predictions - targets)²).
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
func MSE(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	sum, err := SumSquaredError(predictions, targets)
	if err != nil {
		return nil, err
	}
	return sum.MulScalar(1 / float64(len(predictions))), nil
}

// Hinge computes the mean max-margin loss mean(relu(1 - targetᵢ·predictionᵢ))
// for targets in {-1, +1}.
func Hinge(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	if err := checkLengths(predictions, targets); err != nil {
		return nil, err
	}

	terms := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = p.MulScalar(-targets[i]).AddScalar(1).ReLU()
	}

	return autodiff.Sum(terms...).MulScalar(1 / float64(len(predictions))), nil
}
