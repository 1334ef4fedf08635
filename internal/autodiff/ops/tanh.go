package ops

import "math"

// tanhForward computes (e^{2x} - 1) / (e^{2x} + 1).
//
// math.Tanh is used instead of the literal formula: it gives the same value
// and saturates to ±1 where e^{2x} would overflow.
func tanhForward(a float64) float64 {
	return math.Tanh(a)
}

// tanhBackward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func tanhBackward(out, outGrad float64) [2]float64 {
	return [2]float64{(1 - out*out) * outGrad, 0}
}
