package ops

import "math"

func powForward(a, p float64) float64 {
	return math.Pow(a, p)
}

// powBackward computes the gradient of a^p for a constant exponent p:
// d(a^p)/da = p * a^(p-1).
//
// The exponent is not a node and receives no gradient.
func powBackward(a, p, outGrad float64) [2]float64 {
	return [2]float64{p * math.Pow(a, p-1) * outGrad, 0}
}
