package ops

func addForward(a, b float64) float64 {
	return a + b
}

// addBackward routes the upstream gradient unchanged to both operands:
// d(a+b)/da = 1, d(a+b)/db = 1.
func addBackward(outGrad float64) [2]float64 {
	return [2]float64{outGrad, outGrad}
}
