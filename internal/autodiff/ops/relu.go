package ops

func reluForward(a float64) float64 {
	if a < 0 {
		return 0
	}
	return a
}

// reluBackward passes the gradient through where the output was positive.
// The subgradient at exactly zero is taken as 0.
func reluBackward(out, outGrad float64) [2]float64 {
	if out > 0 {
		return [2]float64{outGrad, 0}
	}
	return [2]float64{}
}
