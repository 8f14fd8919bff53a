package nn

// SquaredError returns Σ(target - output)².
func SquaredError(output, target []float64) (float64, error) {
	if len(output) != len(target) {
		return 0, dimensionMismatch("SquaredError: output has %d values, target has %d", len(output), len(target))
	}

	var sum float64
	for i := range output {
		d := target[i] - output[i]
		sum += d * d
	}
	return sum, nil
}

// MSE returns the mean of (target - output)².
func MSE(output, target []float64) (float64, error) {
	sum, err := SquaredError(output, target)
	if err != nil {
		return 0, err
	}
	if len(output) == 0 {
		return 0, nil
	}
	return sum / float64(len(output)), nil
}
