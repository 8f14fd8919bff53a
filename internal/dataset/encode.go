package dataset

// Normalization maxima for the three features.
const (
	MaxInitialSeparation = 1000.0
	MaxOvertakingSpeed   = 100.0
	MaxOncomingSpeed     = 100.0
)

// Soft one-hot target levels.
const (
	TargetLow  = 0.01
	TargetHigh = 0.99
)

// NumFeatures is the number of input features per sample.
const NumFeatures = 3

// Normalize scales raw features into roughly [0, 1].
func Normalize(f Features) []float64 {
	return []float64{
		f[0] / MaxInitialSeparation,
		f[1] / MaxOvertakingSpeed,
		f[2] / MaxOncomingSpeed,
	}
}

// Target returns the soft one-hot target vector for label.
func Target(label Label) []float64 {
	t := make([]float64, len(Labels))
	for i := range t {
		t[i] = TargetLow
	}
	t[label] = TargetHigh
	return t
}

// Predict returns the label whose output node is largest.
// The first node wins ties.
func Predict(output []float64) Label {
	best := 0
	for i, v := range output {
		if v > output[best] {
			best = i
		}
	}
	return Labels[best]
}
