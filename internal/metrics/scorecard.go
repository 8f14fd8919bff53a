// Package metrics accumulates evaluation and training statistics.
package metrics

// ScoreCard tallies correct and incorrect predictions.
type ScoreCard struct {
	correct int
	total   int
}

// Record adds one prediction outcome.
func (s *ScoreCard) Record(correct bool) {
	s.total++
	if correct {
		s.correct++
	}
}

// Correct returns the number of correct predictions.
func (s *ScoreCard) Correct() int { return s.correct }

// Total returns the number of recorded predictions.
func (s *ScoreCard) Total() int { return s.total }

// Accuracy returns the percentage of correct predictions, or 0 if nothing
// was recorded.
func (s *ScoreCard) Accuracy() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.total) * 100
}
