package metrics

import "time"

// Window accumulates training throughput and loss across samples.
type Window struct {
	samples int
	elapsed time.Duration
	lossSum float64
}

// Record adds a measurement covering n samples whose summed loss is loss.
func (w *Window) Record(n int, elapsed time.Duration, loss float64) {
	w.samples += n
	w.elapsed += elapsed
	w.lossSum += loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Samples: w.samples, Elapsed: w.elapsed}
	if w.elapsed > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.elapsed.Seconds()
	}
	if w.samples > 0 {
		snap.MeanLoss = w.lossSum / float64(w.samples)
	}

	*w = Window{}
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Samples       int
	Elapsed       time.Duration
	SamplesPerSec float64
	MeanLoss      float64
}
