// Package trainer runs the train-then-evaluate workload for the overtaking
// classifier.
package trainer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/born-ml/overtake/internal/dataset"
	"github.com/born-ml/overtake/internal/metrics"
	"github.com/born-ml/overtake/internal/nn"
	"github.com/born-ml/overtake/internal/random"
)

// ErrNoData is returned when the split leaves no training or no test samples.
var ErrNoData = errors.New("not enough samples")

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	// DataPath is read when Samples is nil.
	DataPath string
	// Samples, if set, is used instead of loading DataPath.
	Samples []dataset.Sample

	Network      nn.Config
	Epochs       int
	TrainSamples int
	TestSamples  int
	Seed         int64
	Repeatable   bool
	LogEvery     int
	ReportRows   bool

	Logger *slog.Logger
}

// Result summarizes a finished run.
type Result struct {
	RunID     string
	Seed      int64
	Train     int
	Test      int
	Epochs    int
	Duration  time.Duration
	FinalLoss float64
	EpochLoss []float64 // mean pre-update MSE per epoch
	Correct   int
	Accuracy  float64
	Network   *nn.Network
}

// Run loads and shuffles the data, trains a fresh network online for
// cfg.Epochs passes over the training split, then scores it on the test
// split. The console report is written to out.
//
// Cancellation is observed between samples, never inside a weight update.
func Run(ctx context.Context, cfg RunConfig, out io.Writer) (*Result, error) {
	if cfg.Epochs <= 0 {
		return nil, errors.New("trainer: epochs must be > 0")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	runID := uuid.NewString()
	logger = logger.With("run", runID)

	rng := random.NewEntropy()
	if cfg.Repeatable {
		rng = random.New(cfg.Seed)
	}

	samples := cfg.Samples
	if samples == nil {
		var err error
		samples, err = dataset.Load(cfg.DataPath)
		if err != nil {
			return nil, errors.Wrap(err, "trainer")
		}
		logger.Info("dataset loaded", "path", cfg.DataPath, "samples", len(samples))
	}

	train, test := dataset.Split(dataset.Shuffle(samples, rng), cfg.TrainSamples, cfg.TestSamples)
	if len(train) == 0 || len(test) == 0 {
		return nil, errors.Wrapf(ErrNoData, "trainer: %d samples give %d train / %d test", len(samples), len(train), len(test))
	}

	net, err := nn.NewFromConfig(cfg.Network, rng)
	if err != nil {
		return nil, errors.Wrap(err, "trainer: build network")
	}
	logger.Info("network created",
		"input", net.InputNodes(),
		"hidden", net.HiddenNodes(),
		"output", net.OutputNodes(),
		"lr", net.LearningRate(),
		"seed", rng.Seed(),
		"repeatable", rng.Repeatable(),
	)

	fmt.Fprintf(out, "Training network with %d samples using %d epochs...\n", len(train), cfg.Epochs)
	start := time.Now()
	epochLoss, err := trainEpochs(ctx, net, train, cfg.Epochs, cfg.LogEvery, logger)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	fmt.Fprintf(out, "Training complete in %ds, %dms\n\n", int(elapsed.Seconds()), elapsed.Milliseconds())

	score, err := evaluate(ctx, net, test, cfg.ReportRows, out)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Performance is %v percent.\n", score.Accuracy())

	logger.Info("run finished",
		"train", len(train),
		"test", len(test),
		"accuracy", score.Accuracy(),
		"elapsed", elapsed,
	)

	return &Result{
		RunID:     runID,
		Seed:      rng.Seed(),
		Train:     len(train),
		Test:      len(test),
		Epochs:    cfg.Epochs,
		Duration:  elapsed,
		FinalLoss: epochLoss[len(epochLoss)-1],
		EpochLoss: epochLoss,
		Correct:   score.Correct(),
		Accuracy:  score.Accuracy(),
		Network:   net,
	}, nil
}

// trainEpochs runs the online training loop and returns the mean
// pre-update MSE of every epoch.
func trainEpochs(ctx context.Context, net *nn.Network, train []dataset.Sample, epochs, logEvery int, logger *slog.Logger) ([]float64, error) {
	inputs := make([][]float64, len(train))
	targets := make([][]float64, len(train))
	for i, s := range train {
		inputs[i] = s.Input()
		targets[i] = s.Target()
	}

	var window metrics.Window
	epochLoss := make([]float64, 0, epochs)
	for epoch := 1; epoch <= epochs; epoch++ {
		startEpoch := time.Now()
		var lossSum float64
		for i := range inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			out, err := net.Query(inputs[i])
			if err != nil {
				return nil, errors.Wrapf(err, "epoch %d sample %d", epoch, i)
			}
			loss, err := nn.MSE(out, targets[i])
			if err != nil {
				return nil, errors.Wrapf(err, "epoch %d sample %d", epoch, i)
			}
			lossSum += loss

			if err := net.Train(inputs[i], targets[i]); err != nil {
				return nil, errors.Wrapf(err, "epoch %d sample %d", epoch, i)
			}
		}
		window.Record(len(inputs), time.Since(startEpoch), lossSum)
		epochLoss = append(epochLoss, lossSum/float64(len(inputs)))

		if epoch%logEvery == 0 || epoch == epochs {
			snap := window.Snapshot()
			logger.Info("epoch finished",
				"epoch", epoch,
				"samples", snap.Samples,
				"mse", snap.MeanLoss,
				"samples_per_sec", snap.SamplesPerSec,
			)
		}
	}
	return epochLoss, nil
}

// evaluate queries every test sample, writing one report row per sample when
// rows is set.
func evaluate(ctx context.Context, net *nn.Network, test []dataset.Sample, rows bool, out io.Writer) (*metrics.ScoreCard, error) {
	var score metrics.ScoreCard
	for i, s := range test {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output, err := net.Query(s.Input())
		if err != nil {
			return nil, errors.Wrapf(err, "test sample %d", i)
		}
		predicted := dataset.Predict(output)
		correct := predicted == s.Label
		score.Record(correct)

		if rows {
			writeRow(out, s, predicted, correct)
		}
	}
	return &score, nil
}

func writeRow(out io.Writer, s dataset.Sample, predicted dataset.Label, correct bool) {
	raw := s.Raw
	if len(raw) < dataset.NumFeatures {
		raw = make([]string, dataset.NumFeatures)
		for i, v := range s.Features {
			raw[i] = fmt.Sprint(v)
		}
	}

	miss := ""
	if !correct {
		miss = "miss"
	}
	fmt.Fprintf(out, "%4s, %4s, %4s, %-16s, %-16s %s\n", raw[0], raw[1], raw[2], s.Label, predicted, miss)
}
