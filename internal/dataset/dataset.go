package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/overtake/internal/random"
)

// Features are the raw measurements of one sample: initial separation,
// overtaking speed, oncoming speed.
type Features [NumFeatures]float64

// Sample is one labelled row of the data file.
type Sample struct {
	Features Features
	Label    Label
	Raw      []string // original feature fields, used for reporting
}

// Input returns the normalized network input for the sample.
func (s Sample) Input() []float64 {
	return Normalize(s.Features)
}

// Target returns the soft one-hot target for the sample.
func (s Sample) Target() []float64 {
	return Target(s.Label)
}

// Load reads all samples from the CSV file at path.
func Load(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	samples, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return samples, nil
}

// Read parses samples from r.
//
// Empty fields are dropped before a row is interpreted, the first
// NumFeatures remaining fields are the features and the last one is the
// label. Blank lines are ignored. A first row whose leading field is not a
// number is treated as a header.
func Read(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var samples []Sample
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read CSV")
		}
		line++

		fields := nonEmpty(record)
		if len(fields) == 0 {
			continue
		}
		if line == 1 && !isNumber(fields[0]) {
			continue
		}

		s, err := parseRow(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", line)
		}
		samples = append(samples, s)
	}

	return samples, nil
}

func parseRow(fields []string) (Sample, error) {
	if len(fields) < NumFeatures+1 {
		return Sample{}, errors.Errorf("expected at least %d fields, got %d", NumFeatures+1, len(fields))
	}

	var s Sample
	for i := 0; i < NumFeatures; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Sample{}, errors.Wrapf(err, "field %d", i+1)
		}
		s.Features[i] = v
	}

	label, err := ParseLabel(fields[len(fields)-1])
	if err != nil {
		return Sample{}, err
	}
	s.Label = label
	s.Raw = append([]string(nil), fields[:NumFeatures]...)
	return s, nil
}

func nonEmpty(record []string) []string {
	out := record[:0:0]
	for _, f := range record {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Shuffle returns a copy of samples in an order drawn from rng.
func Shuffle(samples []Sample, rng *random.Source) []Sample {
	out := append([]Sample(nil), samples...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Split takes the first trainCount samples for training and at most
// testCount of the rest for testing. Short input yields shorter slices.
func Split(samples []Sample, trainCount, testCount int) (train, test []Sample) {
	trainCount = clamp(trainCount, 0, len(samples))
	train = samples[:trainCount]

	rest := samples[trainCount:]
	test = rest[:clamp(testCount, 0, len(rest))]
	return train, test
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
