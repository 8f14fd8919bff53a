package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/overtake/internal/random"
)

const sampleCSV = `InitialSeparation_m,OvertakingSpeed_mps,OncomingSpeed_mps,Success
150,25,20,TRUE
620,30,35,FALSE

90,,12,18,FALSE
`

func TestRead(t *testing.T) {
	samples, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, Features{150, 25, 20}, samples[0].Features)
	assert.Equal(t, True, samples[0].Label)
	assert.Equal(t, []string{"150", "25", "20"}, samples[0].Raw)

	assert.Equal(t, False, samples[1].Label)

	// Empty fields are dropped like a split that removes empty entries.
	assert.Equal(t, Features{90, 12, 18}, samples[2].Features)
}

func TestReadWithoutHeader(t *testing.T) {
	samples, err := Read(strings.NewReader("1,2,3,TRUE\n4,5,6,false\n"))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, False, samples[1].Label)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"too few fields", "1,2,TRUE\n"},
		{"bad number", "1,x,3,TRUE\n2,y,3,FALSE\n"},
		{"bad label", "1,2,3,MAYBE\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}

	_, err := Read(strings.NewReader("1,2,3,MAYBE\n"))
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	samples, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, samples, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestNormalizeAndTarget(t *testing.T) {
	s := Sample{Features: Features{500, 50, 25}, Label: False}

	assert.Equal(t, []float64{0.5, 0.5, 0.25}, s.Input())
	assert.Equal(t, []float64{TargetLow, TargetHigh}, s.Target())
	assert.Equal(t, []float64{TargetHigh, TargetLow}, Target(True))
}

func TestPredict(t *testing.T) {
	assert.Equal(t, True, Predict([]float64{0.8, 0.2}))
	assert.Equal(t, False, Predict([]float64{0.3, 0.6}))
	assert.Equal(t, True, Predict([]float64{0.5, 0.5}), "first node wins ties")
}

func TestParseLabel(t *testing.T) {
	l, err := ParseLabel(" true ")
	require.NoError(t, err)
	assert.Equal(t, True, l)
	assert.Equal(t, "TRUE", True.String())
	assert.Equal(t, "FALSE", False.String())
	assert.Equal(t, "UNKNOWN", Label(9).String())
}

func makeSamples(n int) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = Sample{Features: Features{float64(i), 0, 0}}
	}
	return out
}

func TestShuffleDeterministic(t *testing.T) {
	samples := makeSamples(20)

	a := Shuffle(samples, random.New(0))
	b := Shuffle(samples, random.New(0))
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, samples, a)

	for i, s := range samples {
		assert.Equal(t, float64(i), s.Features[0], "input must not be reordered")
	}
}

func TestSplit(t *testing.T) {
	samples := makeSamples(10)

	train, test := Split(samples, 6, 3)
	assert.Len(t, train, 6)
	assert.Len(t, test, 3)
	assert.Equal(t, 6.0, test[0].Features[0])

	train, test = Split(samples, 8, 100)
	assert.Len(t, train, 8)
	assert.Len(t, test, 2)

	train, test = Split(samples, 50, 5)
	assert.Len(t, train, 10)
	assert.Empty(t, test)
}
