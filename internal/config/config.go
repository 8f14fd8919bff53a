// Package config holds the runtime settings for a training run.
package config

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	DataPath     string  `yaml:"data_path"`
	Epochs       int     `yaml:"epochs"`
	InputNodes   int     `yaml:"input_nodes"`
	HiddenNodes  int     `yaml:"hidden_nodes"`
	OutputNodes  int     `yaml:"output_nodes"`
	LearningRate float64 `yaml:"learning_rate"`
	TrainSamples int     `yaml:"train_samples"`
	TestSamples  int     `yaml:"test_samples"`
	Seed         int64   `yaml:"seed"`
	Repeatable   bool    `yaml:"repeatable"`
	LogEvery     int     `yaml:"log_every"`
	ReportRows   bool    `yaml:"report_rows"`
}

// Default returns the settings of the reference run: 3-5-2 network,
// learning rate 0.2, five epochs over 10000 samples, 1000 test samples,
// seed 0.
func Default() *Config {
	return &Config{
		DataPath:     "OvertakeData.csv",
		Epochs:       5,
		InputNodes:   3,
		HiddenNodes:  5,
		OutputNodes:  2,
		LearningRate: 0.2,
		TrainSamples: 10000,
		TestSamples:  1000,
		Seed:         0,
		Repeatable:   true,
		LogEvery:     1,
		ReportRows:   true,
	}
}

// Overrides captures CLI supplied values. Zero values leave the config
// unchanged; pointer fields distinguish "unset" from an explicit zero.
type Overrides struct {
	DataPath     string
	Epochs       int
	HiddenNodes  int
	LearningRate float64
	TrainSamples int
	TestSamples  int
	Seed         *int64
	Repeatable   *bool
	LogEvery     int
	ReportRows   *bool
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.HiddenNodes > 0 {
		c.HiddenNodes = o.HiddenNodes
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.TrainSamples > 0 {
		c.TrainSamples = o.TrainSamples
	}
	if o.TestSamples > 0 {
		c.TestSamples = o.TestSamples
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Repeatable != nil {
		c.Repeatable = *o.Repeatable
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.ReportRows != nil {
		c.ReportRows = *o.ReportRows
	}
}

// Validate verifies the config is runnable. A non-positive LogEvery is
// reset to 1.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataPath == "" {
		return errors.New("data_path must be set")
	}
	if c.Epochs <= 0 {
		return errors.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.InputNodes <= 0 || c.HiddenNodes <= 0 || c.OutputNodes <= 0 {
		return errors.Errorf("node counts must be > 0 (got %d/%d/%d)", c.InputNodes, c.HiddenNodes, c.OutputNodes)
	}
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 1) {
		return errors.Errorf("learning_rate must be positive and finite (got %v)", c.LearningRate)
	}
	if c.TrainSamples <= 0 {
		return errors.Errorf("train_samples must be > 0 (got %d)", c.TrainSamples)
	}
	if c.TestSamples <= 0 {
		return errors.Errorf("test_samples must be > 0 (got %d)", c.TestSamples)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1
	}
	return nil
}
