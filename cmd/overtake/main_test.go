package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, rows int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		label := "FALSE"
		if i%2 == 0 {
			label = "TRUE"
		}
		b.WriteString(strings.Join([]string{"500", "40", "60", label}, ","))
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func TestRunWithFlags(t *testing.T) {
	path := writeData(t, 30)
	err := run([]string{"-data", path, "-train", "20", "-test", "5", "-epochs", "2", "-no-rows", "-quiet"})
	assert.NoError(t, err)
}

func TestRunWithConfigFile(t *testing.T) {
	path := writeData(t, 30)
	cfgPath := filepath.Join(t.TempDir(), "run.yaml")
	cfg := "data_path: " + path + "\ntrain_samples: 20\ntest_samples: 5\nepochs: 1\nreport_rows: false\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	assert.NoError(t, run([]string{"-config", cfgPath, "-quiet", "-unseeded"}))
}

func TestRunRejectsBadInput(t *testing.T) {
	assert.Error(t, run([]string{"-data", filepath.Join(t.TempDir(), "missing.csv"), "-quiet"}))
	assert.Error(t, run([]string{"-no-such-flag"}))
}
