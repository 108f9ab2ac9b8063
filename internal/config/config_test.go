package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, []string{"all_data.csv"}, cfg.DatasetPaths())
	assert.Equal(t, SourceCSV, cfg.DatasetSource)
	assert.Equal(t, "all_data", cfg.SQLiteTable)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, []int{2018}, cfg.DefaultYears)
	assert.Equal(t, []int{2016, 2017, 2018}, cfg.AvailableYears)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"address": ":9090",
		"dataset-path": "a.csv, b.csv",
		"default-years": [2017, 2018],
		"top-n": 5,
		"read-timeout": "3s"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.DatasetPaths())
	assert.Equal(t, []int{2017, 2018}, cfg.DefaultYears)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"top-n": 5, "log-level": "DEBUG"}`)
	t.Setenv("DASHBOARD_TOP_N", "3")
	t.Setenv("DASHBOARD_DEFAULT_YEARS", "2016,2017")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, []int{2016, 2017}, cfg.DefaultYears)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := map[string]string{
		"bad json":             `{"top-n": `,
		"zero top-n":           `{"top-n": 0}`,
		"no default years":     `{"default-years": []}`,
		"unknown default year": `{"default-years": [2015]}`,
		"unknown source":       `{"dataset-source": "parquet"}`,
		"sqlite without path":  `{"dataset-source": "sqlite"}`,
		"blank dataset path":   `{"dataset-path": " , "}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
