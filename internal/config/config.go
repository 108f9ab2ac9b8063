package config

import (
	"ecommerce-dashboard/pkg/utils"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultPath is read when no config file is named
const DefaultPath = "config.json"

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

const defaultReadTimeout = 10 * time.Second

// Config represents the application's configuration structure.
type Config struct {
	Address        string `json:"address" mapstructure:"address"`
	DatasetPath    string `json:"dataset-path" mapstructure:"dataset-path"`
	DatasetSource  string `json:"dataset-source" mapstructure:"dataset-source"`
	SQLitePath     string `json:"sqlite-path" mapstructure:"sqlite-path"`
	SQLiteTable    string `json:"sqlite-table" mapstructure:"sqlite-table"`
	LogLevel       string `json:"log-level" mapstructure:"log-level"`
	DefaultYears   []int  `json:"default-years" mapstructure:"default-years"`
	AvailableYears []int  `json:"available-years" mapstructure:"available-years"`
	TopN           int    `json:"top-n" mapstructure:"top-n"`
	ReadTimeout    string `json:"read-timeout" mapstructure:"read-timeout"`
}

// field: default value
var defaults = map[string]interface{}{
	"address":         ":8080",
	"dataset-path":    "all_data.csv",
	"dataset-source":  SourceCSV,
	"sqlite-path":     "",
	"sqlite-table":    "all_data",
	"log-level":       "INFO",
	"default-years":   []int{2018},
	"available-years": []int{2016, 2017, 2018},
	"top-n":           10,
	"read-timeout":    "10s",
}

// Load reads configuration from a JSON file and DASHBOARD_* environment
// variables. Environment variables take precedence over the config file, and
// a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for field, value := range defaults {
		v.SetDefault(field, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("invalid config: top-n must be positive, got %d", c.TopN)
	}
	if len(c.AvailableYears) == 0 {
		return fmt.Errorf("invalid config: available-years is empty")
	}
	if len(c.DefaultYears) == 0 {
		return fmt.Errorf("invalid config: default-years is empty")
	}
	for _, y := range c.DefaultYears {
		if !slices.Contains(c.AvailableYears, y) {
			return fmt.Errorf("invalid config: default year %d is not in available-years %v", y, c.AvailableYears)
		}
	}

	switch c.DatasetSource {
	case SourceCSV:
		if len(c.DatasetPaths()) == 0 {
			return fmt.Errorf("invalid config: dataset-path is empty")
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("invalid config: sqlite-path is required for the sqlite source")
		}
	default:
		return fmt.Errorf("invalid config: unknown dataset-source %q", c.DatasetSource)
	}
	return nil
}

// DatasetPaths splits dataset-path into its CSV shards
func (c *Config) DatasetPaths() []string {
	var out []string
	for _, p := range strings.Split(c.DatasetPath, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Timeout is read-timeout as a duration
func (c *Config) Timeout() time.Duration {
	return utils.ParseDuration(c.ReadTimeout, defaultReadTimeout)
}
