// Package source loads the dataset named by the configuration.
package source

import (
	"context"
	"ecommerce-dashboard/internal/config"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/report"
	"ecommerce-dashboard/internal/store"
	"fmt"
)

// Load reads the configured CSV shards or SQLite table into a report table
func Load(ctx context.Context, cfg *config.Config) (*report.Table, error) {
	switch cfg.DatasetSource {
	case config.SourceCSV:
		return dataset.Load(ctx, cfg.DatasetPaths()...)
	case config.SourceSQLite:
		return store.LoadTable(ctx, cfg.SQLitePath, cfg.SQLiteTable)
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.DatasetSource)
	}
}
