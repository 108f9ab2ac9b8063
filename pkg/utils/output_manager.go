package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager lays out report files on disk, one directory per report id
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateReportDir creates the directory holding a report's files
func (om *OutputManager) CreateReportDir(reportID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, filepath.Base(reportID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report output directory: %w", err)
	}
	return dir, nil
}

// GetOutputFilePath generates a full path for an output file
func (om *OutputManager) GetOutputFilePath(reportID, fileName string) (string, error) {
	dir, err := om.CreateReportDir(reportID)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// WriteFile stores data under the report directory and returns its path
func (om *OutputManager) WriteFile(reportID, fileName string, data []byte) (string, error) {
	path, err := om.GetOutputFilePath(reportID, fileName)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
