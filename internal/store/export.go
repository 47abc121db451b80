package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	"techangel/internal/domain"
)

// exportVersion is bumped when the Export layout changes.
const exportVersion = 1

var ErrExportVersion = errors.New("unsupported export version")

// Export is the on-disk form of one regression dataset and its curves.
type Export struct {
	Version     int                                      `json:"version"`
	GeneratedAt time.Time                                `json:"generated_at"`
	Seed        uint64                                   `json:"seed"`
	Selected    domain.ModelName                         `json:"selected"`
	Samples     []domain.Sample                          `json:"samples"`
	Predictions map[domain.ModelName][]domain.Prediction `json:"predictions"`
	Scores      []domain.ModelScore                      `json:"scores"`
}

// SaveExport writes e to path, stamping the layout version.
func SaveExport(path string, e Export) error {
	e.Version = exportVersion
	if e.GeneratedAt.IsZero() {
		e.GeneratedAt = time.Now().UTC()
	}
	if err := writeJSON(path, e, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}

// LoadExport reads an export written by SaveExport.
func LoadExport(path string) (Export, error) {
	var e Export
	if err := readJSON(path, &e); err != nil {
		return Export{}, fmt.Errorf("read export %s: %w", path, err)
	}
	if e.Version != exportVersion {
		return Export{}, fmt.Errorf("%w: %d", ErrExportVersion, e.Version)
	}
	return e, nil
}

// SaveChart writes a rendered chart image to path.
func SaveChart(path string, img []byte) error {
	if err := WriteFile(path, img, 0o644); err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
