// Package export writes daily-series payloads to named files. Encoding
// happens fully in memory first, so a serialization failure never leaves a
// partial file behind.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"earntime/internal/stats"
)

// WriteFile renders the series in the requested format and writes it to
// dir under the derived stats filename. Returns the full path written.
func WriteFile(dir string, series []stats.DailyStat, r stats.Range, f stats.Format) (string, error) {
	data, err := stats.Encode(series, f)
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, stats.Filename(r, f))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	slog.Info("Stats exported",
		"path", path,
		"format", string(f),
		"range", r.Label(),
		"rows", len(series))

	return path, nil
}
