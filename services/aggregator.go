package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"price-scraper/models"
	"price-scraper/storage"
	"price-scraper/utils"
)

// Aggregate concatenates every unified file in the cleaned-data directory
// into the all-brands, all-dates canonical price table. Rows carry the brand
// and date read from each filename. Files whose names do not parse are
// skipped with a log line.
//
// No deduplication happens here: feeding the same (brand, date) file twice
// yields duplicate rows, so each file must be aggregated at most once. The
// orchestrator holds that invariant by archiving raw inputs and writing one
// unified file per (brand, date).
func Aggregate(cleanedDir string, logger *utils.Logger) ([]*models.UnifiedRow, error) {
	entries, err := os.ReadDir(cleanedDir)
	if err != nil {
		return nil, fmt.Errorf("aggregate: read dir %q: %w", cleanedDir, err)
	}

	var table []*models.UnifiedRow
	files := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		if _, _, err := storage.ParseUnifiedFileName(entry.Name()); err != nil {
			logger.Warn("[aggregate] skipping %s: %v", entry.Name(), err)
			continue
		}

		rows, err := storage.ReadUnified(filepath.Join(cleanedDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		table = append(table, rows...)
		files++
	}

	logger.Info("[aggregate] %d unified files → %d rows", files, len(table))
	return table, nil
}
