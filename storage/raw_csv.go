package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"price-scraper/models"
)

// WriteRaw writes one day's wide-pivoted raw listings for a brand:
// fecha, producto, then one price-text column per retailer in canonical
// order. Intermediate directories are created automatically.
func WriteRaw(path, date string, rows []*models.RawRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("raw csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raw csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"fecha", "producto"}
	for _, r := range models.Retailers {
		header = append(header, string(r))
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("raw csv: write header: %w", err)
	}

	for _, row := range rows {
		record := []string{date, row.Name}
		for _, r := range models.Retailers {
			record = append(record, row.Prices[r])
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("raw csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// ReadRaw loads a raw price file and reports which retailer columns its
// header actually carries. A file with no retailer columns at all is still
// returned (the unifier treats it as degraded input).
func ReadRaw(path string) ([]*models.RawRow, []models.Retailer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("raw csv: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("raw csv: read %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("raw csv: %q is empty", path)
	}

	header := records[0]
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	productCol, ok := colIdx["producto"]
	if !ok {
		return nil, nil, fmt.Errorf("raw csv: %q has no producto column", path)
	}

	var present []models.Retailer
	for _, retailer := range models.Retailers {
		if _, ok := colIdx[string(retailer)]; ok {
			present = append(present, retailer)
		}
	}

	rows := make([]*models.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if productCol >= len(record) {
			continue
		}
		row := &models.RawRow{
			Name:   record[productCol],
			Prices: make(map[models.Retailer]string, len(present)),
		}
		for _, retailer := range present {
			if i := colIdx[string(retailer)]; i < len(record) {
				row.Prices[retailer] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, present, nil
}

// ArchiveRaw moves a processed raw file into the used-data directory so it
// is never unified twice. Moved, not deleted.
func ArchiveRaw(path, usedDir string) error {
	if err := os.MkdirAll(usedDir, 0755); err != nil {
		return fmt.Errorf("archive: create used dir: %w", err)
	}
	dest := filepath.Join(usedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("archive: move %q to %q: %w", path, dest, err)
	}
	return nil
}
