package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"price-scraper/models"
)

// WriteUnified writes one (brand, date) unified file: fecha,
// producto_unificado, producto_representativo, then one numeric column per
// retailer. Missing prices are written as empty cells, never as zero.
func WriteUnified(path string, rows []*models.UnifiedRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unified csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unified csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"fecha", "producto_unificado", "producto_representativo"}
	for _, r := range models.Retailers {
		header = append(header, string(r))
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("unified csv: write header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.Date, row.CanonicalName, row.RepresentativeName}
		for _, r := range models.Retailers {
			p := row.Prices[r]
			if p.Valid {
				record = append(record, strconv.FormatFloat(p.Value, 'f', 2, 64))
			} else {
				record = append(record, "")
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("unified csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// ReadUnified loads one unified file, tagging every row with the brand and
// date encoded in the filename.
func ReadUnified(path string) ([]*models.UnifiedRow, error) {
	brandCode, date, err := ParseUnifiedFileName(filepath.Base(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unified csv: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unified csv: read %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("unified csv: %q is empty", path)
	}

	header := records[0]
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	for _, required := range []string{"fecha", "producto_unificado", "producto_representativo"} {
		if _, ok := colIdx[required]; !ok {
			return nil, fmt.Errorf("unified csv: %q has no %s column", path, required)
		}
	}

	rows := make([]*models.UnifiedRow, 0, len(records)-1)
	for _, record := range records[1:] {
		cell := func(col string) string {
			if i, ok := colIdx[col]; ok && i < len(record) {
				return record[i]
			}
			return ""
		}

		row := &models.UnifiedRow{
			Date:               date,
			Brand:              brandCode,
			CanonicalName:      cell("producto_unificado"),
			RepresentativeName: cell("producto_representativo"),
			Prices:             make(map[models.Retailer]models.Price, len(models.Retailers)),
		}

		for _, retailer := range models.Retailers {
			raw := cell(string(retailer))
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("unified csv: %q row %q: bad %s price %q", path, row.CanonicalName, retailer, raw)
			}
			row.Prices[retailer] = models.NewPrice(v)
		}

		rows = append(rows, row)
	}

	return rows, nil
}
