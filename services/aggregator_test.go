package services

import (
	"os"
	"path/filepath"
	"testing"

	"price-scraper/models"
	"price-scraper/storage"
)

func writeUnifiedFixture(t *testing.T, dir, brand, date string, rows []*models.UnifiedRow) {
	t.Helper()
	path := filepath.Join(dir, storage.UnifiedFileName(brand, date))
	if err := storage.WriteUnified(path, rows); err != nil {
		t.Fatalf("WriteUnified: %v", err)
	}
}

func unifiedFixture(date, name string, prices map[models.Retailer]models.Price) *models.UnifiedRow {
	return &models.UnifiedRow{
		Date:               date,
		CanonicalName:      name,
		RepresentativeName: name,
		Prices:             prices,
	}
}

func TestAggregateTagsBrandAndDate(t *testing.T) {
	dir := t.TempDir()
	writeUnifiedFixture(t, dir, "not", "2024-01-01", []*models.UnifiedRow{
		unifiedFixture("2024-01-01", "Not Cream Cheese 210g", map[models.Retailer]models.Price{
			models.Coto: models.NewPrice(2500),
		}),
	})
	writeUnifiedFixture(t, dir, "vegetalex", "2024-01-02", []*models.UnifiedRow{
		unifiedFixture("2024-01-02", "Nuggets 100% Vegetal Vegetalex 300g", map[models.Retailer]models.Price{
			models.Dia: models.NewPrice(3100),
		}),
	})

	table, err := Aggregate(dir, newTestLogger())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table))
	}

	byBrand := make(map[string]*models.UnifiedRow)
	for _, row := range table {
		byBrand[row.Brand] = row
	}
	if row := byBrand["not"]; row == nil || row.Date != "2024-01-01" {
		t.Errorf("not row mistagged: %+v", row)
	}
	if row := byBrand["vegetalex"]; row == nil || row.Date != "2024-01-02" {
		t.Errorf("vegetalex row mistagged: %+v", row)
	}
}

func TestAggregateSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeUnifiedFixture(t, dir, "not", "2024-01-01", []*models.UnifiedRow{
		unifiedFixture("2024-01-01", "Not Mila 220g", map[models.Retailer]models.Price{
			models.Vea: models.NewPrice(4000),
		}),
	})
	if err := os.WriteFile(filepath.Join(dir, "notes.csv"), []byte("a,b\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Aggregate(dir, newTestLogger())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(table) != 1 {
		t.Errorf("expected 1 row after skipping foreign files, got %d", len(table))
	}
}

func TestAggregateNoDeduplication(t *testing.T) {
	// Aggregation is pure concatenation; feeding the same (brand, date) rows
	// through two files yields duplicates. The caller holds the
	// aggregate-once invariant.
	dir := t.TempDir()
	row := unifiedFixture("2024-01-01", "Not Mila 220g", map[models.Retailer]models.Price{
		models.Vea: models.NewPrice(4000),
	})
	writeUnifiedFixture(t, dir, "not", "2024-01-01", []*models.UnifiedRow{row, row})

	table, err := Aggregate(dir, newTestLogger())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(table) != 2 {
		t.Errorf("expected duplicated rows to survive, got %d", len(table))
	}
}
