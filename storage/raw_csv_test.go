package storage

import (
	"os"
	"path/filepath"
	"testing"

	"price-scraper/models"
)

func TestReadRawReportsPresentRetailers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RawFileName("2024-01-01", "not"))
	content := "fecha,producto,coto,dia\n" +
		"2024-01-01,Notcreamcheese 210 Gr,\"$2.500,00\",\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rows, present, err := ReadRaw(path)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if len(present) != 2 || present[0] != models.Coto || present[1] != models.Dia {
		t.Errorf("present retailers: got %v", present)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if rows[0].Prices[models.Coto] != "$2.500,00" {
		t.Errorf("coto text: got %q", rows[0].Prices[models.Coto])
	}
	if _, ok := rows[0].Prices[models.Carrefour]; ok {
		t.Error("absent column must not appear in the row map")
	}
}

func TestWriteRawThenReadRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", RawFileName("2024-01-01", "not"))

	rows := []*models.RawRow{
		{Name: "Not Burger Parrillera 220g", Prices: map[models.Retailer]string{
			models.Vea: "$5.100,00",
		}},
	}
	if err := WriteRaw(path, "2024-01-01", rows); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}

	got, present, err := ReadRaw(path)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if len(present) != len(models.Retailers) {
		t.Errorf("written file must carry all retailer columns, got %d", len(present))
	}
	if got[0].Prices[models.Vea] != "$5.100,00" {
		t.Errorf("vea text: got %q", got[0].Prices[models.Vea])
	}
}

func TestArchiveRawMovesFile(t *testing.T) {
	dir := t.TempDir()
	usedDir := filepath.Join(dir, "Used")
	path := filepath.Join(dir, RawFileName("2024-01-01", "not"))
	if err := os.WriteFile(path, []byte("fecha,producto\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ArchiveRaw(path, usedDir); err != nil {
		t.Fatalf("ArchiveRaw: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("original file should be gone after archiving")
	}
	if _, err := os.Stat(filepath.Join(usedDir, filepath.Base(path))); err != nil {
		t.Errorf("archived copy missing: %v", err)
	}
}
