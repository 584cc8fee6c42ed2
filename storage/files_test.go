package storage

import "testing"

func TestRawFileNameRoundTrip(t *testing.T) {
	name := RawFileName("2024-01-01", "felices_las_vacas")
	if name != "precios_async_2024-01-01_felices_las_vacas.csv" {
		t.Errorf("RawFileName: got %q", name)
	}

	date, brand, err := ParseRawFileName(name)
	if err != nil {
		t.Fatalf("ParseRawFileName: %v", err)
	}
	if date != "2024-01-01" || brand != "felices_las_vacas" {
		t.Errorf("got (%s, %s)", date, brand)
	}
}

func TestParseRawFileNameRejects(t *testing.T) {
	bad := []string{
		"precios_2024-01-01_not.csv",
		"precios_async_2024-1-1_not.csv",
		"precios_async_2024-01-01_not.txt",
		"productos_not_unificados_2024-01-01.csv",
		"notes.csv",
	}
	for _, name := range bad {
		if _, _, err := ParseRawFileName(name); err == nil {
			t.Errorf("ParseRawFileName(%q) should reject", name)
		}
	}
}

func TestUnifiedFileNameRoundTrip(t *testing.T) {
	name := UnifiedFileName("not", "2024-01-01")
	if name != "productos_not_unificados_2024-01-01.csv" {
		t.Errorf("UnifiedFileName: got %q", name)
	}

	brand, date, err := ParseUnifiedFileName(name)
	if err != nil {
		t.Fatalf("ParseUnifiedFileName: %v", err)
	}
	if brand != "not" || date != "2024-01-01" {
		t.Errorf("got (%s, %s)", brand, date)
	}

	if _, _, err := ParseUnifiedFileName("precios_async_2024-01-01_not.csv"); err == nil {
		t.Error("raw filename must not parse as unified")
	}
}
