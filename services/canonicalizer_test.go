package services

import (
	"testing"

	"price-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func testTable() SynonymTable {
	return SynonymTable{
		"Not Cream Cheese 210g": {
			"Notcreamcheese 210 Gr",
			"Queso Crema Not Cream 210 Gr.",
		},
		"Not Burger Parrillera 220g": {
			"Not Burger Parrillera 220 Gr.",
		},
	}
}

func TestCanonicalizeKnownVariant(t *testing.T) {
	c := NewCanonicalizer(testTable(), newTestLogger())

	got, known := c.Canonicalize("Notcreamcheese 210 Gr")
	if !known {
		t.Error("expected variant to be known")
	}
	if got != "Not Cream Cheese 210g" {
		t.Errorf("got %q, want %q", got, "Not Cream Cheese 210g")
	}
}

func TestCanonicalizeDeterminism(t *testing.T) {
	c := NewCanonicalizer(testTable(), newTestLogger())

	first, _ := c.Canonicalize("Queso Crema Not Cream 210 Gr.")
	second, _ := c.Canonicalize("Queso Crema Not Cream 210 Gr.")
	if first != second {
		t.Errorf("canonicalizing twice diverged: %q vs %q", first, second)
	}
}

func TestCanonicalizePassThrough(t *testing.T) {
	c := NewCanonicalizer(testTable(), newTestLogger())

	got, known := c.Canonicalize("Producto Nuevo Sin Curar 500g")
	if known {
		t.Error("unknown name reported as known")
	}
	if got != "Producto Nuevo Sin Curar 500g" {
		t.Errorf("unknown name must pass through unchanged, got %q", got)
	}
}

func TestCanonicalizeExactMatchOnly(t *testing.T) {
	c := NewCanonicalizer(testTable(), newTestLogger())

	// Lookups are case- and whitespace-sensitive; near misses pass through.
	for _, raw := range []string{
		"notcreamcheese 210 gr",
		"Notcreamcheese 210 Gr ",
	} {
		if _, known := c.Canonicalize(raw); known {
			t.Errorf("near-miss %q should not match the curated table", raw)
		}
	}
}

func TestCanonicalizerStaticTables(t *testing.T) {
	for _, code := range []string{"not", "vegetalex", "felices_las_vacas"} {
		table, ok := SynonymsFor(code)
		if !ok {
			t.Fatalf("no synonym table for brand %q", code)
		}
		c := NewCanonicalizer(table, newTestLogger())
		if c.Known() == 0 {
			t.Errorf("brand %q: empty reverse index", code)
		}
	}

	if _, ok := SynonymsFor("acme"); ok {
		t.Error("unexpected synonym table for unknown brand")
	}
}
