package services

import (
	"testing"

	"price-scraper/models"
)

func insightRow(brand, date, name string, prices map[models.Retailer]models.Price) *models.UnifiedRow {
	return &models.UnifiedRow{
		Date:               date,
		Brand:              brand,
		CanonicalName:      name,
		RepresentativeName: name,
		Prices:             prices,
	}
}

func sampleTable() []*models.UnifiedRow {
	return []*models.UnifiedRow{
		// Two dates of history for one product: mean over 1000, 2000, 3000.
		insightRow("not", "2024-01-01", "Not Mila 220g", map[models.Retailer]models.Price{
			models.Coto: models.NewPrice(1000),
			models.Dia:  models.NewPrice(2000),
		}),
		insightRow("not", "2024-01-02", "Not Mila 220g", map[models.Retailer]models.Price{
			models.Coto: models.NewPrice(3000),
		}),
		// Product present only on the latest date.
		insightRow("not", "2024-01-02", "Not Chorixo 240g", map[models.Retailer]models.Price{
			models.Vea: models.NewPrice(500),
		}),
		// Product with no observation at all: excluded everywhere.
		insightRow("not", "2024-01-02", "Not Salxicha 250g", map[models.Retailer]models.Price{}),
	}
}

func TestInsightHistoricalMean(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 5)
	r := svc.Generate(sampleTable())

	key := ProductKey{Brand: "not", Product: "Not Mila 220g"}
	if got := r.Means[key]; got != 2000 {
		t.Errorf("historical mean: got %.2f, want 2000", got)
	}

	if _, ok := r.Means[ProductKey{Brand: "not", Product: "Not Salxicha 250g"}]; ok {
		t.Error("product with zero observations must have no mean")
	}
}

func TestInsightLatestDateMinimum(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 5)
	r := svc.Generate(sampleTable())

	if r.LatestDate != "2024-01-02" {
		t.Fatalf("latest date: got %s", r.LatestDate)
	}

	// Only the latest date counts: 3000 at coto, not the older 1000.
	min, ok := r.Minimums[ProductKey{Brand: "not", Product: "Not Mila 220g"}]
	if !ok {
		t.Fatal("expected a minimum for Not Mila 220g")
	}
	if min.Price != 3000 || min.Retailer != models.Coto {
		t.Errorf("minimum: got %+v", min)
	}

	if _, ok := r.Minimums[ProductKey{Brand: "not", Product: "Not Salxicha 250g"}]; ok {
		t.Error("product with no priced observation today must have no minimum")
	}
}

func TestInsightMinimumTieBreak(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 5)
	table := []*models.UnifiedRow{
		insightRow("not", "2024-01-01", "Not Chorixo 240g", map[models.Retailer]models.Price{
			models.Vea:  models.NewPrice(900),
			models.Dia:  models.NewPrice(900),
			models.Coto: models.NewPrice(950),
		}),
	}
	r := svc.Generate(table)

	min := r.Minimums[ProductKey{Brand: "not", Product: "Not Chorixo 240g"}]
	// dia precedes vea in the canonical retailer order.
	if min.Retailer != models.Dia {
		t.Errorf("tie must go to the first retailer in canonical order, got %s", min.Retailer)
	}
}

func TestInsightSavingsRanking(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 5)
	r := svc.Generate(sampleTable())

	for _, opp := range r.Opportunities {
		if opp.Product == "Not Salxicha 250g" {
			t.Error("product lacking observations must never be ranked")
		}
	}

	// Not Mila: mean 2000, today's min 3000 → discount -0.5 (more expensive).
	// Not Chorixo: mean 500, min 500 → discount 0. Chorixo ranks first.
	if len(r.Opportunities) != 2 {
		t.Fatalf("expected 2 opportunities, got %d", len(r.Opportunities))
	}
	if r.Opportunities[0].Product != "Not Chorixo 240g" {
		t.Errorf("ranking order wrong: got %q first", r.Opportunities[0].Product)
	}
	if got := r.Opportunities[1].DiscountPct; got != -0.5 {
		t.Errorf("discount pct: got %.2f, want -0.5", got)
	}
}

func TestInsightTopNCut(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 2)
	table := []*models.UnifiedRow{}
	names := []string{"A", "B", "C", "D"}
	for i, name := range names {
		table = append(table, insightRow("not", "2024-01-01", name, map[models.Retailer]models.Price{
			models.Coto: models.NewPrice(float64(100 + i)),
		}))
	}

	r := svc.Generate(table)
	if len(r.Opportunities) != 2 {
		t.Errorf("top-N cut: got %d, want 2", len(r.Opportunities))
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(newTestLogger(), 5)
	r := svc.Generate(nil)
	if r.TotalRows != 0 || len(r.Opportunities) != 0 {
		t.Error("empty table must produce an empty report")
	}
}
