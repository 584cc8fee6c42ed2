package services

import (
	"fmt"
	"sort"
	"strings"

	"price-scraper/models"
	"price-scraper/utils"
)

// ProductKey identifies one canonical product. Brand is part of the key:
// canonical names are only unique within a brand.
type ProductKey struct {
	Brand   string
	Product string
}

// Minimum is today's lowest observed price for a product and the retailer
// offering it.
type Minimum struct {
	Price    float64
	Retailer models.Retailer
}

// InsightReport holds the computed analytics over the canonical price table.
type InsightReport struct {
	TotalRows     int
	Products      int
	LatestDate    string
	RowsByBrand   map[string]int
	Means         map[ProductKey]float64
	Minimums      map[ProductKey]Minimum
	Opportunities []*models.SavingsOpportunity
}

// InsightService derives read-only analytics from the canonical price table.
type InsightService struct {
	logger *utils.Logger
	topN   int
}

// NewInsightService creates an InsightService ranking the top n savings.
func NewInsightService(logger *utils.Logger, topN int) *InsightService {
	return &InsightService{logger: logger, topN: topN}
}

// Generate computes historical means, today's minimums and the savings
// ranking. Missing retailer values are never counted; products without a
// single observation are excluded rather than defaulted.
func (s *InsightService) Generate(table []*models.UnifiedRow) *InsightReport {
	report := &InsightReport{
		RowsByBrand: make(map[string]int),
		Means:       make(map[ProductKey]float64),
		Minimums:    make(map[ProductKey]Minimum),
	}

	if len(table) == 0 {
		return report
	}

	report.TotalRows = len(table)
	for _, row := range table {
		report.RowsByBrand[row.Brand]++
		if row.Date > report.LatestDate {
			report.LatestDate = row.Date
		}
	}

	// Historical mean: all non-missing observations across retailers and dates.
	sums := make(map[ProductKey]float64)
	counts := make(map[ProductKey]int)
	for _, row := range table {
		key := ProductKey{Brand: row.Brand, Product: row.CanonicalName}
		for _, retailer := range models.Retailers {
			if p := row.Prices[retailer]; p.Valid {
				sums[key] += p.Value
				counts[key]++
			}
		}
	}
	for key, n := range counts {
		report.Means[key] = sums[key] / float64(n)
	}
	report.Products = len(counts)

	// Today's minimum: most recent date only; ties go to the first retailer
	// in canonical order.
	for _, row := range table {
		if row.Date != report.LatestDate {
			continue
		}
		key := ProductKey{Brand: row.Brand, Product: row.CanonicalName}
		if _, done := report.Minimums[key]; done {
			continue
		}
		found := false
		var min Minimum
		for _, retailer := range models.Retailers {
			p := row.Prices[retailer]
			if !p.Valid {
				continue
			}
			if !found || p.Value < min.Price {
				min = Minimum{Price: p.Value, Retailer: retailer}
				found = true
			}
		}
		if found {
			report.Minimums[key] = min
		}
	}

	// Savings ranking: products lacking either quantity are excluded before
	// ranking, never given a default of 0.
	for key, min := range report.Minimums {
		mean, ok := report.Means[key]
		if !ok || mean <= 0 {
			continue
		}
		report.Opportunities = append(report.Opportunities, &models.SavingsOpportunity{
			Brand:       key.Brand,
			Product:     key.Product,
			MinPrice:    round2(min.Price),
			Retailer:    min.Retailer,
			DiscountPct: 1 - min.Price/mean,
		})
	}
	sort.Slice(report.Opportunities, func(i, j int) bool {
		a, b := report.Opportunities[i], report.Opportunities[j]
		if a.DiscountPct != b.DiscountPct {
			return a.DiscountPct > b.DiscountPct
		}
		return a.Product < b.Product
	})
	if len(report.Opportunities) > s.topN {
		report.Opportunities = report.Opportunities[:s.topN]
	}

	return report
}

// Print renders the report to the terminal.
func (s *InsightService) Print(r *InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🛒 PRICE COMPARISON INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Rows on record     : \033[1m%d\033[0m\n", r.TotalRows)
	fmt.Printf("  Canonical products : \033[1m%d\033[0m\n", r.Products)
	if r.LatestDate != "" {
		fmt.Printf("  Latest date        : \033[1m%s\033[0m\n", r.LatestDate)
	}
	for _, brand := range models.Brands {
		if n := r.RowsByBrand[brand.Code]; n > 0 {
			fmt.Printf("  %-18s : %d rows\n", brand.Display, n)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Today's Savings vs Historical Average\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.Opportunities) == 0 {
		fmt.Printf("  No savings opportunities found\n")
	} else {
		for i, opp := range r.Opportunities {
			fmt.Printf("  \033[1m%d.\033[0m %-42s \033[1;32m$%.2f\033[0m  \033[1;31m%.0f%% off\033[0m\n",
				i+1, truncate(opp.Product, 42), opp.MinPrice, opp.DiscountPct*100)
			fmt.Printf("     at %s\n", opp.Retailer.Display())
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
