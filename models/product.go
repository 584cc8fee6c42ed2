package models

import "time"

// Retailer is one of the six fixed storefronts queried for prices.
type Retailer string

const (
	Carrefour Retailer = "carrefour"
	Coope     Retailer = "coope"
	Coto      Retailer = "coto"
	Dia       Retailer = "dia"
	Disco     Retailer = "disco"
	Vea       Retailer = "vea"
)

// Retailers is the canonical retailer order. Column layout, tie-breaking and
// report rendering all follow this order.
var Retailers = []Retailer{Carrefour, Coope, Coto, Dia, Disco, Vea}

// Display returns the presentation name for the retailer. Used only for
// rendering, never for matching.
func (r Retailer) Display() string {
	switch r {
	case Carrefour:
		return "Carrefour"
	case Coope:
		return "Cooperativa Obrera"
	case Coto:
		return "Coto"
	case Dia:
		return "Dia"
	case Disco:
		return "Disco"
	case Vea:
		return "Vea"
	}
	return string(r)
}

// Brand is one of the plant-based product lines tracked.
type Brand struct {
	Code    string // filename-safe code, e.g. "felices_las_vacas"
	Query   string // search term sent to the storefronts
	Display string
}

// Brands are the product lines scraped on every run.
var Brands = []Brand{
	{Code: "not", Query: "Not", Display: "Not"},
	{Code: "vegetalex", Query: "Vegetalex", Display: "Vegetalex"},
	{Code: "felices_las_vacas", Query: "Felices Las Vacas", Display: "Felices las Vacas"},
}

// BrandByCode looks a brand up by its filename code.
func BrandByCode(code string) (Brand, bool) {
	for _, b := range Brands {
		if b.Code == code {
			return b, true
		}
	}
	return Brand{}, false
}

// Price is a single observed retailer price. Valid=false is the designated
// "no observation" marker and is distinct from a price of zero.
type Price struct {
	Value float64
	Valid bool
}

// NewPrice wraps a parsed value as a valid observation.
func NewPrice(v float64) Price {
	return Price{Value: v, Valid: true}
}

// RawListing holds one unprocessed (name, price text) pair straight from a
// storefront page.
type RawListing struct {
	Name      string
	RawPrice  string
	Retailer  Retailer
	ScrapedAt time.Time
}

// RawRow is one day's wide-pivoted record for a single raw product name:
// the price text each retailer showed for it, empty when absent.
type RawRow struct {
	Name   string
	Prices map[Retailer]string
}

// UnifiedRow is one (date, canonical product) row with one parsed price per
// retailer. Immutable once written to a unified file.
type UnifiedRow struct {
	Date               string // ISO date YYYY-MM-DD
	Brand              string // brand code, tagged by the aggregator
	CanonicalName      string
	RepresentativeName string
	Prices             map[Retailer]Price
}

// SavingsOpportunity is one entry of the discount-vs-historical-mean ranking.
// Derived, never persisted.
type SavingsOpportunity struct {
	Brand       string
	Product     string
	MinPrice    float64
	Retailer    Retailer
	DiscountPct float64
}
