package services

import (
	"regexp"
	"strconv"
	"strings"

	"price-scraper/models"
)

// priceShape validates a locale-formatted amount after currency symbols are
// stripped: "." groups thousands, "," starts the decimal part.
// Accepts "1.234,56", "2500", "0,00"; rejects "12.34", "2,5,0".
var priceShape = regexp.MustCompile(`^\d+(?:\.\d{3})*(?:,\d+)?$`)

// ParsePrice converts storefront price text into a Price. It is total: any
// input that does not look like a price (empty strings, "Precio no
// disponible", stray text) yields a missing Price, never an error. Callers
// must treat missing as "no data for this retailer", not zero.
//
// Examples:
//
//	"$1.234,56" → 1234.56
//	"$ 2.500"   → 2500
//	"$0,00"     → 0
//	"Sin precio" → missing
func ParsePrice(raw string) models.Price {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.Price{}
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), "")

	if !priceShape.MatchString(s) {
		return models.Price{}
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Price{}
	}
	return models.NewPrice(v)
}
