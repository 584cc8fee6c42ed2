package storage

import (
	"fmt"
	"regexp"
)

// File-name contracts shared by the acquisition and unification stages. The
// brand and ISO date ride in the name; the aggregator reads them back from
// there.
var (
	rawFilePattern     = regexp.MustCompile(`^precios_async_(\d{4}-\d{2}-\d{2})_(\w+)\.csv$`)
	unifiedFilePattern = regexp.MustCompile(`^productos_(\w+)_unificados_(\d{4}-\d{2}-\d{2})\.csv$`)
)

// RawFileName builds the per-brand-per-day raw price filename.
func RawFileName(date, brandCode string) string {
	return fmt.Sprintf("precios_async_%s_%s.csv", date, brandCode)
}

// ParseRawFileName extracts date and brand from a raw filename. A name that
// does not match the contract is a rejected input.
func ParseRawFileName(name string) (date, brandCode string, err error) {
	m := rawFilePattern.FindStringSubmatch(name)
	if m == nil {
		return "", "", fmt.Errorf("raw file %q does not match precios_async_<YYYY-MM-DD>_<brand>.csv", name)
	}
	return m[1], m[2], nil
}

// UnifiedFileName builds the per-brand-per-day unified filename.
func UnifiedFileName(brandCode, date string) string {
	return fmt.Sprintf("productos_%s_unificados_%s.csv", brandCode, date)
}

// ParseUnifiedFileName extracts brand and date from a unified filename.
func ParseUnifiedFileName(name string) (brandCode, date string, err error) {
	m := unifiedFilePattern.FindStringSubmatch(name)
	if m == nil {
		return "", "", fmt.Errorf("unified file %q does not match productos_<brand>_unificados_<YYYY-MM-DD>.csv", name)
	}
	return m[1], m[2], nil
}
