package services

import (
	"fmt"
	"path/filepath"

	"price-scraper/models"
	"price-scraper/storage"
	"price-scraper/utils"
)

// Unifier collapses one day's raw listings for one brand into one row per
// canonical product.
type Unifier struct {
	logger *utils.Logger
}

// NewUnifier creates a Unifier with the given logger.
func NewUnifier(logger *utils.Logger) *Unifier {
	return &Unifier{logger: logger}
}

// Unify groups raw rows by canonical name. Within a group the representative
// raw name is the first row in input order, and each retailer keeps the first
// non-missing parsed price encountered — duplicates usually mean the same
// listing scraped twice, so they are never averaged or overwritten.
func (u *Unifier) Unify(rows []*models.RawRow, canon *Canonicalizer, brandCode, date string) []*models.UnifiedRow {
	byCanonical := make(map[string]*models.UnifiedRow)
	var order []string
	passThrough := 0

	for _, raw := range rows {
		canonical, known := canon.Canonicalize(raw.Name)
		if !known {
			passThrough++
		}

		group, ok := byCanonical[canonical]
		if !ok {
			group = &models.UnifiedRow{
				Date:               date,
				Brand:              brandCode,
				CanonicalName:      canonical,
				RepresentativeName: raw.Name,
				Prices:             make(map[models.Retailer]models.Price, len(models.Retailers)),
			}
			byCanonical[canonical] = group
			order = append(order, canonical)
		}

		for _, retailer := range models.Retailers {
			if group.Prices[retailer].Valid {
				continue // first-seen-wins
			}
			text, ok := raw.Prices[retailer]
			if !ok {
				continue
			}
			if p := ParsePrice(text); p.Valid {
				group.Prices[retailer] = p
			}
		}
	}

	unified := make([]*models.UnifiedRow, 0, len(order))
	for _, canonical := range order {
		unified = append(unified, byCanonical[canonical])
	}

	if passThrough > 0 {
		u.logger.Warn("[unify] %s %s: %d raw names not in the synonym table — passed through as singletons",
			brandCode, date, passThrough)
	}
	u.logger.Info("[unify] %s %s: %d raw rows → %d unified products", brandCode, date, len(rows), len(unified))

	return unified
}

// UnifyFile runs the unification for one raw price file and writes the
// unified output next to the other cleaned files. The input filename decides
// brand and date; a name that does not match the contract, or a path that
// does not exist, rejects the file with no output written. A file without
// any retailer column is degraded: name unification is still reported, but
// no priced output file is produced.
//
// Returns the output path ("" for degraded input) and the number of unified
// rows written.
func (u *Unifier) UnifyFile(inputPath, outputDir string) (string, int, error) {
	filename := filepath.Base(inputPath)
	date, brandCode, err := storage.ParseRawFileName(filename)
	if err != nil {
		return "", 0, err
	}

	table, ok := SynonymsFor(brandCode)
	if !ok {
		return "", 0, fmt.Errorf("no synonym table for brand %q (file %q)", brandCode, filename)
	}

	rows, present, err := storage.ReadRaw(inputPath)
	if err != nil {
		return "", 0, err
	}

	canon := NewCanonicalizer(table, u.logger)
	unified := u.Unify(rows, canon, brandCode, date)

	if len(present) == 0 {
		u.logger.Warn("[unify] %s has no retailer columns — skipping priced output", filename)
		for i, row := range unified {
			if i >= 20 {
				break
			}
			u.logger.Debug("[unify]   %s → %s", row.RepresentativeName, row.CanonicalName)
		}
		return "", 0, nil
	}

	outputPath := filepath.Join(outputDir, storage.UnifiedFileName(brandCode, date))
	if err := storage.WriteUnified(outputPath, unified); err != nil {
		return "", 0, err
	}

	u.logger.Info("[unify] wrote %s (%d products)", outputPath, len(unified))
	return outputPath, len(unified), nil
}
