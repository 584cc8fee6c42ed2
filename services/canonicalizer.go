package services

import (
	"price-scraper/utils"
)

// SynonymTable is the hand-curated mapping from a canonical product name to
// every raw spelling the storefronts are known to use for it. Tables are
// brand-scoped and immutable configuration data.
type SynonymTable map[string][]string

// Canonicalizer resolves raw product names to canonical ones for a single
// brand. Lookups are exact (case- and whitespace-sensitive); unification
// quality depends entirely on curation coverage.
type Canonicalizer struct {
	reverse map[string]string
	logger  *utils.Logger
}

// NewCanonicalizer builds the reverse variant→canonical index once. If the
// source table registers the same variant under two canonical names, the
// last-registered mapping wins and the conflict is logged as a data-quality
// concern.
func NewCanonicalizer(table SynonymTable, logger *utils.Logger) *Canonicalizer {
	reverse := make(map[string]string)
	for canonical, variants := range table {
		for _, variant := range variants {
			if prev, dup := reverse[variant]; dup && prev != canonical {
				logger.Warn("[canon] variant %q mapped to both %q and %q — keeping the latter",
					variant, prev, canonical)
			}
			reverse[variant] = canonical
		}
	}
	return &Canonicalizer{reverse: reverse, logger: logger}
}

// Canonicalize returns the canonical name for a raw product name. Unknown
// names pass through as their own canonical name (a singleton until a human
// extends the table); the second return value reports whether the name was
// found in the curated table.
func (c *Canonicalizer) Canonicalize(raw string) (string, bool) {
	if canonical, ok := c.reverse[raw]; ok {
		return canonical, true
	}
	return raw, false
}

// Known returns the number of curated raw-name variants.
func (c *Canonicalizer) Known() int {
	return len(c.reverse)
}
