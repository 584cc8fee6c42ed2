package storage

import "price-scraper/models"

// TableWriter is the interface any canonical-price-table backend must satisfy.
type TableWriter interface {
	Write(rows []*models.UnifiedRow) error
	FetchAll() ([]*models.UnifiedRow, error)
	Close() error
}
