package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"price-scraper/models"
)

// PostgresWriter persists the canonical price table to PostgreSQL. The table
// is append-only: a (brand, fecha, producto_unificado) key already present is
// skipped, so re-ingesting a unified file cannot duplicate rows.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS precios (
			id                      SERIAL PRIMARY KEY,
			brand                   VARCHAR(50) NOT NULL,
			fecha                   DATE        NOT NULL,
			producto_unificado      TEXT        NOT NULL,
			producto_representativo TEXT        NOT NULL DEFAULT '',
			carrefour               NUMERIC(12,2),
			coope                   NUMERIC(12,2),
			coto                    NUMERIC(12,2),
			dia                     NUMERIC(12,2),
			disco                   NUMERIC(12,2),
			vea                     NUMERIC(12,2),
			created_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (brand, fecha, producto_unificado)
		);

		CREATE INDEX IF NOT EXISTS idx_precios_fecha ON precios(fecha);
		CREATE INDEX IF NOT EXISTS idx_precios_brand ON precios(brand);

		CREATE TABLE IF NOT EXISTS ingestions (
			id          UUID PRIMARY KEY,
			filename    TEXT NOT NULL UNIQUE,
			row_count   INT  NOT NULL,
			ingested_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	return err
}

// Write batch-appends unified rows, skipping keys already present.
func (pw *PostgresWriter) Write(rows []*models.UnifiedRow) error {
	if len(rows) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := pw.insertBatch(rows[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.UnifiedRow) error {
	cols := 4 + len(models.Retailers)
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, row := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")

		valueArgs = append(valueArgs, row.Brand, row.Date, row.CanonicalName, row.RepresentativeName)
		for _, retailer := range models.Retailers {
			p := row.Prices[retailer]
			if p.Valid {
				valueArgs = append(valueArgs, p.Value)
			} else {
				valueArgs = append(valueArgs, nil)
			}
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO precios (brand, fecha, producto_unificado, producto_representativo,
			carrefour, coope, coto, dia, disco, vea)
		VALUES %s
		ON CONFLICT (brand, fecha, producto_unificado) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

// RecordIngestion logs one unified file as ingested. A filename already
// logged is left untouched.
func (pw *PostgresWriter) RecordIngestion(filename string, rowCount int) error {
	_, err := pw.db.Exec(`
		INSERT INTO ingestions (id, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (filename) DO NOTHING
	`, uuid.New(), filename, rowCount)
	if err != nil {
		return fmt.Errorf("postgres: record ingestion: %w", err)
	}
	return nil
}

// FetchAll retrieves the whole canonical price table, ordered by date then
// brand — used by the insight service.
func (pw *PostgresWriter) FetchAll() ([]*models.UnifiedRow, error) {
	rows, err := pw.db.Query(`
		SELECT brand, to_char(fecha, 'YYYY-MM-DD'), producto_unificado, producto_representativo,
			carrefour, coope, coto, dia, disco, vea
		FROM precios
		ORDER BY fecha, brand, producto_unificado
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var table []*models.UnifiedRow
	for rows.Next() {
		row := &models.UnifiedRow{
			Prices: make(map[models.Retailer]models.Price, len(models.Retailers)),
		}
		prices := make([]sql.NullFloat64, len(models.Retailers))
		dest := []interface{}{&row.Brand, &row.Date, &row.CanonicalName, &row.RepresentativeName}
		for i := range prices {
			dest = append(dest, &prices[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		for i, retailer := range models.Retailers {
			if prices[i].Valid {
				row.Prices[retailer] = models.NewPrice(prices[i].Float64)
			}
		}
		table = append(table, row)
	}
	return table, rows.Err()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
