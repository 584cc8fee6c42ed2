package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"price-scraper/config"
	"price-scraper/models"
	"price-scraper/scraper/retail"
	"price-scraper/services"
	"price-scraper/storage"
	"price-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Price Scraping System starting ===")
	logger.Info("Config — concurrency: %d | rate: %dms | retries: %d | max pages: %d",
		cfg.MaxConcurrency, cfg.RateLimitMs, cfg.MaxRetries, cfg.MaxPages)

	pg, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Error("PostgreSQL unavailable, continuing file-only: %v", err)
		pg = nil
	} else {
		defer pg.Close()
	}

	date := time.Now().Format("2006-01-02")
	scraper := retail.New(cfg, logger)

	brands := models.Brands
	if len(os.Args) > 1 {
		query := strings.Join(os.Args[1:], " ")
		code := strings.ToLower(strings.ReplaceAll(query, " ", "_"))
		if known, ok := models.BrandByCode(code); ok {
			brands = []models.Brand{known}
		} else {
			logger.Warn("Unknown brand %q — scraping it ad hoc, unification will reject it", query)
			brands = []models.Brand{{Code: code, Query: query, Display: query}}
		}
	}

	for i, brand := range brands {
		logger.Section("BRAND %d/%d: %s", i+1, len(brands), brand.Query)

		results := scraper.ScrapeBrand(brand)
		total := 0
		for _, listings := range results {
			total += len(listings)
		}
		if total == 0 {
			logger.Warn("No products found for %q — skipping raw file", brand.Query)
			continue
		}

		rows := retail.Pivot(results)
		rawPath := filepath.Join(cfg.RawDataPath, storage.RawFileName(date, brand.Code))
		if err := storage.WriteRaw(rawPath, date, rows); err != nil {
			logger.Error("Raw file write failed for %q: %v", brand.Query, err)
			continue
		}
		logger.Info("Raw prices saved to %s (%d products)", rawPath, len(rows))

		if i < len(brands)-1 {
			time.Sleep(time.Duration(cfg.BrandPauseSec) * time.Second)
		}
	}

	unifyPending(cfg, logger, pg)

	table, err := services.Aggregate(cfg.CleanedDataPath, logger)
	if err != nil {
		logger.Error("Aggregation failed: %v", err)
		os.Exit(1)
	}
	if len(table) == 0 {
		logger.Error("Canonical price table is empty. Exiting.")
		os.Exit(1)
	}

	if pg != nil {
		if err := pg.Write(table); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else {
			logger.Info("Canonical table stored in PostgreSQL (table: precios)")
			if dbTable, err := pg.FetchAll(); err == nil {
				table = dbTable
			} else {
				logger.Error("Failed to fetch canonical table from DB: %v", err)
			}
		}
	}

	insightSvc := services.NewInsightService(logger, cfg.TopSavings)
	report := insightSvc.Generate(table)
	insightSvc.Print(report)
}

// unifyPending unifies every raw file still waiting in the raw data
// directory, archiving each processed file so it is never unified twice.
// Degraded inputs (no retailer columns) stay in place for a human to look at.
func unifyPending(cfg *config.Config, logger *utils.Logger, pg *storage.PostgresWriter) {
	entries, err := os.ReadDir(cfg.RawDataPath)
	if err != nil {
		logger.Error("Cannot read raw data dir %s: %v", cfg.RawDataPath, err)
		return
	}

	unifier := services.NewUnifier(logger)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		inputPath := filepath.Join(cfg.RawDataPath, entry.Name())

		outputPath, rowCount, err := unifier.UnifyFile(inputPath, cfg.CleanedDataPath)
		if err != nil {
			logger.Error("Unification rejected %s: %v", entry.Name(), err)
			continue
		}
		if outputPath == "" {
			continue
		}

		if err := storage.ArchiveRaw(inputPath, cfg.UsedDataPath); err != nil {
			logger.Error("Archive failed for %s: %v", entry.Name(), err)
			continue
		}

		if pg != nil {
			if err := pg.RecordIngestion(filepath.Base(outputPath), rowCount); err != nil {
				logger.Warn("Ingestion log failed for %s: %v", outputPath, err)
			}
		}
	}
}
