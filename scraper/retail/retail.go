package retail

import (
	"context"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"price-scraper/config"
	"price-scraper/models"
	"price-scraper/utils"
)

// Scraper drives the six storefront scrapes for one brand at a time.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.RetryConfig
}

// New creates a ready-to-use Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:    cfg,
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// card is the shape each storefront's extraction JS returns.
type card struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type retailerScrape struct {
	retailer models.Retailer
	fn       func(context.Context, string) ([]*models.RawListing, error)
}

// ScrapeBrand runs all six storefronts for one brand: carrefour first on its
// own, then the other five concurrently. A retailer's failure is downgraded
// to an empty result set for that retailer; it never aborts the brand. All
// result lists are complete before this returns — the unifier does not run
// incrementally.
func (s *Scraper) ScrapeBrand(brand models.Brand) map[models.Retailer][]*models.RawListing {
	s.logger.Info("[retail] Starting scrape for brand %q", brand.Query)

	allocCtx, cancel := s.newAllocator()
	defer cancel()

	results := make(map[models.Retailer][]*models.RawListing, len(models.Retailers))
	var mu sync.Mutex

	run := func(r retailerScrape) {
		listings, err := r.fn(allocCtx, brand.Query)
		if err != nil {
			s.logger.Error("[%s] scrape failed for %q: %v", r.retailer, brand.Query, err)
			listings = nil
		} else {
			s.logger.Info("[%s] %d products for %q", r.retailer, len(listings), brand.Query)
		}
		mu.Lock()
		results[r.retailer] = listings
		mu.Unlock()
	}

	run(retailerScrape{models.Carrefour, s.scrapeCarrefour})
	time.Sleep(3 * time.Second)

	pool := utils.NewWorkerPool(s.cfg.MaxConcurrency, s.cfg.RateLimitMs)
	for _, r := range []retailerScrape{
		{models.Coope, s.scrapeCoope},
		{models.Coto, s.scrapeCoto},
		{models.Dia, s.scrapeDia},
		{models.Disco, s.scrapeDisco},
		{models.Vea, s.scrapeVea},
	} {
		r := r
		pool.Submit(func() { run(r) })
	}
	pool.Wait()

	return results
}

// Pivot turns per-retailer result lists into one record per raw product
// name with the price text each retailer showed for it. Names are sorted so
// the raw file layout is deterministic; per retailer the first listing for a
// name wins.
func Pivot(byRetailer map[models.Retailer][]*models.RawListing) []*models.RawRow {
	nameSet := make(map[string]struct{})
	for _, listings := range byRetailer {
		for _, l := range listings {
			nameSet[l.Name] = struct{}{}
		}
	}

	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]*models.RawRow, 0, len(names))
	for _, name := range names {
		row := &models.RawRow{
			Name:   name,
			Prices: make(map[models.Retailer]string, len(models.Retailers)),
		}
		for _, retailer := range models.Retailers {
			for _, l := range byRetailer[retailer] {
				if l.Name == name {
					row.Prices[retailer] = l.RawPrice
					break
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Scraper) newAllocator() (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"),
	)
	if bin := s.findChromeBinary(); bin != "" {
		s.logger.Debug("[retail] Using browser binary: %s", bin)
		opts = append(opts, chromedp.ExecPath(bin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	return silentCtx, func() {
		cancelSilent()
		cancelAlloc()
	}
}

// toListings trims, filters and deduplicates extracted cards. keep may be
// nil when a storefront search is already brand-scoped.
func toListings(retailer models.Retailer, cards []card, keep func(name string) bool) []*models.RawListing {
	seen := utils.NewNameSet()
	var out []*models.RawListing
	for _, c := range cards {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		if keep != nil && !keep(name) {
			continue
		}
		if !seen.Add(name) {
			continue
		}
		out = append(out, &models.RawListing{
			Name:      name,
			RawPrice:  strings.TrimSpace(c.Price),
			Retailer:  retailer,
			ScrapedAt: time.Now(),
		})
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// scrollThrough scrolls the page down in steps so lazy-loaded product cards
// render, then jumps to the bottom.
func scrollThrough(rounds int) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		for i := 0; i < rounds; i++ {
			if err := chromedp.Evaluate(`window.scrollBy(0, 800)`, nil).Do(ctx); err != nil {
				return err
			}
			if err := chromedp.Sleep(1 * time.Second).Do(ctx); err != nil {
				return err
			}
		}
		return chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil).Do(ctx)
	})
}

// findChromeBinary locates a Chrome/Chromium binary.
func (s *Scraper) findChromeBinary() string {
	if s.cfg.ChromeBin != "" {
		return s.cfg.ChromeBin
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
