package retail

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"price-scraper/models"
)

// scrapeDia scrapes Dia's VTEX search results. Names and selling prices live
// in parallel node lists, so the extraction JS pairs them up by index.
func (s *Scraper) scrapeDia(allocCtx context.Context, query string) ([]*models.RawListing, error) {
	searchURL := fmt.Sprintf("https://diaonline.supermercadosdia.com.ar/%s?_q=%s&map=ft",
		url.PathEscape(strings.ToLower(query)), url.QueryEscape(query))

	var cards []card

	err := s.retry.Do("dia-search", func() error {
		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, 120*time.Second)
		defer cancelTimeout()

		cards = nil
		return chromedp.Run(ctx,
			chromedp.Navigate(searchURL),
			chromedp.Sleep(3*time.Second),
			scrollThrough(12),
			chromedp.WaitVisible("div.vtex-product-summary-2-x-nameContainer span.vtex-product-summary-2-x-productBrand", chromedp.ByQuery),
			chromedp.Evaluate(`
				(function() {
					var names = document.querySelectorAll('div.vtex-product-summary-2-x-nameContainer span.vtex-product-summary-2-x-productBrand');
					var prices = document.querySelectorAll('div.pr0.items-stretch.flex span.diaio-store-5-x-sellingPriceValue');
					var n = Math.min(names.length, prices.length);
					var out = [];
					for (var i = 0; i < n; i++) {
						out.push({
							name: names[i].innerText.trim(),
							price: prices[i].innerText.trim()
						});
					}
					return out;
				})()
			`, &cards),
		)
	})
	if err != nil {
		return nil, err
	}

	// Dia's search is loose for multi-word brands; require the brand in the
	// name for felices las vacas only, matching the storefront's behaviour
	// for the single-word brands.
	var keep func(name string) bool
	if containsFold(query, "felices las vacas") {
		keep = func(name string) bool { return containsFold(name, query) }
	}
	return toListings(models.Dia, cards, keep), nil
}
