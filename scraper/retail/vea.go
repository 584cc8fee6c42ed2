package retail

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"

	"price-scraper/models"
)

// scrapeVea scrapes Vea's VTEX search results. The page lazy-loads as it
// scrolls, so the run keeps scrolling until the card count stops growing.
func (s *Scraper) scrapeVea(allocCtx context.Context, query string) ([]*models.RawListing, error) {
	searchURL := fmt.Sprintf("https://www.vea.com.ar/%s?_q=%s&map=ft",
		url.PathEscape(query), url.QueryEscape(query))

	var cards []card

	err := s.retry.Do("vea-search", func() error {
		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, 180*time.Second)
		defer cancelTimeout()

		cards = nil
		if err := chromedp.Run(ctx,
			chromedp.Navigate(searchURL),
			chromedp.WaitVisible("div.vtex-product-summary-2-x-nameContainer", chromedp.ByQuery),
		); err != nil {
			return err
		}

		// Scroll until the card count is stable for a few rounds.
		lastCount, retries := 0, 0
		for retries < 10 {
			var count int
			if err := chromedp.Run(ctx,
				chromedp.Evaluate(`window.scrollBy(0, 500)`, nil),
				chromedp.Sleep(1*time.Second),
				chromedp.Evaluate(`document.querySelectorAll('div.vtex-product-summary-2-x-nameContainer').length`, &count),
			); err != nil {
				return err
			}
			if count == lastCount {
				retries++
			} else {
				retries = 0
				lastCount = count
			}
		}

		return chromedp.Run(ctx,
			chromedp.Sleep(2*time.Second),
			chromedp.Evaluate(`
				(function() {
					var out = [];
					var names = document.querySelectorAll('div.vtex-product-summary-2-x-nameContainer');
					for (var i = 0; i < names.length; i++) {
						var nameEl = names[i].querySelector('span.vtex-product-summary-2-x-productBrand');
						var name = nameEl ? nameEl.innerText.trim() : '';

						var price = '';
						var section = names[i].closest('section');
						if (section) {
							var priceEl = section.querySelector('div#priceContainer');
							if (priceEl) price = priceEl.innerText.trim();
						}

						out.push({name: name, price: price});
					}
					return out;
				})()
			`, &cards),
		)
	})
	if err != nil {
		return nil, err
	}

	keep := func(name string) bool { return containsFold(name, query) }
	return toListings(models.Vea, cards, keep), nil
}
