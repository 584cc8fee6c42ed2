package retail

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"

	"price-scraper/models"
)

// scrapeCarrefour walks the VTEX search result pages for the brand query.
// Strikethrough (pre-discount) prices are skipped in favour of the current
// selling price.
func (s *Scraper) scrapeCarrefour(allocCtx context.Context, query string) ([]*models.RawListing, error) {
	var all []card

	for page := 1; page <= s.cfg.MaxPages; page++ {
		pageURL := fmt.Sprintf("https://www.carrefour.com.ar/%s?_q=%s&map=ft&page=%d",
			url.PathEscape(query), url.QueryEscape(query), page)

		var cards []card
		err := s.retry.Do(fmt.Sprintf("carrefour-page-%d", page), func() error {
			ctx, cancel := chromedp.NewContext(allocCtx)
			defer cancel()
			ctx, cancelTimeout := context.WithTimeout(ctx, 90*time.Second)
			defer cancelTimeout()

			cards = nil
			return chromedp.Run(ctx,
				chromedp.Navigate(pageURL),
				chromedp.Sleep(3*time.Second),
				scrollThrough(10),
				chromedp.Sleep(3*time.Second),
				chromedp.Evaluate(`
					(function() {
						var out = [];
						var cards = document.querySelectorAll('div.valtech-carrefourar-search-result-3-x-gallery > div > section > a');
						for (var i = 0; i < cards.length; i++) {
							var nameEl = cards[i].querySelector('span.vtex-product-summary-2-x-productBrand');
							var name = nameEl ? nameEl.innerText.trim() : '';

							var price = '';
							var spans = cards[i].querySelectorAll('span.valtech-carrefourar-product-price-0-x-currencyContainer');
							for (var j = 0; j < spans.length; j++) {
								var cls = spans[j].className + ' ' +
									(spans[j].parentElement ? spans[j].parentElement.className : '');
								if (cls.indexOf('strikethrough') === -1) {
									price = spans[j].innerText.trim();
									break;
								}
							}

							out.push({name: name, price: price});
						}
						return out;
					})()
				`, &cards),
			)
		})
		if err != nil {
			if page == 1 {
				return nil, err
			}
			s.logger.Warn("[carrefour] page %d failed, keeping %d cards collected so far: %v", page, len(all), err)
			break
		}

		if len(cards) == 0 {
			break
		}
		all = append(all, cards...)
		time.Sleep(2 * time.Second)
	}

	keep := func(name string) bool {
		if containsFold(name, query) {
			return true
		}
		// Felices Las Vacas sells its yogurt line under the Jogurtti name.
		return containsFold(query, "felices las vacas") && containsFold(name, "jogurtti")
	}
	return toListings(models.Carrefour, all, keep), nil
}
