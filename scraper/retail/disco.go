package retail

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"

	"price-scraper/models"
)

// scrapeDisco scrapes Disco's VTEX search results, paging with the numbered
// pagination buttons.
func (s *Scraper) scrapeDisco(allocCtx context.Context, query string) ([]*models.RawListing, error) {
	searchURL := fmt.Sprintf("https://www.disco.com.ar/%s?_q=%s&map=ft",
		url.PathEscape(query), url.QueryEscape(query))

	var all []card

	err := s.retry.Do("disco-search", func() error {
		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, 180*time.Second)
		defer cancelTimeout()

		all = nil
		if err := chromedp.Run(ctx,
			chromedp.Navigate(searchURL),
			chromedp.WaitVisible("a.vtex-product-summary-2-x-clearLink", chromedp.ByQuery),
		); err != nil {
			return err
		}

		for page := 1; page <= s.cfg.MaxPages; page++ {
			var cards []card
			if err := chromedp.Run(ctx,
				scrollThrough(10),
				chromedp.Sleep(2*time.Second),
				chromedp.Evaluate(`
					(function() {
						var out = [];
						var cards = document.querySelectorAll('a.vtex-product-summary-2-x-clearLink');
						for (var i = 0; i < cards.length; i++) {
							var nameEl = cards[i].querySelector('span.vtex-product-summary-2-x-productBrand');
							var priceEl = cards[i].querySelector('#priceContainer');
							out.push({
								name: nameEl ? nameEl.innerText.trim() : '',
								price: priceEl ? priceEl.innerText.trim() : ''
							});
						}
						return out;
					})()
				`, &cards),
			); err != nil {
				return err
			}
			all = append(all, cards...)

			var advanced bool
			if err := chromedp.Run(ctx,
				chromedp.Evaluate(fmt.Sprintf(`
					(function() {
						var btn = document.querySelector('button[value="%d"]');
						if (!btn) return false;
						btn.click();
						return true;
					})()
				`, page+1), &advanced),
			); err != nil {
				return err
			}
			if !advanced {
				break
			}
			if err := chromedp.Run(ctx,
				chromedp.Sleep(4*time.Second),
				chromedp.WaitVisible("a.vtex-product-summary-2-x-clearLink", chromedp.ByQuery),
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	keep := func(name string) bool { return containsFold(name, query) }
	return toListings(models.Disco, all, keep), nil
}
