package retail

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"

	"price-scraper/models"
)

// scrapeCoto pages through Coto Digital's category search, following the
// "Siguiente" pagination link until it is disabled or gone.
func (s *Scraper) scrapeCoto(allocCtx context.Context, query string) ([]*models.RawListing, error) {
	searchURL := fmt.Sprintf(
		"https://www.cotodigital.com.ar/sitios/cdigi/categoria?_dyncharset=utf-8&Dy=1&Ntt=%s&idSucursal=200",
		url.QueryEscape(query))

	var all []card

	err := s.retry.Do("coto-search", func() error {
		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, 180*time.Second)
		defer cancelTimeout()

		all = nil
		if err := chromedp.Run(ctx,
			chromedp.Navigate(searchURL),
			chromedp.Sleep(5*time.Second),
		); err != nil {
			return err
		}

		for page := 0; page < s.cfg.MaxPages; page++ {
			if err := chromedp.Run(ctx,
				chromedp.WaitVisible("div.centro-precios", chromedp.ByQuery),
			); err != nil {
				// No result cards on this page; keep whatever came before.
				break
			}

			var cards []card
			if err := chromedp.Run(ctx,
				chromedp.Evaluate(`
					(function() {
						var out = [];
						var cards = document.querySelectorAll('div.centro-precios');
						for (var i = 0; i < cards.length; i++) {
							var nameEl = cards[i].querySelector('h3.nombre-producto');
							var priceEl = cards[i].querySelector('h4.card-title');
							if (!nameEl || !priceEl) continue;
							out.push({
								name: nameEl.innerText.trim(),
								price: priceEl.innerText.trim()
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
				chromedp.Evaluate(`
					(function() {
						var links = document.querySelectorAll('a.page-link.page-back-next');
						for (var i = 0; i < links.length; i++) {
							if (links[i].innerText.indexOf('Siguiente') === -1) continue;
							if (links[i].className.indexOf('disabled') !== -1) return false;
							links[i].click();
							return true;
						}
						return false;
					})()
				`, &advanced),
			); err != nil {
				return err
			}
			if !advanced {
				break
			}
			if err := chromedp.Run(ctx, chromedp.Sleep(5*time.Second)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toListings(models.Coto, all, nil), nil
}
