package retail

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"price-scraper/models"
)

// scrapeCoope searches La Coope en Casa through its on-site search box and
// pages through the results. The storefront renders prices as separate
// integer/decimal nodes, so the extraction JS reassembles "$entero,decimal".
func (s *Scraper) scrapeCoope(allocCtx context.Context, query string) ([]*models.RawListing, error) {
	var all []card

	err := s.retry.Do("coope-search", func() error {
		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, 180*time.Second)
		defer cancelTimeout()

		all = nil
		if err := chromedp.Run(ctx,
			chromedp.Navigate("https://www.lacoopeencasa.coop/"),
			chromedp.WaitVisible("input#idInputBusqueda", chromedp.ByQuery),
			chromedp.SendKeys("input#idInputBusqueda", query+kb.Enter, chromedp.ByQuery),
			chromedp.WaitVisible("div.card-content", chromedp.ByQuery),
		); err != nil {
			return err
		}

		for page := 0; page < s.cfg.MaxPages; page++ {
			var cards []card
			if err := chromedp.Run(ctx,
				scrollThrough(10),
				chromedp.Sleep(2*time.Second),
				chromedp.Evaluate(`
					(function() {
						var out = [];
						var cards = document.querySelectorAll('div.card-content');
						for (var i = 0; i < cards.length; i++) {
							var nameEl = cards[i].querySelector('div.card-descripcion p.text-capitalize');
							var name = nameEl ? nameEl.innerText.trim() : '';

							var entero = cards[i].querySelector('div.precio-entero');
							var decimal = cards[i].querySelector('div.precio-decimal');
							var price = '';
							if (entero) {
								price = '$' + entero.innerText.trim() +
									',' + (decimal ? decimal.innerText.trim() : '00');
								price = price.replace(/\s+/g, '');
							}

							out.push({name: name, price: price});
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
						var arrow = document.querySelector("ul.pagination li.waves-effect svg use[href*='derecha']");
						if (!arrow) return false;
						var li = arrow.closest('li');
						if (!li) return false;
						li.click();
						return true;
					})()
				`, &advanced),
			); err != nil {
				return err
			}
			if !advanced {
				break
			}
			if err := chromedp.Run(ctx,
				chromedp.Sleep(4*time.Second),
				chromedp.WaitVisible("div.card-content", chromedp.ByQuery),
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Search matches loosely; drop the classic false positives for "not".
	keep := func(name string) bool {
		return !containsFold(name, "pinot") && !containsFold(name, "notebook")
	}
	return toListings(models.Coope, all, keep), nil
}
