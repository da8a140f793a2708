package main

import (
	"time"

	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/credential"
	"storefront/internal/render"
	"storefront/internal/repository"
	"storefront/internal/service"
)

// app holds the wiring shared by every subcommand.
type app struct {
	cfg      *config.Config
	client   *client.HTTPClient
	products *repository.ProductRepository
	cart     *repository.CartRepository
	store    *credential.Store
	palette  render.Palette
}

func newApp(cfg *config.Config) *app {
	c := client.NewHTTPClient(cfg.APIURL, time.Duration(cfg.HTTPTimeoutMs)*time.Millisecond)
	return &app{
		cfg:      cfg,
		client:   c,
		products: repository.NewProductRepository(c),
		cart:     repository.NewCartRepository(c),
		store:    credential.NewStore(cfg.StoragePath),
		palette:  render.PaletteFor(cfg.Theme),
	}
}

func (a *app) page(creds credential.Provider, counter service.Counter, notifier service.Notifier) *service.Page {
	return service.NewPage(
		service.NewCatalogLoader(a.products),
		service.NewCartAdder(a.cart, creds, counter, notifier),
		a.products,
	)
}

func (a *app) terminal() *render.Terminal {
	return render.NewTerminal(a.palette, a.cfg.CurrencySymbol)
}
