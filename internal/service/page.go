package service

import (
	"context"
	"net/url"

	"storefront/internal/model"
)

type ImageResolver interface {
	ImageURL(p model.Product) string
}

type Card struct {
	Product  model.Product
	ImageURL string
}

// View is what a renderer needs for one frame of the shop page.
type View struct {
	Search string
	Cards  []Card
}

func (v View) Empty() bool {
	return len(v.Cards) == 0
}

// Page composes the catalog loader, the search filter and the cart adder.
type Page struct {
	catalog *CatalogLoader
	cart    *CartAdder
	images  ImageResolver
}

func NewPage(catalog *CatalogLoader, cart *CartAdder, images ImageResolver) *Page {
	return &Page{catalog: catalog, cart: cart, images: images}
}

// Mount loads the catalog. Repeated calls do not fetch again.
func (p *Page) Mount(ctx context.Context) {
	p.catalog.Load(ctx)
}

// Render derives the view for the given query string values.
func (p *Page) Render(q url.Values) View {
	return p.RenderSearch(SearchTerm(q))
}

// RenderSearch derives the view for an already lower-cased search term.
func (p *Page) RenderSearch(term string) View {
	filtered := Filter(p.catalog.Products(), term)
	cards := make([]Card, len(filtered))
	for i, prod := range filtered {
		cards[i] = Card{Product: prod, ImageURL: p.images.ImageURL(prod)}
	}
	return View{Search: term, Cards: cards}
}

func (p *Page) AddToCart(ctx context.Context, productID string) Outcome {
	return p.cart.Add(ctx, productID)
}
