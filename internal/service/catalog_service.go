package service

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/logger"
	"storefront/internal/model"

	"go.opentelemetry.io/otel"
)

type ProductFinder interface {
	FindAll(ctx context.Context) ([]model.Product, error)
}

// CatalogLoader holds the catalog for one page lifetime. Load fetches at
// most once; failures leave the catalog empty and are only logged.
type CatalogLoader struct {
	repo ProductFinder

	once     sync.Once
	mu       sync.RWMutex
	products []model.Product
}

var CatalogLoaderTracer = otel.Tracer("CatalogLoader")

func NewCatalogLoader(repo ProductFinder) *CatalogLoader {
	return &CatalogLoader{repo: repo}
}

func (l *CatalogLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		ctx, span := CatalogLoaderTracer.Start(ctx, "CatalogLoader.Load")
		defer span.End()

		products, err := l.repo.FindAll(ctx)
		if err != nil {
			logger.Error(ctx, "Shop Load Error", slog.String("error", err.Error()))
			return
		}

		l.mu.Lock()
		l.products = products
		l.mu.Unlock()
		logger.Info(ctx, "Catalog loaded", slog.Int("count", len(products)))
	})
}

// Products returns a copy of the loaded catalog, empty before a successful Load.
func (l *CatalogLoader) Products() []model.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Product, len(l.products))
	copy(out, l.products)
	return out
}
