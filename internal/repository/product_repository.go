package repository

import (
	"context"
	"fmt"

	"storefront/internal/client"
	"storefront/internal/logger"
	"storefront/internal/model"

	"go.opentelemetry.io/otel"
)

const productsPath = "/api/products"

type ProductRepository struct {
	client *client.HTTPClient
}

var ProductRepositoryTracer = otel.Tracer("ProductRepository")

func NewProductRepository(c *client.HTTPClient) *ProductRepository {
	return &ProductRepository{client: c}
}

// FindAll fetches the whole catalog. A nil products array in a successful
// envelope is returned as an empty slice.
func (r *ProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.FindAll")
	defer span.End()
	logger.Info(ctx, "Repository")

	var out model.CatalogResponse
	status, err := r.client.Get(productsPath, &out, client.RequestOptions{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	if !out.Success {
		return nil, unsuccessful("fetch products", status, out.Message)
	}
	if out.Products == nil {
		return []model.Product{}, nil
	}
	return out.Products, nil
}

// ImageURL resolves a stored image path against the API base URL.
func (r *ProductRepository) ImageURL(p model.Product) string {
	return r.client.ResolveURL(p.Image)
}
