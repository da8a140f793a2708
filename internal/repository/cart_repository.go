package repository

import (
	"context"
	"fmt"

	"storefront/internal/client"
	"storefront/internal/logger"
	"storefront/internal/model"

	"go.opentelemetry.io/otel"
)

const cartAddPath = "/api/cart/add"

type CartRepository struct {
	client *client.HTTPClient
}

var CartRepositoryTracer = otel.Tracer("CartRepository")

func NewCartRepository(c *client.HTTPClient) *CartRepository {
	return &CartRepository{client: c}
}

// Add asks the API to put one unit of productID in the token owner's cart.
func (r *CartRepository) Add(ctx context.Context, token, productID string) error {
	ctx, span := CartRepositoryTracer.Start(ctx, "CartRepository.Add")
	defer span.End()
	logger.Info(ctx, "Repository")

	var out model.AddToCartResponse
	status, err := r.client.Post(cartAddPath, model.AddToCartRequest{ProductID: productID}, &out, client.RequestOptions{
		Context: ctx,
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	if !out.Success {
		return unsuccessful("add to cart", status, out.Message)
	}
	return nil
}
