package service

import (
	"context"
	"time"

	"storefront/internal/client"
	"storefront/internal/logger"

	"go.opentelemetry.io/otel"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

type HealthService struct {
	API *client.HTTPClient
}

type HealthStatus struct {
	API string
}

var HealthServiceTracer = otel.Tracer("HealthService")

func NewHealthService(api *client.HTTPClient) *HealthService {
	return &HealthService{API: api}
}

// Check reports the shop API as DOWN on transport errors and 5xx answers.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	ctx, span := HealthServiceTracer.Start(ctx, "HealthService.Check")
	defer span.End()
	logger.Info(ctx, "Service")

	status := HealthStatus{API: StatusUp}

	resp, err := s.API.GetWithResponse("/api/products", client.RequestOptions{
		Context: ctx,
		Timeout: 2 * time.Second,
	})
	if err != nil || resp.IsServerError() {
		status.API = StatusDown
	}
	return status
}
