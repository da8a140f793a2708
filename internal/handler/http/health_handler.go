package http

import (
	"encoding/json"
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/service"

	"go.opentelemetry.io/otel"
)

type HealthHandler struct {
	service *service.HealthService
}

var HttpHealthHandlerTracer = otel.Tracer("HttpHealthHandler")

func NewHealthHandler(service *service.HealthService) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpHealthHandlerTracer.Start(r.Context(), "HttpHealthHandler.Check")
	defer span.End()
	logger.Info(ctx, "HttpHealthHandler")

	status := h.service.Check(ctx)

	overall := service.StatusUp
	code := http.StatusOK
	if status.API == service.StatusDown {
		overall = service.StatusDown
		code = http.StatusServiceUnavailable
	}

	resp := map[string]interface{}{
		"status": overall,
		"data": map[string]string{
			"api": status.API,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
