package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"storefront/internal/credential"
	"storefront/internal/logger"
	"storefront/internal/render"
	"storefront/internal/service"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// TokenCookie carries the session token on the HTML surface.
const TokenCookie = "token"

// CartBadge is the server-owned cart counter shown in the page header.
type CartBadge struct {
	n atomic.Int64
}

func (b *CartBadge) Increment()   { b.n.Add(1) }
func (b *CartBadge) Value() int64 { return b.n.Load() }

type ShopHandler struct {
	page     *service.Page
	badge    *CartBadge
	palette  render.Palette
	currency string
}

var HttpShopHandlerTracer = otel.Tracer("HttpShopHandler")

// NewShopHandler expects page's cart adder to read credentials from
// credential.FromContext and to count into badge.
func NewShopHandler(page *service.Page, badge *CartBadge, palette render.Palette, currency string) *ShopHandler {
	return &ShopHandler{
		page:     page,
		badge:    badge,
		palette:  palette,
		currency: currency,
	}
}

func (h *ShopHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpShopHandlerTracer.Start(r.Context(), "HttpShopHandler.Show")
	defer span.End()
	logger.Info(ctx, "HttpShopHandler.Show")

	h.page.Mount(ctx)
	view := h.page.Render(r.URL.Query())
	span.SetAttributes(
		attribute.String("shop.search", view.Search),
		attribute.Int("shop.results", len(view.Cards)),
	)

	h.write(ctx, w, http.StatusOK, view, "")
}

func (h *ShopHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpShopHandlerTracer.Start(r.Context(), "HttpShopHandler.AddToCart")
	defer span.End()
	logger.Info(ctx, "HttpShopHandler.AddToCart")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form payload", http.StatusBadRequest)
		return
	}
	productID := r.PostForm.Get("productId")
	if productID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	if c, err := r.Cookie(TokenCookie); err == nil {
		ctx = credential.WithToken(ctx, c.Value)
	}

	outcome := h.page.AddToCart(ctx, productID)

	status := http.StatusOK
	switch outcome {
	case service.OutcomeLoginRequired:
		status = http.StatusUnauthorized
	case service.OutcomeFailed:
		status = http.StatusBadGateway
	}

	h.page.Mount(ctx)
	view := h.page.RenderSearch(service.SearchTerm(r.PostForm))
	h.write(ctx, w, status, view, outcome.Message())
}

func (h *ShopHandler) write(ctx context.Context, w http.ResponseWriter, status int, view service.View, notice string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := render.HTML(w, render.HTMLPage{
		View:      view,
		Palette:   h.palette,
		Currency:  h.currency,
		CartCount: h.badge.Value(),
		Notice:    notice,
	})
	if err != nil {
		logger.Error(ctx, "Failed to render shop page", slog.String("error", err.Error()))
	}
}
