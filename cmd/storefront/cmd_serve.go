package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/credential"
	handler "storefront/internal/handler/http"
	"storefront/internal/logger"
	middleware_http "storefront/internal/middleware/http"
	"storefront/internal/service"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shop page over HTTP",
	Long: `Serve a server-rendered shop page on APP_PORT.

  GET  /shop?search=term   product grid
  POST /shop/cart          add productId to the cart (token cookie)
  GET  /healthz            shop API reachability`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.Instance()
	a := newApp(cfg)

	badge := &handler.CartBadge{}
	page := a.page(credential.FromContext, badge, nil)

	shopHandler := handler.NewShopHandler(page, badge, a.palette, cfg.CurrencySymbol)
	healthHandler := handler.NewHealthHandler(service.NewHealthService(a.client))

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      middleware_http.TraceMiddleware(handler.NewMux(shopHandler, healthHandler)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server failed", slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
