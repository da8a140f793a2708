package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/client"

	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{name: "ok", status: http.StatusOK, want: StatusUp},
		{name: "unauthorized still reachable", status: http.StatusUnauthorized, want: StatusUp},
		{name: "server error", status: http.StatusInternalServerError, want: StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"success":false}`))
			}))
			defer srv.Close()

			hc := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
			got := NewHealthService(client.NewHTTPClientWith(srv.URL, hc)).Check(context.Background())
			require.Equal(t, tt.want, got.API)
		})
	}
}

func TestHealthCheckUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got := NewHealthService(client.NewHTTPClient(url, 0)).Check(context.Background())
	require.Equal(t, StatusDown, got.API)
}
