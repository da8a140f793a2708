package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"storefront/internal/config"
	"storefront/internal/credential"
	"storefront/internal/model"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type shopAPI struct {
	cartAdds atomic.Int32
}

func (s *shopAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/products":
		_ = json.NewEncoder(w).Encode(model.CatalogResponse{Success: true, Products: []model.Product{
			{ID: "p1", Name: "Gold Ring", Category: "Rings", Price: 1200, Image: "/r.jpg"},
			{ID: "p2", Name: "Silver Chain", Category: "Chains", Price: 800, Image: "/c.jpg"},
		}})
	case "/api/cart/add":
		var body model.AddToCartRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		ok := r.Header.Get("Authorization") == "Bearer tok" && body.ProductID != "missing"
		if ok {
			s.cartAdds.Add(1)
		}
		_ = json.NewEncoder(w).Encode(model.AddToCartResponse{Success: ok})
	default:
		http.NotFound(w, r)
	}
}

func withConfig(t *testing.T) (*shopAPI, string) {
	t.Helper()
	api := &shopAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	storage := filepath.Join(t.TempDir(), "storage.yaml")
	prev := cfg
	cfg = &config.Config{
		AppName:        "storefront",
		APIURL:         srv.URL,
		StoragePath:    storage,
		Theme:          config.ThemeLight,
		CurrencySymbol: "₹",
	}
	t.Cleanup(func() { cfg = prev })
	return api, storage
}

func testCommand(stdin string) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetContext(context.Background())
	return cmd, out
}

func TestBrowseFilters(t *testing.T) {
	withConfig(t)
	browseSearch, browseColumns = "SILVER", 2
	t.Cleanup(func() { browseSearch, browseColumns = "", 3 })

	cmd, out := testCommand("")
	require.NoError(t, runBrowse(cmd, nil))
	require.Contains(t, out.String(), "Silver Chain")
	require.NotContains(t, out.String(), "Gold Ring")
}

func TestBrowseNoMatch(t *testing.T) {
	withConfig(t)
	browseSearch = "zzz"
	t.Cleanup(func() { browseSearch = "" })

	cmd, out := testCommand("")
	require.NoError(t, runBrowse(cmd, nil))
	require.Contains(t, out.String(), `"zzz"`)
}

func TestAddRequiresLogin(t *testing.T) {
	api, _ := withConfig(t)

	cmd, out := testCommand("")
	require.Error(t, runAdd(cmd, []string{"p1"}))
	require.Contains(t, out.String(), "Please login first!")
	require.Contains(t, out.String(), "Cart +0")
	require.Zero(t, api.cartAdds.Load())
}

func TestLoginAddLogout(t *testing.T) {
	api, storage := withConfig(t)

	cmd, out := testCommand("tok\n")
	require.NoError(t, runLogin(cmd, nil))
	require.Contains(t, out.String(), storage)

	token, ok := credential.NewStore(storage).Token(context.Background())
	require.True(t, ok)
	require.Equal(t, "tok", token)

	cmd, out = testCommand("")
	require.NoError(t, runAdd(cmd, []string{"p1", "p2", "p1"}))
	require.Equal(t, 3, strings.Count(out.String(), "Added to Cart!"))
	require.Contains(t, out.String(), "Cart +3")
	require.EqualValues(t, 3, api.cartAdds.Load())

	cmd, out = testCommand("")
	require.Error(t, runAdd(cmd, []string{"p1", "missing"}))
	require.Contains(t, out.String(), "Failed to add item.")
	require.Contains(t, out.String(), "Cart +1")

	cmd, _ = testCommand("")
	require.NoError(t, logoutCmd.RunE(cmd, nil))
	_, ok = credential.NewStore(storage).Token(context.Background())
	require.False(t, ok)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	withConfig(t)

	cmd, _ := testCommand("   \n")
	require.Error(t, runLogin(cmd, nil))

	cmd, out := testCommand("")
	require.NoError(t, runLogin(cmd, []string{"arg-token"}))
	require.Contains(t, out.String(), "Token saved")
}
