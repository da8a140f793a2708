package service

import (
	"net/url"
	"strings"
	"testing"

	"storefront/internal/model"

	"github.com/stretchr/testify/require"
)

var jewelry = []model.Product{
	{ID: "p1", Name: "Gold Ring", Category: "Rings", Price: 1200, Image: "/uploads/ring.jpg"},
	{ID: "p2", Name: "Silver Chain", Category: "Chains", Price: 800, Image: "/uploads/chain.jpg"},
}

func names(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "match", term: "gold", want: []string{"Gold Ring"}},
		{name: "empty keeps all", term: "", want: []string{"Gold Ring", "Silver Chain"}},
		{name: "no match", term: "zzz", want: []string{}},
		{name: "mixed case term", term: "ChAiN", want: []string{"Silver Chain"}},
		{name: "inner substring", term: "r c", want: []string{"Silver Chain"}},
		{name: "shared letter", term: "i", want: []string{"Gold Ring", "Silver Chain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, names(Filter(jewelry, tt.term)))
		})
	}
}

func TestFilterMatchesContainsForEveryProduct(t *testing.T) {
	catalog := append([]model.Product{
		{ID: "p3", Name: "ROSE gold bangle"},
		{ID: "p4", Name: ""},
	}, jewelry...)

	for _, term := range []string{"", "gold", "o", "bangle", "ring", "zzz"} {
		got := Filter(catalog, term)

		var want []model.Product
		for _, p := range catalog {
			if strings.Contains(strings.ToLower(p.Name), term) {
				want = append(want, p)
			}
		}
		require.ElementsMatch(t, want, got, "term %q", term)
		require.Equal(t, got, Filter(catalog, term), "deterministic for %q", term)
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	catalog := append([]model.Product(nil), jewelry...)
	got := Filter(catalog, "")
	got[0].Name = "changed"
	require.Equal(t, "Gold Ring", catalog[0].Name)
}

func TestSearchTerm(t *testing.T) {
	require.Equal(t, "gold", SearchTerm(url.Values{"search": {"GoLd"}}))
	require.Equal(t, "", SearchTerm(url.Values{}))
	require.Equal(t, "silver chain", SearchTermFromQuery("?search=Silver+Chain"))
	require.Equal(t, "", SearchTermFromQuery("page=1"))
}
