package service

import (
	"net/url"
	"strings"

	"storefront/internal/model"
)

const SearchParam = "search"

// SearchTerm reads the lower-cased search parameter, "" when absent.
func SearchTerm(q url.Values) string {
	return strings.ToLower(q.Get(SearchParam))
}

// SearchTermFromQuery parses a raw query string such as "search=Gold".
// An unparsable query yields whatever pairs parsed before the error.
func SearchTermFromQuery(rawQuery string) string {
	q, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return SearchTerm(q)
}

// Filter keeps products whose name contains term, ignoring case, in catalog
// order. An empty term keeps everything.
func Filter(products []model.Product, term string) []model.Product {
	term = strings.ToLower(term)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}
