// Package render turns a service.View into HTML or terminal output.
package render

import (
	"fmt"
	"strconv"
)

const (
	Heading = "Explore Our Collection"
	Tagline = "Handpicked jewelry crafted with love"
)

// EmptyMessage quotes the search term verbatim.
func EmptyMessage(term string) string {
	return fmt.Sprintf("No products found for: \"%s\"", term)
}

// FormatPrice prints the price without trailing zeros, e.g. "₹ 1200" or "₹ 99.5".
func FormatPrice(symbol string, price float64) string {
	return symbol + " " + strconv.FormatFloat(price, 'f', -1, 64)
}
