package render

import (
	"bytes"
	"strings"
	"testing"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/stretchr/testify/require"
)

func sampleView() service.View {
	return service.View{
		Search: "",
		Cards: []service.Card{
			{
				Product:  model.Product{ID: "p1", Name: "Gold Ring", Category: "Rings", Price: 1200, Image: "/r.jpg"},
				ImageURL: "https://api.example.com/r.jpg",
			},
			{
				Product:  model.Product{ID: "p2", Name: "Silver Chain", Category: "Chains", Price: 99.5, Image: "/c.jpg"},
				ImageURL: "https://api.example.com/c.jpg",
			},
		},
	}
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "₹ 1200", FormatPrice("₹", 1200))
	require.Equal(t, "₹ 99.5", FormatPrice("₹", 99.5))
	require.Equal(t, "$ 0", FormatPrice("$", 0))
}

func TestEmptyMessageQuotesVerbatim(t *testing.T) {
	require.Equal(t, `No products found for: "zzz"`, EmptyMessage("zzz"))
	require.Equal(t, `No products found for: ""`, EmptyMessage(""))
}

func TestHTMLRendersCards(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, HTMLPage{View: sampleView(), Palette: LightPalette, Currency: "₹", CartCount: 3}))
	out := buf.String()

	require.Contains(t, out, `src="https://api.example.com/r.jpg"`)
	require.Contains(t, out, `alt="Gold Ring"`)
	require.Contains(t, out, "Silver Chain")
	require.Contains(t, out, "Chains")
	require.Contains(t, out, "₹ 1200")
	require.Contains(t, out, `name="productId" value="p2"`)
	require.Contains(t, out, `<span id="cart-count">3</span>`)
	require.Contains(t, out, Heading)
	require.Equal(t, 2, strings.Count(out, `class="card"`))
	require.NotContains(t, out, "No products found")
}

func TestHTMLEmptyStateQuotesSearch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, HTMLPage{View: service.View{Search: "zzz"}, Palette: DarkPalette, Currency: "₹"}))
	out := buf.String()

	require.Contains(t, out, `No products found for: <span>"zzz"</span>`)
	require.NotContains(t, out, `class="card"`)
	require.Contains(t, out, DarkPalette.Background)
}

func TestHTMLEscapesSearchTerm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, HTMLPage{View: service.View{Search: "<script>"}, Palette: LightPalette}))
	require.NotContains(t, buf.String(), "<script>")
	require.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestHTMLShowsNotice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, HTMLPage{View: sampleView(), Palette: LightPalette, Notice: service.MessageAdded}))
	require.Contains(t, buf.String(), `role="alert">Added to Cart!</div>`)
}

func TestTerminalGrid(t *testing.T) {
	term := NewTerminal(LightPalette, "₹")
	out := term.Grid(sampleView(), -1)

	require.Contains(t, out, "Gold Ring")
	require.Contains(t, out, "Silver Chain")
	require.Contains(t, out, "₹ 99.5")
	require.Contains(t, out, "Add to Cart")
}

func TestTerminalGridEmpty(t *testing.T) {
	term := NewTerminal(DarkPalette, "₹")
	out := term.Page(service.View{Search: "zzz"})

	require.Contains(t, out, `"zzz"`)
	require.Contains(t, out, Heading)
}

func TestTerminalGridWrapsRows(t *testing.T) {
	term := NewTerminal(LightPalette, "₹")
	term.Columns = 1
	out := term.Grid(sampleView(), 0)

	ring := strings.Index(out, "Gold Ring")
	chain := strings.Index(out, "Silver Chain")
	require.True(t, ring >= 0 && chain > ring)
	require.Greater(t, strings.Count(out[ring:chain], "\n"), 1)
}

func TestPaletteFor(t *testing.T) {
	require.Equal(t, DarkPalette, PaletteFor("dark"))
	require.Equal(t, LightPalette, PaletteFor("light"))
	require.Equal(t, LightPalette, PaletteFor("neon"))
}
