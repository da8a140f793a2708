package render

import (
	"strings"

	"storefront/internal/service"

	"github.com/charmbracelet/lipgloss"
)

// Terminal lays cards out in rows of Columns.
type Terminal struct {
	Styles   Styles
	Currency string
	Columns  int
}

func NewTerminal(p Palette, currency string) *Terminal {
	return &Terminal{Styles: NewStyles(p), Currency: currency, Columns: 3}
}

// Card renders one product. selected highlights the border.
func (t *Terminal) Card(c service.Card, selected bool) string {
	style := t.Styles.Card
	if selected {
		style = t.Styles.Selected
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Styles.Image.Render(c.ImageURL),
		t.Styles.Name.Render(c.Product.Name),
		t.Styles.Category.Render(c.Product.Category),
		t.Styles.Price.Render(FormatPrice(t.Currency, c.Product.Price)),
		t.Styles.Button.Render("[ Add to Cart ]"),
	)
	return style.Render(body)
}

// Grid renders the whole view; selected is the highlighted card index or -1.
func (t *Terminal) Grid(v service.View, selected int) string {
	if v.Empty() {
		return t.Styles.Empty.Render(EmptyMessage(v.Search))
	}

	cols := t.Columns
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(v.Cards); start += cols {
		end := start + cols
		if end > len(v.Cards) {
			end = len(v.Cards)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, t.Card(v.Cards[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// Page renders heading, tagline and grid.
func (t *Terminal) Page(v service.View) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Styles.Heading.Render(Heading),
		t.Styles.Tagline.Render(Tagline),
		"",
		t.Grid(v, -1),
	)
}
