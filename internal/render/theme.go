package render

import "github.com/charmbracelet/lipgloss"

// Palette carries hex colors so the same theme feeds HTML and lipgloss.
type Palette struct {
	Background string
	Foreground string
	Card       string
	Accent     string
	Muted      string
	Price      string
}

var (
	LightPalette = Palette{
		Background: "#F8FAFC",
		Foreground: "#0F172A",
		Card:       "#FFFFFF",
		Accent:     "#2DD4BF",
		Muted:      "#64748B",
		Price:      "#22C55E",
	}
	DarkPalette = Palette{
		Background: "#0F172A",
		Foreground: "#F8FAFC",
		Card:       "#1E293B",
		Accent:     "#2DD4BF",
		Muted:      "#94A3B8",
		Price:      "#22C55E",
	}
)

// PaletteFor maps a theme name to a palette; anything but "dark" is light.
func PaletteFor(theme string) Palette {
	if theme == "dark" {
		return DarkPalette
	}
	return LightPalette
}

type Styles struct {
	Heading  lipgloss.Style
	Tagline  lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Name     lipgloss.Style
	Category lipgloss.Style
	Price    lipgloss.Style
	Image    lipgloss.Style
	Button   lipgloss.Style
	Empty    lipgloss.Style
	Notice   lipgloss.Style
	Badge    lipgloss.Style
}

func NewStyles(p Palette) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Muted)).
		Padding(0, 1).
		Width(30)

	return Styles{
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Foreground)),
		Tagline:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Card:     card,
		Selected: card.BorderForeground(lipgloss.Color(p.Accent)),
		Name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Foreground)),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Price:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Price)),
		Image:    lipgloss.NewStyle().Faint(true),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		Empty:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Muted)).Padding(1, 0),
		Notice:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent)),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground)),
	}
}
