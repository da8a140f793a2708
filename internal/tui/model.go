// Package tui is the interactive shop page: a search box over a card grid
// with add-to-cart on enter.
package tui

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/render"
	"storefront/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	ctx      context.Context
	page     *service.Page
	terminal *render.Terminal

	search  textinput.Model
	cursor  int
	loaded  bool
	notice  string
	cart    int
	width   int
}

// New builds the page model. initialSearch pre-fills the search box, the
// way a ?search= link would.
func New(ctx context.Context, page *service.Page, terminal *render.Terminal, initialSearch string) Model {
	si := textinput.New()
	si.Placeholder = "Search products..."
	si.Prompt = "search: "
	si.CharLimit = 64
	si.Width = 40
	si.SetValue(initialSearch)

	return Model{
		ctx:      ctx,
		page:     page,
		terminal: terminal,
		search:   si,
	}
}

func (m Model) CartCount() int { return m.cart }

func (m Model) Notice() string { return m.notice }

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		m.page.Mount(m.ctx)
		return catalogLoadedMsg{}
	}
}

func (m Model) addToCart(productID string) tea.Cmd {
	return func() tea.Msg {
		m.page.AddToCart(m.ctx, productID)
		return nil
	}
}

func (m Model) currentView() service.View {
	return m.page.RenderSearch(strings.ToLower(m.search.Value()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.fitColumns()
		return m, nil

	case catalogLoadedMsg:
		m.loaded = true
		return m, nil

	case CartIncrementedMsg:
		m.cart++
		return m, nil

	case NoticeMsg:
		m.notice = msg.Outcome.Message()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			m.clampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	view := m.currentView()
	cols := m.columns()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "right", "l":
		m.cursor++
	case "left", "h":
		m.cursor--
	case "down", "j":
		m.cursor += cols
	case "up", "k":
		m.cursor -= cols
	case "enter", "a":
		if view.Empty() {
			return m, nil
		}
		m.clampCursor()
		return m, m.addToCart(view.Cards[m.cursor].Product.ID)
	}
	m.clampCursor()
	return m, nil
}

func (m Model) columns() int {
	if m.terminal.Columns < 1 {
		return 1
	}
	return m.terminal.Columns
}

// fitColumns sizes the grid to the window; cards are 32 cells wide with border.
func (m *Model) fitColumns() {
	if m.width <= 0 {
		return
	}
	cols := m.width / 32
	if cols < 1 {
		cols = 1
	}
	m.terminal.Columns = cols
}

func (m *Model) clampCursor() {
	n := len(m.currentView().Cards)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	st := m.terminal.Styles
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Heading.Render(render.Heading),
		"   ",
		st.Badge.Render(fmt.Sprintf("Cart (%d)", m.cart)),
	)

	var body string
	if !m.loaded {
		body = st.Tagline.Render("Loading products...")
	} else {
		body = m.terminal.Grid(m.currentView(), m.cursor)
	}

	status := st.Tagline.Render("/ search • arrows move • enter add to cart • q quit")
	if m.notice != "" {
		status = st.Notice.Render(m.notice) + "  " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		st.Tagline.Render(render.Tagline),
		"",
		m.search.View(),
		"",
		body,
		"",
		status,
	)
}
