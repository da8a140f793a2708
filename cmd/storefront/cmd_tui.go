package main

import (
	"fmt"

	"storefront/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiSearch string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive shop page",
	Long: `Open the shop page in the terminal.

Keys: / search, arrows or hjkl move, enter add to cart, q quit.
Logs are discarded unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiSearch, "search", "", "initial search term")
}

func runTUI(cmd *cobra.Command, args []string) error {
	a := newApp(cfg)

	sender := &tui.Sender{}
	page := a.page(a.store, sender, sender)
	model := tui.New(cmd.Context(), page, a.terminal(), tuiSearch)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	sender.Bind(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
