package tui

import (
	"context"
	"sync"

	"storefront/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

type catalogLoadedMsg struct{}

// CartIncrementedMsg asks the page model to bump its cart count by one.
type CartIncrementedMsg struct{}

// NoticeMsg carries a cart outcome to show in the status line.
type NoticeMsg struct {
	Outcome service.Outcome
}

// Sender turns cart side effects into messages for the running program, so
// the cart count is only ever written by the event loop. It satisfies both
// service.Counter and service.Notifier. Messages sent before Bind are dropped.
type Sender struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *Sender) Bind(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *Sender) Send(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (s *Sender) Increment() {
	s.Send(CartIncrementedMsg{})
}

func (s *Sender) Notify(_ context.Context, outcome service.Outcome) {
	s.Send(NoticeMsg{Outcome: outcome})
}
