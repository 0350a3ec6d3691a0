// Package bubbletea provides the Bubble Tea chat surfaces for foodlink.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/foodlink-la/foodlink"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ReplyMsg carries the outcome of a backend chat call back to the update
// loop.
type ReplyMsg struct {
	Reply foodlink.ChatReply
	Err   error
}

// seedMsg asks the model to send its one-shot seed message.
type seedMsg struct{}
