package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run plays on the local terminal until the player quits.
func Run(opts Options) error {
	host := NewHost(opts)
	defer host.Shutdown()

	p := tea.NewProgram(host, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running zukko: %w", err)
	}
	return nil
}
