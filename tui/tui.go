// Package tui provides a terminal browser and editor for module settings.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oxrcfg/oxrcfg/mapper"
)

// Options configures Run.
type Options struct {
	// Module is opened right away when the store has it.
	Module string
}

// Run starts the program and blocks until the user quits.
func Run(m *mapper.Mapper, options *Options) error {
	_, err := tea.NewProgram(newBubble(m, options), tea.WithAltScreen()).Run()
	return err
}
