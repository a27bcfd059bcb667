package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/slidecraft/slidecraft/internal/backend"
	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/project"
)

// IsInteractive reports whether stdin and stdout are attached to a
// terminal. The builder refuses to start without one.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalSize returns the current terminal dimensions, with sane
// defaults when they cannot be determined
func GetTerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100, 30
	}
	return width, height
}

// Run starts the builder TUI against the given backend. A non-nil
// initial document pre-fills the form.
func Run(client *backend.Client, settings *config.Settings, initial *project.ParseResult) error {
	if !IsInteractive() {
		return fmt.Errorf("the builder needs an interactive terminal")
	}

	app := NewAppModel(client, settings)
	if initial != nil {
		app.FormModel.LoadParsed(*initial)
	}
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("builder failed: %w", err)
	}
	return nil
}
