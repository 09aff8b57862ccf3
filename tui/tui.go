// Package tui holds terminal setup shared by the interactive commands.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/fbrowse/logging"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment for TUI applications.
// It checks for environment variables that force color output (`CLICOLOR_FORCE`,
// `COLORTERM`) and sets the appropriate lipgloss color profile when present.
//
// This keeps styling consistent when a TUI runs under a test harness such as
// tend, and has no effect when these variables are not set.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// Run shows model full screen until it quits or ctx is cancelled.
// Console log output is silenced while the program owns the terminal;
// file sinks keep receiving entries.
func Run(ctx context.Context, model tea.Model) (tea.Model, error) {
	InitializeTUI()

	previous := logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(previous)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	return p.Run()
}
