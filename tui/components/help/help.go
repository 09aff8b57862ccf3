// Package help renders the one-line key hint footer and the full-screen
// help overlay.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/fbrowse/tui/keymap"
	"github.com/grovetools/fbrowse/tui/theme"
)

// Keys is what the help component needs from a keymap.
type Keys interface {
	keymap.SectionedKeyMap
	ShortHelp() []key.Binding
	GetHelp() key.Binding
	GetQuit() key.Binding
}

// Model represents an embeddable help component
type Model struct {
	Keys    Keys
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	viewport viewport.Model
}

// New creates a new help model with default settings
func New(keys Keys) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		viewport: vp,
	}
}

// Update handles messages for the help component. While the overlay is
// shown it consumes key presses; help, quit and esc close it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if key.Matches(msg, m.Keys.GetHelp()) || key.Matches(msg, m.Keys.GetQuit()) || msg.Type == tea.KeyEsc {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the footer, or the overlay when ShowAll is set.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}
	if m.ShowAll {
		content := m.viewport.View()
		if m.viewport.TotalLineCount() > m.viewport.Height {
			indicator := "↕ more"
			if m.viewport.AtTop() {
				indicator = "↓ more"
			} else if m.viewport.AtBottom() {
				indicator = "↑ more"
			}
			indicatorStyle := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
			content = lipgloss.JoinVertical(lipgloss.Right, content, indicatorStyle.Render(indicator))
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}
	return m.viewShort(m.Keys.ShortHelp())
}

func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		if h.Key != "" && h.Desc != "" {
			pairs = append(pairs, fmt.Sprintf("%s %s",
				m.Theme.Highlight.Render(h.Key),
				m.Theme.Muted.Render(h.Desc),
			))
		}
	}

	helpKey := m.Keys.GetHelp().Help().Key
	prompt := m.Theme.Muted.Render("Press ") +
		m.Theme.Highlight.Render(helpKey) +
		m.Theme.Muted.Render(" for help")
	if len(pairs) == 0 {
		return prompt
	}
	return prompt + m.Theme.Muted.Render(" • ") + strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// setViewportContent lays the sections out in one column, or two when
// one column is taller than the screen and two fit its width.
func (m *Model) setViewportContent() {
	const (
		verticalMargin   = 4
		horizontalMargin = 4
		gutterWidth      = 4
	)

	blocks := m.sectionBlocks()
	title := m.Title
	if title == "" {
		title = "Help"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)
	withTitle := func(body string) string {
		return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(body)).Render(title), body)
	}

	content := withTitle(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	if lipgloss.Height(content) > m.Height-verticalMargin-1 && len(blocks) > 1 {
		twoCol := withTitle(columns(blocks, 2, gutterWidth))
		if lipgloss.Width(twoCol) <= m.Width-horizontalMargin {
			content = twoCol
		}
	}

	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = max(1, m.Height-verticalMargin-1)
}

// columns distributes blocks greedily into n columns.
func columns(blocks []string, n, gutter int) string {
	cols := make([][]string, n)
	heights := make([]int, n)
	for _, block := range blocks {
		shortest := 0
		for i := 1; i < n; i++ {
			if heights[i] < heights[shortest] {
				shortest = i
			}
		}
		cols[shortest] = append(cols[shortest], block)
		heights[shortest] += lipgloss.Height(block)
	}

	result := lipgloss.JoinVertical(lipgloss.Left, cols[0]...)
	for _, col := range cols[1:] {
		if len(col) == 0 {
			continue
		}
		result = lipgloss.JoinHorizontal(lipgloss.Top, result, strings.Repeat(" ", gutter), lipgloss.JoinVertical(lipgloss.Left, col...))
	}
	return result
}

func (m *Model) sectionBlocks() []string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)
	var blocks []string
	for _, section := range m.Keys.Sections() {
		if section.IsEmpty() {
			continue
		}
		var rows [][]string
		for _, binding := range section.Bindings {
			h := binding.Help()
			if binding.Enabled() && h.Key != "" && h.Desc != "" {
				rows = append(rows, []string{keyStyle.Render(h.Key), m.Theme.Muted.Italic(true).Render(h.Desc)})
			}
		}
		if len(rows) > 0 {
			blocks = append(blocks, m.renderSectionBox(section.Name, rows))
		}
	}
	return blocks
}

func (m *Model) renderSectionBox(title string, rows [][]string) string {
	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, row := range rows {
		table = table.Row(row...)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)

	heading := fmt.Sprintf("%s %s", sectionIcon(title), title)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(heading), table.String()))
}

func sectionIcon(name string) string {
	switch name {
	case keymap.SectionNavigation:
		return theme.IconCollapsed
	case keymap.SectionTree:
		return theme.IconFolderOpen
	case keymap.SectionView:
		return theme.IconFilter
	default:
		return theme.IconFile
	}
}

// Toggle switches between the footer and the overlay.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}
