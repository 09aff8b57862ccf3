package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/fbrowse/tui/components/treeview"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/grovetools/fbrowse/tui/utils/scrollbar"
)

const (
	headerHeight = 1
	footerHeight = 2
	// paneChrome is the border around each pane.
	paneChrome   = 2
	minTreeWidth = 24
)

// layout sizes the panes from the window size.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	bodyHeight := max(m.height-headerHeight-footerHeight-paneChrome, 1)

	treeWidth := m.width - paneChrome
	if m.viewing != nil {
		treeWidth = max(m.width*2/5, minTreeWidth) - paneChrome
		viewerWidth := m.width - treeWidth - 2*paneChrome
		// One column for the scrollbar, one line for the file name.
		m.viewer.Width = max(viewerWidth-1, 1)
		m.viewer.Height = max(bodyHeight-1, 1)
	}
	m.tree.SetSize(max(treeWidth, 1), bodyHeight)
	m.filterInput.Width = max(m.width-4, 1)
}

// View renders the header, the panes and the footer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.help.ShowAll {
		return m.help.View()
	}

	t := theme.DefaultTheme
	m.tree.Theme = t

	treeStyle, viewerStyle := t.Pane, t.Pane
	if m.focus == treePane {
		treeStyle = t.FocusedPane
	} else {
		viewerStyle = t.FocusedPane
	}

	body := treeStyle.Render(m.tree.View())
	if m.viewing != nil {
		name := t.Title.Render(treeview.Icon(m.viewing, false) + " " + m.viewing.Name)
		viewer := lipgloss.JoinVertical(lipgloss.Left, name, scrollbar.Overlay(&m.viewer))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, viewerStyle.Render(viewer))
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(t), body, m.footerView(t))
}

func (m Model) headerView(t *theme.Theme) string {
	location := "Volumes"
	if m.root != nil && !m.root.IsVolumesRoot() {
		location = m.root.FullPath
	}
	header := t.Title.Render("fbrowse") + " " + t.Muted.Render(location)
	if m.loading {
		header += " " + t.Muted.Render("…")
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(header)
}

func (m Model) footerView(t *theme.Theme) string {
	var status string
	switch {
	case m.filtering:
		status = m.filterInput.View()
	case m.statusError:
		status = t.Error.Render(theme.IconError + " " + m.status)
	case m.tree.Filter() != "":
		status = t.Accent.Render(theme.IconFilter+" "+m.tree.Filter()) + "  " + t.StatusBar.Render(m.status)
	default:
		status = t.StatusBar.Render(m.status)
	}
	line := lipgloss.NewStyle().MaxWidth(m.width)
	return strings.Join([]string{line.Render(status), line.Render(m.help.View())}, "\n")
}
