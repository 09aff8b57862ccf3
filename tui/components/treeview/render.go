package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/docker/go-units"
	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/grovetools/fbrowse/tui/theme"
)

// View renders the visible window of rows.
func (m Model) View() string {
	t := m.Theme
	if t == nil {
		t = theme.DefaultTheme
	}
	if len(m.rows) == 0 {
		msg := "(empty)"
		if m.filter != "" {
			msg = fmt.Sprintf("no entries match %q", m.filter)
		}
		return t.Placeholder.Render(msg)
	}

	end := min(len(m.rows), m.scrollOffset+m.height)
	lines := make([]string, 0, end-m.scrollOffset)
	for i := m.scrollOffset; i < end; i++ {
		lines = append(lines, m.renderRow(t, m.rows[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(t *theme.Theme, r Row, selected bool) string {
	e := r.Entry
	indent := strings.Repeat("  ", r.Depth)

	fold := " "
	if e.IsContainer() {
		fold = theme.IconCollapsed
		if r.Expanded {
			fold = theme.IconExpanded
		}
	}

	name := e.Name
	suffix := ""
	var nameStyle lipgloss.Style
	switch e.Kind {
	case fstree.KindVolume:
		nameStyle = t.Volume
		if e.FullPath != e.Name {
			suffix = " " + t.Muted.Render(e.FullPath)
		}
	case fstree.KindDirectory:
		nameStyle = t.Directory
	default:
		nameStyle = t.File
		suffix = " " + t.Size.Render(units.BytesSize(float64(e.Size)))
	}

	line := fmt.Sprintf("%s%s %s %s", indent, fold, Icon(e, r.Expanded), name)
	if selected {
		style := t.SelectedUnfocused
		if m.focused {
			style = t.Selected
		}
		line = style.Render(line)
	} else {
		line = fmt.Sprintf("%s%s %s %s", indent, fold, Icon(e, r.Expanded), nameStyle.Render(name))
	}
	line += suffix

	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

// Icon returns the glyph for an entry.
func Icon(e *fstree.TreeEntry, open bool) string {
	switch {
	case e.Kind == fstree.KindVolume:
		return theme.IconVolume
	case e.Kind == fstree.KindFile:
		return theme.IconFile
	case open:
		return theme.IconFolderOpen
	default:
		return theme.IconFolder
	}
}
