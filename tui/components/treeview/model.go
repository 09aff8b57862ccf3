// Package treeview renders a navigator root as a scrollable, foldable
// list of rows.
package treeview

import (
	"strings"

	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/grovetools/fbrowse/tui/theme"
)

// Row is one visible line of the tree.
type Row struct {
	Entry    *fstree.TreeEntry
	Depth    int
	Expanded bool
}

// Model holds the visible rows, the cursor and the fold state. Expansion
// data lives on the entries themselves; the model only remembers which
// paths the user unfolded.
type Model struct {
	root     *fstree.TreeEntry
	expanded map[string]bool
	rows     []Row
	filter   string

	cursor       int
	scrollOffset int
	width        int
	height       int
	focused      bool

	Theme *theme.Theme
}

// New returns an empty, focused tree.
func New() Model {
	return Model{
		expanded: make(map[string]bool),
		focused:  true,
		height:   1,
		Theme:    theme.DefaultTheme,
	}
}

// SetRoot replaces the tree. Fold state resets because a fresh root's
// descendants are not loaded; the cursor stays on the same path if it
// is still listed.
func (m *Model) SetRoot(root *fstree.TreeEntry) {
	selected := ""
	if e := m.Selected(); e != nil {
		selected = e.FullPath
	}
	m.root = root
	m.expanded = make(map[string]bool)
	m.cursor = 0
	m.scrollOffset = 0
	m.rebuild()
	if selected != "" {
		m.SelectPath(selected)
	}
}

// Root returns the entry the tree is showing.
func (m *Model) Root() *fstree.TreeEntry {
	return m.root
}

// SetExpanded folds or unfolds entry. Unfolding only shows children that
// are already loaded.
func (m *Model) SetExpanded(entry *fstree.TreeEntry, expanded bool) {
	if entry == nil || !entry.IsContainer() {
		return
	}
	if expanded {
		m.expanded[entry.FullPath] = true
	} else {
		delete(m.expanded, entry.FullPath)
	}
	m.rebuild()
}

// IsExpanded reports whether the user unfolded entry.
func (m *Model) IsExpanded(entry *fstree.TreeEntry) bool {
	return entry != nil && m.expanded[entry.FullPath]
}

// ParentOf returns the row index of entry's parent row, or -1 for top-level
// rows.
func (m *Model) ParentOf(index int) int {
	if index <= 0 || index >= len(m.rows) {
		return -1
	}
	depth := m.rows[index].Depth
	for i := index - 1; i >= 0; i-- {
		if m.rows[i].Depth < depth {
			return i
		}
	}
	return -1
}

// SetFilter shows only rows whose name contains text (case-insensitive),
// plus the unfolded ancestors of matches.
func (m *Model) SetFilter(text string) {
	m.filter = strings.ToLower(strings.TrimSpace(text))
	m.rebuild()
}

// Filter returns the active filter text.
func (m *Model) Filter() string {
	return m.filter
}

// Rows returns the visible rows.
func (m *Model) Rows() []Row {
	return m.rows
}

// Cursor returns the index of the selected row.
func (m *Model) Cursor() int {
	return m.cursor
}

// Selected returns the entry under the cursor, or nil for an empty tree.
func (m *Model) Selected() *fstree.TreeEntry {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].Entry
}

// SelectPath moves the cursor to the row for path.
func (m *Model) SelectPath(path string) bool {
	for i, r := range m.rows {
		if r.Entry.FullPath == path {
			m.SetCursor(i)
			return true
		}
	}
	return false
}

// SetCursor moves the cursor to index, clamped to the rows.
func (m *Model) SetCursor(index int) {
	m.cursor = index
	m.clampCursor()
	m.adjustScroll()
}

// MoveBy moves the cursor by delta rows.
func (m *Model) MoveBy(delta int) {
	m.SetCursor(m.cursor + delta)
}

// PageUp moves the cursor up one screen.
func (m *Model) PageUp() { m.MoveBy(-m.height) }

// PageDown moves the cursor down one screen.
func (m *Model) PageDown() { m.MoveBy(m.height) }

// Top moves the cursor to the first row.
func (m *Model) Top() { m.SetCursor(0) }

// Bottom moves the cursor to the last row.
func (m *Model) Bottom() { m.SetCursor(len(m.rows) - 1) }

// SetSize sets the space the tree renders into.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = max(1, height)
	m.adjustScroll()
}

// SetFocused changes how the selected row is highlighted.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Model) rebuild() {
	m.rows = m.rows[:0]
	if m.root != nil {
		m.appendRows(m.root.Children, 0)
	}
	m.clampCursor()
	m.adjustScroll()
}

// appendRows adds the visible rows for entries and reports whether any of
// them matched the filter.
func (m *Model) appendRows(entries []*fstree.TreeEntry, depth int) bool {
	matched := false
	for _, e := range entries {
		expanded := m.expanded[e.FullPath] && e.ChildrenLoaded
		start := len(m.rows)
		m.rows = append(m.rows, Row{Entry: e, Depth: depth, Expanded: expanded})

		childMatched := false
		if expanded {
			childMatched = m.appendRows(e.Children, depth+1)
		}
		if m.filter == "" || childMatched || strings.Contains(strings.ToLower(e.Name), m.filter) {
			matched = true
			continue
		}
		m.rows = m.rows[:start]
	}
	return matched
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// adjustScroll ensures the cursor is visible in the viewport.
func (m *Model) adjustScroll() {
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+m.height {
		m.scrollOffset = m.cursor - m.height + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
