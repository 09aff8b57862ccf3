package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/fbrowse/pkg/fstree"
)

const tabWidth = 4

// Update handles messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case openedMsg:
		m.loading = false
		m.setRoot(msg.result.Entry)
		if msg.selectPath != "" {
			m.tree.SelectPath(msg.selectPath)
		}
		if msg.file != nil {
			m.showFile(*msg.file)
		} else if !msg.quiet {
			m.setStatus(describe(msg.result), false)
		}
		return m, nil

	case fileReadMsg:
		m.showFile(msg.result)
		return m, nil

	case expandedMsg:
		// The root may have been replaced while the listing was read.
		if m.root == nil || m.root.Find(msg.entry.FullPath) != msg.entry {
			return m, nil
		}
		msg.entry.Children = msg.children
		msg.entry.ChildrenLoaded = true
		m.tree.SetExpanded(msg.entry, true)
		return m, nil

	case errMsg:
		m.loading = false
		m.logger.WithError(msg.err).Debug("Navigation failed")
		m.setStatus(msg.err.Error(), true)
		return m, nil

	case dirChangedMsg:
		m.logger.WithField("path", msg.event.Dir).Debug("Directory changed, refreshing")
		return m, tea.Batch(m.refreshCmd(m.selectedPath(), true), m.waitForChange())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.viewing != nil {
			m.setFocus(1 - m.focus)
		}
		return m, nil
	}

	if m.focus == viewerPane {
		return m.handleViewerKey(msg)
	}
	return m.handleTreeKey(msg)
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.tree.SetFilter("")
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		if msg.Type == tea.KeyUp {
			m.tree.MoveBy(-1)
		} else {
			m.tree.MoveBy(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.tree.SetFilter(m.filterInput.Value())
	return m, cmd
}

func (m Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), msg.Type == tea.KeyEsc:
		m.setFocus(treePane)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.viewer.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewer.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.viewer.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.viewer.LineDown(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewer.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewer.HalfViewDown()
		return m, nil
	}
	return m, nil
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.tree.MoveBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.tree.MoveBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.tree.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.tree.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.tree.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.tree.Bottom()

	case key.Matches(msg, m.keys.Open):
		if sel := m.tree.Selected(); sel != nil {
			m.loading = true
			return m, m.openCmd(sel)
		}

	case key.Matches(msg, m.keys.Expand):
		sel := m.tree.Selected()
		if sel == nil || !sel.IsContainer() {
			return m, nil
		}
		if sel.ChildrenLoaded {
			m.tree.SetExpanded(sel, true)
			return m, nil
		}
		return m, m.expandCmd(sel)

	case key.Matches(msg, m.keys.Collapse):
		m.collapseSelected()

	case key.Matches(msg, m.keys.Back):
		if m.root != nil {
			m.loading = true
			return m, m.goBackCmd(m.root)
		}

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.refreshCmd(m.selectedPath(), false)

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.tree.Filter())
		m.filterInput.CursorEnd()
		return m, tea.Batch(m.filterInput.Focus(), textinput.Blink)

	case msg.Type == tea.KeyEsc:
		if m.tree.Filter() != "" {
			m.filterInput.SetValue("")
			m.tree.SetFilter("")
		}
	}
	return m, nil
}

// collapseSelected folds the selected entry, or moves to its parent row
// when it is already folded.
func (m *Model) collapseSelected() {
	sel := m.tree.Selected()
	if sel == nil {
		return
	}
	if m.tree.IsExpanded(sel) {
		// Only the entry is touched, so no lock is needed.
		m.session.nav.Collapse(sel)
		m.tree.SetExpanded(sel, false)
		return
	}
	if parent := m.tree.ParentOf(m.tree.Cursor()); parent >= 0 {
		m.tree.SetCursor(parent)
	}
}

func (m *Model) setRoot(root *fstree.TreeEntry) {
	m.root = root
	m.tree.SetRoot(root)
	if m.watcher == nil || root == nil {
		return
	}
	dir := ""
	if !root.IsVolumesRoot() {
		dir = root.FullPath
	}
	if err := m.watcher.Watch(dir); err != nil {
		m.logger.WithError(err).WithField("path", dir).Debug("Cannot watch directory")
	}
}

func (m *Model) showFile(res fstree.OpenResult) {
	m.viewing = res.Entry
	m.viewer.SetContent(strings.ReplaceAll(res.Text, "\t", strings.Repeat(" ", tabWidth)))
	m.viewer.GotoTop()
	m.setFocus(viewerPane)
	m.layout()
	m.setStatus(res.Entry.FullPath, false)
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	m.tree.SetFocused(p == treePane)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusError = isErr
}

func (m Model) selectedPath() string {
	if sel := m.tree.Selected(); sel != nil {
		return sel.FullPath
	}
	return ""
}

func describe(res fstree.OpenResult) string {
	if res.Kind == fstree.NavigateToVolumes {
		if n := len(res.Entry.Children); n != 1 {
			return fmt.Sprintf("%d volumes", n)
		}
		return "1 volume"
	}
	return res.Entry.FullPath
}
