package browser

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/grovetools/fbrowse/pkg/watch"
	"github.com/grovetools/fbrowse/util/pathutil"
)

// openedMsg carries a new root, and optionally a file to show.
type openedMsg struct {
	result fstree.OpenResult
	// file is set when the opened path was a file.
	file *fstree.OpenResult
	// selectPath is where the cursor should land in the new tree.
	selectPath string
	quiet      bool
}

// fileReadMsg carries text for the viewer.
type fileReadMsg struct {
	result fstree.OpenResult
}

// expandedMsg carries the subdirectories loaded for entry.
type expandedMsg struct {
	entry    *fstree.TreeEntry
	children []*fstree.TreeEntry
}

// errMsg reports a failed navigator operation. The current view stays.
type errMsg struct {
	err error
}

type dirChangedMsg struct {
	event watch.Event
}

func (m Model) volumesCmd() tea.Cmd {
	return func() tea.Msg {
		return m.session.do(func(nav *fstree.Navigator) tea.Msg {
			res, err := nav.GoBack(fstree.NewVolumesRoot())
			if err != nil {
				return errMsg{err}
			}
			return openedMsg{result: res}
		})
	}
}

// openPathCmd opens a directory, or a file's parent with the file shown
// in the viewer.
func (m Model) openPathCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return m.session.do(func(nav *fstree.Navigator) tea.Msg {
			res, err := nav.OpenPath(path)
			if err != nil {
				return errMsg{err}
			}
			if res.Kind != fstree.ReadFile {
				return openedMsg{result: res}
			}
			parent, ok := pathutil.Parent(res.Entry.FullPath)
			if !ok {
				return fileReadMsg{result: res}
			}
			dir, err := nav.OpenPath(parent)
			if err != nil {
				return errMsg{err}
			}
			return openedMsg{result: dir, file: &res, selectPath: res.Entry.FullPath}
		})
	}
}

// openCmd acts on an entry from the current tree.
func (m Model) openCmd(entry *fstree.TreeEntry) tea.Cmd {
	return func() tea.Msg {
		return m.session.do(func(nav *fstree.Navigator) tea.Msg {
			res, err := nav.Open(entry)
			if err != nil {
				return errMsg{err}
			}
			if res.Kind == fstree.ReadFile {
				return fileReadMsg{result: res}
			}
			return openedMsg{result: res}
		})
	}
}

func (m Model) goBackCmd(current *fstree.TreeEntry) tea.Cmd {
	return func() tea.Msg {
		return m.session.do(func(nav *fstree.Navigator) tea.Msg {
			res, err := nav.GoBack(current)
			if err != nil {
				return errMsg{err}
			}
			return openedMsg{result: res, selectPath: current.FullPath}
		})
	}
}

func (m Model) refreshCmd(selectPath string, quiet bool) tea.Cmd {
	return func() tea.Msg {
		return m.session.do(func(nav *fstree.Navigator) tea.Msg {
			res, err := nav.Refresh()
			if err != nil {
				return errMsg{err}
			}
			return openedMsg{result: res, selectPath: selectPath, quiet: quiet}
		})
	}
}

// expandCmd lists entry's subdirectories into a detached copy, so the
// entry the view holds is only modified on the update goroutine.
func (m Model) expandCmd(entry *fstree.TreeEntry) tea.Cmd {
	return func() tea.Msg {
		return m.session.do(func(nav *fstree.Navigator) tea.Msg {
			shadow := &fstree.TreeEntry{Name: entry.Name, FullPath: entry.FullPath, Kind: entry.Kind}
			children, err := nav.Expand(shadow)
			if err != nil {
				return errMsg{err}
			}
			return expandedMsg{entry: entry, children: children}
		})
	}
}

func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return dirChangedMsg{event: ev}
	}
}
