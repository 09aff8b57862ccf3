// Package browser is the interactive fbrowse TUI: a tree pane driven by an
// fstree.Navigator and a read-only viewer for text files.
package browser

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/grovetools/fbrowse/pkg/watch"
	"github.com/grovetools/fbrowse/tui/components/help"
	"github.com/grovetools/fbrowse/tui/components/treeview"
	"github.com/grovetools/fbrowse/tui/keymap"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/sirupsen/logrus"
)

type pane int

const (
	treePane pane = iota
	viewerPane
)

// session serializes access to the navigator, which commands use from
// bubbletea's goroutines.
type session struct {
	mu  sync.Mutex
	nav *fstree.Navigator
}

func (s *session) do(fn func(nav *fstree.Navigator) tea.Msg) tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.nav)
}

// Options configures a browser Model.
type Options struct {
	// StartPath is opened first. Empty starts at the volumes listing.
	StartPath string
	Keys      keymap.KeyMap
	// Watcher, when set, refreshes the listing as the current directory
	// changes. The caller runs and closes it.
	Watcher *watch.Watcher
	Logger  *logrus.Entry
}

// Model is the browser's bubbletea model.
type Model struct {
	session *session
	watcher *watch.Watcher
	logger  *logrus.Entry
	keys    keymap.KeyMap
	start   string

	root    *fstree.TreeEntry
	tree    treeview.Model
	viewer  viewport.Model
	viewing *fstree.TreeEntry
	focus   pane

	filterInput textinput.Model
	filtering   bool

	help help.Model

	status      string
	statusError bool
	loading     bool

	width  int
	height int
	ready  bool
}

// New creates a browser over nav. Nothing is read until Init runs.
func New(nav *fstree.Navigator, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = theme.IconFilter + " "
	ti.Placeholder = "filter entries"
	ti.CharLimit = 256

	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = keymap.Default()
	}

	h := help.New(keys)
	h.Title = "fbrowse"

	logger := opts.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return Model{
		session:     &session{nav: nav},
		watcher:     opts.Watcher,
		logger:      logger,
		keys:        keys,
		start:       opts.StartPath,
		tree:        treeview.New(),
		viewer:      viewport.New(0, 0),
		filterInput: ti,
		help:        h,
		loading:     true,
	}
}

// Init loads the starting view and begins listening for directory changes.
func (m Model) Init() tea.Cmd {
	var first tea.Cmd
	if m.start != "" {
		first = m.openPathCmd(m.start)
	} else {
		first = m.volumesCmd()
	}
	return tea.Batch(first, m.waitForChange())
}

// Root returns the entry the tree is rooted at.
func (m Model) Root() *fstree.TreeEntry {
	return m.root
}

// Viewing returns the file shown in the viewer, if any.
func (m Model) Viewing() *fstree.TreeEntry {
	return m.viewing
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusError
}
