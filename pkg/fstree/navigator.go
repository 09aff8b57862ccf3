package fstree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	fberrors "github.com/grovetools/fbrowse/errors"
	"github.com/grovetools/fbrowse/logging"
	"github.com/grovetools/fbrowse/util/pathutil"
	"github.com/sirupsen/logrus"
)

// DefaultMaxFileSize caps how much of a file Open will read.
const DefaultMaxFileSize int64 = 4 << 20

// ResultKind tags an OpenResult.
type ResultKind int

const (
	// NavigateInto asks the caller to show Entry as the new view root.
	NavigateInto ResultKind = iota
	// ReadFile carries the text of a file in Text.
	ReadFile
	// NavigateToVolumes asks the caller to show the volumes listing.
	NavigateToVolumes
)

func (k ResultKind) String() string {
	switch k {
	case NavigateInto:
		return "navigate-into"
	case ReadFile:
		return "read-file"
	case NavigateToVolumes:
		return "navigate-to-volumes"
	default:
		return fmt.Sprintf("result(%d)", int(k))
	}
}

// OpenResult is what Open, OpenPath and GoBack hand back to the caller.
type OpenResult struct {
	Kind  ResultKind
	Entry *TreeEntry
	Text  string
}

// State identifies where a session currently is.
type State struct {
	AtVolumes bool
	Path      string
}

func (s State) String() string {
	if s.AtVolumes {
		return "AtVolumes"
	}
	return fmt.Sprintf("AtDirectory(%s)", s.Path)
}

// Navigator owns one browsing session. It is synchronous and not safe for
// concurrent use; callers serialize access.
type Navigator struct {
	src         Source
	filter      *Filter
	maxFileSize int64
	log         *logrus.Entry

	root *TreeEntry
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithFilter hides entries the filter rejects from every listing.
func WithFilter(f *Filter) Option {
	return func(n *Navigator) { n.filter = f }
}

// WithMaxFileSize sets the largest file Open will read.
func WithMaxFileSize(size int64) Option {
	return func(n *Navigator) {
		if size > 0 {
			n.maxFileSize = size
		}
	}
}

// WithLogger replaces the component logger.
func WithLogger(log *logrus.Entry) Option {
	return func(n *Navigator) { n.log = log }
}

// New starts a session at the volumes root. Nothing is read until the
// caller asks for it.
func New(src Source, opts ...Option) *Navigator {
	n := &Navigator{
		src:         src,
		maxFileSize: DefaultMaxFileSize,
		root:        NewVolumesRoot(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = logging.NewLogger("fstree")
	}
	return n
}

// CurrentRoot returns the entry the view is rooted at.
func (n *Navigator) CurrentRoot() *TreeEntry {
	return n.root
}

// State reports AtVolumes or AtDirectory(path).
func (n *Navigator) State() State {
	if n.root.IsVolumesRoot() {
		return State{AtVolumes: true}
	}
	return State{Path: n.root.FullPath}
}

// ListVolumes enumerates the host volumes. Enumeration failures are logged
// and yield an empty list.
func (n *Navigator) ListVolumes() []*TreeEntry {
	vols, err := n.src.Volumes()
	if err != nil {
		n.log.WithError(err).Warn("Failed to enumerate volumes")
	}
	entries := make([]*TreeEntry, 0, len(vols))
	for _, v := range vols {
		name := v.Name
		if name == "" {
			name = v.Path
		}
		entries = append(entries, &TreeEntry{Name: name, FullPath: v.Path, Kind: KindVolume})
	}
	return entries
}

// Expand loads entry's immediate subdirectories on first use and returns
// the cached list afterwards. On failure the entry stays unloaded so a
// later call retries.
func (n *Navigator) Expand(entry *TreeEntry) ([]*TreeEntry, error) {
	if entry == nil {
		return nil, fberrors.InvalidInput("cannot expand a nil entry")
	}
	if entry.Kind == KindFile {
		return nil, fberrors.InvalidInput(fmt.Sprintf("%s is a file and has no children", entry.FullPath)).
			WithDetail("path", entry.FullPath)
	}
	if entry.ChildrenLoaded {
		return entry.Children, nil
	}

	var children []*TreeEntry
	if entry.IsVolumesRoot() {
		children = n.ListVolumes()
	} else {
		var err error
		children, err = n.list(entry.FullPath, false)
		if err != nil {
			return nil, err
		}
	}

	entry.Children = children
	entry.ChildrenLoaded = true
	n.log.WithField("path", entry.FullPath).WithField("count", len(children)).Debug("Expanded entry")
	return children, nil
}

// Collapse drops entry's cached children so the next Expand re-reads them.
func (n *Navigator) Collapse(entry *TreeEntry) {
	if entry == nil || entry.Kind == KindFile {
		return
	}
	entry.Children = nil
	entry.ChildrenLoaded = false
}

// Open acts on entry. Containers become the new root with their
// subdirectories and files freshly loaded; files are read as text. A failed
// Open leaves the current root untouched.
func (n *Navigator) Open(entry *TreeEntry) (OpenResult, error) {
	if entry == nil {
		return OpenResult{}, fberrors.InvalidInput("cannot open a nil entry")
	}
	if entry.IsVolumesRoot() {
		return n.toVolumes(), nil
	}
	if entry.Kind == KindFile {
		text, err := n.readText(entry.FullPath)
		if err != nil {
			return OpenResult{}, err
		}
		return OpenResult{Kind: ReadFile, Entry: entry, Text: text}, nil
	}
	return n.navigateInto(entry)
}

// OpenPath resolves a path (with ~ expansion) and opens it.
func (n *Navigator) OpenPath(path string) (OpenResult, error) {
	entry, err := n.Resolve(path)
	if err != nil {
		return OpenResult{}, err
	}
	return n.Open(entry)
}

// Resolve builds an unloaded entry for path by stat'ing it. Only a leading
// ~ is expanded; '$' in a name is literal.
func (n *Navigator) Resolve(path string) (*TreeEntry, error) {
	abs, err := pathutil.ExpandHome(path)
	if err != nil {
		return nil, fberrors.Wrap(err, fberrors.ErrCodeInvalidInput, fmt.Sprintf("cannot resolve %s", path)).
			WithDetail("path", path)
	}
	info, err := n.src.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fberrors.NotFound(abs, err)
		}
		return nil, fberrors.AccessError(abs, err)
	}
	return entryFor(abs, info), nil
}

// GoBack moves from current to its parent directory, or to the volumes
// listing when current is a volume root.
func (n *Navigator) GoBack(current *TreeEntry) (OpenResult, error) {
	if current == nil {
		current = n.root
	}
	if current.IsVolumesRoot() {
		return n.toVolumes(), nil
	}

	parentPath, ok := pathutil.Parent(current.FullPath)
	if !ok {
		return n.toVolumes(), nil
	}

	kind := KindDirectory
	if _, hasParent := pathutil.Parent(parentPath); !hasParent {
		kind = KindVolume
	}
	parent := &TreeEntry{
		Name:     pathutil.DisplayName(parentPath),
		FullPath: parentPath,
		Kind:     kind,
	}
	return n.navigateInto(parent)
}

// Refresh reloads the current root in place of itself.
func (n *Navigator) Refresh() (OpenResult, error) {
	if n.root.IsVolumesRoot() {
		return n.toVolumes(), nil
	}
	return n.navigateInto(n.root)
}

// navigateInto builds a fresh root for entry with its full listing and
// installs it as the current root.
func (n *Navigator) navigateInto(entry *TreeEntry) (OpenResult, error) {
	children, err := n.list(entry.FullPath, true)
	if err != nil {
		return OpenResult{}, err
	}
	root := &TreeEntry{
		Name:           entry.Name,
		FullPath:       entry.FullPath,
		Kind:           entry.Kind,
		ModTime:        entry.ModTime,
		ChildrenLoaded: true,
		Children:       children,
	}
	n.root = root
	n.log.WithField("path", root.FullPath).Debug("Navigated into directory")
	return OpenResult{Kind: NavigateInto, Entry: root}, nil
}

func (n *Navigator) toVolumes() OpenResult {
	root := NewVolumesRoot()
	root.Children = n.ListVolumes()
	root.ChildrenLoaded = true
	n.root = root
	return OpenResult{Kind: NavigateToVolumes, Entry: root}
}

// list reads path's immediate children, subdirectories only unless
// withFiles is set.
func (n *Navigator) list(path string, withFiles bool) ([]*TreeEntry, error) {
	infos, err := n.src.ReadDir(path)
	if err != nil {
		n.log.WithError(err).WithField("path", path).Debug("Directory listing failed")
		return nil, fberrors.AccessError(path, err)
	}

	entries := make([]*TreeEntry, 0, len(infos))
	for _, info := range infos {
		if !n.filter.Allows(info.Name()) {
			continue
		}
		if !info.IsDir() && !withFiles {
			continue
		}
		entries = append(entries, entryFor(filepath.Join(path, info.Name()), info))
	}
	sortEntries(entries)
	return entries, nil
}

func (n *Navigator) readText(path string) (string, error) {
	f, err := n.src.Open(path)
	if err != nil {
		return "", fberrors.ReadError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, n.maxFileSize+1))
	if err != nil {
		return "", fberrors.ReadError(path, err)
	}
	if int64(len(data)) > n.maxFileSize {
		return "", fberrors.ReadError(path, ErrTooLarge).WithDetail("limit", n.maxFileSize)
	}
	text, err := DecodeText(data)
	if err != nil {
		return "", fberrors.ReadError(path, err)
	}
	return text, nil
}

func entryFor(path string, info fs.FileInfo) *TreeEntry {
	e := &TreeEntry{
		Name:     pathutil.DisplayName(path),
		FullPath: path,
		ModTime:  info.ModTime(),
	}
	switch {
	case !info.IsDir():
		e.Kind = KindFile
		e.Size = info.Size()
	case isRoot(path):
		e.Kind = KindVolume
	default:
		e.Kind = KindDirectory
	}
	return e
}

func isRoot(path string) bool {
	_, ok := pathutil.Parent(path)
	return !ok
}
