// Package fstree maintains a lazily expanded, navigable view of the host
// filesystem: logical volumes at the top, directories loaded on demand, and
// text reads for files.
package fstree

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Kind classifies a TreeEntry.
type Kind int

const (
	KindVolume Kind = iota
	KindDirectory
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindVolume:
		return "volume"
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// TreeEntry is one filesystem object surfaced in the navigable view.
//
// Children are owned by the entry and stay empty until ChildrenLoaded is set.
// They reflect the filesystem at the moment of the last load only.
type TreeEntry struct {
	Name           string       `json:"name"`
	FullPath       string       `json:"path"`
	Kind           Kind         `json:"kind"`
	Size           int64        `json:"size,omitempty"`
	ModTime        time.Time    `json:"mod_time,omitzero"`
	ChildrenLoaded bool         `json:"children_loaded"`
	Children       []*TreeEntry `json:"children,omitempty"`
}

// VolumesRootName labels the synthetic entry that lists all volumes.
const VolumesRootName = "Volumes"

// NewVolumesRoot returns the synthetic root whose children are the host volumes.
func NewVolumesRoot() *TreeEntry {
	return &TreeEntry{Name: VolumesRootName, Kind: KindVolume}
}

// IsVolumesRoot reports whether e is the synthetic all-volumes root.
func (e *TreeEntry) IsVolumesRoot() bool {
	return e != nil && e.Kind == KindVolume && e.FullPath == ""
}

// IsContainer reports whether e can hold children.
func (e *TreeEntry) IsContainer() bool {
	return e.Kind != KindFile
}

// Expandable is the lazy-load placeholder: true while a container's
// children have not been loaded yet.
func (e *TreeEntry) Expandable() bool {
	return e.IsContainer() && !e.ChildrenLoaded
}

// Dirs returns the loaded children that are volumes or directories.
func (e *TreeEntry) Dirs() []*TreeEntry {
	var out []*TreeEntry
	for _, c := range e.Children {
		if c.IsContainer() {
			out = append(out, c)
		}
	}
	return out
}

// Files returns the loaded children that are files.
func (e *TreeEntry) Files() []*TreeEntry {
	var out []*TreeEntry
	for _, c := range e.Children {
		if c.Kind == KindFile {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the loaded descendant (or e itself) whose FullPath is path.
func (e *TreeEntry) Find(path string) *TreeEntry {
	if e == nil {
		return nil
	}
	if e.FullPath == path {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(path); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits e and every loaded descendant depth first. Returning false
// from fn skips that entry's children.
func (e *TreeEntry) Walk(fn func(entry *TreeEntry, depth int) bool) {
	e.walk(fn, 0)
}

func (e *TreeEntry) walk(fn func(*TreeEntry, int) bool, depth int) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		c.walk(fn, depth+1)
	}
}

func (e *TreeEntry) String() string {
	return fmt.Sprintf("%s(%s)", e.Kind, e.FullPath)
}

// sortEntries orders containers before files, then by case-insensitive name.
func sortEntries(entries []*TreeEntry) {
	slices.SortFunc(entries, func(a, b *TreeEntry) int {
		if a.IsContainer() != b.IsContainer() {
			if a.IsContainer() {
				return -1
			}
			return 1
		}
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}
