package treeview

import (
	"testing"

	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dir(path string, children ...*fstree.TreeEntry) *fstree.TreeEntry {
	return &fstree.TreeEntry{
		Name:           path[len(parentOf(path)):],
		FullPath:       path,
		Kind:           fstree.KindDirectory,
		ChildrenLoaded: len(children) > 0,
		Children:       children,
	}
}

func file(path string, size int64) *fstree.TreeEntry {
	return &fstree.TreeEntry{Name: path[len(parentOf(path)):], FullPath: path, Kind: fstree.KindFile, Size: size}
}

func parentOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i+1]
		}
	}
	return ""
}

// sampleRoot is /proj with src (loaded: cmd, pkg), docs (unloaded) and two files.
func sampleRoot() *fstree.TreeEntry {
	return &fstree.TreeEntry{
		Name:           "proj",
		FullPath:       "/proj",
		Kind:           fstree.KindDirectory,
		ChildrenLoaded: true,
		Children: []*fstree.TreeEntry{
			dir("/proj/src", dir("/proj/src/cmd"), dir("/proj/src/pkg")),
			dir("/proj/docs"),
			file("/proj/README.md", 2048),
			file("/proj/go.mod", 10),
		},
	}
}

func paths(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Entry.FullPath
	}
	return out
}

func newModel(t *testing.T) Model {
	t.Helper()
	theme.UseASCIIIcons(true)
	t.Cleanup(func() { theme.UseASCIIIcons(false) })
	m := New()
	m.SetSize(80, 10)
	m.SetRoot(sampleRoot())
	return m
}

func TestRowsListRootChildren(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, []string{"/proj/src", "/proj/docs", "/proj/README.md", "/proj/go.mod"}, paths(m.Rows()))
	assert.Equal(t, "/proj/src", m.Selected().FullPath)
}

func TestExpandShowsLoadedChildren(t *testing.T) {
	m := newModel(t)
	src := m.Selected()

	m.SetExpanded(src, true)
	assert.True(t, m.IsExpanded(src))
	assert.Equal(t, []string{"/proj/src", "/proj/src/cmd", "/proj/src/pkg", "/proj/docs", "/proj/README.md", "/proj/go.mod"}, paths(m.Rows()))
	assert.Equal(t, 1, m.Rows()[1].Depth)
	assert.Equal(t, 0, m.ParentOf(2))
	assert.Equal(t, -1, m.ParentOf(3))

	m.SetExpanded(src, false)
	assert.Len(t, m.Rows(), 4)
}

func TestExpandUnloadedShowsNothingYet(t *testing.T) {
	m := newModel(t)
	docs := m.Rows()[1].Entry

	m.SetExpanded(docs, true)
	assert.Len(t, m.Rows(), 4)
	assert.False(t, m.Rows()[1].Expanded)
}

func TestExpandFileIsIgnored(t *testing.T) {
	m := newModel(t)
	readme := m.Rows()[2].Entry
	m.SetExpanded(readme, true)
	assert.False(t, m.IsExpanded(readme))
}

func TestCursorMovementClamps(t *testing.T) {
	m := newModel(t)

	m.MoveBy(-5)
	assert.Equal(t, 0, m.Cursor())
	m.Bottom()
	assert.Equal(t, "/proj/go.mod", m.Selected().FullPath)
	m.MoveBy(3)
	assert.Equal(t, 3, m.Cursor())
	m.Top()
	assert.Equal(t, 0, m.Cursor())
	m.PageDown()
	assert.Equal(t, 3, m.Cursor())
	m.PageUp()
	assert.Equal(t, 0, m.Cursor())
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	m := newModel(t)
	m.SetSize(80, 2)

	m.Bottom()
	view := m.View()
	assert.Contains(t, view, "go.mod")
	assert.NotContains(t, view, "src")
}

func TestFilterKeepsAncestorsOfMatches(t *testing.T) {
	m := newModel(t)
	m.SetExpanded(m.Selected(), true)

	m.SetFilter("PKG")
	assert.Equal(t, []string{"/proj/src", "/proj/src/pkg"}, paths(m.Rows()))

	m.SetFilter("nothing")
	assert.Empty(t, m.Rows())
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), `no entries match "nothing"`)

	m.SetFilter("")
	assert.Len(t, m.Rows(), 6)
}

func TestSetRootKeepsSelectionAndResetsFolds(t *testing.T) {
	m := newModel(t)
	m.SetExpanded(m.Selected(), true)
	require.True(t, m.SelectPath("/proj/README.md"))

	m.SetRoot(sampleRoot())
	assert.Equal(t, "/proj/README.md", m.Selected().FullPath)
	assert.Len(t, m.Rows(), 4)
}

func TestEmptyRoot(t *testing.T) {
	m := New()
	m.SetRoot(&fstree.TreeEntry{Name: "empty", FullPath: "/empty", Kind: fstree.KindDirectory, ChildrenLoaded: true})
	assert.Nil(t, m.Selected())
	assert.Equal(t, "(empty)", m.View())
}

func TestViewRendersIconsAndSizes(t *testing.T) {
	m := newModel(t)
	m.SetExpanded(m.Selected(), true)

	view := m.View()
	assert.Contains(t, view, "- [D] src")
	assert.Contains(t, view, "  + [d] cmd")
	assert.Contains(t, view, "[f] README.md 2KiB")
}

func TestVolumeRowShowsMountPath(t *testing.T) {
	theme.UseASCIIIcons(true)
	t.Cleanup(func() { theme.UseASCIIIcons(false) })
	root := fstree.NewVolumesRoot()
	root.ChildrenLoaded = true
	root.Children = []*fstree.TreeEntry{{Name: "data", FullPath: "/mnt/data", Kind: fstree.KindVolume}}

	m := New()
	m.SetSize(80, 5)
	m.SetRoot(root)
	assert.Contains(t, m.View(), "[v] data /mnt/data")
}
