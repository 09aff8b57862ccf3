// Package fstreetest provides an in-memory fstree.Source for tests.
package fstreetest

import (
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"

	"github.com/grovetools/fbrowse/pkg/fstree"
)

// Source serves a fstest.MapFS under slash-separated absolute paths
// ("/docs/a.txt" maps to the MapFS key "docs/a.txt"). Failures can be
// injected per path and calls are counted.
type Source struct {
	FS         fstest.MapFS
	VolumeList []fstree.Volume
	VolumesErr error

	mu       sync.Mutex
	failList map[string]error
	failOpen map[string]error
	readDirs map[string]int
	opens    map[string]int
}

// New returns a Source over fsys exposing a single "/" volume.
func New(fsys fstest.MapFS) *Source {
	return &Source{
		FS:         fsys,
		VolumeList: []fstree.Volume{{Name: "/", Path: "/"}},
		failList:   make(map[string]error),
		failOpen:   make(map[string]error),
		readDirs:   make(map[string]int),
		opens:      make(map[string]int),
	}
}

// FailReadDir makes ReadDir(p) return err until cleared with a nil err.
func (s *Source) FailReadDir(p string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failList, p)
		return
	}
	s.failList[p] = err
}

// FailOpen makes Open(p) return err until cleared with a nil err.
func (s *Source) FailOpen(p string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOpen, p)
		return
	}
	s.failOpen[p] = err
}

// ReadDirCalls reports how often ReadDir(p) was called.
func (s *Source) ReadDirCalls(p string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readDirs[p]
}

// OpenCalls reports how often Open(p) was called.
func (s *Source) OpenCalls(p string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens[p]
}

// Remove deletes p and everything below it.
func (s *Source) Remove(p string) {
	key := rel(p)
	for k := range s.FS {
		if k == key || strings.HasPrefix(k, key+"/") {
			delete(s.FS, k)
		}
	}
}

func (s *Source) Volumes() ([]fstree.Volume, error) {
	if s.VolumesErr != nil {
		return nil, s.VolumesErr
	}
	return s.VolumeList, nil
}

func (s *Source) ReadDir(p string) ([]fs.FileInfo, error) {
	s.mu.Lock()
	s.readDirs[p]++
	err := s.failList[p]
	s.mu.Unlock()
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: err}
	}

	entries, err := fs.ReadDir(s.FS, rel(p))
	if err != nil {
		return nil, err
	}
	infos := make([]fs.FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *Source) Stat(p string) (fs.FileInfo, error) {
	return fs.Stat(s.FS, rel(p))
}

func (s *Source) Open(p string) (io.ReadCloser, error) {
	s.mu.Lock()
	s.opens[p]++
	err := s.failOpen[p]
	s.mu.Unlock()
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: p, Err: err}
	}
	return s.FS.Open(rel(p))
}

func rel(p string) string {
	r := strings.TrimPrefix(path.Clean("/"+p), "/")
	if r == "" {
		return "."
	}
	return r
}
