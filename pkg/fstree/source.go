package fstree

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Volume is a top-level logical storage unit exposed by the host.
type Volume struct {
	Name string
	Path string
}

// Source is the filesystem boundary the Navigator reads through.
// Paths are absolute host paths.
type Source interface {
	// Volumes enumerates the host's logical volumes.
	Volumes() ([]Volume, error)
	// ReadDir lists the immediate children of path. Symbolic links are
	// reported as their targets; entries that vanish or dangle are omitted.
	ReadDir(path string) ([]fs.FileInfo, error)
	// Stat describes path, following symbolic links.
	Stat(path string) (fs.FileInfo, error)
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)
}

// HostSource reads the real filesystem through package os.
type HostSource struct{}

// NewHostSource returns a Source backed by the host filesystem.
func NewHostSource() *HostSource {
	return &HostSource{}
}

func (s *HostSource) Volumes() ([]Volume, error) {
	return hostVolumes()
}

func (s *HostSource) ReadDir(path string) ([]fs.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]fs.FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			// Removed between the directory read and the stat.
			continue
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			target, err := os.Stat(filepath.Join(path, e.Name()))
			if err != nil {
				continue
			}
			info = target
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *HostSource) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (s *HostSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
