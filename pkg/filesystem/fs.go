package filesystem

import (
	"io/fs"
)

// FS is the set of filesystem operations templateer needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// CreateExclusive writes data to a new file, failing with fs.ErrExist
	// when the file is already present.
	CreateExclusive(name string, data []byte, perm fs.FileMode) error

	// Glob returns the paths under dir matching a doublestar pattern,
	// joined with dir and sorted.
	Glob(dir, pattern string) ([]string, error)
}

// Exists reports whether name can be stat'ed
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
