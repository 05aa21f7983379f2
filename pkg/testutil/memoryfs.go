package testutil

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bullish-design/templateer/pkg/filesystem"
)

// MemoryFS implements filesystem.FS with in-memory storage. Paths are
// cleaned and made absolute against "/".
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode

	// Error injection
	errorPaths map[string]error

	writeCount int
}

var _ filesystem.FS = (*MemoryFS)(nil)

type fileNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates an empty in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*fileNode{
			"/": {name: "/", mode: fs.ModeDir | 0755, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

func normalizePath(name string) string {
	name = filepath.ToSlash(name)
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return path.Clean(name)
}

// InjectError makes every operation on name fail with err
func (m *MemoryFS) InjectError(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[normalizePath(name)] = err
}

// WriteCount returns how many write operations succeeded
func (m *MemoryFS) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writeCount
}

func (m *MemoryFS) injected(name string) error {
	return m.errorPaths[name]
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := normalizePath(name)
	if err := m.injected(p); err != nil {
		return nil, err
	}
	node, ok := m.nodes[p]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &fileInfo{node: node}, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := normalizePath(name)
	if err := m.injected(p); err != nil {
		return nil, err
	}
	node, ok := m.nodes[p]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.write(name, data, perm, false)
}

func (m *MemoryFS) CreateExclusive(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.write(name, data, perm, true)
}

// write stores a file. The parent directory must exist, as it must on disk.
func (m *MemoryFS) write(name string, data []byte, perm fs.FileMode, exclusive bool) error {
	p := normalizePath(name)
	if err := m.injected(p); err != nil {
		return err
	}

	parent, ok := m.nodes[path.Dir(p)]
	if !ok {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if !parent.isDir {
		return &fs.PathError{Op: "open", Path: name, Err: errors.New("not a directory")}
	}

	if existing, ok := m.nodes[p]; ok {
		if exclusive {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
		}
		if existing.isDir {
			return &fs.PathError{Op: "open", Path: name, Err: errors.New("is a directory")}
		}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.nodes[p] = &fileNode{
		name:    path.Base(p),
		mode:    perm,
		modTime: time.Now(),
		content: content,
	}
	m.writeCount++
	return nil
}

func (m *MemoryFS) MkdirAll(name string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := normalizePath(name)
	var missing []string
	for cur := p; ; cur = path.Dir(cur) {
		if err := m.injected(cur); err != nil {
			return err
		}
		if node, ok := m.nodes[cur]; ok {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: errors.New("not a directory")}
			}
			break
		}
		missing = append(missing, cur)
		if cur == "/" {
			break
		}
	}

	for i := len(missing) - 1; i >= 0; i-- {
		m.nodes[missing[i]] = &fileNode{
			name:    path.Base(missing[i]),
			mode:    fs.ModeDir | perm,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := normalizePath(name)
	if err := m.injected(p); err != nil {
		return nil, err
	}
	node, ok := m.nodes[p]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	var entries []fs.DirEntry
	for child, n := range m.nodes {
		if child != "/" && path.Dir(child) == p {
			entries = append(entries, fs.FileInfoToDirEntry(&fileInfo{node: n}))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Glob matches files below dir against a doublestar pattern
func (m *MemoryFS) Glob(dir, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	root := normalizePath(dir)
	var matches []string
	for p, node := range m.nodes {
		if node.isDir || !strings.HasPrefix(p, strings.TrimSuffix(root, "/")+"/") {
			continue
		}
		rel := strings.TrimPrefix(p, strings.TrimSuffix(root, "/")+"/")
		if ok, _ := doublestar.Match(pattern, rel); ok {
			matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
		}
	}
	sort.Strings(matches)
	return matches, nil
}

type fileInfo struct {
	node *fileNode
}

func (fi *fileInfo) Name() string       { return fi.node.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() fs.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return nil }
