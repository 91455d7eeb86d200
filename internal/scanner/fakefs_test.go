package scanner

import (
	"errors"
	"sort"
	"strings"

	"reel/internal/domain"
)

// fakeFS is an in-memory Filesystem for scanner tests. Files map absolute
// paths to sizes; directories are implied by file paths plus any listed in
// dirs. Paths in unreadable fail to list.
type fakeFS struct {
	files      map[string]int64
	dirs       map[string]bool
	unreadable map[string]bool
	root       string
	rootErr    error
}

func newFakeFS(root string) *fakeFS {
	return &fakeFS{
		files:      make(map[string]int64),
		dirs:       map[string]bool{root: true},
		unreadable: make(map[string]bool),
		root:       root,
	}
}

func (f *fakeFS) addFile(path string, size int64) {
	f.files[path] = size
	for dir := parentOf(path); dir != ""; dir = parentOf(dir) {
		f.dirs[dir] = true
	}
}

func (f *fakeFS) addDir(path string) {
	f.dirs[path] = true
	for dir := parentOf(path); dir != ""; dir = parentOf(dir) {
		f.dirs[dir] = true
	}
}

func parentOf(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx <= 0 {
		return ""
	}
	return path[:idx]
}

func (f *fakeFS) ListDirectory(path string) ([]domain.DirEntry, error) {
	if f.unreadable[path] {
		return nil, errors.New("permission denied")
	}
	if !f.dirs[path] {
		return nil, errors.New("not a directory")
	}

	var entries []domain.DirEntry
	for file, size := range f.files {
		if parentOf(file) != path {
			continue
		}
		name := file[strings.LastIndexByte(file, '/')+1:]
		entries = append(entries, domain.DirEntry{
			Name: name, Path: file, IsFile: true, Size: size, ModifiedAt: 1700000000000,
		})
	}
	for dir := range f.dirs {
		if parentOf(dir) != path {
			continue
		}
		name := dir[strings.LastIndexByte(dir, '/')+1:]
		entries = append(entries, domain.DirEntry{Name: name, Path: dir, IsDir: true})
	}
	// Deterministic listing order for assertions.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func (f *fakeFS) StatPath(path string) (bool, bool, error) {
	if f.dirs[path] {
		return true, false, nil
	}
	if _, ok := f.files[path]; ok {
		return false, true, nil
	}
	return false, false, errors.New("no such file or directory")
}

func (f *fakeFS) ExternalStorageRoot() (string, error) {
	if f.rootErr != nil {
		return "", f.rootErr
	}
	return f.root, nil
}

func (f *fakeFS) PrivateAppDirectory() string { return "/private/reel" }
