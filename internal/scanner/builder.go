package scanner

import (
	"strings"

	"reel/internal/domain"
)

// VideoID derives the stable id for a path: separators replaced with '_'.
// The id is a pure function of the path, so repeated scans key the same
// file identically.
func VideoID(path string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, path)
}

// TitleFromName strips the last extension from a file name. A leading-dot
// name like ".hidden" keeps its full name.
func TitleFromName(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx > 0 {
		return name[:idx]
	}
	return name
}

// BuildVideo converts a raw directory entry into a Video. The folder path
// is derived by truncating the entry's own name off the full path, never
// re-derived from the filesystem, so it stays consistent with the path the
// walker actually visited.
func BuildVideo(path, name string, size, modifiedAt int64) domain.Video {
	cut := len(path) - len(name) - 1
	if cut < 0 {
		cut = 0
	}
	if size < 0 {
		size = 0
	}
	if modifiedAt < 0 {
		modifiedAt = 0
	}
	return domain.Video{
		ID:         VideoID(path),
		Path:       path,
		Name:       name,
		Title:      TitleFromName(name),
		Size:       size,
		ModifiedAt: modifiedAt,
		FolderPath: path[:cut],
	}
}
