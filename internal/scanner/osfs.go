package scanner

import (
	"os"
	"path/filepath"

	"reel/internal/domain"
)

// OSFilesystem implements domain.Filesystem against the local disk.
type OSFilesystem struct {
	// Root overrides the detected storage root when set (config
	// storage.root). Empty means use the user's home directory.
	Root string
}

func (f *OSFilesystem) ListDirectory(path string) ([]domain.DirEntry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.DirEntry, 0, len(dirents))
	for _, d := range dirents {
		entry := domain.DirEntry{
			Name:  d.Name(),
			Path:  filepath.Join(path, d.Name()),
			IsDir: d.IsDir(),
			// Symlinks and other irregular entries count as neither, the
			// walker leaves them alone.
			IsFile: d.Type().IsRegular(),
		}
		if entry.IsFile {
			if info, err := d.Info(); err == nil {
				entry.Size = info.Size()
				entry.ModifiedAt = info.ModTime().UnixMilli()
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (f *OSFilesystem) StatPath(path string) (bool, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, false, err
	}
	return info.IsDir(), info.Mode().IsRegular(), nil
}

func (f *OSFilesystem) ExternalStorageRoot() (string, error) {
	if f.Root != "" {
		return f.Root, nil
	}
	return os.UserHomeDir()
}

func (f *OSFilesystem) PrivateAppDirectory() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, ".local", "share", "reel")
}
