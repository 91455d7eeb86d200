package domain

// DirEntry is one entry returned by listing a directory.
type DirEntry struct {
	Name       string
	Path       string
	IsDir      bool
	IsFile     bool
	Size       int64 // 0 if unknown
	ModifiedAt int64 // Unix ms, 0 if unknown
}

// Filesystem abstracts storage access so the walker can be tested against
// fakes. Implementations must fail cleanly on missing or unreadable paths.
type Filesystem interface {
	// ListDirectory returns the entries of a directory in whatever order
	// the underlying listing yields them.
	ListDirectory(path string) ([]DirEntry, error)

	// StatPath reports whether path exists and what it is.
	StatPath(path string) (isDir bool, isFile bool, err error)

	// ExternalStorageRoot returns the user storage root to scan.
	ExternalStorageRoot() (string, error)

	// PrivateAppDirectory returns the app-private fallback directory.
	// It is always resolvable.
	PrivateAppDirectory() string
}

// DocumentStore is durable string-keyed storage for JSON documents.
// Reads report absence separately from failure; callers treat failure
// as "use the default value".
type DocumentStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// PermissionProvider reports whether the app may read videos from storage.
// Denial is a first-class state, not an error.
type PermissionProvider interface {
	CanAccessVideos() bool
	Request() bool
	OpenSettings() error
}
