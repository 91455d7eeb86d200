package scanner

import (
	"log/slog"

	"reel/internal/domain"
)

// candidateSubdirs are probed under the storage root, in this order. The
// empty entry is the root itself. Declaration order fixes the order of the
// flat video list and therefore folder preview selection.
var candidateSubdirs = []string{
	"",
	"DCIM",
	"Movies",
	"Download",
	"Downloads",
	"Video",
	"Videos",
	"Pictures",
	"Documents",
}

// RootResolver computes the set of top-level directories to walk.
type RootResolver struct {
	fs     domain.Filesystem
	extra  []string // Configured additional roots, probed after the candidates
	logger *slog.Logger
}

// NewRootResolver creates a resolver over fs. extra roots come from config
// and are appended after the standard candidates when they exist.
func NewRootResolver(fs domain.Filesystem, extra []string, logger *slog.Logger) *RootResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &RootResolver{fs: fs, extra: extra, logger: logger}
}

// Resolve returns the ordered list of existing, readable scan roots. If the
// storage root cannot be determined it falls back to the app-private
// directory; only when even that is unusable does resolution fail.
func (r *RootResolver) Resolve() ([]string, error) {
	var roots []string

	external, err := r.fs.ExternalStorageRoot()
	if err != nil {
		r.logger.Warn("storage root unavailable, falling back to private dir", "error", err)
		return r.fallback()
	}

	for _, sub := range candidateSubdirs {
		path := external
		if sub != "" {
			path = external + "/" + sub
		}
		if r.isDir(path) {
			roots = append(roots, path)
		}
	}

	for _, path := range r.extra {
		if path != "" && r.isDir(path) {
			roots = append(roots, path)
		}
	}

	if len(roots) == 0 {
		return r.fallback()
	}
	return roots, nil
}

func (r *RootResolver) fallback() ([]string, error) {
	private := r.fs.PrivateAppDirectory()
	if !r.isDir(private) {
		return nil, domain.ErrNoScanRoots
	}
	return []string{private}, nil
}

func (r *RootResolver) isDir(path string) bool {
	isDir, _, err := r.fs.StatPath(path)
	if err != nil {
		return false
	}
	return isDir
}
