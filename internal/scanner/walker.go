package scanner

import (
	"context"
	"log/slog"

	"reel/internal/domain"
)

// Walker traverses a storage tree to a bounded depth, collecting playable
// videos. A directory that fails to list contributes nothing; the walk
// continues with siblings and other roots.
type Walker struct {
	fs       domain.Filesystem
	maxDepth int
	logger   *slog.Logger
}

// NewWalker creates a walker. Depth 0 is the root itself; directories
// deeper than maxDepth are not listed.
func NewWalker(fs domain.Filesystem, maxDepth int, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{fs: fs, maxDepth: maxDepth, logger: logger}
}

// Walk collects all videos under root in listing order. Only context
// cancellation aborts the walk; filesystem errors are skipped.
func (w *Walker) Walk(ctx context.Context, root string) []domain.Video {
	var acc []domain.Video
	w.walkDir(ctx, root, 0, &acc)
	return acc
}

func (w *Walker) walkDir(ctx context.Context, dir string, depth int, acc *[]domain.Video) {
	if depth > w.maxDepth || ctx.Err() != nil {
		return
	}

	entries, err := w.fs.ListDirectory(dir)
	if err != nil {
		// Unreadable subtree: permission error, deleted mid-scan, or not
		// actually a directory. Skip it and keep going.
		w.logger.Debug("skipping unreadable directory", "path", dir, "error", err)
		return
	}

	for _, entry := range entries {
		switch {
		case entry.IsDir:
			w.walkDir(ctx, entry.Path, depth+1, acc)
		case entry.IsFile && IsVideoFile(entry.Name):
			*acc = append(*acc, BuildVideo(entry.Path, entry.Name, entry.Size, entry.ModifiedAt))
		}
	}
}
