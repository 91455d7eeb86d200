package scanner

import (
	"context"
	"log/slog"
	"time"

	"reel/internal/domain"
)

// DefaultMaxDepth bounds the recursive walk so a scan never crawls the
// whole device.
const DefaultMaxDepth = 8

// Service runs full library scans: resolve roots, walk each in order,
// aggregate into the folder index. Directories are visited sequentially;
// a result is only produced once every root has completed.
type Service struct {
	fs       domain.Filesystem
	resolver *RootResolver
	walker   *Walker
	logger   *slog.Logger
}

// NewService creates a scan service. maxDepth <= 0 selects DefaultMaxDepth.
func NewService(fs domain.Filesystem, extraRoots []string, maxDepth int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Service{
		fs:       fs,
		resolver: NewRootResolver(fs, extraRoots, logger),
		walker:   NewWalker(fs, maxDepth, logger),
		logger:   logger,
	}
}

// Scan walks all resolved roots and returns a fresh snapshot. Roots can
// overlap (the storage root contains the candidate subdirectories), so
// videos are deduplicated by id, keeping the first occurrence.
func (s *Service) Scan(ctx context.Context) (*domain.ScanResult, error) {
	start := time.Now()

	roots, err := s.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("scan started", "roots", len(roots))

	var all []domain.Video
	seen := make(map[string]bool)
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, v := range s.walker.Walk(ctx, root) {
			if seen[v.ID] {
				continue
			}
			seen[v.ID] = true
			all = append(all, v)
		}
	}

	byFolder, folders := Aggregate(all)
	result := &domain.ScanResult{
		AllVideos:      all,
		ByFolder:       byFolder,
		Folders:        folders,
		ScanDurationMs: time.Since(start).Milliseconds(),
	}

	s.logger.Info("scan complete",
		"videos", len(all),
		"folders", len(folders),
		"durationMs", result.ScanDurationMs)

	return result, nil
}
