package library

import (
	"context"
	"log/slog"
	"sync"

	"reel/internal/domain"
)

// MaxRecent bounds the recent list held in memory and persisted.
const MaxRecent = 50

// Persistence is the durable backing for favorites and recents. Reads
// degrade to zero values; write errors are logged and dropped, persistence
// is best-effort and never blocks a mutation.
type Persistence interface {
	FavoriteIDs() map[string]bool
	SetFavoriteIDs(ids map[string]bool) error
	RecentVideos() []domain.Video
	SetRecentVideos(videos []domain.Video) error
}

// Library is the single mutable source of truth consumed by every view.
// Scan output replaces the video/folder fields wholesale; favorites and
// recents survive re-scans and are written back after every change once
// hydration has completed. All mutation goes through the methods below.
type Library struct {
	mu sync.RWMutex

	allVideos      []domain.Video
	folders        []domain.Folder
	byFolder       map[string][]domain.Video
	favoriteIDs    map[string]bool
	recentVideos   []domain.Video
	scanDurationMs int64
	hydrated       bool

	persist Persistence
	logger  *slog.Logger
}

func New(persist Persistence, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{
		byFolder:    make(map[string][]domain.Video),
		favoriteIDs: make(map[string]bool),
		persist:     persist,
		logger:      logger,
	}
}

// Hydrate performs the one-time load of persisted favorites and recents.
// The context acts as the cancellation flag: a hydration that finishes
// after its owning scope is gone must not clobber state, so the result is
// discarded when ctx is already cancelled.
func (l *Library) Hydrate(ctx context.Context) error {
	favorites := l.persist.FavoriteIDs()
	recents := l.persist.RecentVideos()

	if err := ctx.Err(); err != nil {
		l.logger.Debug("hydration discarded", "error", err)
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.favoriteIDs = favorites
	l.recentVideos = recents
	l.hydrated = true
	l.logger.Debug("library hydrated", "favorites", len(favorites), "recents", len(recents))
	return nil
}

// ApplyScanResult replaces the scan-derived fields wholesale. A nil result
// resets them (permission revoked, scan cleared) while leaving favorites
// and recents untouched.
func (l *Library) ApplyScanResult(result *domain.ScanResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if result == nil {
		l.allVideos = nil
		l.folders = nil
		l.byFolder = make(map[string][]domain.Video)
		l.scanDurationMs = 0
		return
	}

	l.allVideos = result.AllVideos
	l.folders = result.Folders
	l.byFolder = result.ByFolder
	l.scanDurationMs = result.ScanDurationMs
}

// ToggleFavorite flips videoID's membership in the favorite set. Toggling
// twice restores the original state.
func (l *Library) ToggleFavorite(videoID string) {
	l.mu.Lock()
	if l.favoriteIDs[videoID] {
		delete(l.favoriteIDs, videoID)
	} else {
		l.favoriteIDs[videoID] = true
	}
	snapshot := copyIDs(l.favoriteIDs)
	hydrated := l.hydrated
	l.mu.Unlock()

	if hydrated {
		go l.persistFavorites(snapshot)
	}
}

// AddToRecent moves video to the front of the recent list, dropping any
// older entry with the same id and truncating to MaxRecent.
func (l *Library) AddToRecent(video domain.Video) {
	l.mu.Lock()
	next := make([]domain.Video, 0, len(l.recentVideos)+1)
	next = append(next, video)
	for _, v := range l.recentVideos {
		if v.ID != video.ID {
			next = append(next, v)
		}
	}
	if len(next) > MaxRecent {
		next = next[:MaxRecent]
	}
	l.recentVideos = next
	snapshot := make([]domain.Video, len(next))
	copy(snapshot, next)
	hydrated := l.hydrated
	l.mu.Unlock()

	if hydrated {
		go l.persistRecents(snapshot)
	}
}

// Clear resets the entire state, favorites and recents included. Used on a
// hard reset such as permission revocation.
func (l *Library) Clear() {
	l.mu.Lock()
	l.allVideos = nil
	l.folders = nil
	l.byFolder = make(map[string][]domain.Video)
	l.favoriteIDs = make(map[string]bool)
	l.recentVideos = nil
	l.scanDurationMs = 0
	hydrated := l.hydrated
	l.mu.Unlock()

	if hydrated {
		go l.persistFavorites(map[string]bool{})
		go l.persistRecents(nil)
	}
}

func (l *Library) persistFavorites(ids map[string]bool) {
	if err := l.persist.SetFavoriteIDs(ids); err != nil {
		l.logger.Debug("favorite persistence failed", "error", err)
	}
}

func (l *Library) persistRecents(videos []domain.Video) {
	if err := l.persist.SetRecentVideos(videos); err != nil {
		l.logger.Debug("recent persistence failed", "error", err)
	}
}

// === Queries (synchronous, copy-out) ===

func (l *Library) AllVideos() []domain.Video {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyVideos(l.allVideos)
}

func (l *Library) Folders() []domain.Folder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Folder, len(l.folders))
	copy(out, l.folders)
	return out
}

func (l *Library) VideosInFolder(folderPath string) []domain.Video {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyVideos(l.byFolder[folderPath])
}

func (l *Library) RecentVideos() []domain.Video {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyVideos(l.recentVideos)
}

// FavoriteVideos returns the favorited subset of the library in scan order.
func (l *Library) FavoriteVideos() []domain.Video {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Video
	for _, v := range l.allVideos {
		if l.favoriteIDs[v.ID] {
			out = append(out, v)
		}
	}
	return out
}

func (l *Library) FavoriteIDs() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyIDs(l.favoriteIDs)
}

func (l *Library) IsFavorite(videoID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.favoriteIDs[videoID]
}

func (l *Library) ScanDurationMs() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.scanDurationMs
}

func copyVideos(in []domain.Video) []domain.Video {
	if in == nil {
		return nil
	}
	out := make([]domain.Video, len(in))
	copy(out, in)
	return out
}

func copyIDs(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for id := range in {
		out[id] = true
	}
	return out
}
