package storage

import (
	"encoding/json"
	"log/slog"
	"time"

	"reel/internal/domain"
)

// Document keys, stable across app runs.
const (
	keyFavoriteIDs   = "favoriteIds"
	keyRecentVideos  = "recentVideos"
	keyLastPositions = "lastPositions"
)

// MaxRecentVideos bounds the persisted recent list.
const MaxRecentVideos = 50

// PlaybackStore persists favorites, recent videos, and resume checkpoints
// as whole JSON documents in a DocumentStore. Persistence here is
// best-effort by contract: reads degrade to zero values and write failures
// surface as errors the caller is expected to drop after logging. Nothing
// in this package ever takes the session down over a storage fault.
type PlaybackStore struct {
	docs   domain.DocumentStore
	logger *slog.Logger
}

func NewPlaybackStore(docs domain.DocumentStore, logger *slog.Logger) *PlaybackStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaybackStore{docs: docs, logger: logger}
}

// FavoriteIDs loads the persisted favorite id set. Missing or corrupt
// documents yield an empty set.
func (p *PlaybackStore) FavoriteIDs() map[string]bool {
	ids := make(map[string]bool)
	var list []string
	if p.load(keyFavoriteIDs, &list) {
		for _, id := range list {
			ids[id] = true
		}
	}
	return ids
}

// SetFavoriteIDs writes the favorite id set.
func (p *PlaybackStore) SetFavoriteIDs(ids map[string]bool) error {
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	return p.save(keyFavoriteIDs, list)
}

// RecentVideos loads the persisted recent list, most-recent first, capped
// at MaxRecentVideos.
func (p *PlaybackStore) RecentVideos() []domain.Video {
	var videos []domain.Video
	if !p.load(keyRecentVideos, &videos) {
		return nil
	}
	if len(videos) > MaxRecentVideos {
		videos = videos[:MaxRecentVideos]
	}
	return videos
}

// SetRecentVideos writes the recent list, truncated to MaxRecentVideos.
func (p *PlaybackStore) SetRecentVideos(videos []domain.Video) error {
	if len(videos) > MaxRecentVideos {
		videos = videos[:MaxRecentVideos]
	}
	return p.save(keyRecentVideos, videos)
}

// LastPosition returns the resume checkpoint for a video, if one exists.
func (p *PlaybackStore) LastPosition(videoID string) (domain.LastPosition, bool) {
	positions := p.lastPositions()
	lp, ok := positions[videoID]
	return lp, ok
}

// SetLastPosition upserts one video's checkpoint. The whole document is
// read, modified, and written back; the app is single-instance so there is
// no concurrent writer to race with.
func (p *PlaybackStore) SetLastPosition(videoID string, position, duration float64) error {
	positions := p.lastPositions()
	positions[videoID] = domain.LastPosition{
		Position:  position,
		Duration:  duration,
		UpdatedAt: time.Now().UnixMilli(),
	}
	return p.save(keyLastPositions, positions)
}

func (p *PlaybackStore) lastPositions() map[string]domain.LastPosition {
	positions := make(map[string]domain.LastPosition)
	p.load(keyLastPositions, &positions)
	return positions
}

// load reads and decodes one document, reporting false on absence or any
// failure so callers fall back to defaults.
func (p *PlaybackStore) load(key string, dest interface{}) bool {
	raw, ok, err := p.docs.Get(key)
	if err != nil {
		p.logger.Debug("document read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		p.logger.Debug("document decode failed", "key", key, "error", err)
		return false
	}
	return true
}

func (p *PlaybackStore) save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.docs.Set(key, string(data))
}
