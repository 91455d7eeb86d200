package library

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel/internal/domain"
)

// fakePersistence records writes so tests can observe the fire-and-forget
// persistence without a real store.
type fakePersistence struct {
	mu        sync.Mutex
	favorites map[string]bool
	recents   []domain.Video
	favWrites int
	recWrites int
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{favorites: make(map[string]bool)}
}

func (f *fakePersistence) FavoriteIDs() map[string]bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]bool, len(f.favorites))
	for id := range f.favorites {
		out[id] = true
	}
	return out
}

func (f *fakePersistence) SetFavoriteIDs(ids map[string]bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites = ids
	f.favWrites++
	return nil
}

func (f *fakePersistence) RecentVideos() []domain.Video {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Video(nil), f.recents...)
}

func (f *fakePersistence) SetRecentVideos(videos []domain.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recents = videos
	f.recWrites++
	return nil
}

func (f *fakePersistence) writes() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.favWrites, f.recWrites
}

func testVideo(id string) domain.Video {
	return domain.Video{ID: id, Path: "/s/" + id + ".mp4", Name: id + ".mp4", Title: id}
}

func testResult(videos ...domain.Video) *domain.ScanResult {
	byFolder := make(map[string][]domain.Video)
	for _, v := range videos {
		byFolder[v.FolderPath] = append(byFolder[v.FolderPath], v)
	}
	return &domain.ScanResult{AllVideos: videos, ByFolder: byFolder, ScanDurationMs: 5}
}

func TestApplyScanResultReplacesWholesale(t *testing.T) {
	lib := New(newFakePersistence(), nil)

	lib.ApplyScanResult(testResult(testVideo("a"), testVideo("b")))
	assert.Len(t, lib.AllVideos(), 2)
	assert.Equal(t, int64(5), lib.ScanDurationMs())

	lib.ApplyScanResult(testResult(testVideo("c")))
	videos := lib.AllVideos()
	require.Len(t, videos, 1)
	assert.Equal(t, "c", videos[0].ID)
}

func TestApplyNilScanResultResetsScanFieldsOnly(t *testing.T) {
	lib := New(newFakePersistence(), nil)
	require.NoError(t, lib.Hydrate(context.Background()))

	lib.ApplyScanResult(testResult(testVideo("a")))
	lib.ToggleFavorite("a")
	lib.AddToRecent(testVideo("a"))

	lib.ApplyScanResult(nil)

	assert.Empty(t, lib.AllVideos())
	assert.Empty(t, lib.Folders())
	assert.Zero(t, lib.ScanDurationMs())
	// Favorites and recents survive the reset.
	assert.True(t, lib.IsFavorite("a"))
	assert.Len(t, lib.RecentVideos(), 1)
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	lib := New(newFakePersistence(), nil)

	lib.ToggleFavorite("v1")
	assert.True(t, lib.IsFavorite("v1"))

	lib.ToggleFavorite("v1")
	assert.False(t, lib.IsFavorite("v1"))
	assert.Empty(t, lib.FavoriteIDs())
}

func TestAddToRecentDeduplicatesById(t *testing.T) {
	lib := New(newFakePersistence(), nil)

	lib.AddToRecent(testVideo("a"))
	lib.AddToRecent(testVideo("b"))
	lib.AddToRecent(testVideo("a"))

	recents := lib.RecentVideos()
	require.Len(t, recents, 2)
	assert.Equal(t, "a", recents[0].ID)
	assert.Equal(t, "b", recents[1].ID)
}

func TestAddToRecentCapped(t *testing.T) {
	lib := New(newFakePersistence(), nil)

	for i := 0; i < MaxRecent+1; i++ {
		lib.AddToRecent(testVideo(fmt.Sprintf("v%03d", i)))
	}

	recents := lib.RecentVideos()
	require.Len(t, recents, MaxRecent)
	// Most-recent first; the very first entry has been evicted.
	assert.Equal(t, fmt.Sprintf("v%03d", MaxRecent), recents[0].ID)
	assert.Equal(t, "v001", recents[MaxRecent-1].ID)
}

func TestClearResetsEverything(t *testing.T) {
	lib := New(newFakePersistence(), nil)

	lib.ApplyScanResult(testResult(testVideo("a")))
	lib.ToggleFavorite("a")
	lib.AddToRecent(testVideo("a"))

	lib.Clear()

	assert.Empty(t, lib.AllVideos())
	assert.Empty(t, lib.FavoriteIDs())
	assert.Empty(t, lib.RecentVideos())
}

func TestHydrateLoadsPersistedState(t *testing.T) {
	persist := newFakePersistence()
	persist.favorites["fav1"] = true
	persist.recents = []domain.Video{testVideo("r1")}

	lib := New(persist, nil)
	require.NoError(t, lib.Hydrate(context.Background()))

	assert.True(t, lib.IsFavorite("fav1"))
	require.Len(t, lib.RecentVideos(), 1)
	assert.Equal(t, "r1", lib.RecentVideos()[0].ID)
}

func TestHydrateDiscardedWhenCancelled(t *testing.T) {
	persist := newFakePersistence()
	persist.favorites["fav1"] = true

	lib := New(persist, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, lib.Hydrate(ctx))
	assert.False(t, lib.IsFavorite("fav1"))

	// Not hydrated: mutations stay in memory, nothing is written back.
	lib.ToggleFavorite("x")
	time.Sleep(20 * time.Millisecond)
	favWrites, _ := persist.writes()
	assert.Zero(t, favWrites)
}

func TestMutationsPersistAfterHydration(t *testing.T) {
	persist := newFakePersistence()
	lib := New(persist, nil)
	require.NoError(t, lib.Hydrate(context.Background()))

	lib.ToggleFavorite("v1")
	lib.AddToRecent(testVideo("v1"))

	assert.Eventually(t, func() bool {
		favWrites, recWrites := persist.writes()
		return favWrites == 1 && recWrites == 1
	}, time.Second, 5*time.Millisecond)

	assert.True(t, persist.FavoriteIDs()["v1"])
	require.Len(t, persist.RecentVideos(), 1)
}

func TestFavoriteVideosFollowsScanOrder(t *testing.T) {
	lib := New(newFakePersistence(), nil)
	lib.ApplyScanResult(testResult(testVideo("a"), testVideo("b"), testVideo("c")))

	lib.ToggleFavorite("c")
	lib.ToggleFavorite("a")

	favs := lib.FavoriteVideos()
	require.Len(t, favs, 2)
	assert.Equal(t, "a", favs[0].ID)
	assert.Equal(t, "c", favs[1].ID)
}
