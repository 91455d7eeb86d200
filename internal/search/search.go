package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"reel/internal/domain"
)

// Index is the fuzzy title index over the current library. It is rebuilt
// wholesale whenever a scan result is applied, mirroring how the library
// itself replaces scan state.
type Index struct {
	mu     sync.RWMutex
	videos []domain.Video
	titles []string // Lowercase titles, parallel to videos
}

func NewIndex() *Index {
	return &Index{}
}

// Rebuild replaces the index contents.
func (idx *Index) Rebuild(videos []domain.Video) {
	titles := make([]string, len(videos))
	for i, v := range videos {
		titles[i] = strings.ToLower(v.Title)
	}

	idx.mu.Lock()
	idx.videos = videos
	idx.titles = titles
	idx.mu.Unlock()
}

// Search returns videos whose titles fuzzily match query, best match
// first. An empty query matches nothing.
func (idx *Index) Search(query string) []domain.Video {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	matches := fuzzy.RankFindFold(query, idx.titles)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	results := make([]domain.Video, 0, len(matches))
	for _, m := range matches {
		results = append(results, idx.videos[m.OriginalIndex])
	}
	return results
}

// Len reports the number of indexed videos.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.videos)
}
