package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel/internal/domain"
)

func indexOf(titles ...string) *Index {
	videos := make([]domain.Video, len(titles))
	for i, title := range titles {
		videos[i] = domain.Video{ID: title, Title: title}
	}
	idx := NewIndex()
	idx.Rebuild(videos)
	return idx
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	idx := indexOf("Holiday Trip", "Birthday Party", "holiday outtakes")

	results := idx.Search("HOLIDAY")
	require.Len(t, results, 2)
	for _, v := range results {
		assert.Contains(t, []string{"Holiday Trip", "holiday outtakes"}, v.Title)
	}
}

func TestSearchRanksCloserMatchesFirst(t *testing.T) {
	idx := indexOf("trip", "triple feature")

	results := idx.Search("trip")
	require.NotEmpty(t, results)
	assert.Equal(t, "trip", results[0].Title)
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := indexOf("a", "b")
	assert.Empty(t, idx.Search(""))
	assert.Empty(t, idx.Search("   "))
}

func TestRebuildReplacesIndex(t *testing.T) {
	idx := indexOf("old title")
	require.Equal(t, 1, idx.Len())

	idx.Rebuild([]domain.Video{{ID: "n", Title: "new title"}})
	assert.Empty(t, idx.Search("old"))
	assert.Len(t, idx.Search("new"), 1)
}
