package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkCollectsVideosAndSkipsOthers(t *testing.T) {
	fs := newFakeFS("/s")
	fs.addFile("/s/Movies/a.mp4", 10)
	fs.addFile("/s/Movies/b.txt", 5)
	fs.addFile("/s/Movies/sub/c.MKV", 20)

	w := NewWalker(fs, DefaultMaxDepth, nil)
	videos := w.Walk(context.Background(), "/s")

	require.Len(t, videos, 2)
	assert.Equal(t, "/s/Movies/a.mp4", videos[0].Path)
	assert.Equal(t, "/s/Movies/sub/c.MKV", videos[1].Path)
	assert.Equal(t, int64(10), videos[0].Size)
	assert.Equal(t, "/s/Movies", videos[0].FolderPath)
}

func TestWalkDepthBound(t *testing.T) {
	fs := newFakeFS("/s")
	fs.addFile("/s/d1/one.mp4", 1)
	fs.addFile("/s/d1/d2/two.mp4", 1)
	fs.addFile("/s/d1/d2/d3/three.mp4", 1)

	// Depth 0 is the root listing itself: only files directly under /s.
	assert.Empty(t, NewWalker(fs, 0, nil).Walk(context.Background(), "/s"))

	videos := NewWalker(fs, 1, nil).Walk(context.Background(), "/s")
	require.Len(t, videos, 1)
	assert.Equal(t, "/s/d1/one.mp4", videos[0].Path)

	videos = NewWalker(fs, 2, nil).Walk(context.Background(), "/s")
	assert.Len(t, videos, 2)
}

func TestWalkUnreadableDirectoryIsSkipped(t *testing.T) {
	fs := newFakeFS("/s")
	fs.addFile("/s/good/a.mp4", 1)
	fs.addFile("/s/locked/b.mp4", 1)
	fs.unreadable["/s/locked"] = true

	videos := NewWalker(fs, DefaultMaxDepth, nil).Walk(context.Background(), "/s")

	require.Len(t, videos, 1)
	assert.Equal(t, "/s/good/a.mp4", videos[0].Path)
}

func TestWalkUnreadableRootYieldsNothing(t *testing.T) {
	fs := newFakeFS("/s")
	fs.addFile("/s/a.mp4", 1)
	fs.unreadable["/s"] = true

	assert.Empty(t, NewWalker(fs, DefaultMaxDepth, nil).Walk(context.Background(), "/s"))
}

func TestWalkCancelledContext(t *testing.T) {
	fs := newFakeFS("/s")
	fs.addFile("/s/a.mp4", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, NewWalker(fs, DefaultMaxDepth, nil).Walk(ctx, "/s"))
}
