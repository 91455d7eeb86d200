package tui

import (
	"time"

	"reel/internal/domain"
)

// StorageChangedMsg is sent from outside the program (file watcher) when
// storage contents changed and a rescan is warranted.
type StorageChangedMsg struct{}

type hydratedMsg struct {
	err error
}

type scanFinishedMsg struct {
	result *domain.ScanResult
	err    error
}

type permissionCheckedMsg struct {
	granted bool
}

type playbackFinishedMsg struct {
	video     domain.Video
	offset    time.Duration
	startedAt time.Time
	err       error
}
