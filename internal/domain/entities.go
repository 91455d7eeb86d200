package domain

import (
	"fmt"
	"time"
)

// Video represents one playable file discovered on local storage.
type Video struct {
	ID         string `json:"id"`         // Stable, derived from Path
	Path       string `json:"path"`       // Absolute file path
	Name       string `json:"name"`       // File name including extension
	Title      string `json:"title"`      // File name without extension
	Size       int64  `json:"size"`       // Byte count, 0 if unknown
	ModifiedAt int64  `json:"modifiedAt"` // Unix ms, 0 if unavailable
	FolderPath string `json:"folderPath"` // Immediate parent directory

	// Populated lazily by the player, never by the scanner.
	Duration      float64 `json:"duration,omitempty"` // Seconds
	MimeType      string  `json:"mimeType,omitempty"`
	ThumbnailPath string  `json:"thumbnailPath,omitempty"`
}

// FormattedSize returns the file size in a human-readable format
func (v Video) FormattedSize() string {
	if v.Size <= 0 {
		return ""
	}
	const (
		gb = 1024 * 1024 * 1024
		mb = 1024 * 1024
	)
	switch {
	case v.Size >= gb:
		return fmt.Sprintf("%.1f GB", float64(v.Size)/float64(gb))
	default:
		return fmt.Sprintf("%d MB", v.Size/mb)
	}
}

// FormattedModified returns the modification time as a date, or "" if unknown
func (v Video) FormattedModified() string {
	if v.ModifiedAt <= 0 {
		return ""
	}
	return time.UnixMilli(v.ModifiedAt).Format("2006-01-02")
}

// Folder is the aggregate of all scanned videos sharing one parent directory.
// Folders are derived from scan output, never created independently.
type Folder struct {
	ID               string `json:"id"`
	Path             string `json:"path"`
	Name             string `json:"name"` // Last path segment
	VideoCount       int    `json:"videoCount"`
	PreviewVideoPath string `json:"previewVideoPath,omitempty"` // First video seen in scan order
}

// FormattedCount returns the video count for display
func (f Folder) FormattedCount() string {
	if f.VideoCount == 1 {
		return "1 video"
	}
	return fmt.Sprintf("%d videos", f.VideoCount)
}

// ScanResult is the immutable snapshot produced by one full scan.
// A new result supersedes the previous one wholesale; it is never
// partially mutated.
type ScanResult struct {
	AllVideos      []Video            // Scan order
	ByFolder       map[string][]Video // FolderPath -> videos, scan order within folder
	Folders        []Folder           // First-appearance order
	ScanDurationMs int64
}

// LastPosition is the resume checkpoint saved when playback exits.
type LastPosition struct {
	Position  float64 `json:"position"`  // Seconds
	Duration  float64 `json:"duration"`  // Seconds
	UpdatedAt int64   `json:"updatedAt"` // Unix ms
}
