package scanner

import (
	"strings"

	"reel/internal/domain"
)

// Aggregate groups a flat video list by folder path. Groups keep scan
// order, and the folder list keeps the first-appearance order of each
// folder key. A video with an empty folder path groups under its own path,
// so every video lands in exactly one group.
func Aggregate(videos []domain.Video) (map[string][]domain.Video, []domain.Folder) {
	byFolder := make(map[string][]domain.Video)
	var order []string

	for _, v := range videos {
		key := v.FolderPath
		if key == "" {
			key = v.Path
		}
		if _, seen := byFolder[key]; !seen {
			order = append(order, key)
		}
		byFolder[key] = append(byFolder[key], v)
	}

	folders := make([]domain.Folder, 0, len(order))
	for _, path := range order {
		group := byFolder[path]
		folders = append(folders, domain.Folder{
			ID:               VideoID(path),
			Path:             path,
			Name:             folderName(path),
			VideoCount:       len(group),
			PreviewVideoPath: group[0].Path,
		})
	}
	return byFolder, folders
}

// folderName returns the last non-empty path segment, or the full path when
// no segment exists.
func folderName(path string) string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return path
}
