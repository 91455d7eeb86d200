package scanner

import "strings"

// videoExtensions is the closed set of playable container extensions.
var videoExtensions = map[string]bool{
	"3g2": true, "3gp": true, "avi": true, "m4v": true, "mkv": true,
	"mov": true, "mp4": true, "mpeg": true, "mpg": true, "webm": true,
	"wmv": true,
}

// IsVideoFile reports whether filename has a playable video extension.
// Matching is case-insensitive; a name without a dot never matches.
func IsVideoFile(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return false
	}
	return videoExtensions[strings.ToLower(filename[idx+1:])]
}
