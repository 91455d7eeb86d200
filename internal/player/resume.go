package player

import (
	"time"

	"reel/internal/domain"
)

// Resume guards: skip checkpoints essentially at the start or the end.
const (
	minResumePosition = 5.0 // Seconds
	endGuard          = 5.0 // Seconds before the end
)

// ResumeEligible reports whether a saved checkpoint is worth offering.
func ResumeEligible(position, duration float64) bool {
	return position >= minResumePosition &&
		duration > 0 &&
		position < duration-endGuard
}

// StartOffset converts a checkpoint into a start offset for the launcher,
// zero when the checkpoint is not resume-eligible.
func StartOffset(lp domain.LastPosition, ok bool) time.Duration {
	if !ok || !ResumeEligible(lp.Position, lp.Duration) {
		return 0
	}
	return time.Duration(lp.Position * float64(time.Second))
}
