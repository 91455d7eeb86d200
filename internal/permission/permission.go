package permission

import (
	"fmt"
	"log/slog"
	"os"

	"reel/internal/domain"
)

// Provider implements domain.PermissionProvider for desktop filesystems,
// where "permission" means the process can actually open the storage root.
// Denial gates scanning entirely; it is a state, not an error.
type Provider struct {
	root   string
	logger *slog.Logger
}

func NewProvider(root string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{root: root, logger: logger}
}

// CanAccessVideos probes the storage root for readability.
func (p *Provider) CanAccessVideos() bool {
	f, err := os.Open(p.root)
	if err != nil {
		p.logger.Debug("storage root not readable", "path", p.root, "error", err)
		return false
	}
	f.Close()
	return true
}

// Request re-probes access. There is no grant dialog on desktop; access
// changes when the user fixes mount points or file modes out of band.
func (p *Provider) Request() bool {
	return p.CanAccessVideos()
}

// OpenSettings has no desktop equivalent; callers show the root path so
// the user knows what to fix.
func (p *Provider) OpenSettings() error {
	return fmt.Errorf("%w: grant read access to %s and retry", domain.ErrPermissionDenied, p.root)
}
