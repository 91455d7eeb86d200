package player

// PlaybackSpeeds are the selectable playback rates, in order.
var PlaybackSpeeds = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}

// AspectMode selects how video is fit to the window.
type AspectMode string

const (
	AspectFit  AspectMode = "fit"
	AspectFill AspectMode = "fill"
	Aspect169  AspectMode = "16:9"
	Aspect43   AspectMode = "4:3"
)

// AspectModes in display order.
var AspectModes = []AspectMode{AspectFit, AspectFill, Aspect169, Aspect43}

// mpvArgs returns the mpv flags for an aspect mode. Other players ignore
// aspect configuration and use their own defaults.
func (m AspectMode) mpvArgs() []string {
	switch m {
	case AspectFill:
		return []string{"--panscan=1.0"}
	case Aspect169:
		return []string{"--video-aspect-override=16:9"}
	case Aspect43:
		return []string{"--video-aspect-override=4:3"}
	default:
		return nil
	}
}
