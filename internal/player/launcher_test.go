package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayerKey(t *testing.T) {
	assert.Equal(t, "mpv", playerKey("/usr/bin/mpv"))
	assert.Equal(t, "vlc", playerKey("VLC"))
	assert.Equal(t, "potplayer", playerKey(`C:\Players\PotPlayer.exe`))
}

func TestFlagArgsOffsetFormats(t *testing.T) {
	l := NewLauncher("mpv", nil, "", nil)
	args := l.flagArgs("mpv", Options{StartOffset: 90 * time.Second})
	assert.Equal(t, []string{"--start=90"}, args)

	// Trailing-space flags pass the value as a separate argument.
	l = NewLauncher("ffplay", nil, "-ss ", nil)
	args = l.flagArgs("ffplay", Options{StartOffset: 90 * time.Second})
	assert.Equal(t, []string{"-ss", "90"}, args)
}

func TestFlagArgsSpeedAndAspect(t *testing.T) {
	l := NewLauncher("mpv", nil, "", nil)

	args := l.flagArgs("mpv", Options{Speed: 1.5, Aspect: Aspect169})
	assert.Equal(t, []string{"--speed=1.5", "--video-aspect-override=16:9"}, args)

	// Default speed adds no flag.
	assert.Empty(t, l.flagArgs("mpv", Options{Speed: 1}))

	// Unknown players get no speed or aspect flags.
	unknown := NewLauncher("someplayer", nil, "", nil)
	assert.Empty(t, unknown.flagArgs("someplayer", Options{Speed: 2, Aspect: Aspect43}))
}

func TestFlagArgsUnknownPlayerWithoutStartFlagSkipsOffset(t *testing.T) {
	l := NewLauncher("someplayer", nil, "", nil)
	assert.Empty(t, l.flagArgs("someplayer", Options{StartOffset: time.Minute}))
}
