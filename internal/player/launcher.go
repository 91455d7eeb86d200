package player

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// playerConfig defines launch configuration for a known player.
type playerConfig struct {
	offsetFlag      string // Resume offset flag, e.g. "--start="
	speedFlag       string // Playback rate flag, empty if unsupported
	supportsMpvArgs bool
}

// players registry - single source of truth for known player configuration
var players = map[string]playerConfig{
	"mpv":       {offsetFlag: "--start=", speedFlag: "--speed=", supportsMpvArgs: true},
	"vlc":       {offsetFlag: "--start-time=", speedFlag: "--rate="},
	"iina":      {offsetFlag: "--mpv-start="},
	"celluloid": {offsetFlag: "--mpv-start="},
	"haruna":    {offsetFlag: "--mpv-start="},
	"potplayer": {offsetFlag: "/seek="},
}

// candidatePlayers defines the preferred player order per platform.
var candidatePlayers = map[string][]string{
	"darwin":  {"mpv", "vlc"},
	"linux":   {"mpv", "celluloid", "haruna", "vlc"},
	"windows": {"vlc", "mpv"},
}

// Options adjust a single launch.
type Options struct {
	StartOffset time.Duration
	Speed       float64 // 0 or 1 means default rate
	Aspect      AspectMode
}

// Launcher builds player commands for local video files. The playback
// engine itself is opaque: the launcher only knows how to start it with a
// file path, a resume offset, and rate/aspect flags.
type Launcher struct {
	command   string   // Configured player command, empty for auto-detect
	args      []string // Additional configured arguments
	startFlag string   // Offset flag override from config
	logger    *slog.Logger
}

// NewLauncher creates a Launcher. When startFlag is empty the offset flag
// is auto-detected for known players.
func NewLauncher(command string, args []string, startFlag string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	if startFlag == "" && command != "" {
		if cfg, ok := players[playerKey(command)]; ok {
			startFlag = cfg.offsetFlag
			logger.Debug("auto-detected player offset flag", "player", playerKey(command), "flag", startFlag)
		}
	}
	return &Launcher{command: command, args: args, startFlag: startFlag, logger: logger}
}

// playerKey normalizes a command path to a registry key.
func playerKey(command string) string {
	base := filepath.Base(command)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(base)
}

// Command builds the exec.Cmd that plays path. The command is not started;
// the caller decides whether to run it attached to the terminal or in the
// background.
func (l *Launcher) Command(path string, opts Options) (*exec.Cmd, error) {
	command := l.command
	if command == "" {
		detected, err := detectPlayer()
		if err != nil {
			return nil, err
		}
		command = detected
		l.logger.Debug("detected player", "command", command)
	} else if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("configured player %q not found: %w", command, err)
	}

	args := append([]string{}, l.args...)
	args = append(args, l.flagArgs(command, opts)...)
	args = append(args, path)

	l.logger.Info("launching player", "command", command, "args", args)
	return exec.Command(command, args...), nil
}

// flagArgs builds offset/speed/aspect flags for the resolved command.
func (l *Launcher) flagArgs(command string, opts Options) []string {
	cfg, known := players[playerKey(command)]

	var args []string
	offsetFlag := l.startFlag
	if offsetFlag == "" && known {
		offsetFlag = cfg.offsetFlag
	}
	if opts.StartOffset > 0 {
		switch {
		case offsetFlag == "":
			l.logger.Warn("cannot set start offset, configure player.start_flag",
				"command", command, "offset", opts.StartOffset)
		case strings.HasSuffix(offsetFlag, " "):
			// Flag like "-ss " passes its value as a separate argument.
			args = append(args, strings.TrimSuffix(offsetFlag, " "),
				fmt.Sprintf("%.0f", opts.StartOffset.Seconds()))
		default:
			args = append(args, fmt.Sprintf("%s%.0f", offsetFlag, opts.StartOffset.Seconds()))
		}
	}

	if opts.Speed > 0 && opts.Speed != 1 && known && cfg.speedFlag != "" {
		args = append(args, fmt.Sprintf("%s%g", cfg.speedFlag, opts.Speed))
	}
	if known && cfg.supportsMpvArgs {
		args = append(args, opts.Aspect.mpvArgs()...)
	}
	return args
}

// detectPlayer walks the platform's candidate chain and returns the first
// player found in PATH.
func detectPlayer() (string, error) {
	candidates, ok := candidatePlayers[runtime.GOOS]
	if !ok {
		candidates = candidatePlayers["linux"]
	}
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no candidate players found in PATH")
}
