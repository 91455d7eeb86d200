package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/config"
	"reel/internal/library"
	"reel/internal/log"
	"reel/internal/permission"
	"reel/internal/player"
	"reel/internal/scanner"
	"reel/internal/search"
	"reel/internal/storage"
	"reel/internal/tui"
	"reel/internal/watcher"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	// Durable documents: favorites, recents, resume checkpoints.
	docs, err := storage.NewBoltStore(cfg.Library.DataDir)
	if err != nil {
		logger.Warn("persistence unavailable, running memory-only", "error", err)
		docs, _ = storage.NewBoltStore("")
	}
	defer docs.Close()

	playback := storage.NewPlaybackStore(docs, logger)
	lib := library.New(playback, logger)

	fs := &scanner.OSFilesystem{Root: cfg.Storage.Root}
	scanSvc := scanner.NewService(fs, cfg.Storage.ExtraRoots, cfg.Storage.MaxDepth, logger)

	storageRoot, err := fs.ExternalStorageRoot()
	if err != nil {
		storageRoot = fs.PrivateAppDirectory()
	}
	perm := permission.NewProvider(storageRoot, logger)

	launcher := player.NewLauncher(cfg.Player.Command, cfg.Player.Args, cfg.Player.StartFlag, logger)
	index := search.NewIndex()

	model := tui.NewModel(scanSvc, lib, playback, launcher, index, perm, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// The watcher nudges the running program when storage changes.
	if cfg.Library.Watch {
		w, err := watcher.New(func() { p.Send(tui.StorageChangedMsg{}) }, logger)
		if err != nil {
			logger.Warn("file watcher unavailable", "error", err)
		} else {
			roots, rerr := scanner.NewRootResolver(fs, cfg.Storage.ExtraRoots, logger).Resolve()
			if rerr == nil {
				w.Start(roots)
			}
			defer w.Close()
		}
	}

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
