package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Player  PlayerConfig  `mapstructure:"player"`
	Library LibraryConfig `mapstructure:"library"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig controls where and how deep the scanner looks
type StorageConfig struct {
	Root       string   `mapstructure:"root"`        // Storage root, empty = home directory
	ExtraRoots []string `mapstructure:"extra_roots"` // Additional roots (SD card mounts etc.)
	MaxDepth   int      `mapstructure:"max_depth"`   // Walk depth bound, 0 = default
}

// PlayerConfig holds external media player configuration
type PlayerConfig struct {
	Command   string   `mapstructure:"command"`
	Args      []string `mapstructure:"args"`
	StartFlag string   `mapstructure:"start_flag"` // e.g. "--start=" or "-ss "
}

// LibraryConfig holds library persistence and watch behaviour
type LibraryConfig struct {
	DataDir string `mapstructure:"data_dir"` // Bolt database directory
	Watch   bool   `mapstructure:"watch"`    // Rescan on storage changes
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			MaxDepth: 8,
		},
		Player: PlayerConfig{
			Command: "",
			Args:    []string{},
		},
		Library: LibraryConfig{
			DataDir: defaultDataPath(),
			Watch:   true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel", "reel.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "reel.log")
	}
}

// defaultDataPath returns the default database directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("REEL")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the current configuration to the default location
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("storage.root", cfg.Storage.Root)
	viper.Set("storage.extra_roots", cfg.Storage.ExtraRoots)
	viper.Set("storage.max_depth", cfg.Storage.MaxDepth)

	viper.Set("player.command", cfg.Player.Command)
	viper.Set("player.args", cfg.Player.Args)
	viper.Set("player.start_flag", cfg.Player.StartFlag)

	viper.Set("library.data_dir", cfg.Library.DataDir)
	viper.Set("library.watch", cfg.Library.Watch)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
