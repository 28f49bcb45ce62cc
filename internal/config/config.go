package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load-failure policies for the image preload.
const (
	PolicySkip  = "skip"
	PolicyStall = "stall"
)

// Config represents the application configuration
type Config struct {
	AssetDir           string   `toml:"asset_dir"`
	PreloadTimeout     Duration `toml:"preload_timeout"`
	PreloadConcurrency int      `toml:"preload_concurrency"`
	OnLoadFailure      string   `toml:"on_load_failure"`
	LogLevel           string   `toml:"log_level"`
	ArtWidth           int      `toml:"art_width"`
	ArtHeight          int      `toml:"art_height"`
}

// Duration is a time.Duration written as a string like "5s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AssetDir:           GetAssetPath(),
		PreloadTimeout:     Duration{5 * time.Second},
		PreloadConcurrency: 8,
		OnLoadFailure:      PolicySkip,
		LogLevel:           "info",
		ArtWidth:           16,
		ArtHeight:          12,
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetAssetPath returns the default card image directory
func GetAssetPath() string {
	return filepath.Join(GetXDGDataHome(), "cardfan", "cards")
}

// GetCacheDir returns the directory for rendered card art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardfan")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardfan", "config.toml")
}

// Load reads the config file, creating it with defaults on first use, then
// applies .env and CARDFAN_* environment overrides.
func Load() (*Config, error) {
	if err := loadDotenv(".env"); err != nil {
		return nil, err
	}

	cfg, err := loadFile(GetConfigFilePath())
	if err != nil {
		return nil, err
	}

	if dir := os.Getenv("CARDFAN_ASSET_DIR"); dir != "" {
		cfg.AssetDir = dir
	}
	if level := os.Getenv("CARDFAN_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotenv exports the variables in path. Only a missing file is
// tolerated.
func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading %s: %w", path, err)
}

func loadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(configPath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Unset keys keep their defaults.
	cfg := Default()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to configPath as TOML.
func Save(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	switch c.OnLoadFailure {
	case PolicySkip, PolicyStall:
	default:
		return fmt.Errorf("invalid on_load_failure %q (want %q or %q)", c.OnLoadFailure, PolicySkip, PolicyStall)
	}
	if c.PreloadTimeout.Duration < 0 {
		return fmt.Errorf("preload_timeout must not be negative")
	}
	if c.PreloadConcurrency < 1 {
		return fmt.Errorf("preload_concurrency must be at least 1")
	}
	if c.ArtWidth < 1 || c.ArtHeight < 1 {
		return fmt.Errorf("art_width and art_height must be positive")
	}
	return nil
}
