package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/wavetube/internal/player"
	"github.com/llehouerou/wavetube/internal/queue"
)

const appName = "wavetube"

type Config struct {
	Player  PlayerConfig  `koanf:"player"`
	Session SessionConfig `koanf:"session"`
	Catalog CatalogConfig `koanf:"catalog"`
	Lyrics  LyricsConfig  `koanf:"lyrics"`
	Log     LogConfig     `koanf:"log"`
	UI      UIConfig      `koanf:"ui"`
}

// PlayerConfig holds the mpv process settings.
type PlayerConfig struct {
	MpvPath          string            `koanf:"mpv_path"`           // default: "mpv"
	SocketDir        string            `koanf:"socket_dir"`         // default: $XDG_RUNTIME_DIR/wavetube
	Origin           string            `koanf:"origin"`             // scheme://host sent as Origin/Referer
	Params           map[string]string `koanf:"params"`             // overrides embed params (controls, rel, ...)
	ExtraArgs        []string          `koanf:"extra_args"`         // appended to the mpv command line
	CommandTimeoutMs int               `koanf:"command_timeout_ms"` // default: 2000
}

// SessionConfig holds playback session timings and initial modes.
type SessionConfig struct {
	APIPollMs   int    `koanf:"api_poll_ms"`   // default: 500
	ProgressMs  int    `koanf:"progress_ms"`   // default: 1000
	SkipDelayMs int    `koanf:"skip_delay_ms"` // default: 3000
	Volume      *int   `koanf:"volume"`        // 0-100, default: 70
	Shuffle     bool   `koanf:"shuffle"`
	Repeat      string `koanf:"repeat"` // "none", "all", "one"
}

// CatalogConfig holds track catalog settings.
type CatalogConfig struct {
	Providers        []string `koanf:"providers"`         // tried in order: "youtube", "ytmusic", "ytdlp", "websearch"
	APIKey           string   `koanf:"api_key"`           // YouTube Data API key (enables "youtube")
	Region           string   `koanf:"region"`            // default: "US"
	MaxResults       int      `koanf:"max_results"`       // 1-50, default: 25
	TrendingPlaylist string   `koanf:"trending_playlist"` // playlist URL used by yt-dlp for trending
	YtdlpPath        string   `koanf:"ytdlp_path"`        // default: "yt-dlp"
	TimeoutSec       int      `koanf:"timeout_sec"`       // default: 15
}

// LyricsConfig holds lyrics lookup settings.
type LyricsConfig struct {
	LrclibURL   string `koanf:"lrclib_url"`   // default: https://lrclib.net
	OllamaHost  string `koanf:"ollama_host"`  // empty disables generation
	OllamaModel string `koanf:"ollama_model"` // default: "llama3.2"
	CachePath   string `koanf:"cache_path"`   // default: $XDG_CACHE_HOME/wavetube/lyrics.db
}

// UIConfig holds terminal interface settings.
type UIConfig struct {
	Icons         string `koanf:"icons"`         // "nerd", "unicode" or "none" (default)
	Notifications bool   `koanf:"notifications"` // desktop notification on track change
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // default: "info"
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/wavetube/wavetube.log
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order; later files win. Missing files
// are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Player.MpvPath = expandPath(cfg.Player.MpvPath)
	cfg.Player.SocketDir = expandPath(cfg.Player.SocketDir)
	cfg.Lyrics.CachePath = expandPath(cfg.Lyrics.CachePath)
	cfg.Log.File = expandPath(cfg.Log.File)

	cfg.Lyrics.LrclibURL = strings.TrimSuffix(cfg.Lyrics.LrclibURL, "/")
	cfg.Lyrics.OllamaHost = strings.TrimSuffix(cfg.Lyrics.OllamaHost, "/")

	if cfg.Player.Origin != "" {
		origin, err := player.OriginFor(cfg.Player.Origin)
		if err != nil {
			return nil, fmt.Errorf("player.origin: %w", err)
		}
		cfg.Player.Origin = origin
	}
	if _, err := queue.ParseRepeatMode(cfg.Session.Repeat); err != nil {
		return nil, fmt.Errorf("session.repeat: %w", err)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/wavetube/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasYouTubeAPI returns true if the YouTube Data API is configured.
func (c *Config) HasYouTubeAPI() bool {
	return c.Catalog.APIKey != ""
}

// HasOllama returns true if lyrics generation is configured.
func (c *Config) HasOllama() bool {
	return c.Lyrics.OllamaHost != ""
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	if cfg.MpvPath == "" {
		cfg.MpvPath = "mpv"
	}
	if cfg.SocketDir == "" {
		cfg.SocketDir = filepath.Join(xdg.RuntimeDir, appName)
	}
	if cfg.Origin == "" {
		cfg.Origin = "https://www.youtube.com"
	}
	if cfg.CommandTimeoutMs <= 0 {
		cfg.CommandTimeoutMs = 2000
	}
	return cfg
}

// CommandTimeout returns the IPC command timeout.
func (p PlayerConfig) CommandTimeout() time.Duration {
	return time.Duration(p.CommandTimeoutMs) * time.Millisecond
}

// GetSessionConfig returns the session configuration with defaults applied.
func (c *Config) GetSessionConfig() SessionConfig {
	cfg := c.Session
	if cfg.APIPollMs <= 0 {
		cfg.APIPollMs = 500
	}
	if cfg.ProgressMs <= 0 {
		cfg.ProgressMs = 1000
	}
	if cfg.SkipDelayMs <= 0 {
		cfg.SkipDelayMs = 3000
	}
	volume := 70
	if cfg.Volume != nil {
		volume = max(0, min(100, *cfg.Volume))
	}
	cfg.Volume = &volume
	if cfg.Repeat == "" {
		cfg.Repeat = "none"
	}
	return cfg
}

func (s SessionConfig) APIPollInterval() time.Duration {
	return time.Duration(s.APIPollMs) * time.Millisecond
}

func (s SessionConfig) ProgressInterval() time.Duration {
	return time.Duration(s.ProgressMs) * time.Millisecond
}

func (s SessionConfig) SkipDelay() time.Duration {
	return time.Duration(s.SkipDelayMs) * time.Millisecond
}

// RepeatMode parses Repeat; invalid values were rejected by Load.
func (s SessionConfig) RepeatMode() queue.RepeatMode {
	m, _ := queue.ParseRepeatMode(s.Repeat)
	return m
}

// GetCatalogConfig returns the catalog configuration with defaults applied.
func (c *Config) GetCatalogConfig() CatalogConfig {
	cfg := c.Catalog
	if len(cfg.Providers) == 0 {
		cfg.Providers = []string{"youtube", "ytmusic", "ytdlp", "websearch"}
	}
	if cfg.Region == "" {
		cfg.Region = "US"
	}
	if cfg.MaxResults <= 0 || cfg.MaxResults > 50 {
		cfg.MaxResults = 25
	}
	if cfg.TrendingPlaylist == "" {
		cfg.TrendingPlaylist = "https://www.youtube.com/playlist?list=PL4fGSI1pDJn6puJdseH2Rt9sMvt9E2M4i"
	}
	if cfg.YtdlpPath == "" {
		cfg.YtdlpPath = "yt-dlp"
	}
	if cfg.TimeoutSec <= 0 {
		cfg.TimeoutSec = 15
	}
	return cfg
}

// Timeout returns the per-request catalog timeout.
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// GetLyricsConfig returns the lyrics configuration with defaults applied.
func (c *Config) GetLyricsConfig() LyricsConfig {
	cfg := c.Lyrics
	if cfg.LrclibURL == "" {
		cfg.LrclibURL = "https://lrclib.net"
	}
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "llama3.2"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = filepath.Join(xdg.CacheHome, appName, "lyrics.db")
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	return cfg
}
