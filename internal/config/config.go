package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete BodyBuddy configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Persona PersonaConfig `mapstructure:"persona"`
	Timer   TimerConfig   `mapstructure:"timer"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// APIConfig controls how the client talks to the backend
type APIConfig struct {
	// BaseURL is the backend base URL (default: "http://localhost:8000")
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout in seconds (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// BreakerMaxFailures is how many consecutive failures trip the
	// chat/voice circuit breaker (default: 3)
	BreakerMaxFailures int `mapstructure:"breaker_max_failures"`
	// BreakerCooldownSeconds is how long the breaker stays open before
	// allowing a probe request (default: 30)
	BreakerCooldownSeconds int `mapstructure:"breaker_cooldown_seconds"`
}

// PersonaConfig controls the companion's personality and voice
type PersonaConfig struct {
	// Personality is the message style: "gentle", "funny", or "pushy"
	Personality string `mapstructure:"personality"`
	// Tone is the celebrity voice flavor: "ariana", "gordon", or "snoop"
	Tone string `mapstructure:"tone"`
	// VoiceEnabled controls whether spoken playback is requested (default: false)
	VoiceEnabled bool `mapstructure:"voice_enabled"`
}

// TimerConfig controls the focus session timer
type TimerConfig struct {
	// StudyMinutes is the length of a study phase (default: 25)
	StudyMinutes int `mapstructure:"study_minutes"`
	// BreakMinutes is the length of a break phase (default: 5)
	BreakMinutes int `mapstructure:"break_minutes"`
	// EncourageIntervalSeconds is how often an encouragement message is
	// emitted while a session runs (default: 120)
	EncourageIntervalSeconds int `mapstructure:"encourage_interval_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "dark", "light"
	Theme string `mapstructure:"theme"`
	// ShowGreeting shows the time-of-day greeting on the tasks tab (default: true)
	ShowGreeting bool `mapstructure:"show_greeting"`
	// SidebarWidth is the width of the sidebar panel in columns (default: 32, min: 20, max: 60)
	SidebarWidth int `mapstructure:"sidebar_width"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// PathsConfig controls where BodyBuddy stores local state
type PathsConfig struct {
	// DataDir is the directory where the daily selection, session notes
	// and debug log live. If empty, defaults to the config directory.
	// Supports ~ for home directory expansion.
	DataDir string `mapstructure:"data_dir"`
}

// ResolveDataDir returns the resolved data directory path.
// If DataDir is empty, it returns the config directory.
// If DataDir starts with ~, it expands to the user's home directory.
func (p *PathsConfig) ResolveDataDir() string {
	if p.DataDir == "" {
		return ConfigDir()
	}

	path := p.DataDir

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:                "http://localhost:8000",
			TimeoutSeconds:         10,
			BreakerMaxFailures:     3,
			BreakerCooldownSeconds: 30,
		},
		Persona: PersonaConfig{
			Personality:  "gentle",
			Tone:         "ariana",
			VoiceEnabled: false,
		},
		Timer: TimerConfig{
			StudyMinutes:             25,
			BreakMinutes:             5,
			EncourageIntervalSeconds: 120,
		},
		TUI: TUIConfig{
			Theme:        "default",
			ShowGreeting: true,
			SidebarWidth: 32,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		Paths: PathsConfig{
			DataDir: "", // Empty means use the config directory
		},
	}
}

// Timeout returns the API request timeout as a time.Duration
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BreakerCooldown returns the breaker open interval as a time.Duration
func (c *APIConfig) BreakerCooldown() time.Duration {
	return time.Duration(c.BreakerCooldownSeconds) * time.Second
}

// StudyDuration returns the study phase length as a time.Duration
func (c *TimerConfig) StudyDuration() time.Duration {
	return time.Duration(c.StudyMinutes) * time.Minute
}

// BreakDuration returns the break phase length as a time.Duration
func (c *TimerConfig) BreakDuration() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}

// EncourageInterval returns the encouragement cadence as a time.Duration
func (c *TimerConfig) EncourageInterval() time.Duration {
	return time.Duration(c.EncourageIntervalSeconds) * time.Second
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	viper.SetDefault("api.breaker_max_failures", defaults.API.BreakerMaxFailures)
	viper.SetDefault("api.breaker_cooldown_seconds", defaults.API.BreakerCooldownSeconds)

	// Persona defaults
	viper.SetDefault("persona.personality", defaults.Persona.Personality)
	viper.SetDefault("persona.tone", defaults.Persona.Tone)
	viper.SetDefault("persona.voice_enabled", defaults.Persona.VoiceEnabled)

	// Timer defaults
	viper.SetDefault("timer.study_minutes", defaults.Timer.StudyMinutes)
	viper.SetDefault("timer.break_minutes", defaults.Timer.BreakMinutes)
	viper.SetDefault("timer.encourage_interval_seconds", defaults.Timer.EncourageIntervalSeconds)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_greeting", defaults.TUI.ShowGreeting)
	viper.SetDefault("tui.sidebar_width", defaults.TUI.SidebarWidth)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	// Paths defaults
	viper.SetDefault("paths.data_dir", defaults.Paths.DataDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bodybuddy")
	}
	// Fall back to ~/.config/bodybuddy
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bodybuddy"
	}
	return filepath.Join(home, ".config", "bodybuddy")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidPersonalities returns the list of valid personality values
func ValidPersonalities() []string {
	return []string{"gentle", "funny", "pushy"}
}

// ValidTones returns the list of valid tone values
func ValidTones() []string {
	return []string{"ariana", "gordon", "snoop"}
}

// ValidThemes returns the list of valid TUI theme values
func ValidThemes() []string {
	return []string{"default", "dark", "light"}
}
