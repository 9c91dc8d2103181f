package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify BodyBuddy configuration",
	Long: `View or modify BodyBuddy configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  bodybuddy config set persona.personality pushy
  bodybuddy config set persona.tone gordon
  bodybuddy config set timer.study_minutes 50

Valid keys:
  api.base_url                     - Backend base URL
  api.timeout_seconds              - Per-request timeout
  persona.personality              - Message style: gentle, funny, pushy
  persona.tone                     - Voice flavor: ariana, gordon, snoop
  persona.voice_enabled            - Request spoken playback (true/false)
  timer.study_minutes              - Study phase length
  timer.break_minutes              - Break phase length
  timer.encourage_interval_seconds - Encouragement cadence
  tui.theme                        - Color theme: default, dark, light
  tui.show_greeting                - Time-of-day greeting (true/false)
  logging.level                    - debug, info, warn, error
  paths.data_dir                   - Local state directory`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/bodybuddy/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("api:")
	fmt.Printf("  base_url: %s\n", cfg.API.BaseURL)
	fmt.Printf("  timeout_seconds: %d\n", cfg.API.TimeoutSeconds)
	fmt.Printf("  breaker_max_failures: %d\n", cfg.API.BreakerMaxFailures)
	fmt.Printf("  breaker_cooldown_seconds: %d\n", cfg.API.BreakerCooldownSeconds)

	fmt.Println("persona:")
	fmt.Printf("  personality: %s\n", cfg.Persona.Personality)
	fmt.Printf("  tone: %s\n", cfg.Persona.Tone)
	fmt.Printf("  voice_enabled: %v\n", cfg.Persona.VoiceEnabled)

	fmt.Println("timer:")
	fmt.Printf("  study_minutes: %d\n", cfg.Timer.StudyMinutes)
	fmt.Printf("  break_minutes: %d\n", cfg.Timer.BreakMinutes)
	fmt.Printf("  encourage_interval_seconds: %d\n", cfg.Timer.EncourageIntervalSeconds)

	fmt.Println("tui:")
	fmt.Printf("  theme: %s\n", cfg.TUI.Theme)
	fmt.Printf("  show_greeting: %v\n", cfg.TUI.ShowGreeting)
	fmt.Printf("  sidebar_width: %d\n", cfg.TUI.SidebarWidth)

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)

	fmt.Println("paths:")
	fmt.Printf("  data_dir: %s\n", cfg.Paths.ResolveDataDir())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	validKeys := map[string]string{
		"api.base_url":                     "string",
		"api.timeout_seconds":              "int",
		"api.breaker_max_failures":         "int",
		"api.breaker_cooldown_seconds":     "int",
		"persona.personality":              "string",
		"persona.tone":                     "string",
		"persona.voice_enabled":            "bool",
		"timer.study_minutes":              "int",
		"timer.break_minutes":              "int",
		"timer.encourage_interval_seconds": "int",
		"tui.theme":                        "string",
		"tui.show_greeting":                "bool",
		"tui.sidebar_width":                "int",
		"logging.enabled":                  "bool",
		"logging.level":                    "string",
		"paths.data_dir":                   "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'bodybuddy config set --help' to see valid keys", key)
	}

	var typedValue interface{}
	switch keyType {
	case "string":
		switch key {
		case "persona.personality":
			if !contains(config.ValidPersonalities(), value) {
				return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidPersonalities(), ", "))
			}
		case "persona.tone":
			if !contains(config.ValidTones(), value) {
				return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidTones(), ", "))
			}
		case "tui.theme":
			if !contains(config.ValidThemes(), value) {
				return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidThemes(), ", "))
			}
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'bodybuddy config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configContent := `# BodyBuddy configuration

api:
  # Backend base URL. Run 'bodybuddy stub' for a local stand-in.
  base_url: http://localhost:8000
  timeout_seconds: 10
  breaker_max_failures: 3
  breaker_cooldown_seconds: 30

persona:
  # Message style: gentle, funny, pushy
  personality: gentle
  # Voice flavor: ariana, gordon, snoop
  tone: ariana
  voice_enabled: false

timer:
  study_minutes: 25
  break_minutes: 5
  encourage_interval_seconds: 120

tui:
  # Options: default, dark, light
  theme: default
  show_greeting: true
  sidebar_width: 32

logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info

paths:
  # Where the daily selection, session notes and debug log live.
  # Empty means the config directory.
  data_dir: ""
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFile())
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
