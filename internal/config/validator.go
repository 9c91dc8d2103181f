package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "timer.study_minutes")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validatePersona()...)
	errors = append(errors, c.validateTimer()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validatePaths()...)

	return errors
}

// validateAPI validates the APIConfig
func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	if c.API.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "cannot be empty",
		})
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be a valid URL including scheme and host",
		})
	}

	const minTimeout = 1
	const maxTimeout = 300
	if c.API.TimeoutSeconds < minTimeout {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: fmt.Sprintf("must be at least %d", minTimeout),
		})
	}
	if c.API.TimeoutSeconds > maxTimeout {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTimeout),
		})
	}

	if c.API.BreakerMaxFailures < 1 {
		errors = append(errors, ValidationError{
			Field:   "api.breaker_max_failures",
			Value:   c.API.BreakerMaxFailures,
			Message: "must be at least 1",
		})
	}
	if c.API.BreakerCooldownSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "api.breaker_cooldown_seconds",
			Value:   c.API.BreakerCooldownSeconds,
			Message: "must be at least 1",
		})
	}

	return errors
}

// validatePersona validates the PersonaConfig
func (c *Config) validatePersona() []ValidationError {
	var errors []ValidationError

	if c.Persona.Personality != "" && !slices.Contains(ValidPersonalities(), c.Persona.Personality) {
		errors = append(errors, ValidationError{
			Field:   "persona.personality",
			Value:   c.Persona.Personality,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidPersonalities(), ", ")),
		})
	}

	if c.Persona.Tone != "" && !slices.Contains(ValidTones(), c.Persona.Tone) {
		errors = append(errors, ValidationError{
			Field:   "persona.tone",
			Value:   c.Persona.Tone,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidTones(), ", ")),
		})
	}

	return errors
}

// validateTimer validates the TimerConfig
func (c *Config) validateTimer() []ValidationError {
	var errors []ValidationError

	const minMinutes = 1
	const maxMinutes = 180

	if c.Timer.StudyMinutes < minMinutes {
		errors = append(errors, ValidationError{
			Field:   "timer.study_minutes",
			Value:   c.Timer.StudyMinutes,
			Message: fmt.Sprintf("must be at least %d", minMinutes),
		})
	}
	if c.Timer.StudyMinutes > maxMinutes {
		errors = append(errors, ValidationError{
			Field:   "timer.study_minutes",
			Value:   c.Timer.StudyMinutes,
			Message: fmt.Sprintf("exceeds maximum of %d", maxMinutes),
		})
	}
	if c.Timer.BreakMinutes < minMinutes {
		errors = append(errors, ValidationError{
			Field:   "timer.break_minutes",
			Value:   c.Timer.BreakMinutes,
			Message: fmt.Sprintf("must be at least %d", minMinutes),
		})
	}
	if c.Timer.BreakMinutes > maxMinutes {
		errors = append(errors, ValidationError{
			Field:   "timer.break_minutes",
			Value:   c.Timer.BreakMinutes,
			Message: fmt.Sprintf("exceeds maximum of %d", maxMinutes),
		})
	}

	if c.Timer.EncourageIntervalSeconds < 10 {
		errors = append(errors, ValidationError{
			Field:   "timer.encourage_interval_seconds",
			Value:   c.Timer.EncourageIntervalSeconds,
			Message: "must be at least 10",
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	// Sidebar width validation (0 means use default, which is valid).
	const minSidebarWidth = 20
	const maxSidebarWidth = 60
	if c.TUI.SidebarWidth != 0 {
		if c.TUI.SidebarWidth < minSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("must be at least %d columns", minSidebarWidth),
			})
		}
		if c.TUI.SidebarWidth > maxSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", maxSidebarWidth),
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

// validatePaths validates the PathsConfig
func (c *Config) validatePaths() []ValidationError {
	var errors []ValidationError

	if c.Paths.DataDir != "" {
		path := c.Paths.DataDir

		// Check for null bytes which are invalid in paths
		if strings.ContainsRune(path, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "paths.data_dir",
				Value:   path,
				Message: "path contains invalid null character",
			})
		}

		// Reasonable path length limit (most filesystems have limits around 4096)
		const maxPathLength = 4096
		if len(path) > maxPathLength {
			errors = append(errors, ValidationError{
				Field:   "paths.data_dir",
				Value:   path,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	return errors
}
