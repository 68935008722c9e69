package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the companion client
type Config struct {
	// Backend API configuration
	API APIConfig `mapstructure:"api"`

	// Workflow timing configuration
	Workflow WorkflowConfig `mapstructure:"workflow"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// APIConfig holds backend API connection configuration
type APIConfig struct {
	// BaseURL is the backend origin, e.g. http://10.0.2.2:8080. The
	// /api/v1 prefix is appended by the client.
	BaseURL        string `mapstructure:"base_url"`
	RequestTimeout int    `mapstructure:"request_timeout"`
}

// WorkflowConfig holds consultation workflow timing configuration.
// Durations are expressed in milliseconds in config files so tests can
// shrink them without touching workflow code.
type WorkflowConfig struct {
	PollInterval    int `mapstructure:"poll_interval"`
	PollMaxAttempts int `mapstructure:"poll_max_attempts"`
	StepCadence     int `mapstructure:"step_cadence"`
	ApprovalStagger int `mapstructure:"approval_stagger"`
	FollowUpDelay   int `mapstructure:"follow_up_delay"`
}

// PollIntervalDuration returns the delay between poll attempts.
func (w *WorkflowConfig) PollIntervalDuration() time.Duration {
	return time.Duration(w.PollInterval) * time.Millisecond
}

// StepCadenceDuration returns the cadence of the cosmetic processing steps.
func (w *WorkflowConfig) StepCadenceDuration() time.Duration {
	return time.Duration(w.StepCadence) * time.Millisecond
}

// ApprovalStaggerDuration returns the hold time of each approval phase.
func (w *WorkflowConfig) ApprovalStaggerDuration() time.Duration {
	return time.Duration(w.ApprovalStagger) * time.Millisecond
}

// FollowUpDelayDuration returns the delay before follow-up panels appear.
func (w *WorkflowConfig) FollowUpDelayDuration() time.Duration {
	return time.Duration(w.FollowUpDelay) * time.Millisecond
}

// RequestTimeoutDuration returns the per-request HTTP timeout.
func (a *APIConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(a.RequestTimeout) * time.Second
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/nocta")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with environment variables
	overrideWithEnv(&config)

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// API defaults
	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.request_timeout", 30)

	// Workflow timing defaults. The poll loop checks once a second for
	// at most 30 attempts; processing steps animate 1.5s apart; approval
	// phases hold for 1.5s with a 2s pause before follow-up panels.
	viper.SetDefault("workflow.poll_interval", 1000)
	viper.SetDefault("workflow.poll_max_attempts", 30)
	viper.SetDefault("workflow.step_cadence", 1500)
	viper.SetDefault("workflow.approval_stagger", 1500)
	viper.SetDefault("workflow.follow_up_delay", 2000)

	// Logging defaults
	viper.SetDefault("log_level", "info")
}

// overrideWithEnv overrides configuration with environment variables
func overrideWithEnv(config *Config) {
	if baseURL := os.Getenv("NOCTA_API_URL"); baseURL != "" {
		config.API.BaseURL = baseURL
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
}

// validate validates the configuration
func validate(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("api base URL is required")
	}

	if config.Workflow.PollMaxAttempts <= 0 {
		return fmt.Errorf("invalid poll max attempts: %d", config.Workflow.PollMaxAttempts)
	}

	if config.Workflow.PollInterval <= 0 {
		return fmt.Errorf("invalid poll interval: %d", config.Workflow.PollInterval)
	}

	return nil
}
