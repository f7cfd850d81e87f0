package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/discordhook/internal/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// Webhook Defaults
	DefaultWebhookTimeoutSecs = 10

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// GlobalConfig is the root configuration for the CLI.
type GlobalConfig struct {
	WebhookConfig WebhookConfig `json:"webhook_config,omitempty" yaml:"webhook_config,omitempty"`
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a configuration populated with defaults
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		WebhookConfig: NewDefaultWebhookConfig(),
		LogConfig:     NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file, overlaying values
// onto the defaults. YAML is used for .yaml/.yml extensions, JSON otherwise.
// An empty path returns the defaults unchanged.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(providedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorwrapper.NewError("config file does not exist: %s", providedPath)
		}
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	ext := strings.ToLower(filepath.Ext(providedPath))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse YAML config")
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse JSON config")
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	logger.Info().Str("config_file", providedPath).Msg("Configuration loaded")
	return cfg, nil
}
