package logger

import (
	"io"
	"strings"

	"github.com/aleister1102/discordhook/internal/config"
	"github.com/aleister1102/discordhook/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// New creates a zerolog logger from the log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewBuilder().WithConfig(cfg).Build()
}

// Builder provides a fluent interface for building loggers
type Builder struct {
	level     zerolog.Level
	format    string
	filePath  string
	maxSizeMB int
	backups   int
	parseErr  error
}

// NewBuilder creates a new logger builder with default settings
func NewBuilder() *Builder {
	return &Builder{
		level:     zerolog.InfoLevel,
		format:    config.DefaultLogFormat,
		maxSizeMB: config.DefaultMaxLogSizeMB,
		backups:   config.DefaultMaxLogBackups,
	}
}

// WithConfig applies the log configuration
func (b *Builder) WithConfig(cfg config.LogConfig) *Builder {
	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
		if err != nil {
			b.parseErr = errorwrapper.WrapError(err, "invalid log level")
			return b
		}
		b.level = level
	}
	if cfg.LogFormat != "" {
		b.format = strings.ToLower(cfg.LogFormat)
	}
	b.filePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		b.maxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		b.backups = cfg.MaxLogBackups
	}
	return b
}

// WithLevel overrides the log level
func (b *Builder) WithLevel(level zerolog.Level) *Builder {
	b.level = level
	return b
}

// WithFile enables file output with rotation
func (b *Builder) WithFile(path string) *Builder {
	b.filePath = path
	return b
}

// Build creates the logger instance
func (b *Builder) Build() (zerolog.Logger, error) {
	if b.parseErr != nil {
		return zerolog.Nop(), b.parseErr
	}

	writers := []io.Writer{newConsoleWriter(b.format)}
	if b.filePath != "" {
		fileWriter, err := newFileWriter(b.filePath, b.maxSizeMB, b.backups)
		if err != nil {
			return zerolog.Nop(), err
		}
		writers = append(writers, fileWriter)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(b.level).
		With().
		Timestamp().
		Logger()

	return logger, nil
}
