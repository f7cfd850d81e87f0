package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aleister1102/discordhook/internal/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newConsoleWriter creates the stderr writer for the given format. The
// console format gets human-readable output; json and text write raw events.
func newConsoleWriter(format string) io.Writer {
	if format == "console" {
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return os.Stderr
}

// newFileWriter creates a size-rotated file writer.
func newFileWriter(path string, maxSizeMB, maxBackups int) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create log directory")
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		LocalTime:  true,
	}, nil
}
