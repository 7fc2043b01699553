// Package logging builds the zerolog logger used for progress and debug
// output. Rule diagnostics do not go through here; they are report content
// written to the scan's output writer.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing human-readable lines to stderr and, when
// file is non-empty, to a size-rotated log file as well.
func New(level, file string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}

	var w io.Writer = console
	if file != "" {
		rotating := &lumberjack.Logger{
			Filename: file,
			MaxSize:  10, // megabytes
			MaxAge:   15, // days
			Compress: true,
		}
		fileWriter := zerolog.ConsoleWriter{
			Out:        rotating,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
		}
		w = zerolog.MultiLevelWriter(console, fileWriter)
	}

	log := zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
	return log
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
