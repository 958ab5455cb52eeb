package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 14
)

var (
	DebugMode      bool
	ShowRaylibInfo bool

	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// LogOptions controls how InitLogger builds the process logger.
type LogOptions struct {
	Debug bool
	// File enables an additional rotating log file when non-empty.
	File string
}

// InitLogger configures the package logger. The returned closer releases the
// log file, if one was opened, and is never nil.
func InitLogger(opts LogOptions) (io.Closer, error) {
	var closer io.Closer = nopCloser{}
	writer := selectOutput()

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			InitLoggerWithWriter(opts.Debug, writer)
			return closer, fmt.Errorf("failed to create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		closer = lj
		writer = zerolog.MultiLevelWriter(writer, lj)
	}

	InitLoggerWithWriter(opts.Debug, writer)
	return closer, nil
}

// InitLoggerWithWriter points the package logger at w.
func InitLoggerWithWriter(debug bool, w io.Writer) {
	DebugMode = debug
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Logger exposes the configured logger for structured call sites.
func Logger() *zerolog.Logger {
	return &logger
}

func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		}
	}
	return os.Stderr
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func Info(format string, v ...interface{})  { logger.Info().Msgf(format, v...) }
func Debug(format string, v ...interface{}) { logger.Debug().Msgf(format, v...) }
func Warn(format string, v ...interface{})  { logger.Warn().Msgf(format, v...) }
func Error(format string, v ...interface{}) { logger.Error().Msgf(format, v...) }

// RaylibLogCallback forwards raylib trace output into the process logger.
func RaylibLogCallback(level int, text string) {
	l := logger.With().Str("component", "raylib").Logger()
	switch level {
	case 1, 2: // LOG_TRACE, LOG_DEBUG
		l.Debug().Msg(text)
	case 3: // LOG_INFO
		if ShowRaylibInfo || DebugMode {
			l.Info().Msg(text)
		}
	case 4: // LOG_WARNING
		l.Warn().Msg(text)
	case 5, 6: // LOG_ERROR, LOG_FATAL
		l.Error().Msg(text)
	}
}
