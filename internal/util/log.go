package util

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"go-altscan/internal/common"
)

// Logger provides utility functions for consistent logging.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger creates a Logger bound to the global zerolog logger.
func NewLogger() *Logger {
	return &Logger{zl: log.Logger}
}

// NewLoggerWith wraps an explicit zerolog logger, mainly for tests.
func NewLoggerWith(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// Error logs an error with the specified error code, message, and optional key/value fields.
func (l *Logger) Error(err error, errorCode common.ErrorCode, errorMsg common.ErrorMessage, msg string, fields ...interface{}) {
	l.zl.Error().
		Err(err).
		Str("error_code", errorCode.String()).
		Str("error_message", errorMsg.String()).
		Fields(fields).
		Msg(msg)
}

// Warn logs a warning with the specified error code, message, and optional key/value fields.
func (l *Logger) Warn(errorCode common.ErrorCode, errorMsg common.ErrorMessage, msg string, fields ...interface{}) {
	l.zl.Warn().
		Str("error_code", errorCode.String()).
		Str("error_message", errorMsg.String()).
		Fields(fields).
		Msg(msg)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

// SetGlobalLevel maps a config level name onto zerolog's global level.
func SetGlobalLevel(level string) error {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return fmt.Errorf("%s: %q", common.ErrMsgInvalidLogLevel, level)
	}
	return nil
}

// ConfigureGlobal installs the process-wide logger: human readable console
// output on a terminal, JSON lines otherwise. Every line carries the run id.
func ConfigureGlobal(out *os.File) string {
	runID := uuid.NewString()
	zerolog.TimeFieldFormat = time.RFC3339

	var base zerolog.Logger
	if term.IsTerminal(int(out.Fd())) {
		base = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	} else {
		base = zerolog.New(out)
	}
	log.Logger = base.With().Timestamp().Str("run_id", runID).Logger()
	return runID
}
