package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	NONE
)

var (
	level   = INFO
	stdLog  = newLogger(os.Stderr)
	logFile *os.File
	outMu   sync.Mutex
)

func newLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "personview").Logger()
}

// ParseLevel maps a level name to a LogLevel. Unknown names fall back to INFO
// and report ok=false.
func ParseLevel(levelStr string) (LogLevel, bool) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG, true
	case "info", "":
		return INFO, true
	case "warn":
		return WARN, true
	case "error":
		return ERROR, true
	case "none":
		return NONE, true
	default:
		return INFO, false
	}
}

func Init(logfilePath string, levelStr string) error {
	level, _ = ParseLevel(levelStr)

	if logfilePath == "" {
		SetOutput(os.Stderr)
		return nil
	}
	dir := filepath.Dir(logfilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	setOutput(f, f)
	return nil
}

// SetOutput redirects all subsequent log lines to w. A file opened by Init is
// closed.
func SetOutput(w io.Writer) {
	setOutput(w, nil)
}

func setOutput(w io.Writer, f *os.File) {
	outMu.Lock()
	defer outMu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	stdLog = newLogger(w)
}

// SetLevel changes the minimum level that is written.
func SetLevel(l LogLevel) {
	level = l
}

func Debug(msg string, args ...any) {
	if level <= DEBUG {
		stdLog.Debug().Msgf(msg, args...)
	}
}
func Info(msg string, args ...any) {
	if level <= INFO {
		stdLog.Info().Msgf(msg, args...)
	}
}
func Warn(msg string, args ...any) {
	if level <= WARN {
		stdLog.Warn().Msgf(msg, args...)
	}
}
func Error(msg string, args ...any) {
	if level <= ERROR {
		stdLog.Error().Msgf(msg, args...)
	}
}
