package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
//
// Prompt rendering must never pollute the interactive terminal, so log output
// goes to ~/.outerm/logs/<component>-<date>.log. Stderr mirroring is enabled
// only when OUTERM_DEBUG=1 or stderr is not attached to a terminal (piped or
// CI runs).
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if os.Getenv("OUTERM_LOG_LEVEL") != "" {
		levelStr = os.Getenv("OUTERM_LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// Configure Output Sinks
	var writers []io.Writer

	if logFilePath := defaultLogPath(component); logFilePath != "" {
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err == nil {
			file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				writers = append(writers, file)
			}
		}
	}

	// Mirror to stderr only when it will not end up in the prompt block:
	// debug mode, or stderr redirected away from the terminal.
	isDebug := os.Getenv("OUTERM_DEBUG") == "1" || logger.GetLevel() == logrus.DebugLevel
	isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if isDebug || !isInteractive {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// defaultLogPath returns the date-based log file path for a component, or an
// empty string when the home directory cannot be determined.
func defaultLogPath(component string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dateStr := time.Now().Format("2006-01-02")
	return filepath.Join(home, ".outerm", "logs", fmt.Sprintf("%s-%s.log", component, dateStr))
}
