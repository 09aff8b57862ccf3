package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/fbrowse/config"
	"github.com/grovetools/fbrowse/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// activeConfig, when set, replaces config discovery in NewLogger.
	activeConfig *config.Config
	// forcedLevel, when set, wins over the environment and config.
	forcedLevel *logrus.Level
)

// UseConfig makes loggers read their settings from cfg instead of
// discovering the configuration from the working directory. Cached
// loggers are dropped so the next NewLogger call picks cfg up.
func UseConfig(cfg *config.Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	activeConfig = cfg
	loggers = make(map[string]*logrus.Entry)
}

// SetLevel forces level on every existing and future logger.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	forcedLevel = &level
	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logCfg := loadConfig()

	// Configure Level
	levelStr := "info"
	if env := os.Getenv("FBROWSE_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	if forcedLevel != nil {
		level = *forcedLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("FBROWSE_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	// Configure Output Sinks
	var writers []io.Writer

	if logCfg.File.Enabled {
		logFilePath := expandPath(logCfg.File.Path)
		if logFilePath == "" {
			if dir := paths.LogDir(); dir != "" {
				logFilePath = filepath.Join(dir, fmt.Sprintf("%s-%s.log", component, time.Now().Format("2006-01-02")))
			}
		}
		if file, err := openLogFile(logFilePath); err == nil {
			writers = append(writers, file)
		} else {
			logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
		}
	}

	if shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		// Interactive terminals get no structured logs unless asked for.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func loadConfig() Config {
	var logCfg Config
	cfg := activeConfig
	if cfg == nil {
		loaded, err := config.LoadDefault()
		if err != nil {
			return logCfg
		}
		cfg = loaded
	}
	if err := cfg.UnmarshalSection("logging", &logCfg); err != nil {
		logrus.Warnf("Failed to parse 'logging' config: %v", err)
	}
	return logCfg
}

// shouldLogToStderr resolves the structured_to_stderr mode. In "auto" mode
// logs go to stderr when debugging or when stderr is not a terminal.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		isDebug := os.Getenv("FBROWSE_DEBUG") == "1" || level >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("no log file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
