package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/grovetools/fbrowse/config"
	"github.com/sirupsen/logrus"
)

// withConfig installs cfg for the duration of the test and resets the cache.
func withConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	UseConfig(cfg)
	t.Cleanup(func() {
		loggersMu.Lock()
		loggers = make(map[string]*logrus.Entry)
		activeConfig = nil
		forcedLevel = nil
		loggersMu.Unlock()
	})
}

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetGlobalOutput(&buf)
	t.Cleanup(func() { SetGlobalOutput(prev) })
	return &buf
}

func TestNewLogger(t *testing.T) {
	withConfig(t, &config.Config{})

	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}
	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}
	if again := NewLogger("test-component"); again != logger {
		t.Error("Expected the same logger instance for the same component")
	}
	if other := NewLogger("other-component"); other == logger {
		t.Error("Expected a distinct logger for a different component")
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "test message",
				Data: logrus.Fields{
					"component": "fstree",
					"path":      "/tmp",
				},
			},
			want: []string{"[INFO]", "[fstree]", "test message", "path=/tmp"},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "warning message",
				Data: logrus.Fields{
					"component": "fstree",
				},
			},
			want:    []string{"[WARN]", "warning message"},
			notWant: []string{"[fstree]"},
		},
		{
			name:   "caller information with function name",
			config: FormatConfig{},
			entry: func() *logrus.Entry {
				logger := logrus.New()
				logger.SetReportCaller(true)
				return &logrus.Entry{
					Logger:  logger,
					Level:   logrus.InfoLevel,
					Message: "test message with caller",
					Data: logrus.Fields{
						"component": "fstree",
					},
					Caller: &runtime.Frame{
						File:     "/path/to/navigator.go",
						Line:     42,
						Function: "github.com/grovetools/fbrowse/pkg/fstree.(*Navigator).Open",
					},
				}
			}(),
			want: []string{"[navigator.go:42 fstree.(*Navigator).Open]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &TextFormatter{Config: tt.config}
			output, err := formatter.Format(tt.entry)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			outputStr := string(output)
			for _, want := range tt.want {
				if !strings.Contains(outputStr, want) {
					t.Errorf("Expected output to contain '%s', got: %s", want, outputStr)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(outputStr, notWant) {
					t.Errorf("Expected output NOT to contain '%s', got: %s", notWant, outputStr)
				}
			}
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	formatter := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "listed",
		Data:    logrus.Fields{"path": "/a", "count": 3, "component": "fstree"},
	}

	output, err := formatter.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(output), "listed count=3 path=/a\n") {
		t.Errorf("Expected sorted fields, got: %q", output)
	}
}

func TestEnvironmentVariables(t *testing.T) {
	withConfig(t, &config.Config{})
	t.Setenv("FBROWSE_LOG_LEVEL", "debug")
	t.Setenv("FBROWSE_LOG_CALLER", "true")

	logger := NewLogger("env-test")
	if logger.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level from env, got %v", logger.Logger.GetLevel())
	}
	if !logger.Logger.ReportCaller {
		t.Error("Expected caller reporting from env")
	}
}

func TestConfigSection(t *testing.T) {
	withConfig(t, &config.Config{Logging: map[string]interface{}{
		"level": "warn",
		"format": map[string]interface{}{
			"preset":               "json",
			"structured_to_stderr": "always",
		},
	}})
	t.Setenv("FBROWSE_LOG_LEVEL", "")
	buf := captureStderr(t)

	logger := NewLogger("config-test")
	logger.Info("hidden")
	logger.WithField("path", "/srv").Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one log line, got %q", buf.String())
	}
	var record map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("Expected JSON output: %v", err)
	}
	if record["msg"] != "shown" || record["path"] != "/srv" || record["component"] != "config-test" {
		t.Errorf("Unexpected record: %v", record)
	}
}

func TestNeverLogsToStderr(t *testing.T) {
	withConfig(t, &config.Config{Logging: map[string]interface{}{
		"format": map[string]interface{}{"structured_to_stderr": "never"},
	}})
	buf := captureStderr(t)

	NewLogger("quiet").Error("nobody hears this")
	if buf.Len() != 0 {
		t.Errorf("Expected no stderr output, got %q", buf.String())
	}
}

func TestFileSink(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "fbrowse.log")
	withConfig(t, &config.Config{Logging: map[string]interface{}{
		"file": map[string]interface{}{"enabled": true, "path": logPath},
		"format": map[string]interface{}{
			"preset":               "simple",
			"structured_to_stderr": "never",
		},
	}})

	NewLogger("file-test").Info("written to disk")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] written to disk") {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestDefaultFileSinkUsesStateDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FBROWSE_HOME", home)
	withConfig(t, &config.Config{Logging: map[string]interface{}{
		"file":   map[string]interface{}{"enabled": true},
		"format": map[string]interface{}{"structured_to_stderr": "never"},
	}})

	NewLogger("state-test").Info("hello")

	matches, err := filepath.Glob(filepath.Join(home, "state", "logs", "state-test-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("Expected one dated log file, got %v (%v)", matches, err)
	}
}

func TestSetLevel(t *testing.T) {
	withConfig(t, &config.Config{})
	t.Setenv("FBROWSE_LOG_LEVEL", "error")

	before := NewLogger("before")
	SetLevel(logrus.DebugLevel)
	after := NewLogger("after")

	if before.Logger.GetLevel() != logrus.DebugLevel {
		t.Error("SetLevel should update existing loggers")
	}
	if after.Logger.GetLevel() != logrus.DebugLevel {
		t.Error("SetLevel should win over FBROWSE_LOG_LEVEL for new loggers")
	}
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("config is valid")
	p.Path("global", "/etc/fbrowse.yml")
	p.Field("entries", 3)
	p.WarnPretty("Directory watching unavailable")
	p.ErrorPretty("cannot list", os.ErrPermission)

	out := buf.String()
	for _, want := range []string{"config is valid", "global: /etc/fbrowse.yml", "entries: 3", "Directory watching unavailable", "cannot list: permission denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, out)
		}
	}
}
