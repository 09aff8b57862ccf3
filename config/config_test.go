package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/fbrowse/errors"
	"github.com/sirupsen/logrus"
)

// isolate points the global config lookup at an empty temporary home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FBROWSE_HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromBytesYAML(t *testing.T) {
	yamlContent := []byte(`
start_path: /srv/data
show_hidden: true
ignore:
  - node_modules
  - "*.tmp"
max_file_size: 1024
theme: mono
keybindings:
  back: ["backspace", "u"]
logging:
  level: debug
  format:
    preset: simple
`)

	cfg, err := LoadFromBytes(yamlContent, false)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StartPath != "/srv/data" {
		t.Errorf("Expected start_path '/srv/data', got '%s'", cfg.StartPath)
	}
	if !cfg.ShowHiddenEnabled() {
		t.Error("Expected show_hidden to be enabled")
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[1] != "*.tmp" {
		t.Errorf("Unexpected ignore patterns: %v", cfg.Ignore)
	}
	if cfg.MaxFileSize != 1024 {
		t.Errorf("Expected max_file_size 1024, got %d", cfg.MaxFileSize)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Expected theme 'mono', got '%s'", cfg.Theme)
	}
	if keys := cfg.Keybindings["back"]; len(keys) != 2 || keys[1] != "u" {
		t.Errorf("Unexpected back keybinding: %v", keys)
	}

	type formatCfg struct {
		Preset string `yaml:"preset"`
	}
	var logCfg struct {
		Level  string    `yaml:"level"`
		Format formatCfg `yaml:"format"`
	}
	if err := cfg.UnmarshalSection("logging", &logCfg); err != nil {
		t.Fatalf("Failed to unmarshal logging section: %v", err)
	}
	if logCfg.Level != "debug" || logCfg.Format.Preset != "simple" {
		t.Errorf("Unexpected logging section: %+v", logCfg)
	}
}

func TestLoadFromBytesTOML(t *testing.T) {
	tomlContent := []byte(`
start_path = "~/projects"
ignore = [".git"]
max_file_size = 2048

[keybindings]
quit = ["ctrl+q"]

[logging]
level = "warn"
`)

	cfg, err := LoadFromBytes(tomlContent, true)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StartPath != "~/projects" {
		t.Errorf("Expected start_path '~/projects', got '%s'", cfg.StartPath)
	}
	if cfg.MaxFileSize != 2048 {
		t.Errorf("Expected max_file_size 2048, got %d", cfg.MaxFileSize)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Expected default theme, got '%s'", cfg.Theme)
	}
	if cfg.Logging["level"] != "warn" {
		t.Errorf("Expected logging.level 'warn', got '%v'", cfg.Logging["level"])
	}
}

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(""), false)
	if err != nil {
		t.Fatalf("Empty config should load: %v", err)
	}

	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("Expected default max_file_size, got %d", cfg.MaxFileSize)
	}
	if cfg.ShowHiddenEnabled() {
		t.Error("show_hidden should default to false")
	}
	if cfg.StartPath != "" {
		t.Errorf("start_path should default to empty, got '%s'", cfg.StartPath)
	}

	var logCfg struct {
		Level string `yaml:"level"`
	}
	if err := cfg.UnmarshalSection("logging", &logCfg); err != nil {
		t.Fatalf("Missing section should not error: %v", err)
	}
	if logCfg.Level != "" {
		t.Errorf("Expected empty level, got '%s'", logCfg.Level)
	}
}

func TestLoadFromBytesRejectsUnknownKeys(t *testing.T) {
	if _, err := LoadFromBytes([]byte("show_hiden: true\n"), false); err == nil {
		t.Error("Expected unknown YAML key to be rejected")
	}
	if _, err := LoadFromBytes([]byte("colour = \"red\"\n"), true); err == nil {
		t.Error("Expected unknown TOML key to be rejected")
	}
}

func TestLoadFromBytesInvalidSyntax(t *testing.T) {
	_, err := LoadFromBytes([]byte("ignore: [unclosed\n"), false)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !errors.Is(err, errors.ErrCodeConfigInvalid) {
		t.Errorf("Expected ErrCodeConfigInvalid, got %s", errors.GetCode(err))
	}
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("FBROWSE_TEST_ROOT", "/mnt/share")

	cfg, err := LoadFromBytes([]byte(`
start_path: ${FBROWSE_TEST_ROOT}
theme: ${FBROWSE_TEST_UNSET_THEME:-mono}
`), false)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StartPath != "/mnt/share" {
		t.Errorf("Expected expanded start_path, got '%s'", cfg.StartPath)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Expected default value expansion, got '%s'", cfg.Theme)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "theme = \"mono\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Expected theme 'mono', got '%s'", cfg.Theme)
	}

	_, err = Load(filepath.Join(dir, "missing.yml"))
	if !errors.Is(err, errors.ErrCodeConfigNotFound) {
		t.Errorf("Expected ErrCodeConfigNotFound, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yml")
	writeFile(t, bad, "theme: neon\n")
	_, err = Load(bad)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	be, ok := errors.As(err)
	if !ok || be.Path() != bad {
		t.Errorf("Expected error to carry path %s, got %v", bad, err)
	}
}

func TestFindConfigFile(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "a", ".fbrowse.yaml"), "theme: mono\n")

	found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("Expected config to be found: %v", err)
	}
	if found != filepath.Join(root, "a", ".fbrowse.yaml") {
		t.Errorf("Unexpected config path: %s", found)
	}

	_, err = FindConfigFile(t.TempDir())
	if err != nil && !errors.Is(err, errors.ErrCodeConfigNotFound) {
		t.Errorf("Expected ErrCodeConfigNotFound, got %v", err)
	}
}

func TestLoadFromLayers(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config", "fbrowse.yml"), `
show_hidden: true
ignore: ["*.log"]
theme: mono
keybindings:
  quit: ["ctrl+c"]
logging:
  level: info
  format:
    preset: simple
`)

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".fbrowse.toml"), `
show_hidden = false
max_file_size = 512

[keybindings]
back = ["u"]

[logging.format]
disable_timestamp = true
`)
	workDir := filepath.Join(project, "src", "pkg")
	if err := os.MkdirAll(workDir, 0755); err != nil {
		t.Fatal(err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(os.Stderr)

	cfg, err := LoadFromWithLogger(workDir, logger)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ShowHiddenEnabled() {
		t.Error("Project layer should turn show_hidden off")
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "*.log" {
		t.Errorf("Expected ignore from global layer, got %v", cfg.Ignore)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Expected theme from global layer, got '%s'", cfg.Theme)
	}
	if cfg.MaxFileSize != 512 {
		t.Errorf("Expected max_file_size from project layer, got %d", cfg.MaxFileSize)
	}
	if len(cfg.Keybindings) != 2 {
		t.Errorf("Expected keybindings from both layers, got %v", cfg.Keybindings)
	}

	format, ok := cfg.Logging["format"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected merged logging.format map, got %T", cfg.Logging["format"])
	}
	if format["preset"] != "simple" || format["disable_timestamp"] != true {
		t.Errorf("Expected nested logging merge, got %v", format)
	}
}

func TestLoadFromWithoutFiles(t *testing.T) {
	isolate(t)

	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("Missing config files should not be an error: %v", err)
	}
	if cfg.MaxFileSize != DefaultMaxFileSize || cfg.Theme != DefaultTheme {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadFromBrokenLayers(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config", "fbrowse.yml"), "ignore: [unclosed\n")

	project := t.TempDir()
	cfg, err := LoadFrom(project)
	if err != nil {
		t.Fatalf("A broken global config should be skipped: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected a config")
	}

	writeFile(t, filepath.Join(project, ".fbrowse.yml"), "max_file_size: -5\n")
	if _, err := LoadFrom(project); err == nil {
		t.Error("A broken project config should fail")
	}
}

func TestLoadLayered(t *testing.T) {
	home := isolate(t)
	globalPath := filepath.Join(home, "config", "fbrowse.yaml")
	writeFile(t, globalPath, "theme: mono\n")
	project := t.TempDir()
	projectPath := filepath.Join(project, ".fbrowse.yml")
	writeFile(t, projectPath, "start_path: /tmp\n")

	layered, err := LoadLayered(project)
	if err != nil {
		t.Fatalf("Failed to load layers: %v", err)
	}

	if layered.FilePaths[SourceGlobal] != globalPath {
		t.Errorf("Unexpected global path: %s", layered.FilePaths[SourceGlobal])
	}
	if layered.FilePaths[SourceProject] != projectPath {
		t.Errorf("Unexpected project path: %s", layered.FilePaths[SourceProject])
	}
	if layered.Global.Theme != "mono" || layered.Project.StartPath != "/tmp" {
		t.Error("Raw layers should keep their own values")
	}
	if layered.Project.Theme != "" {
		t.Error("Raw project layer should not have defaults applied")
	}
	if layered.Final.Theme != "mono" || layered.Final.StartPath != "/tmp" {
		t.Errorf("Unexpected final config: %+v", layered.Final)
	}
	if layered.Default.MaxFileSize != DefaultMaxFileSize {
		t.Error("Default layer should carry defaults")
	}
}
