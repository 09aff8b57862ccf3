package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/fbrowse/errors"
	"github.com/grovetools/fbrowse/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// projectConfigNames are searched from the working directory upward.
var projectConfigNames = []string{
	".fbrowse.yml",
	".fbrowse.yaml",
	".fbrowse.toml",
}

// globalConfigNames are looked up in paths.ConfigDir().
var globalConfigNames = []string{
	"fbrowse.yml",
	"fbrowse.yaml",
	"fbrowse.toml",
}

// Load reads, validates and applies defaults to a single configuration file.
// Used for --config, which bypasses layering.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, isTOML(path))
	if err != nil {
		if be, ok := errors.As(err); ok && be.Path() == "" {
			return nil, be.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the configuration with hierarchical merging:
// 1. Global config ($FBROWSE_HOME/config or ~/.config/fbrowse) - base layer
// 2. Nearest .fbrowse.{yml,yaml,toml} walking up from the working directory
// Neither file is required.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory.
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	layered, err := loadLayers(startDir, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded and validated successfully")
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		configData, err := yaml.Marshal(layered.Final)
		if err == nil {
			logger.Debugf("Merged configuration:\n%s", string(configData))
		}
	}

	return layered.Final, nil
}

// LoadLayered finds and loads every configuration layer without merging
// them, for analysis purposes. It also computes the final merged config.
func LoadLayered(startDir string) (*LayeredConfig, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return loadLayers(startDir, logger)
}

func loadLayers(startDir string, logger *logrus.Logger) (*LayeredConfig, error) {
	layered := &LayeredConfig{
		FilePaths: make(map[ConfigSource]string),
	}

	defaults := &Config{}
	defaults.SetDefaults()
	layered.Default = defaults

	// 1. Global layer (optional, a broken file is skipped with a warning)
	if globalPath := GlobalConfigPath(); globalPath != "" {
		logger.WithField("path", globalPath).Debug("Loading global configuration")
		globalConfig, err := parseFile(globalPath)
		if err != nil {
			logger.WithError(err).Warn("Failed to load global configuration, continuing without it")
		} else {
			layered.Global = globalConfig
			layered.FilePaths[SourceGlobal] = globalPath
		}
	}

	// 2. Project layer (optional, but a broken file is an error)
	projectPath, err := FindConfigFile(startDir)
	if err == nil {
		logger.WithField("path", projectPath).Debug("Loading project configuration")
		projectConfig, err := parseFile(projectPath)
		if err != nil {
			return nil, err
		}
		layered.Project = projectConfig
		layered.FilePaths[SourceProject] = projectPath
	} else if !errors.Is(err, errors.ErrCodeConfigNotFound) {
		return nil, err
	}

	// 3. Merge and validate
	final := &Config{}
	if layered.Global != nil {
		final = mergeConfigs(final, layered.Global)
	}
	if layered.Project != nil {
		logger.Debug("Merging project configuration over global configuration")
		final = mergeConfigs(final, layered.Project)
	}
	final.SetDefaults()

	if err := final.Validate(); err != nil {
		return nil, err
	}

	layered.Final = final
	return layered, nil
}

// LoadFromBytes parses configuration from a byte array. TOML is assumed
// when asTOML is set, YAML otherwise.
func LoadFromBytes(data []byte, asTOML bool) (*Config, error) {
	cfg, err := parse(data, asTOML)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a .fbrowse config file from startDir up to
// the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range projectConfigNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// GlobalConfigPath returns the first global config file that exists, or "".
func GlobalConfigPath() string {
	dir := paths.ConfigDir()
	if dir == "" {
		return ""
	}
	for _, name := range globalConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}
	cfg, err := parse(data, isTOML(path))
	if err != nil {
		if be, ok := errors.As(err); ok {
			return nil, be.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// parse decodes without defaults or validation; layers are validated after merging.
func parse(data []byte, asTOML bool) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if asTOML {
		if err := toml.NewDecoder(bytes.NewReader([]byte(expanded))).DisallowUnknownFields().Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
		return &cfg, nil
	}

	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}
	return &cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
