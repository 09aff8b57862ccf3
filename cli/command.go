package cli

import (
	"github.com/grovetools/fbrowse/config"
	"github.com/grovetools/fbrowse/logging"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/grovetools/fbrowse/util/pathutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for fbrowse commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard fbrowse flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (skips layered discovery)")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the CLI logger, at debug level when --verbose is set.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetLevel(logrus.DebugLevel)
	}
	return logging.NewLogger("fbrowse-cli")
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig loads the configuration selected by the command's flags and
// applies it to logging, the theme and the icon set.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := GetOptions(cmd)

	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		path, expandErr := pathutil.ExpandHome(opts.ConfigFile)
		if expandErr != nil {
			path = opts.ConfigFile
		}
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	ApplyConfig(cfg, opts.Verbose)
	return cfg, nil
}

// ApplyConfig routes cfg to the packages that read global settings.
func ApplyConfig(cfg *config.Config, verbose bool) {
	logging.UseConfig(cfg)
	if verbose {
		logging.SetLevel(logrus.DebugLevel)
	}
	theme.Apply(cfg.Theme)
	theme.ApplyIcons(cfg.Icons)
}
