package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/config"
	"github.com/grovetools/fbrowse/logging"
	"github.com/grovetools/fbrowse/util/pathutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate the fbrowse configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the merged configuration. With --layers, shows how it is built:
1. Defaults
2. Global config ($FBROWSE_HOME/config or ~/.config/fbrowse/fbrowse.yml)
3. Project config (nearest .fbrowse.yml walking up from the working directory)
This is useful for debugging configuration issues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			jsonOut := cli.GetOptions(cmd).JSONOutput

			if layers, _ := cmd.Flags().GetBool("layers"); layers {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
				layered, err := config.LoadLayered(cwd)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(out, layered)
				}
				printLayer(out, "DEFAULTS", "", layered.Default)
				printLayer(out, "GLOBAL CONFIG", layered.FilePaths[config.SourceGlobal], layered.Global)
				printLayer(out, "PROJECT CONFIG", layered.FilePaths[config.SourceProject], layered.Project)
				printLayer(out, "FINAL MERGED CONFIG", "", layered.Final)
				return nil
			}

			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(out, cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}
	cmd.Flags().Bool("layers", false, "Show each configuration layer before the merged result")
	return cmd
}

func printLayer(w io.Writer, title, path string, cfg *config.Config) {
	if cfg == nil {
		return
	}
	fmt.Fprintf(w, "--- # %s\n", title)
	if path != "" {
		fmt.Fprintf(w, "# Source: %s\n", path)
	}
	data, _ := yaml.Marshal(cfg)
	fmt.Fprintln(w, string(data))
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for configuration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check configuration files against the schema",
		Long: `Validates one file, or every layer that applies to the working directory
when no file is given. Exits non-zero on the first problem found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())

			if len(args) == 1 {
				path, err := pathutil.ExpandHome(args[0])
				if err != nil {
					path = args[0]
				}
				if _, err := config.Load(path); err != nil {
					return err
				}
				pretty.Success("Configuration is valid")
				pretty.Path("File", path)
				return nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			layered, err := config.LoadLayered(cwd)
			if err != nil {
				return err
			}

			pretty.Success("Configuration is valid")
			if len(layered.FilePaths) == 0 {
				pretty.InfoPretty("No configuration files found; using defaults")
				return nil
			}
			for _, src := range []config.ConfigSource{config.SourceGlobal, config.SourceProject} {
				if path, ok := layered.FilePaths[src]; ok {
					pretty.Path(string(src), path)
				}
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
