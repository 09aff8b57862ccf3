package cmd

import (
	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/config"
	"github.com/grovetools/fbrowse/errors"
	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/spf13/cobra"
)

// addHiddenFlag registers -a/--all on commands that list entries.
func addHiddenFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("all", "a", false, "Show hidden entries (overrides show_hidden)")
}

// setup loads the configuration and builds a navigator over the host
// filesystem from it.
func setup(cmd *cobra.Command) (*config.Config, *fstree.Navigator, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	nav, err := newNavigator(cmd, cfg, fstree.NewHostSource())
	if err != nil {
		return nil, nil, err
	}
	return cfg, nav, nil
}

func newNavigator(cmd *cobra.Command, cfg *config.Config, src fstree.Source) (*fstree.Navigator, error) {
	showHidden := cfg.ShowHiddenEnabled()
	if f := cmd.Flags().Lookup("all"); f != nil && f.Changed {
		showHidden, _ = cmd.Flags().GetBool("all")
	}

	filter, err := fstree.NewFilter(showHidden, cfg.Ignore)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid ignore pattern").
			WithDetail("ignore", cfg.Ignore)
	}

	return fstree.New(src,
		fstree.WithFilter(filter),
		fstree.WithMaxFileSize(cfg.MaxFileSize),
	), nil
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
