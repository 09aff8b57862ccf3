package cmd

import (
	"os"

	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/errors"
	"github.com/grovetools/fbrowse/logging"
	"github.com/grovetools/fbrowse/pkg/watch"
	"github.com/grovetools/fbrowse/tui"
	"github.com/grovetools/fbrowse/tui/browser"
	"github.com/grovetools/fbrowse/tui/keymap"
	"github.com/grovetools/fbrowse/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewBrowseCmd creates the interactive browser command. The root command
// runs the same thing when given no subcommand.
func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [path]",
		Short: "Browse volumes and directories interactively",
		Long: `Opens a full-screen tree of the given directory. Without a path the
browser starts at start_path from the configuration, or at the volume
listing when that is unset.

Examples:
  # Start at the volume listing
  fbrowse browse

  # Start in a directory, including dotfiles
  fbrowse browse ~/src -a

  # Open a file's directory with the file shown
  fbrowse browse /etc/hosts`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBrowse,
	}
	addBrowseFlags(cmd)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command) {
	addHiddenFlag(cmd)
	cmd.Flags().Bool("no-watch", false, "Do not refresh the listing when the directory changes")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isInteractive() {
		return errors.NotATerminal(cmd.Name())
	}

	cfg, nav, err := setup(cmd)
	if err != nil {
		return err
	}
	logger := cli.GetLogger(cmd)

	start, err := startPath(cfg.StartPath, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opts := browser.Options{
		StartPath: start,
		Keys:      keymap.New(cfg.Keybindings),
		Logger:    logger,
	}

	if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch {
		w, err := watch.New(watch.DefaultDebounce)
		if err != nil {
			logger.WithError(err).Debug("Failed to create directory watcher")
			logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).
				WarnPretty("Directory watching unavailable; press r to refresh")
		} else {
			defer w.Close()
			go w.Start(ctx)
			opts.Watcher = w
		}
	}

	logger.WithField("start", start).Debug("Starting browser")
	_, err = tui.Run(ctx, browser.New(nav, opts))
	return err
}

// startPath picks the path argument, else start_path. Only the configured
// value gets environment expansion; the shell already expanded arguments.
func startPath(configured string, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if configured == "" {
		return "", nil
	}
	path, err := pathutil.Expand(configured)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeConfigValidation, "cannot expand start_path").
			WithDetail("start_path", configured)
	}
	return path, nil
}

func isInteractive() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}
	return true
}
