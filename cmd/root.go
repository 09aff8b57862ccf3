// Package cmd holds the fbrowse cobra commands.
package cmd

import (
	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/version"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the fbrowse command tree. Run without a
// subcommand, it opens the interactive browser.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand("fbrowse [path]", "Browse volumes, directories and text files")
	root.Long = `fbrowse walks the host filesystem from its volumes down: an interactive
tree with a text viewer, plus plain commands for scripts.

Examples:
  fbrowse
  fbrowse ~/src
  fbrowse ls /var/log --json
  fbrowse tree . --depth 3`
	root.Args = cobra.MaximumNArgs(1)
	root.RunE = runBrowse
	addBrowseFlags(root)

	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(
		NewBrowseCmd(),
		NewVolumesCmd(),
		NewLsCmd(),
		NewTreeCmd(),
		NewCatCmd(),
		NewConfigCmd(),
		NewKeysCmd(),
		cli.NewVersionCommand("fbrowse"),
	)
	return root
}
