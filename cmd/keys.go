package cmd

import (
	"fmt"
	"strings"

	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/tui/keymap"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/spf13/cobra"
)

func NewKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the browser's key bindings",
		Long: `Prints the effective key bindings, including overrides from the
keybindings section of the configuration. The action column is the name
to use under keybindings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			sections := keymap.Export(keymap.New(cfg.Keybindings))
			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				return writeJSON(out, sections)
			}

			t := theme.DefaultTheme
			for i, s := range sections {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, t.Title.Render(strings.ToUpper(s.Name)))
				tbl := plainTable("ACTION", "KEYS", "DESCRIPTION")
				for _, b := range s.Bindings {
					tbl.Row(b.Action, t.Accent.Render(strings.Join(b.Keys, ", ")), b.Description)
				}
				fmt.Fprintln(out, tbl.Render())
			}
			return nil
		},
	}
}
