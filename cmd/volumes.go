package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/spf13/cobra"
)

func NewVolumesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volumes",
		Short: "List the host's volumes",
		Long: `Lists mount points on Unix and logical drives on Windows. Volumes that
cannot be enumerated are skipped; the command itself never fails on them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, nav, err := setup(cmd)
			if err != nil {
				return err
			}

			vols := nav.ListVolumes()
			out := cmd.OutOrStdout()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(vols, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal volumes: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			t := theme.DefaultTheme
			tbl := plainTable("NAME", "PATH")
			for _, v := range vols {
				tbl.Row(t.Volume.Render(theme.IconVolume+" "+v.Name), t.Muted.Render(v.FullPath))
			}
			fmt.Fprintln(out, tbl.Render())
			return nil
		},
	}
}

// plainTable is a borderless table with a bold header row.
func plainTable(headers ...string) *table.Table {
	t := theme.DefaultTheme
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if row == table.HeaderRow {
				return s.Inherit(t.Bold).Foreground(t.Colors.MutedText)
			}
			return s
		})
}
