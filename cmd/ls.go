package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/spf13/cobra"
)

func NewLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory, subdirectories first",
		Long: `Opens the directory and prints its immediate children, subdirectories
first, then files, each group ordered by name. Hidden entries and entries
matching ignore patterns are left out.

Examples:
  fbrowse ls
  fbrowse ls ~/src -a
  fbrowse ls /var/log --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLs,
	}
	addHiddenFlag(cmd)
	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
	_, nav, err := setup(cmd)
	if err != nil {
		return err
	}

	entry, err := nav.Resolve(pathArg(args))
	if err != nil {
		return err
	}

	entries := []*fstree.TreeEntry{entry}
	if entry.IsContainer() {
		res, err := nav.Open(entry)
		if err != nil {
			return err
		}
		entries = res.Entry.Children
	}

	out := cmd.OutOrStdout()
	if cli.GetOptions(cmd).JSONOutput {
		if entries == nil {
			entries = []*fstree.TreeEntry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal listing: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printListing(out, entries, time.Now())
	return nil
}

func printListing(w io.Writer, entries []*fstree.TreeEntry, now time.Time) {
	t := theme.DefaultTheme
	if len(entries) == 0 {
		fmt.Fprintln(w, t.Muted.Render("(empty)"))
		return
	}

	tbl := plainTable("NAME", "SIZE", "MODIFIED")
	for _, e := range entries {
		size := ""
		if e.Kind == fstree.KindFile {
			size = units.BytesSize(float64(e.Size))
		}
		modified := ""
		if !e.ModTime.IsZero() {
			modified = units.HumanDuration(now.Sub(e.ModTime)) + " ago"
		}
		tbl.Row(entryLabel(t, e), t.Size.Render(size), t.Muted.Render(modified))
	}
	fmt.Fprintln(w, tbl.Render())
}

// entryLabel is an entry's icon and name, with a trailing separator on
// directories.
func entryLabel(t *theme.Theme, e *fstree.TreeEntry) string {
	switch e.Kind {
	case fstree.KindVolume:
		return t.Volume.Render(theme.IconVolume + " " + e.Name)
	case fstree.KindDirectory:
		return t.Directory.Render(theme.IconFolder + " " + e.Name + "/")
	default:
		return t.File.Render(theme.IconFile + " " + e.Name)
	}
}
