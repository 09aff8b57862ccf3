package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/errors"
	"github.com/grovetools/fbrowse/pkg/fstree"
	"github.com/grovetools/fbrowse/tui/theme"
	"github.com/spf13/cobra"
)

const (
	branchMid   = "├── "
	branchLast  = "└── "
	pipeIndent  = "│   "
	spaceIndent = "    "
)

func NewTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print a directory and its subdirectories as a tree",
		Long: `Opens the directory, then expands subdirectories down to --depth levels.
The top level lists files too; deeper levels show subdirectories only, the
same way the browser expands them. Directories that cannot be listed are
marked in place and the walk continues.

Examples:
  fbrowse tree
  fbrowse tree ~/src --depth 3
  fbrowse tree /etc --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTree,
	}
	addHiddenFlag(cmd)
	cmd.Flags().IntP("depth", "d", 2, "Levels to show below the root")
	return cmd
}

type treeStats struct {
	dirs   int
	files  int
	failed int
}

func runTree(cmd *cobra.Command, args []string) error {
	_, nav, err := setup(cmd)
	if err != nil {
		return err
	}
	logger := cli.GetLogger(cmd)

	depth, _ := cmd.Flags().GetInt("depth")
	if depth < 1 {
		return errors.InvalidInput("--depth must be at least 1").WithDetail("depth", depth)
	}

	entry, err := nav.Resolve(pathArg(args))
	if err != nil {
		return err
	}
	if !entry.IsContainer() {
		return errors.InvalidInput(fmt.Sprintf("%s is not a directory", entry.FullPath)).
			WithDetail("path", entry.FullPath)
	}
	res, err := nav.Open(entry)
	if err != nil {
		return err
	}
	root := res.Entry

	failures := expandTree(nav, root, depth)
	for path, ferr := range failures {
		logger.WithError(ferr).WithField("path", path).Debug("Skipped unreadable directory")
	}

	out := cmd.OutOrStdout()
	if cli.GetOptions(cmd).JSONOutput {
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tree: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printTree(out, root, failures, cli.TerminalWidth(120))
	return nil
}

// expandTree loads subdirectories of root down to depth levels and returns
// the directories that could not be listed.
func expandTree(nav *fstree.Navigator, root *fstree.TreeEntry, depth int) map[string]error {
	failures := make(map[string]error)
	root.Walk(func(e *fstree.TreeEntry, level int) bool {
		// level 0 is root, whose listing Open already loaded.
		if level == 0 || !e.IsContainer() || level >= depth {
			return true
		}
		if _, err := nav.Expand(e); err != nil {
			failures[e.FullPath] = err
		}
		return true
	})
	return failures
}

func printTree(w io.Writer, root *fstree.TreeEntry, failures map[string]error, width int) {
	t := theme.DefaultTheme
	line := lipgloss.NewStyle().MaxWidth(width)
	var stats treeStats

	fmt.Fprintln(w, line.Render(t.Directory.Render(root.FullPath)))

	var walk func(entries []*fstree.TreeEntry, prefix string)
	walk = func(entries []*fstree.TreeEntry, prefix string) {
		for i, e := range entries {
			branch, indent := branchMid, pipeIndent
			if i == len(entries)-1 {
				branch, indent = branchLast, spaceIndent
			}

			label := entryLabel(t, e)
			if err, failed := failures[e.FullPath]; failed {
				label += " " + t.Error.Render(theme.IconError+" "+reason(err))
				stats.failed++
			}
			fmt.Fprintln(w, line.Render(t.Muted.Render(prefix+branch)+label))

			if e.Kind == fstree.KindFile {
				stats.files++
				continue
			}
			stats.dirs++
			walk(e.Children, prefix+indent)
		}
	}
	walk(root.Children, "")

	summary := fmt.Sprintf("\n%d %s, %d %s", stats.dirs, plural(stats.dirs, "directory", "directories"),
		stats.files, plural(stats.files, "file", "files"))
	if stats.failed > 0 {
		summary += fmt.Sprintf(", %d unreadable", stats.failed)
	}
	fmt.Fprintln(w, t.Muted.Render(summary))
}

// reason is the innermost cause of err, which is shorter than the wrapped
// message and already names the path.
func reason(err error) string {
	if be, ok := errors.As(err); ok && be.Cause != nil {
		return be.Cause.Error()
	}
	return err.Error()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
