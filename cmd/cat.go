package cmd

import (
	"fmt"
	"io"
	stdlog "log"
	"strings"

	"github.com/grovetools/fbrowse/cli"
	"github.com/grovetools/fbrowse/errors"
	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"
)

func NewCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a text file",
		Long: `Reads the file the same way the browser's viewer does: UTF-8 by default,
UTF-16 when the file starts with a byte order mark. Binary files and files
above max_file_size are refused.

Examples:
  fbrowse cat README.md
  fbrowse cat /var/log/syslog --follow`,
		Args: cobra.ExactArgs(1),
		RunE: runCat,
	}
	cmd.Flags().BoolP("follow", "f", false, "Keep printing lines appended to the file")
	return cmd
}

func runCat(cmd *cobra.Command, args []string) error {
	_, nav, err := setup(cmd)
	if err != nil {
		return err
	}

	entry, err := nav.Resolve(args[0])
	if err != nil {
		return err
	}
	if entry.IsContainer() {
		return errors.InvalidInput(fmt.Sprintf("%s is a directory", entry.FullPath)).
			WithDetail("path", entry.FullPath)
	}

	res, err := nav.Open(entry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, res.Text)
	if res.Text != "" && !strings.HasSuffix(res.Text, "\n") {
		fmt.Fprintln(out)
	}

	if follow, _ := cmd.Flags().GetBool("follow"); follow {
		return followFile(cmd, entry.FullPath, out)
	}
	return nil
}

// followFile streams lines appended after the initial read until the
// command's context is cancelled.
func followFile(cmd *cobra.Command, path string, out io.Writer) error {
	logger := cli.GetLogger(cmd)
	t, err := tail.TailFile(path, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:   stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return errors.ReadError(path, err)
	}
	defer t.Cleanup()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return t.Stop()
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				logger.WithError(line.Err).WithField("path", path).Debug("Error reading followed line")
				continue
			}
			fmt.Fprintln(out, line.Text)
		}
	}
}
