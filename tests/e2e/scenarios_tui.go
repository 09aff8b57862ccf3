package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/tui"
	"github.com/grovetools/tend/pkg/verify"
)

// BrowseTUIScenario drives the interactive browser: open, expand, view a
// file, go back and filter.
func BrowseTUIScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "fbrowse-browse-tui",
		Description: "Navigates a directory tree and views a file in the interactive browser.",
		Tags:        []string{"fbrowse", "tui", "interactive"},
		LocalOnly:   true, // TUI tests require tmux
		Steps: []harness.Step{
			harness.NewStep("Setup tree and launch browser", func(ctx *harness.Context) error {
				// StartTUI runs in ctx.RootDir.
				root := ctx.RootDir
				files := map[string]string{
					"notes.txt":       "first line of notes\n",
					"src/app/main.go": "package main\n",
					"src/lib/util.go": "package lib\n",
				}
				for rel, content := range files {
					path := filepath.Join(root, rel)
					if err := fs.CreateDir(filepath.Dir(path)); err != nil {
						return err
					}
					if err := fs.WriteString(path, content); err != nil {
						return err
					}
				}
				if err := fs.WriteString(filepath.Join(root, ".fbrowse.yml"), "icons: ascii\n"); err != nil {
					return err
				}

				bin, err := findFbrowseBinary()
				if err != nil {
					return fmt.Errorf("failed to find fbrowse binary: %w", err)
				}
				session, err := ctx.StartTUI(bin, []string{"browse", root})
				if err != nil {
					return fmt.Errorf("failed to start TUI: %w", err)
				}
				ctx.Set("tui_session", session)
				return nil
			}),
			harness.NewStep("Verify initial listing", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				if err := session.WaitForText("notes.txt", 10*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("TUI did not load within timeout: %w\nContent: %s", err, content)
				}
				if err := session.WaitStable(); err != nil {
					return err
				}
				return ctx.Verify(func(v *verify.Collector) {
					v.Equal("src directory listed", nil, session.AssertContains("[d] src"))
					v.Equal("file listed", nil, session.AssertContains("[f] notes.txt"))
					v.Equal("nested dirs folded", nil, session.AssertNotContains("app"))
				})
			}),
			harness.NewStep("Expand src", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				// Filter down to src so the cursor lands on it, expand, then clear the filter.
				for _, k := range []string{"/", "src", "Enter", "l", "Escape"} {
					if err := session.SendKeys(k); err != nil {
						return err
					}
				}
				if err := session.WaitForText("lib", 5*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("expansion did not show subdirectories: %w\nContent: %s", err, content)
				}
				return session.AssertNotContains("main.go")
			}),
			harness.NewStep("Open notes.txt in the viewer", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				for _, k := range []string{"Escape", "/", "notes", "Enter", "Enter"} {
					if err := session.SendKeys(k); err != nil {
						return err
					}
				}
				if err := session.WaitForText("first line of notes", 5*time.Second); err != nil {
					content, _ := session.Capture()
					return fmt.Errorf("viewer did not show the file: %w\nContent: %s", err, content)
				}
				return nil
			}),
			harness.NewStep("Go back to the parent directory", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				// First Back leaves the viewer, the second navigates up.
				for i := 0; i < 2; i++ {
					if err := session.SendKeys("BSpace"); err != nil {
						return err
					}
				}
				if err := session.WaitStable(); err != nil {
					return err
				}
				content, err := session.Capture()
				if err != nil {
					return err
				}
				return assert.Contains(content, filepath.Base(ctx.RootDir), "parent listing shows the directory we left")
			}),
			harness.NewStep("Quit", func(ctx *harness.Context) error {
				session := ctx.Get("tui_session").(*tui.Session)
				return session.SendKeys("q")
			}),
		},
	}
}

// BrowseNeedsTerminalScenario checks that browse refuses to run without a TTY.
func BrowseNeedsTerminalScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "fbrowse-browse-needs-terminal",
		Tags: []string{"fbrowse", "tui", "errors"},
		Steps: []harness.Step{
			harness.NewStep("Run browse with piped output", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}
				cmd := ctx.Command(bin, "browse")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "browse without a terminal fails"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "fbrowse ls", "the error suggests non-interactive commands")
			}),
		},
	}
}
