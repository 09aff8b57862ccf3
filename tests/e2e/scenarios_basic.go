package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/harness"
)

// VersionScenario tests the 'version' command.
func VersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "fbrowse-basic-version",
		Steps: []harness.Step{
			harness.NewStep("Run 'fbrowse version'", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "version")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "fbrowse version should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "fbrowse", "Output should name the binary"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Commit:", "Output should contain Commit")
			}),
		},
	}
}

// ListingScenario checks ordering and hidden-entry filtering in 'ls'.
func ListingScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "fbrowse-ls",
		Description: "Lists a directory with subdirectories first and hidden entries filtered.",
		Tags:        []string{"fbrowse", "cli"},
		Steps: []harness.Step{
			harness.NewStep("Create sample tree", func(ctx *harness.Context) error {
				_, err := writeSampleTree(ctx, "sample")
				return err
			}),
			harness.NewStep("List without hidden entries", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}
				dir := ctx.GetString("tree_dir")

				cmd := ctx.Command(bin, "ls", dir).Dir(dir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.Error != nil {
					return fmt.Errorf("`fbrowse ls` failed: %w", result.Error)
				}
				out := result.Stdout
				if err := assert.NotContains(out, ".secret", "hidden files are filtered by default"); err != nil {
					return err
				}
				docs, src, readme := strings.Index(out, "docs/"), strings.Index(out, "src/"), strings.Index(out, "README.md")
				if docs < 0 || src < 0 || readme < 0 {
					return fmt.Errorf("listing is missing entries:\n%s", out)
				}
				if !(docs < src && src < readme) {
					return fmt.Errorf("expected docs/, src/, README.md in that order:\n%s", out)
				}
				return nil
			}),
			harness.NewStep("List with --all as JSON", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}
				dir := ctx.GetString("tree_dir")

				cmd := ctx.Command(bin, "ls", dir, "--all", "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "ls --json should succeed"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, `"name": ".secret"`, "--all includes hidden files"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, `"kind": "directory"`, "entries carry their kind")
			}),
		},
	}
}

// TreeScenario checks lazy expansion depth in 'tree'.
func TreeScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "fbrowse-tree",
		Description: "Prints subdirectories down to the requested depth.",
		Tags:        []string{"fbrowse", "cli"},
		Steps: []harness.Step{
			harness.NewStep("Print tree at depth 2 and 1", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}
				dir, err := writeSampleTree(ctx, "tree")
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "tree", dir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if err := assert.Contains(result.Stdout, "internal/", "depth 2 shows nested directories"); err != nil {
					return err
				}
				if err := assert.NotContains(result.Stdout, "util.go", "nested levels list directories only"); err != nil {
					return err
				}

				cmd = ctx.Command(bin, "tree", dir, "--depth", "1")
				result = cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				return assert.NotContains(result.Stdout, "internal/", "depth 1 stops at the root listing")
			}),
		},
	}
}

// CatScenario prints a file and refuses a directory.
func CatScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "fbrowse-cat",
		Tags: []string{"fbrowse", "cli"},
		Steps: []harness.Step{
			harness.NewStep("Print a file", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}
				dir, err := writeSampleTree(ctx, "cat")
				if err != nil {
					return err
				}

				cmd := ctx.Command(bin, "cat", filepath.Join(dir, "README.md"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if err := assert.Contains(result.Stdout, "hello from fbrowse", "file content is printed"); err != nil {
					return err
				}

				cmd = ctx.Command(bin, "cat", filepath.Join(dir, "src"))
				result = cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if err := assert.Equal(1, result.ExitCode, "cat on a directory fails"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "is a directory", "error names the problem")
			}),
		},
	}
}

// MissingPathScenario checks the user-facing error for a missing path.
func MissingPathScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "fbrowse-missing-path",
		Tags: []string{"fbrowse", "cli", "errors"},
		Steps: []harness.Step{
			harness.NewStep("List a path that does not exist", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}
				missing := filepath.Join(ctx.RootDir, "does-not-exist")

				cmd := ctx.Command(bin, "ls", missing)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "missing path exits non-zero"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "No such file or directory", "missing path is reported")
			}),
		},
	}
}
