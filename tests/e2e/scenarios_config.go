package main

import (
	"fmt"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ConfigLayeringScenario verifies that the project config overrides the
// global one and that the result changes what 'ls' shows.
func ConfigLayeringScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "fbrowse-config-layering",
		Description: "Verifies that global and project configs are merged field by field.",
		Tags:        []string{"fbrowse", "config"},
		Steps: []harness.Step{
			{
				Name: "Setup layered configuration and verify merge logic",
				Func: func(ctx *harness.Context) error {
					projectDir, err := writeSampleTree(ctx, "project")
					if err != nil {
						return err
					}

					globalDir := filepath.Join(ctx.ConfigDir(), "fbrowse")
					if err := fs.CreateDir(globalDir); err != nil {
						return fmt.Errorf("failed to create global config dir: %w", err)
					}
					globalYAML := `theme: gruvbox
max_file_size: 1024
`
					if err := fs.WriteString(filepath.Join(globalDir, "fbrowse.yml"), globalYAML); err != nil {
						return err
					}

					projectTOML := `show_hidden = true
ignore = ["docs"]
`
					if err := fs.WriteString(filepath.Join(projectDir, ".fbrowse.toml"), projectTOML); err != nil {
						return err
					}

					bin, err := findFbrowseBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(bin, "config", "show", "--layers").Dir(projectDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if result.Error != nil {
						return fmt.Errorf("`fbrowse config show --layers` failed: %w", result.Error)
					}

					output := result.Stdout
					for _, want := range []string{"GLOBAL CONFIG", "PROJECT CONFIG", "FINAL MERGED CONFIG", "theme: gruvbox", "show_hidden: true", "max_file_size: 1024"} {
						if err := assert.Contains(output, want, "layered output should contain "+want); err != nil {
							return err
						}
					}

					cmd = ctx.Command(bin, "ls").Dir(projectDir)
					result = cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Contains(result.Stdout, ".secret", "project show_hidden applies"); err != nil {
						return err
					}
					return assert.NotContains(result.Stdout, "docs/", "project ignore pattern applies")
				},
			},
		},
	}
}

// ConfigValidateScenario checks 'config validate' on good and bad files.
func ConfigValidateScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "fbrowse-config-validate",
		Tags: []string{"fbrowse", "config"},
		Steps: []harness.Step{
			harness.NewStep("Validate a good and a bad file", func(ctx *harness.Context) error {
				bin, err := findFbrowseBinary()
				if err != nil {
					return err
				}
				dir := ctx.NewDir("configs")

				good := filepath.Join(dir, "good.yml")
				if err := fs.WriteString(good, "theme: mono\nicons: ascii\n"); err != nil {
					return err
				}
				cmd := ctx.Command(bin, "config", "validate", good)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if err := assert.Contains(result.Stdout, "Configuration is valid", "good config validates"); err != nil {
					return err
				}

				bad := filepath.Join(dir, "bad.yml")
				if err := fs.WriteString(bad, "keybindings:\n  launch: [\"x\"]\n"); err != nil {
					return err
				}
				cmd = ctx.Command(bin, "config", "validate", bad)
				result = cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
				if err := assert.Equal(1, result.ExitCode, "bad config fails validation"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "unknown keybinding action 'launch'", "the offending action is named")
			}),
		},
	}
}
