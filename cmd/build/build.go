// Package build provides the build command for rendering the static site.
package build

import (
	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/cmd/utils"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/spf13/cobra"
)

// NewCmdBuild creates the build command
func NewCmdBuild() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the blog into static HTML",
		Long: `Render all posts from the blog source directory into a directory of
static HTML files. Any unreadable or malformed post aborts the build.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runBuild(cmd); err != nil {
				utils.HandleCommandError("building site", err)
			}
		},
	}

	return cmd
}

func runBuild(cmd *cobra.Command) error {
	result, err := app.GetBuildService().Build()
	if err != nil {
		return err
	}

	if err := output.FprintSuccess(cmd, "Site built successfully"); err != nil {
		return err
	}
	if err := output.FprintPlain(cmd, "Output: %s", result.OutputDir); err != nil {
		return err
	}
	if err := output.FprintPlain(cmd, "Pages: %d", result.PageCount); err != nil {
		return err
	}
	if result.CommitHash != nil {
		if err := output.FprintPlain(cmd, "Build identifier: %s", *result.CommitHash); err != nil {
			return err
		}
	}
	return nil
}
