// Package pack provides the pack command for building the serving image.
package pack

import (
	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/cmd/utils"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/skiff-cd/skiff/services"
	"github.com/spf13/cobra"
)

// NewCmdPack creates the pack command
func NewCmdPack() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Build the serving container image",
		Long: `Build the site, then package the generated files together with a web
server into a container image. The image is tagged with the build
identifier so deployed artifacts can be traced back to a commit.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runPack(cmd); err != nil {
				utils.HandleCommandError("packing serving image", err)
			}
		},
	}

	return cmd
}

func runPack(cmd *cobra.Command) error {
	result, err := app.GetBuildService().Build()
	if err != nil {
		return err
	}

	imageService, err := services.NewImageService(app.GetConfig())
	if err != nil {
		return err
	}
	defer imageService.Close()

	buildID := ""
	if result.CommitHash != nil {
		buildID = *result.CommitHash
	}

	ref, err := imageService.BuildImage(cmd.Context(), result.OutputDir, buildID)
	if err != nil {
		return err
	}

	if err := output.FprintSuccess(cmd, "Serving image built successfully"); err != nil {
		return err
	}
	if err := output.FprintPlain(cmd, "Image: %s", ref); err != nil {
		return err
	}
	if err := output.FprintPlain(cmd, "Pages: %d", result.PageCount); err != nil {
		return err
	}
	return nil
}
