// Package status provides the status command for showing deployed versions.
package status

import (
	"errors"

	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/cmd/utils"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/skiff-cd/skiff/services"
	"github.com/spf13/cobra"
)

// NewCmdStatus creates the status command
func NewCmdStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [target]",
		Short: "Show the build deployed to each target",
		Long: `Query the deployment control plane for the build identifier currently
deployed to a target. Without arguments all registered targets are queried.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runStatus(cmd, args); err != nil {
				utils.HandleCommandError("querying target status", err)
			}
		},
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	var targets []*services.Target

	if len(args) == 1 {
		target, err := app.GetTargetService().GetByName(args[0])
		if err != nil {
			return err
		}
		targets = []*services.Target{target}
	} else {
		var err error
		targets, err = app.GetTargetService().List()
		if err != nil {
			return err
		}
	}

	if len(targets) == 0 {
		return output.FprintPlain(cmd, "No targets registered.")
	}

	var data [][]string
	for _, target := range targets {
		version, err := app.GetPromotionService().DeployedVersion(cmd.Context(), target.Name)
		if err != nil {
			if errors.Is(err, services.ErrNoBuildID) {
				version = "(none)"
			} else {
				version = "(query failed)"
			}
		}
		data = append(data, []string{target.Name, target.Role.String(), version})
	}

	table, err := output.PrintTable([]string{"Target", "Role", "Deployed Build"}, data)
	if err != nil {
		return err
	}
	return output.FprintPlain(cmd, "%s", table)
}
