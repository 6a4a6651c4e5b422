// Package promote provides the promote command: deploy the build currently
// staged on the staging target to a production target.
package promote

import (
	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/cmd/utils"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/spf13/cobra"
)

// NewCmdPromote creates the promote command
func NewCmdPromote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote <production-target>",
		Short: "Promote the staged build to a production target",
		Long: `Query the deployment control plane for the build identifier currently
deployed to the staging target, validate it, and deploy exactly that
identifier to the named production target. The production deploy pulls the
prebuilt image, so production runs byte-identical artifacts to staging.

The workflow never retries and never rolls back: the first failure aborts.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runPromote(cmd, args[0]); err != nil {
				utils.HandleCommandError("promoting to "+args[0], err)
			}
		},
	}

	return cmd
}

func runPromote(cmd *cobra.Command, targetName string) error {
	if err := output.FprintPlain(cmd, "Promoting staged build to '%s'", targetName); err != nil {
		return err
	}

	promotion, err := app.GetPromotionService().Promote(cmd.Context(), targetName)
	if err != nil {
		return err
	}

	if err := output.FprintSuccess(cmd, "\nPromoted %s to '%s'", promotion.BuildID, promotion.TargetName); err != nil {
		return err
	}
	if err := output.FprintPlain(cmd, "Status: %s", promotion.Status.String()); err != nil {
		return err
	}
	return nil
}
