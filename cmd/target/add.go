package target

import (
	"fmt"
	"log/slog"

	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/cmd/utils"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/skiff-cd/skiff/services"
	"github.com/spf13/cobra"
)

func NewCmdTargetAdd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a deployment target",
		Long: `Register a named deployment target. The name must match a target known to
the deployment control plane. A stored token is encrypted at rest and
exported to the control plane CLI on each invocation.`,
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")
			roleStr, _ := cmd.Flags().GetString("role")
			token, _ := cmd.Flags().GetString("token")

			role, err := services.ParseTargetRole(roleStr)
			if err != nil {
				utils.HandleCommandError("parsing target role", err)
				return
			}

			target := services.NewTarget(name, role, token)
			created, err := app.GetTargetService().Create(&target)
			if err != nil {
				utils.HandleCommandError("creating target", err, "target_name", name)
				return
			}

			out, err := output.PrintTargetDetails(created)
			if err != nil {
				utils.HandleCommandError("printing target details table", err)
			}

			if err := output.FprintPlain(cmd, "%s", out); err != nil {
				utils.HandleCommandError("printing target details", err)
			}
		},
	}

	cmd.Flags().StringP("name", "n", "", "Target name as registered with the control plane")
	cmd.Flags().StringP("role", "r", "", "Target role: staging or production")
	cmd.Flags().StringP("token", "t", "", "Optional control plane token stored encrypted")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Failed to mark name flag as required", "error", err)
		panic(fmt.Sprintf("CLI setup error: %v", err)) // This is a setup error, should panic
	}
	if err := cmd.MarkFlagRequired("role"); err != nil {
		slog.Error("Failed to mark role flag as required", "error", err)
		panic(fmt.Sprintf("CLI setup error: %v", err))
	}
	return cmd
}
