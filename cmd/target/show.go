package target

import (
	"fmt"

	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/spf13/cobra"
)

func NewCmdTargetShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <target-name>",
		Short: "Show details of a deployment target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.GetTargetService().GetByName(args[0])
			if err != nil {
				return fmt.Errorf("failed to find target %q: %w", args[0], err)
			}

			out, err := output.PrintTargetDetails(target)
			if err != nil {
				return fmt.Errorf("failed to format target details: %w", err)
			}

			return output.FprintPlain(cmd, "%s", out)
		},
	}
}
