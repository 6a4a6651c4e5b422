package target

import (
	"fmt"

	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/spf13/cobra"
)

func NewCmdTargetRemove() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <target-name>",
		Short: "Remove a deployment target from the registry",
		Long: `Remove a target from the local registry. The target itself is untouched on
the control plane side; only Skiff forgets about it, along with its
promotion history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.GetTargetService().GetByName(args[0])
			if err != nil {
				return fmt.Errorf("failed to find target %q: %w", args[0], err)
			}

			if err := app.GetTargetService().Remove(target.ID); err != nil {
				return fmt.Errorf("failed to remove target %q: %w", args[0], err)
			}

			return output.FprintSuccess(cmd, "Target '%s' removed", target.Name)
		},
	}
}
