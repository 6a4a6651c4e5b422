package target

import (
	"fmt"

	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/spf13/cobra"
)

func NewCmdTargetList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered deployment targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := app.GetTargetService().List()
			if err != nil {
				return fmt.Errorf("failed to list targets: %w", err)
			}

			out, err := output.PrintTargetList(targets)
			if err != nil {
				return fmt.Errorf("failed to format targets: %w", err)
			}

			return output.FprintPlain(cmd, "%s", out)
		},
	}
}
