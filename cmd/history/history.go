// Package history provides the history command for listing past promotions.
package history

import (
	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/cmd/utils"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/spf13/cobra"
)

// NewCmdHistory creates the history command
func NewCmdHistory() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded promotions",
		Long: `Display the promotion history in a table, newest first, including the
promoted build identifier, the production target and the outcome. With
--builds the site build history is listed instead.`,
		Run: func(cmd *cobra.Command, args []string) {
			builds, _ := cmd.Flags().GetBool("builds")

			if err := runHistory(cmd, builds); err != nil {
				utils.HandleCommandError("listing history", err)
			}
		},
	}

	cmd.Flags().BoolP("builds", "b", false, "List site builds instead of promotions")
	return cmd
}

func runHistory(cmd *cobra.Command, builds bool) error {
	if builds {
		return runBuildHistory(cmd)
	}

	promotions, err := app.GetPromotionService().History()
	if err != nil {
		return err
	}

	out, err := output.PrintPromotionList(promotions)
	if err != nil {
		return err
	}
	return output.FprintPlain(cmd, "%s", out)
}

func runBuildHistory(cmd *cobra.Command) error {
	records, err := app.GetBuildService().History()
	if err != nil {
		return err
	}

	out, err := output.PrintBuildList(records)
	if err != nil {
		return err
	}
	return output.FprintPlain(cmd, "%s", out)
}
