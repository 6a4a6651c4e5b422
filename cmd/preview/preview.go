// Package preview provides the preview command for serving the site locally.
package preview

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/skiff-cd/skiff/cmd/utils"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/spf13/cobra"
)

// NewCmdPreview creates the preview command
func NewCmdPreview() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Build the site and serve it locally",
		Long: `Build the site and serve the generated files over HTTP. With --watch the
source tree is monitored and the site is rebuilt on change.`,
		Run: func(cmd *cobra.Command, args []string) {
			watch, _ := cmd.Flags().GetBool("watch")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.GetPreviewService().Start(ctx, watch); err != nil {
				utils.HandleCommandError("serving preview", err)
			}
		},
	}

	cmd.Flags().BoolP("watch", "w", true, "Rebuild when the source tree changes")
	return cmd
}
