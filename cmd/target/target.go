// Package target provides commands for managing deployment targets.
package target

import (
	"github.com/spf13/cobra"
)

// NewCmdTarget creates the target command group
func NewCmdTarget() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage deployment targets",
		Long: `Manage the local registry of deployment targets. Targets must also be
registered with the deployment control plane; this registry names them and
optionally stores a per-target authentication token.`,
	}

	cmd.AddCommand(NewCmdTargetAdd())
	cmd.AddCommand(NewCmdTargetList())
	cmd.AddCommand(NewCmdTargetShow())
	cmd.AddCommand(NewCmdTargetRemove())
	return cmd
}
