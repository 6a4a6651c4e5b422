// Package root implements the command line interface for Skiff.
package root

import (
	"log"
	"os"

	"github.com/skiff-cd/skiff/cmd/build"
	"github.com/skiff-cd/skiff/cmd/history"
	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/cmd/pack"
	"github.com/skiff-cd/skiff/cmd/preview"
	"github.com/skiff-cd/skiff/cmd/promote"
	"github.com/skiff-cd/skiff/cmd/status"
	"github.com/skiff-cd/skiff/cmd/target"
	"github.com/skiff-cd/skiff/cmd/version"
	"github.com/skiff-cd/skiff/internal/app"
	"github.com/skiff-cd/skiff/logging"
	"github.com/skiff-cd/skiff/services"
	"github.com/spf13/cobra"
)

var config *services.Config

func Execute() {
	err := NewCmdRoot(services.GetDefaultDataDir()).Execute()
	if err != nil {
		os.Exit(1)
	}
}

func NewCmdRoot(defaultDataDir string) *cobra.Command {
	var dataDir string
	var siteDir string

	cmd := &cobra.Command{
		Use:   "skiff",
		Short: "Build, preview and promote a static blog",
		Long: `Skiff builds a Markdown blog into static HTML, packages it into a serving
container image, and promotes staged builds to production through the
deployment control plane.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration with CLI overrides
			var err error
			config, err = services.NewConfigForCLI(dataDir, siteDir)
			if err != nil {
				log.Fatalf("Failed to initialize configuration: %s", err)
			}

			// Initialize colors (CLI flag overrides config)
			colorDisabled := !config.ColorEnabled
			if output.NoColor.IsSet() {
				colorDisabled = true // --no-color flag overrides config
			}
			output.InitColors(colorDisabled)

			// Initialize logging (CLI flag overrides config)
			logLevel := config.LogLevel
			if logging.LogLevel.IsSet() {
				logLevel = logging.LogLevel.String()
			}
			logging.InitLogging(logLevel)

			// Initialize application with config
			if err := app.InitializeWithConfig(config); err != nil {
				log.Fatalf("Failed to initialize application: %s", err)
			}
		},
	}

	cmd.PersistentFlags().
		StringVarP(&dataDir, "data-dir", "d", defaultDataDir, "Data directory for Skiff state")
	cmd.PersistentFlags().
		StringVarP(&siteDir, "site-dir", "s", "", "Blog source directory (defaults to the current directory)")
	cmd.PersistentFlags().VarP(logging.LogLevel, "log-level", "l",
		"Diagnostic verbosity on stderr: debug, info, warning, error or silent")
	cmd.PersistentFlags().VarP(output.NoColor, "no-color", "c", "Disable colored terminal output")

	cmd.AddCommand(build.NewCmdBuild())
	cmd.AddCommand(preview.NewCmdPreview())
	cmd.AddCommand(pack.NewCmdPack())
	cmd.AddCommand(target.NewCmdTarget())
	cmd.AddCommand(promote.NewCmdPromote())
	cmd.AddCommand(status.NewCmdStatus())
	cmd.AddCommand(history.NewCmdHistory())
	cmd.AddCommand(version.NewCmdVersion())
	return cmd
}
