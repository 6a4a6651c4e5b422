// Package utils provides utility functions for CLI commands in Skiff.
package utils

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/skiff-cd/skiff/cmd/output"
	"github.com/skiff-cd/skiff/services"
)

// HandleCommandError provides consistent error handling for CLI commands
func HandleCommandError(operation string, err error, context ...any) {
	slog.Error("Command failed", append([]any{"operation", operation, "error", err}, context...)...)
	fmt.Fprint(os.Stderr, output.PrintMessage(output.Error, "Error: %s failed: %v", operation, err))
	os.Exit(1)
}

// FormatError maps technical errors to a user-facing message, keeping the
// original error text for the log
func FormatError(err error) string {
	slog.Debug("Formatting error for user", "error", err)
	return services.FormatErrorForUser(err)
}
