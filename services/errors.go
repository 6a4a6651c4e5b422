package services

import (
	"errors"
	"strings"
)

// ErrNoBuildID is returned when the staged version query output contains no
// line matching the 40-character lowercase hex build identifier pattern.
var ErrNoBuildID = errors.New("no valid build identifier in control plane output")

// ErrTargetNotFound is returned when a named target is not registered.
var ErrTargetNotFound = errors.New("target not found")

// FormatErrorForUser converts technical errors to user-friendly messages
// This should only be called at the CLI edge
func FormatErrorForUser(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNoBuildID):
		return "staging has no valid build identifier; publish a build to staging first"
	case errors.Is(err, ErrTargetNotFound):
		return "target not found; register it with 'skiff target add'"
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "unique constraint") && strings.Contains(errStr, "name"):
		return "a target with this name already exists"
	case strings.Contains(errStr, "unique constraint"):
		return "this entry already exists"
	case strings.Contains(errStr, "record not found"):
		return "not found"
	case strings.Contains(errStr, "executable file not found"):
		return "deployment control plane CLI not found; check SKIFF_DEPLOY_COMMAND"
	case strings.Contains(errStr, "permission denied"):
		return "permission denied"
	case strings.Contains(errStr, "connection"):
		return "database connection failed"
	case strings.Contains(errStr, "timeout"):
		return "operation timed out"
	default:
		return "an unexpected error occurred"
	}
}
