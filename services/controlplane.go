package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// DeployCLIService drives the external deployment control plane CLI.
// The CLI itself is a black box: it tracks which build identifier runs in
// each named target and can switch a target to a prebuilt artifact.
type DeployCLIService struct {
	config *Config
}

var _ DeployExecutor = (*DeployCLIService)(nil)

func NewDeployCLIService(config *Config) *DeployCLIService {
	return &DeployCLIService{config: config}
}

// CurrentVersion queries the control plane for the version currently deployed
// to the target, requesting quiet/parseable output. The raw output is returned
// unfiltered; callers extract the build identifier from it.
func (s *DeployCLIService) CurrentVersion(ctx context.Context, target *Target) (string, error) {
	args := []string{"releases", target.Name, "--quiet"}

	slog.Debug("Executing control plane query",
		"command", s.config.DeployCommand,
		"args", args)

	ctx, cancel := context.WithTimeout(ctx, s.config.CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.config.DeployCommand, args...)
	cmd.Env = s.commandEnv(target)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Error("Control plane query failed",
			"command", s.config.DeployCommand,
			"args", args,
			"error", err,
			"stderr", stderr.String())
		return "", fmt.Errorf("control plane query for target %q failed: %w: %s",
			target.Name, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// Deploy instructs the control plane to run the given build identifier on the
// target, pulling the prebuilt image instead of rebuilding. Production then
// runs byte-identical artifacts to what was validated in staging.
func (s *DeployCLIService) Deploy(ctx context.Context, target *Target, buildID string) (string, error) {
	args := []string{"deploy", target.Name, "--version", buildID, "--pull"}

	slog.Debug("Executing control plane deploy",
		"command", s.config.DeployCommand,
		"args", args)

	ctx, cancel := context.WithTimeout(ctx, s.config.CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.config.DeployCommand, args...)
	cmd.Env = s.commandEnv(target)

	output, err := cmd.CombinedOutput()
	outputStr := string(output)

	if err != nil {
		slog.Error("Control plane deploy failed",
			"command", s.config.DeployCommand,
			"args", args,
			"error", err,
			"output", outputStr)
		return outputStr, fmt.Errorf("control plane deploy to target %q failed: %w", target.Name, err)
	}

	slog.Debug("Control plane deploy completed successfully",
		"target", target.Name,
		"build_id", buildID,
		"output_length", len(outputStr))
	return outputStr, nil
}

// commandEnv builds the child process environment. Authentication is ambient:
// the control plane CLI reads its own configuration, plus an optional token
// exported from the target registry.
func (s *DeployCLIService) commandEnv(target *Target) []string {
	env := os.Environ()
	if target.AuthToken != "" {
		env = append(env, s.config.DeployTokenEnv+"="+target.AuthToken)
	}
	return env
}
