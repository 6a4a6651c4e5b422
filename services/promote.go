package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// buildIDPattern is the shape of a build identifier: a 160-bit content hash
// rendered as 40 lowercase hexadecimal characters.
var buildIDPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// ExtractBuildID scans control plane output line by line and returns the
// first line that is exactly a build identifier. The control plane prints the
// active release first, so "first match" selects the currently staged build.
func ExtractBuildID(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if buildIDPattern.MatchString(line) {
			return line, true
		}
	}
	return "", false
}

// PromotionService implements the staging-to-production promotion workflow:
// read the build identifier staged on the staging target, validate it, and
// deploy exactly that identifier to a production target.
type PromotionService struct {
	targetRepo    TargetRepository
	promotionRepo PromotionRepository
	executor      DeployExecutor
	config        *Config
}

var _ PromotionManager = (*PromotionService)(nil)

func NewPromotionService(
	targetRepo TargetRepository,
	promotionRepo PromotionRepository,
	executor DeployExecutor,
	config *Config,
) *PromotionService {
	return &PromotionService{
		targetRepo:    targetRepo,
		promotionRepo: promotionRepo,
		executor:      executor,
		config:        config,
	}
}

// Promote deploys the build currently staged on the staging target to the
// named production target. The workflow has no retries and no rollback: any
// failure aborts immediately, and the deploy is never invoked with an
// unvalidated identifier.
func (s *PromotionService) Promote(ctx context.Context, targetName string) (*Promotion, error) {
	production, err := s.findTarget(targetName)
	if err != nil {
		return nil, err
	}
	if production.Role != TargetRoleProduction {
		return nil, fmt.Errorf("target %q has role %q, expected %q",
			production.Name, production.Role, TargetRoleProduction)
	}

	staging, err := s.findStagingTarget()
	if err != nil {
		return nil, err
	}

	output, err := s.executor.CurrentVersion(ctx, staging)
	if err != nil {
		return nil, fmt.Errorf("querying staged version on %q: %w", staging.Name, err)
	}

	buildID, ok := ExtractBuildID(output)
	if !ok {
		slog.Error("Staged version query returned no build identifier",
			"staging_target", staging.Name,
			"output", strings.TrimSpace(output))
		return nil, fmt.Errorf("target %q: %w", staging.Name, ErrNoBuildID)
	}

	slog.Info("Promoting staged build",
		"build_id", buildID,
		"staging_target", staging.Name,
		"production_target", production.Name)

	promotion := NewPromotion(production.ID, buildID)
	if err := s.promotionRepo.Create(&promotion); err != nil {
		return nil, fmt.Errorf("recording promotion: %w", err)
	}
	promotion.TargetName = production.Name

	deployOutput, deployErr := s.executor.Deploy(ctx, production, buildID)
	promotion.Output = deployOutput
	if deployErr != nil {
		promotion.Status = PromotionStatusFailed
	} else {
		promotion.Status = PromotionStatusCompleted
	}

	if err := s.promotionRepo.Update(&promotion); err != nil {
		slog.Error("Failed to update promotion record",
			"promotion_id", promotion.ID,
			"error", err)
	}

	if deployErr != nil {
		return &promotion, fmt.Errorf("deploying %s to %q: %w", buildID, production.Name, deployErr)
	}
	return &promotion, nil
}

// DeployedVersion returns the build identifier currently deployed to the
// named target, or an error if the control plane output contains none.
func (s *PromotionService) DeployedVersion(ctx context.Context, targetName string) (string, error) {
	target, err := s.findTarget(targetName)
	if err != nil {
		return "", err
	}

	output, err := s.executor.CurrentVersion(ctx, target)
	if err != nil {
		return "", fmt.Errorf("querying deployed version on %q: %w", target.Name, err)
	}

	buildID, ok := ExtractBuildID(output)
	if !ok {
		return "", fmt.Errorf("target %q: %w", target.Name, ErrNoBuildID)
	}
	return buildID, nil
}

// History returns all recorded promotions, newest first.
func (s *PromotionService) History() ([]*Promotion, error) {
	return s.promotionRepo.List()
}

func (s *PromotionService) findTarget(name string) (*Target, error) {
	target, err := s.targetRepo.FindByName(name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
		}
		return nil, fmt.Errorf("looking up target %q: %w", name, err)
	}
	return target, nil
}

// findStagingTarget resolves the configured staging target name, falling back
// to the single registered staging-role target when the configured name is
// not registered.
func (s *PromotionService) findStagingTarget() (*Target, error) {
	target, err := s.targetRepo.FindByName(s.config.StagingTarget)
	if err == nil {
		return target, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("looking up staging target %q: %w", s.config.StagingTarget, err)
	}

	staging, err := s.targetRepo.FindByRole(TargetRoleStaging)
	if err != nil {
		return nil, fmt.Errorf("looking up staging targets: %w", err)
	}
	switch len(staging) {
	case 0:
		return nil, fmt.Errorf("%w: no staging target registered", ErrTargetNotFound)
	case 1:
		return staging[0], nil
	default:
		return nil, fmt.Errorf("multiple staging targets registered; set SKIFF_STAGING_TARGET")
	}
}
