package services

import (
	"context"

	"github.com/google/uuid"
)

// DeployExecutor defines the contract for driving the deployment control plane CLI
type DeployExecutor interface {
	CurrentVersion(ctx context.Context, target *Target) (string, error)
	Deploy(ctx context.Context, target *Target, buildID string) (string, error)
}

// GitExecutor defines the contract for Git operations on the blog source tree
type GitExecutor interface {
	IsRepository(workingDir string) bool
	HeadCommit(workingDir string) (string, error)
}

// TargetManager defines the contract for target registry operations
type TargetManager interface {
	List() ([]*Target, error)
	Get(id uuid.UUID) (*Target, error)
	GetByName(name string) (*Target, error)
	Create(target *Target) (*Target, error)
	Remove(id uuid.UUID) error
}

// PromotionManager defines the contract for the promotion workflow
type PromotionManager interface {
	Promote(ctx context.Context, targetName string) (*Promotion, error)
	DeployedVersion(ctx context.Context, targetName string) (string, error)
	History() ([]*Promotion, error)
}
