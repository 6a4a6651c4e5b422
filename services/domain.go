package services

import (
	"time"

	"github.com/google/uuid"
)

// Target is a named deployment destination registered with the control plane.
type Target struct {
	ID        uuid.UUID
	Name      string
	Role      TargetRole
	AuthToken string // decrypted; empty when the control plane uses ambient auth
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTarget(name string, role TargetRole, authToken string) Target {
	return Target{
		ID:        uuid.New(),
		Name:      name,
		Role:      role,
		AuthToken: authToken,
	}
}

// Promotion records a single staging-to-production deploy of a build identifier.
type Promotion struct {
	ID         uuid.UUID
	TargetID   uuid.UUID
	TargetName string
	BuildID    string
	Status     PromotionStatus
	Output     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewPromotion(targetID uuid.UUID, buildID string) Promotion {
	return Promotion{
		ID:       uuid.New(),
		TargetID: targetID,
		BuildID:  buildID,
		Status:   PromotionStatusStarted,
	}
}

// Build records a single site build.
type Build struct {
	ID         uuid.UUID
	CommitHash *string
	OutputDir  string
	PageCount  int
	Status     BuildStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBuild(outputDir string) Build {
	return Build{
		ID:        uuid.New(),
		OutputDir: outputDir,
		Status:    BuildStatusStarted,
	}
}

func (b *Build) CommitHashStr() string {
	if b.CommitHash == nil {
		return ""
	}
	return *b.CommitHash
}
