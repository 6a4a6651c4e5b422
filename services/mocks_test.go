package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockDeployExecutor for testing
type MockDeployExecutor struct {
	CurrentVersionFunc func(ctx context.Context, target *Target) (string, error)
	DeployFunc         func(ctx context.Context, target *Target, buildID string) (string, error)

	CurrentVersionCalls []string
	DeployCalls         []DeployCall
}

type DeployCall struct {
	Target  string
	BuildID string
}

func (m *MockDeployExecutor) CurrentVersion(ctx context.Context, target *Target) (string, error) {
	m.CurrentVersionCalls = append(m.CurrentVersionCalls, target.Name)
	if m.CurrentVersionFunc != nil {
		return m.CurrentVersionFunc(ctx, target)
	}
	return "", nil
}

func (m *MockDeployExecutor) Deploy(ctx context.Context, target *Target, buildID string) (string, error) {
	m.DeployCalls = append(m.DeployCalls, DeployCall{Target: target.Name, BuildID: buildID})
	if m.DeployFunc != nil {
		return m.DeployFunc(ctx, target, buildID)
	}
	return "deployed", nil
}

// MockTargetRepository for testing
type MockTargetRepository struct {
	Targets []*Target
}

func (m *MockTargetRepository) FindByID(id uuid.UUID) (*Target, error) {
	for _, target := range m.Targets {
		if target.ID == id {
			return target, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTargetRepository) FindByName(name string) (*Target, error) {
	for _, target := range m.Targets {
		if target.Name == name {
			return target, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTargetRepository) FindByRole(role TargetRole) ([]*Target, error) {
	var matched []*Target
	for _, target := range m.Targets {
		if target.Role == role {
			matched = append(matched, target)
		}
	}
	return matched, nil
}

func (m *MockTargetRepository) Create(target *Target) (*Target, error) {
	m.Targets = append(m.Targets, target)
	return target, nil
}

func (m *MockTargetRepository) List() ([]*Target, error) {
	return m.Targets, nil
}

func (m *MockTargetRepository) Delete(id uuid.UUID) error {
	for i, target := range m.Targets {
		if target.ID == id {
			m.Targets = append(m.Targets[:i], m.Targets[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// MockPromotionRepository for testing
type MockPromotionRepository struct {
	Promotions []*Promotion
	CreateErr  error
}

func (m *MockPromotionRepository) FindByID(id uuid.UUID) (*Promotion, error) {
	for _, promotion := range m.Promotions {
		if promotion.ID == id {
			return promotion, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPromotionRepository) Create(promotion *Promotion) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	copied := *promotion
	m.Promotions = append(m.Promotions, &copied)
	return nil
}

func (m *MockPromotionRepository) Update(promotion *Promotion) error {
	for i, existing := range m.Promotions {
		if existing.ID == promotion.ID {
			copied := *promotion
			m.Promotions[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *MockPromotionRepository) List() ([]*Promotion, error) {
	return m.Promotions, nil
}

func (m *MockPromotionRepository) ListByTargetID(targetID uuid.UUID) ([]*Promotion, error) {
	var matched []*Promotion
	for _, promotion := range m.Promotions {
		if promotion.TargetID == targetID {
			matched = append(matched, promotion)
		}
	}
	return matched, nil
}

// MockGitExecutor for testing
type MockGitExecutor struct {
	IsRepositoryFunc func(workingDir string) bool
	HeadCommitFunc   func(workingDir string) (string, error)
}

func (m *MockGitExecutor) IsRepository(workingDir string) bool {
	if m.IsRepositoryFunc != nil {
		return m.IsRepositoryFunc(workingDir)
	}
	return false
}

func (m *MockGitExecutor) HeadCommit(workingDir string) (string, error) {
	if m.HeadCommitFunc != nil {
		return m.HeadCommitFunc(workingDir)
	}
	return "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", nil
}

// MockBuildRepository for testing
type MockBuildRepository struct {
	Builds []*Build
}

func (m *MockBuildRepository) Create(build *Build) error {
	copied := *build
	m.Builds = append(m.Builds, &copied)
	return nil
}

func (m *MockBuildRepository) Update(build *Build) error {
	for i, existing := range m.Builds {
		if existing.ID == build.ID {
			copied := *build
			m.Builds[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *MockBuildRepository) List() ([]*Build, error) {
	return m.Builds, nil
}
