package mocks

import (
	"context"

	"github.com/skiff-cd/skiff/services"
)

// MockPromotionManager implements the PromotionManager interface for testing
type MockPromotionManager struct {
	PromoteFunc         func(ctx context.Context, targetName string) (*services.Promotion, error)
	DeployedVersionFunc func(ctx context.Context, targetName string) (string, error)
	HistoryFunc         func() ([]*services.Promotion, error)
}

func (m *MockPromotionManager) Promote(ctx context.Context, targetName string) (*services.Promotion, error) {
	if m.PromoteFunc != nil {
		return m.PromoteFunc(ctx, targetName)
	}
	return &services.Promotion{TargetName: targetName}, nil
}

func (m *MockPromotionManager) DeployedVersion(ctx context.Context, targetName string) (string, error) {
	if m.DeployedVersionFunc != nil {
		return m.DeployedVersionFunc(ctx, targetName)
	}
	return "", nil
}

func (m *MockPromotionManager) History() ([]*services.Promotion, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc()
	}
	return []*services.Promotion{}, nil
}
