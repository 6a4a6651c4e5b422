package mocks

import (
	"github.com/google/uuid"
	"github.com/skiff-cd/skiff/services"
)

// MockTargetManager implements the TargetManager interface for testing
type MockTargetManager struct {
	ListFunc      func() ([]*services.Target, error)
	GetFunc       func(id uuid.UUID) (*services.Target, error)
	GetByNameFunc func(name string) (*services.Target, error)
	CreateFunc    func(target *services.Target) (*services.Target, error)
	RemoveFunc    func(id uuid.UUID) error
}

func (m *MockTargetManager) List() ([]*services.Target, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []*services.Target{}, nil
}

func (m *MockTargetManager) Get(id uuid.UUID) (*services.Target, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return &services.Target{ID: id}, nil
}

func (m *MockTargetManager) GetByName(name string) (*services.Target, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(name)
	}
	return &services.Target{ID: uuid.New(), Name: name}, nil
}

func (m *MockTargetManager) Create(target *services.Target) (*services.Target, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(target)
	}
	return target, nil
}

func (m *MockTargetManager) Remove(id uuid.UUID) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(id)
	}
	return nil
}
