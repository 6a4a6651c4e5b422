package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TargetService manages the local registry of deployment targets.
// Targets still have to exist on the control plane side; this registry only
// names them and holds optional per-target credentials.
type TargetService struct {
	targetRepo TargetRepository
}

var _ TargetManager = (*TargetService)(nil)

func NewTargetService(targetRepo TargetRepository) *TargetService {
	return &TargetService{targetRepo: targetRepo}
}

func (s *TargetService) List() ([]*Target, error) {
	return s.targetRepo.List()
}

func (s *TargetService) Get(id uuid.UUID) (*Target, error) {
	return s.targetRepo.FindByID(id)
}

func (s *TargetService) GetByName(name string) (*Target, error) {
	target, err := s.targetRepo.FindByName(name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
		}
		return nil, err
	}
	return target, nil
}

func (s *TargetService) Create(target *Target) (*Target, error) {
	if target.Name == "" {
		return nil, fmt.Errorf("target name cannot be empty")
	}
	if target.Role == TargetRoleUnknown {
		return nil, fmt.Errorf("target role must be staging or production")
	}
	return s.targetRepo.Create(target)
}

func (s *TargetService) Remove(id uuid.UUID) error {
	// Verify existence so removal of an unknown target fails loudly
	if _, err := s.targetRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: %s", ErrTargetNotFound, id)
		}
		return err
	}
	return s.targetRepo.Delete(id)
}
