package services

import (
	"fmt"

	"github.com/skiff-cd/skiff/db"
)

type TargetMapper struct {
	encryption *EncryptionService
}

func NewTargetMapper(encryption *EncryptionService) *TargetMapper {
	return &TargetMapper{encryption: encryption}
}

func (m *TargetMapper) ToDomain(t *db.TargetModel) (*Target, error) {
	role, err := ParseTargetRole(t.Role)
	if err != nil {
		role = TargetRoleUnknown
	}

	var authToken string
	if t.AuthToken != nil && *t.AuthToken != "" {
		if m.encryption == nil {
			return nil, fmt.Errorf("target %q has a stored token but no encryption key is configured", t.Name)
		}
		authToken, err = m.encryption.Decrypt(*t.AuthToken)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt token for target %q: %w", t.Name, err)
		}
	}

	return &Target{
		ID:        t.ID,
		Name:      t.Name,
		Role:      role,
		AuthToken: authToken,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}, nil
}

func (m *TargetMapper) ToModel(t *Target) (*db.TargetModel, error) {
	var authToken *string
	if t.AuthToken != "" {
		if m.encryption == nil {
			return nil, fmt.Errorf("cannot store token for target %q without an encryption key", t.Name)
		}
		encrypted, err := m.encryption.Encrypt(t.AuthToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt token for target %q: %w", t.Name, err)
		}
		authToken = &encrypted
	}

	return &db.TargetModel{
		BaseModel: db.BaseModel{
			ID: t.ID,
		},
		Name:      t.Name,
		Role:      t.Role.String(),
		AuthToken: authToken,
	}, nil
}

type PromotionMapper struct{}

func (m *PromotionMapper) ToDomain(p *db.PromotionModel) *Promotion {
	status, err := ParsePromotionStatus(p.Status)
	if err != nil {
		status = PromotionStatusUnknown
	}

	return &Promotion{
		ID:         p.ID,
		TargetID:   p.TargetID,
		TargetName: p.Target.Name,
		BuildID:    p.BuildID,
		Status:     status,
		Output:     p.Output,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (m *PromotionMapper) ToModel(p *Promotion) *db.PromotionModel {
	return &db.PromotionModel{
		BaseModel: db.BaseModel{
			ID: p.ID,
		},
		TargetID: p.TargetID,
		BuildID:  p.BuildID,
		Status:   p.Status.String(),
		Output:   p.Output,
	}
}

type BuildMapper struct{}

func (m *BuildMapper) ToDomain(b *db.BuildModel) *Build {
	status, err := ParseBuildStatus(b.Status)
	if err != nil {
		status = BuildStatusUnknown
	}

	return &Build{
		ID:         b.ID,
		CommitHash: b.CommitHash,
		OutputDir:  b.OutputDir,
		PageCount:  b.PageCount,
		Status:     status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (m *BuildMapper) ToModel(b *Build) *db.BuildModel {
	return &db.BuildModel{
		BaseModel: db.BaseModel{
			ID: b.ID,
		},
		CommitHash: b.CommitHash,
		OutputDir:  b.OutputDir,
		PageCount:  b.PageCount,
		Status:     b.Status.String(),
	}
}
