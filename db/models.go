// Package db provides database models and utilities for Skiff.
package db

import (
	"time"

	"github.com/google/uuid"
)

type BaseModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TargetModel struct {
	BaseModel
	Name      string  `gorm:"not null;unique;check:name <> ''"`
	Role      string  `gorm:"not null;check:role <> ''"` // staging, production
	AuthToken *string `gorm:"type:text"`                 // encrypted control plane token

	Promotions []PromotionModel `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
}

func (TargetModel) TableName() string {
	return "targets"
}

type PromotionModel struct {
	BaseModel
	TargetID uuid.UUID `gorm:"not null;index"`
	BuildID  string    `gorm:"not null;check:build_id <> ''"` // 40-char lowercase hex
	Status   string    `gorm:"not null;check:status <> ''"`   // started, completed, failed
	Output   string    `gorm:"type:text"`                     // captured control plane output

	Target TargetModel `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
}

func (PromotionModel) TableName() string {
	return "promotions"
}

type BuildModel struct {
	BaseModel
	CommitHash *string `gorm:"type:char(40)"` // git HEAD of the source tree, when available
	OutputDir  string  `gorm:"not null;check:output_dir <> ''"`
	PageCount  int     `gorm:"not null"`
	Status     string  `gorm:"not null;check:status <> ''"` // started, completed, failed
}

func (BuildModel) TableName() string {
	return "builds"
}
