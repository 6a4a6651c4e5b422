package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/skiff-cd/skiff/db"
	"gorm.io/gorm"
)

type TargetRepository interface {
	FindByID(id uuid.UUID) (*Target, error)
	FindByName(name string) (*Target, error)
	FindByRole(role TargetRole) ([]*Target, error)
	Create(target *Target) (*Target, error)
	List() ([]*Target, error)
	Delete(id uuid.UUID) error
}

type targetRepository struct {
	db     *gorm.DB
	mapper *TargetMapper
}

func NewTargetRepository(database *gorm.DB, encryption *EncryptionService) TargetRepository {
	return &targetRepository{
		db:     database,
		mapper: NewTargetMapper(encryption),
	}
}

func (r *targetRepository) List() ([]*Target, error) {
	var models []db.TargetModel
	if err := r.db.Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	targets := make([]*Target, len(models))
	for i, model := range models {
		target, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		targets[i] = target
	}
	return targets, nil
}

func (r *targetRepository) FindByID(id uuid.UUID) (*Target, error) {
	var model db.TargetModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		slog.Error("Database operation failed",
			"layer", "repository",
			"operation", "find_target",
			"target_id", id,
			"error", err)
		return nil, err // Pass through as-is
	}
	return r.mapper.ToDomain(&model)
}

func (r *targetRepository) FindByName(name string) (*Target, error) {
	var model db.TargetModel
	if err := r.db.Where("name = ?", name).First(&model).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *targetRepository) FindByRole(role TargetRole) ([]*Target, error) {
	var models []db.TargetModel
	if err := r.db.Where("role = ?", role.String()).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}

	targets := make([]*Target, len(models))
	for i, model := range models {
		target, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		targets[i] = target
	}
	return targets, nil
}

func (r *targetRepository) Create(target *Target) (*Target, error) {
	model, err := r.mapper.ToModel(target)
	if err != nil {
		return nil, err
	}

	if err := r.db.Create(model).Error; err != nil {
		slog.Error("Database operation failed",
			"layer", "repository",
			"operation", "create_target",
			"target_name", target.Name,
			"error", err)
		return nil, err // Pass through as-is
	}
	return r.mapper.ToDomain(model)
}

func (r *targetRepository) Delete(id uuid.UUID) error {
	err := r.db.Delete(&db.TargetModel{}, "id = ?", id).Error
	if err != nil {
		slog.Error("Database operation failed",
			"layer", "repository",
			"operation", "delete_target",
			"target_id", id,
			"error", err)
	}
	return err // Pass through as-is
}

type PromotionRepository interface {
	FindByID(id uuid.UUID) (*Promotion, error)
	Create(promotion *Promotion) error
	Update(promotion *Promotion) error
	List() ([]*Promotion, error)
	ListByTargetID(targetID uuid.UUID) ([]*Promotion, error)
}

type promotionRepository struct {
	db     *gorm.DB
	mapper *PromotionMapper
}

func NewPromotionRepository(database *gorm.DB) PromotionRepository {
	return &promotionRepository{
		db:     database,
		mapper: &PromotionMapper{},
	}
}

func (r *promotionRepository) FindByID(id uuid.UUID) (*Promotion, error) {
	var model db.PromotionModel
	if err := r.db.Preload("Target").First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *promotionRepository) Create(promotion *Promotion) error {
	model := r.mapper.ToModel(promotion)
	if err := r.db.Create(model).Error; err != nil {
		slog.Error("Database operation failed",
			"layer", "repository",
			"operation", "create_promotion",
			"promotion_id", promotion.ID,
			"error", err)
		return err
	}
	return nil
}

func (r *promotionRepository) Update(promotion *Promotion) error {
	model := r.mapper.ToModel(promotion)

	// Select all fields except CreatedAt so that empty strings still update
	return r.db.Model(&db.PromotionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model).
		Error
}

func (r *promotionRepository) List() ([]*Promotion, error) {
	var models []db.PromotionModel
	if err := r.db.Preload("Target").Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	promotions := make([]*Promotion, len(models))
	for i, model := range models {
		promotions[i] = r.mapper.ToDomain(&model)
	}
	return promotions, nil
}

func (r *promotionRepository) ListByTargetID(targetID uuid.UUID) ([]*Promotion, error) {
	var models []db.PromotionModel
	if err := r.db.Preload("Target").
		Where("target_id = ?", targetID).
		Order("created_at desc").
		Find(&models).Error; err != nil {
		return nil, err
	}

	promotions := make([]*Promotion, len(models))
	for i, model := range models {
		promotions[i] = r.mapper.ToDomain(&model)
	}
	return promotions, nil
}

type BuildRepository interface {
	Create(build *Build) error
	Update(build *Build) error
	List() ([]*Build, error)
}

type buildRepository struct {
	db     *gorm.DB
	mapper *BuildMapper
}

func NewBuildRepository(database *gorm.DB) BuildRepository {
	return &buildRepository{
		db:     database,
		mapper: &BuildMapper{},
	}
}

func (r *buildRepository) Create(build *Build) error {
	model := r.mapper.ToModel(build)
	if err := r.db.Create(model).Error; err != nil {
		slog.Error("Database operation failed",
			"layer", "repository",
			"operation", "create_build",
			"build_id", build.ID,
			"error", err)
		return err
	}
	return nil
}

func (r *buildRepository) Update(build *Build) error {
	model := r.mapper.ToModel(build)

	return r.db.Model(&db.BuildModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model).
		Error
}

func (r *buildRepository) List() ([]*Build, error) {
	var models []db.BuildModel
	if err := r.db.Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	builds := make([]*Build, len(models))
	for i, model := range models {
		builds[i] = r.mapper.ToDomain(&model)
	}
	return builds, nil
}
