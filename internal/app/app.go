// Package app provides the main application context for Skiff, managing the
// database and services.
package app

import (
	"log/slog"

	"github.com/skiff-cd/skiff/db"
	"github.com/skiff-cd/skiff/services"
	"gorm.io/gorm"
)

var (
	database         *gorm.DB
	config           *services.Config
	buildService     *services.BuildService
	previewService   *services.PreviewService
	targetService    services.TargetManager
	promotionService services.PromotionManager
)

// InitializeWithConfig wires up the database, repositories and services
func InitializeWithConfig(cfg *services.Config) error {
	var err error
	config = cfg

	if err = cfg.EnsureDataDir(); err != nil {
		return err
	}

	database, err = db.InitDB(cfg.DatabasePath)
	if err != nil {
		return err
	}

	// Encryption is optional: without a key, targets simply cannot store tokens
	var encryption *services.EncryptionService
	if cfg.EncryptionKey != "" {
		encryption, err = services.NewEncryptionService(cfg.EncryptionKey)
		if err != nil {
			return err
		}
	} else {
		slog.Debug("No encryption key configured; target tokens cannot be stored")
	}

	gitService := services.NewGitService()
	executor := services.NewDeployCLIService(cfg)

	// Initialize repositories
	targetRepo := services.NewTargetRepository(database, encryption)
	promotionRepo := services.NewPromotionRepository(database)
	buildRepo := services.NewBuildRepository(database)

	// Initialize services with dependency injection
	buildService = services.NewBuildService(buildRepo, gitService, cfg)
	previewService = services.NewPreviewService(buildService, cfg)
	targetService = services.NewTargetService(targetRepo)
	promotionService = services.NewPromotionService(targetRepo, promotionRepo, executor, cfg)
	return nil
}

func GetConfig() *services.Config {
	return config
}

func GetBuildService() *services.BuildService {
	return buildService
}

func GetPreviewService() *services.PreviewService {
	return previewService
}

func GetTargetService() services.TargetManager {
	return targetService
}

func GetPromotionService() services.PromotionManager {
	return promotionService
}

// SetTargetServiceForTesting allows injecting a mock service in tests
func SetTargetServiceForTesting(service services.TargetManager) {
	targetService = service
}

// SetPromotionServiceForTesting allows injecting a mock service in tests
func SetPromotionServiceForTesting(service services.PromotionManager) {
	promotionService = service
}
