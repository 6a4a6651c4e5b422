package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration represents a single database migration
type Migration struct {
	ID   int
	Name string
	Up   func(*gorm.DB) error
}

// MigrationModel tracks which migrations have been applied
type MigrationModel struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"not null;unique"`
	AppliedAt time.Time
}

func (MigrationModel) TableName() string {
	return "migrations"
}

// allMigrations is the ordered list of all migrations
// Each migration has a unique ID and is applied in order
// The schema is still young, so AutoMigrate covers everything so far
var allMigrations = []Migration{}

// AllModels returns all the models that need to be migrated
// This is the single source of truth for database migrations
func AllModels() []any {
	return []any{
		&MigrationModel{},
		&TargetModel{},
		&PromotionModel{},
		&BuildModel{},
	}
}

// RunMigrations applies the schema and any pending tracked migrations.
// upTo limits application to migrations with ID <= upTo; 0 means all.
func RunMigrations(db *gorm.DB, upTo int) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	for _, migration := range allMigrations {
		if upTo > 0 && migration.ID > upTo {
			break
		}

		var applied int64
		if err := db.Model(&MigrationModel{}).
			Where("id = ?", migration.ID).
			Count(&applied).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", migration.Name, err)
		}
		if applied > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&MigrationModel{
				ID:        migration.ID,
				Name:      migration.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration.Name, err)
		}
	}

	return nil
}
