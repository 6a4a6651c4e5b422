// Package db provides functions to initialize and manage the SQLite database for Skiff.
package db

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(databasePath string) (*gorm.DB, error) {
	slog.Debug("Initializing database", "path", databasePath)

	// Set GORM log level based on application log level
	gormLogLevel := getGormLogLevel()

	db, err := InitDatabase(DBConfig{
		Path:     databasePath,
		LogLevel: gormLogLevel,
	})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db, 0); err != nil {
		return nil, err
	}

	slog.Debug("Database initialized successfully", "path", databasePath)
	return db, nil
}

// getGormLogLevel maps application log level to corresponding GORM log level
func getGormLogLevel() logger.LogLevel {
	ctx := slog.Default()

	if ctx.Enabled(context.TODO(), slog.LevelDebug) {
		return logger.Info // Show SQL queries only when debug logging is enabled
	} else if ctx.Enabled(context.TODO(), slog.LevelWarn) {
		return logger.Warn
	} else if ctx.Enabled(context.TODO(), slog.LevelError) {
		return logger.Error
	}
	return logger.Silent
}
