package repository

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"savings-site/config"
)

// InitDB opens the configured SQL database and migrates the subscriber table.
func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dia gorm.Dialector

	switch cfg.Type {
	case "pgsql":
		dia = postgres.Open(cfg.DSN)
	case "sqlite":
		dia = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("no SQL driver for database type %q", cfg.Type)
	}

	newLogger := logger.New(
		&log.Logger,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dia, &gorm.Config{Logger: newLogger, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to configure connections: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	if err := db.AutoMigrate(&subscriberRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate subscribers: %w", err)
	}

	log.Info().Str("type", cfg.Type).Msg("database ready")
	return db, nil
}
