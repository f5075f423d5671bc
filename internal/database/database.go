package database

import (
	"fmt"
	"time"

	"github.com/avdleeuw/animevault/internal/config"
	apperrors "github.com/avdleeuw/animevault/internal/errors"
	"github.com/avdleeuw/animevault/internal/logger"
	"github.com/avdleeuw/animevault/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// Initialize sets up the database connection and runs migrations
func Initialize() error {
	cfg := config.Get()

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	gormLogger := logger.NewGormAdapter(logger.DatabaseLogger(), cfg.GetDatabaseLogLevel())

	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseConnection, "failed to connect to database")
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return apperrors.DatabaseError("failed to get database instance", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Run auto-migrations
	if err := runMigrations(); err != nil {
		return apperrors.DatabaseError("failed to run migrations", err)
	}

	return nil
}

// Get returns the database instance
func Get() *gorm.DB {
	return db
}

// HealthCheck verifies database connectivity
func HealthCheck() error {
	sqlDB, err := db.DB()
	if err != nil {
		return apperrors.DatabaseError("failed to get database instance", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseConnection, "database ping failed")
	}

	return nil
}

// Close closes the database connection
func Close() error {
	sqlDB, err := db.DB()
	if err != nil {
		return apperrors.DatabaseError("failed to get database instance", err)
	}

	return sqlDB.Close()
}

func runMigrations() error {
	return db.AutoMigrate(
		&models.AnimeGroup{},
		&models.GroupUserRecord{},
		&models.AnimeSeries{},
		&models.SeriesUserRecord{},
		&models.CatalogEntry{},
		&models.Episode{},
		&models.VideoFile{},
		&models.EpisodeFileLink{},
		&models.LanguageStat{},
		&models.Tag{},
		&models.SeriesTag{},
		&models.CustomTag{},
		&models.SeriesCustomTag{},
		&models.SeriesTitle{},
		&models.ExternalLink{},
		&models.Vote{},
		&models.User{},
		&models.GroupFilter{},
		&models.GroupFilterCondition{},
		&models.GroupFilterSortCriterion{},
	)
}
