package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JaunMarin423/CrudUsers/internal/models"
)

// Migrate brings the schema up to date through GORM's AutoMigrate. GORM is
// used for DDL only; all request-path queries go through the pgx pool.
func Migrate(databaseURL string) error {
	gormDB, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open gorm db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get gorm sql db: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	if err := gormDB.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}
