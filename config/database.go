package config

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/utils"
)

// InitDB opens the database selected by DB_DRIVER.
func InitDB(cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		utils.InfoLogger,
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "mysql":
		if !strings.Contains(dsn, "parseTime=") {
			dsn = withParam(dsn, "parseTime=true")
		}
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(postgresDSN(dsn)), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER: %q", driver)
}

// postgresDSN adds sslmode=require to hosted URLs that do not say otherwise.
func postgresDSN(dsn string) string {
	isURL := strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
	if !isURL || strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.Contains(dsn, "@localhost") || strings.Contains(dsn, "@127.0.0.1") {
		return withParam(dsn, "sslmode=disable")
	}
	return withParam(dsn, "sslmode=require")
}

func withParam(dsn, param string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + param
}

// AutoMigrate creates or updates every table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
