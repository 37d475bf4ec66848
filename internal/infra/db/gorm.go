package db

import (
	"fmt"
	"os"

	"storefront/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はスロット用のDBに接続する。
// dsn が空なら POSTGRES_* から組み立てる。
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getenv("POSTGRES_HOST", "localhost"),
			getenv("POSTGRES_PORT", "5432"),
			getenv("POSTGRES_USER", "postgres"),
			getenv("POSTGRES_PASSWORD", "postgres"),
			getenv("POSTGRES_DB", "storefront"),
			getenv("POSTGRES_SSLMODE", "disable"),
		)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open failed: %w", err)
	}
	return gdb, nil
}

// Migrate は durable_slots を作る
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&model.DurableSlot{})
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
