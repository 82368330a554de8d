package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jyothi-samberpu/Food-services/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config carries everything the process needs to run. It is built once in
// main and passed down explicitly; handlers never read the environment.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    []byte
	TokenTTL     time.Duration
	UploadDir    string

	// RequireAuthForDirectProductAdd guards POST /product/add/:firmId.
	// The endpoint is public by default for storefront self-service.
	RequireAuthForDirectProductAdd bool
}

// Load reads configuration from the environment. The database path and the
// token-signing secret have no fallback: without them the process must not
// start.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "4000"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:     time.Hour,
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),

		RequireAuthForDirectProductAdd: os.Getenv("REQUIRE_AUTH_DIRECT_PRODUCT_ADD") == "true",
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable is not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates the schema.
// TranslateError turns driver unique-constraint failures into
// gorm.ErrDuplicatedKey so handlers can map them to domain errors.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// sqlite allows a single writer; one pooled connection avoids busy
	// errors and keeps :memory: databases on a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Vendor{},
		&models.Firm{},
		&models.Product{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
