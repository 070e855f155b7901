package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"connections/backend/internal/models"
	"connections/backend/pkg/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
		// Map unique-constraint violations to gorm.ErrDuplicatedKey so the
		// store can turn a game-code race into a retriable conflict.
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	logger.Info("Database connection established")

	if err := Migrate(DB); err != nil {
		logger.Fatal("Failed to migrate database", err)
	}

	logger.Info("Database migrated successfully")
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Game{},
		&models.Category{},
		&models.Word{},
		&models.Submission{},
	)
}
