package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "github.com/okoye-peter/project-management-app/internal/models"
)

// NewDatabase opens the relational store and migrates the full entity set.
// SQLite is the default; DB_DRIVER=postgres switches to a postgres DSN.
func NewDatabase(driver, dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	cfg := &gorm.Config{Logger: logger.Discard}

	switch driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if driver != "postgres" {
		// SQLite ships with foreign keys off; the cascade and set-null
		// rules depend on them.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Fatalf("enabling foreign keys failed: %v", err)
		}
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}

// Migrate creates or updates the schema for every entity. Order matters:
// referenced tables first so the FK constraints can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Team{},
		&model.Task{},
		&model.TaskAssignment{},
		&model.Comment{},
		&model.Attachment{},
	)
}
