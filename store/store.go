// Package store persists notes and preferences in SQLite through gorm.
package store

import (
	"github.com/oliverisaac/mynotes/types"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database at dbPath and migrates every table
// the stores need.
func Open(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %q", dbPath)
	}

	gormTables := []any{
		&types.Note{},
		&preference{},
	}
	for _, t := range gormTables {
		if err := db.AutoMigrate(t); err != nil {
			return nil, errors.Wrap(err, "Failed to migrate")
		}
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql handle")
	}
	return sqlDB.Close()
}
