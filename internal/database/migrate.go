package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/ojonugwa/igala-names/backend/internal/models"
)

// Models is the full schema registry, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.UserProfile{},
		&models.UserRole{},
		&models.NameLike{},
		&models.NameFavorite{},
		&models.NameSubmission{},
		&models.NameMedia{},
	}
}

// RunMigrations brings the schema up to date.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running schema migration (%s)", db.Dialector.Name())
	return db.AutoMigrate(Models()...)
}
