package database

import (
	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every content table. Safe to
// run on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Bio{},
		&models.Project{},
		&models.Skill{},
		&models.SocialLink{},
		&models.Certification{},
		&models.Tool{},
		&models.Education{},
		&models.LetsTalk{},
		&models.ContactMessage{},
	)
}
