package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

// BioRepo manages the singleton bio row. There is no list or delete: the
// table holds at most one logical record.
type BioRepo struct {
	db *gorm.DB
}

func NewBioRepo(db *gorm.DB) *BioRepo {
	return &BioRepo{db}
}

// Get returns the bio row, or nil when none has been created yet.
func (r *BioRepo) Get() (*models.Bio, error) {
	var bio models.Bio
	err := r.db.Order("id ASC").First(&bio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bio, nil
}

// Upsert creates the bio row on first save and updates it afterwards, in one
// transaction.
func (r *BioRepo) Upsert(bio *models.Bio) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(bio).Error
	})
}
