package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

// FindAll returns all education entries, most recently started first.
func (r *EducationRepo) FindAll() ([]*models.Education, error) {
	var entries []*models.Education
	err := r.db.Order("start_date DESC, id DESC").Find(&entries).Error
	return entries, err
}

// FindByID returns an education entry by its ID, or nil when it does not exist.
func (r *EducationRepo) FindByID(id uint) (*models.Education, error) {
	var entry models.Education
	err := r.db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *EducationRepo) Add(entry *models.Education) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

func (r *EducationRepo) Update(entry *models.Education) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(entry).Error
	})
}

func (r *EducationRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Education{}, id).Error
	})
}

func (r *EducationRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Education{}).Count(&count).Error
	return count, err
}
