package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// FindAll returns all certifications, most recently issued first.
func (r *CertificationRepo) FindAll() ([]*models.Certification, error) {
	var certifications []*models.Certification
	err := r.db.Order("issue_date DESC, id DESC").Find(&certifications).Error
	return certifications, err
}

// FindByID returns a certification by its ID, or nil when it does not exist.
func (r *CertificationRepo) FindByID(id uint) (*models.Certification, error) {
	var certification models.Certification
	err := r.db.First(&certification, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (r *CertificationRepo) Add(certification *models.Certification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(certification).Error
	})
}

// Update saves the full row, including a nil ExpiryDate, so clearing the
// expiry actually clears the column.
func (r *CertificationRepo) Update(certification *models.Certification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(certification).Error
	})
}

func (r *CertificationRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Certification{}, id).Error
	})
}

func (r *CertificationRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Certification{}).Count(&count).Error
	return count, err
}
