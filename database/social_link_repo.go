package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type SocialLinkRepo struct {
	db *gorm.DB
}

func NewSocialLinkRepo(db *gorm.DB) *SocialLinkRepo {
	return &SocialLinkRepo{db}
}

// FindAll returns all social links ascending by display order, ties by
// insertion order.
func (r *SocialLinkRepo) FindAll() ([]*models.SocialLink, error) {
	var links []*models.SocialLink
	err := r.db.Order("display_order ASC, id ASC").Find(&links).Error
	return links, err
}

// FindByID returns a social link by its ID, or nil when it does not exist.
func (r *SocialLinkRepo) FindByID(id uint) (*models.SocialLink, error) {
	var link models.SocialLink
	err := r.db.First(&link, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *SocialLinkRepo) Add(link *models.SocialLink) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(link).Error
	})
}

func (r *SocialLinkRepo) Update(link *models.SocialLink) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(link).Error
	})
}

func (r *SocialLinkRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.SocialLink{}, id).Error
	})
}

func (r *SocialLinkRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SocialLink{}).Count(&count).Error
	return count, err
}
