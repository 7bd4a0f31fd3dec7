package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type LetsTalkRepo struct {
	db *gorm.DB
}

func NewLetsTalkRepo(db *gorm.DB) *LetsTalkRepo {
	return &LetsTalkRepo{db}
}

// FindAll returns all let's-talk items ascending by display order, ties by
// insertion order.
func (r *LetsTalkRepo) FindAll() ([]*models.LetsTalk, error) {
	var items []*models.LetsTalk
	err := r.db.Order("display_order ASC, id ASC").Find(&items).Error
	return items, err
}

// FindActive returns only the items shown on the public site.
func (r *LetsTalkRepo) FindActive() ([]*models.LetsTalk, error) {
	var items []*models.LetsTalk
	err := r.db.Where("is_active = ?", true).Order("display_order ASC, id ASC").Find(&items).Error
	return items, err
}

// FindByID returns a let's-talk item by its ID, or nil when it does not exist.
func (r *LetsTalkRepo) FindByID(id uint) (*models.LetsTalk, error) {
	var item models.LetsTalk
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *LetsTalkRepo) Add(item *models.LetsTalk) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
}

func (r *LetsTalkRepo) Update(item *models.LetsTalk) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(item).Error
	})
}

func (r *LetsTalkRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.LetsTalk{}, id).Error
	})
}

func (r *LetsTalkRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.LetsTalk{}).Count(&count).Error
	return count, err
}
