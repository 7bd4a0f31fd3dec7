package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type ToolRepo struct {
	db *gorm.DB
}

func NewToolRepo(db *gorm.DB) *ToolRepo {
	return &ToolRepo{db}
}

// FindAll returns all tools ascending by display order, ties by insertion order.
func (r *ToolRepo) FindAll() ([]*models.Tool, error) {
	var tools []*models.Tool
	err := r.db.Order("display_order ASC, id ASC").Find(&tools).Error
	return tools, err
}

// FindByID returns a tool by its ID, or nil when it does not exist.
func (r *ToolRepo) FindByID(id uint) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.First(&tool, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *ToolRepo) Add(tool *models.Tool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(tool).Error
	})
}

func (r *ToolRepo) Update(tool *models.Tool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(tool).Error
	})
}

func (r *ToolRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Tool{}, id).Error
	})
}

func (r *ToolRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tool{}).Count(&count).Error
	return count, err
}
