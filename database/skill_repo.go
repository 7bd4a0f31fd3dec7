package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills ascending by display order. Ties keep insertion
// order via the id column.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("display_order ASC, id ASC").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or nil when it does not exist.
func (r *SkillRepo) FindByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(skill).Error
	})
}

func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(skill).Error
	})
}

func (r *SkillRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Skill{}, id).Error
	})
}

func (r *SkillRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Count(&count).Error
	return count, err
}
