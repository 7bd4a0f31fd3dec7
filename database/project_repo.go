package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC, id DESC").Find(&projects).Error
	return projects, err
}

// FindFeatured returns only the projects flagged for the home page, newest first.
func (r *ProjectRepo) FindFeatured() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("featured = ?", true).Order("created_at DESC, id DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when it does not exist.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project inside a single transaction.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(project).Error
	})
}

// Update saves the full project row inside a single transaction. The
// updated_at column refreshes automatically.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(project).Error
	})
}

// Delete removes a project by id.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Project{}, id).Error
	})
}

// Count returns the number of projects.
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
