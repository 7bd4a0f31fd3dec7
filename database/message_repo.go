package database

import (
	"errors"

	"github.com/ayaskant-12/portfolio-backend/models"
	"gorm.io/gorm"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// FindAll returns all contact messages, newest first.
func (r *MessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a contact message by its ID, or nil when it does not exist.
func (r *MessageRepo) FindByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(message).Error
	})
}

// MarkRead flips the read flag on a message.
func (r *MessageRepo) MarkRead(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true).Error
	})
}

func (r *MessageRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.ContactMessage{}, id).Error
	})
}

// Count returns the total number of messages.
func (r *MessageRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}

// CountUnread returns the number of messages still marked unread.
func (r *MessageRepo) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Where("read = ?", false).Count(&count).Error
	return count, err
}
