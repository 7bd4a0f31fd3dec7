package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is the single account allowed to manage portfolio content.
// The password is only ever stored as a bcrypt hash.
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
}

// SetPassword replaces the stored hash with a bcrypt hash of the given password.
func (a *Admin) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
