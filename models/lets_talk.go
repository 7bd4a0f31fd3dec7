package models

import "time"

// LetsTalk is one card of the "let's talk" contact section.
type LetsTalk struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"size:100;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	ContactInfo  string    `json:"contact_info" gorm:"size:200"`
	IconClass    string    `json:"icon_class" gorm:"size:100"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
