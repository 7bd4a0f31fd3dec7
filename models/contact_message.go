package models

import "time"

// ContactMessage is a public contact-form submission. Read starts false and
// is flipped from the admin inbox.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:100;not null"`
	Subject   string    `json:"subject" gorm:"size:200"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read" gorm:"default:false"`
}
