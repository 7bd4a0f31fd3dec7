package models

import "time"

// Bio holds the owner's profile shown on the public home page. The table is
// a logical singleton: it has zero rows until the first update creates one.
type Bio struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	AboutMe      string    `json:"about_me" gorm:"type:text;not null"`
	Tagline      string    `json:"tagline" gorm:"size:200"`
	ProfileImage string    `json:"profile_image" gorm:"size:200"`
	Email        string    `json:"email" gorm:"size:100;not null"`
	Phone        string    `json:"phone" gorm:"size:20"`
	Location     string    `json:"location" gorm:"size:100"`
	ResumeURL    string    `json:"resume_url" gorm:"size:200"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
