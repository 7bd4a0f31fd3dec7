package models

import "time"

// Project represents one portfolio project. Featured projects are the ones
// highlighted on the home page.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	TechStack   string    `json:"tech_stack" gorm:"size:200"`
	ProjectLink string    `json:"project_link" gorm:"size:200"`
	GithubLink  string    `json:"github_link" gorm:"size:200"`
	ImageURL    string    `json:"image_url" gorm:"size:200"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
