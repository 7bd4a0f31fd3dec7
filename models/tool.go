package models

// Tool is one entry of the tools & technologies section.
type Tool struct {
	ID               uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string `json:"name" gorm:"size:50;not null"`
	Category         string `json:"category" gorm:"size:50"`
	IconClass        string `json:"icon_class" gorm:"size:100"`
	ProficiencyLevel int    `json:"proficiency_level"`
	DisplayOrder     int    `json:"display_order" gorm:"default:0"`
	IsFeatured       bool   `json:"is_featured" gorm:"default:false"`
}
