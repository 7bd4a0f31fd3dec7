package models

// Skill is one entry of the skills section, manually ordered by DisplayOrder.
type Skill struct {
	ID               uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	SkillName        string `json:"skill_name" gorm:"size:50;not null"`
	ProficiencyLevel int    `json:"proficiency_level" gorm:"not null"`
	Category         string `json:"category" gorm:"size:50"`
	IconClass        string `json:"icon_class" gorm:"size:100"`
	DisplayOrder     int    `json:"display_order" gorm:"default:0"`
}
