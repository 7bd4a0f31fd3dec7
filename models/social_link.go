package models

// SocialLink is one outbound profile link (GitHub, LinkedIn, ...).
type SocialLink struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Platform     string `json:"platform" gorm:"size:50;not null"`
	URL          string `json:"url" gorm:"size:200;not null"`
	IconClass    string `json:"icon_class" gorm:"size:100"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
}
