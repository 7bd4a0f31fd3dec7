package models

import "time"

// Certification is one professional certification. ExpiryDate is nil for
// certifications that do not expire.
type Certification struct {
	ID                  uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title               string     `json:"title" gorm:"size:100;not null"`
	IssuingOrganization string     `json:"issuing_organization" gorm:"size:100;not null"`
	IssueDate           time.Time  `json:"issue_date" gorm:"type:date;not null"`
	ExpiryDate          *time.Time `json:"expiry_date" gorm:"type:date"`
	CredentialID        string     `json:"credential_id" gorm:"size:100"`
	CredentialURL       string     `json:"credential_url" gorm:"size:200"`
	ImageURL            string     `json:"image_url" gorm:"size:200"`
	Description         string     `json:"description" gorm:"type:text"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
