package models

import "time"

// Education is one education entry. EndDate is nil while Current is true or
// when the end date is simply unknown.
type Education struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Degree      string     `json:"degree" gorm:"size:100;not null"`
	Institution string     `json:"institution" gorm:"size:100;not null"`
	Location    string     `json:"location" gorm:"size:100"`
	StartDate   time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate     *time.Time `json:"end_date" gorm:"type:date"`
	Current     bool       `json:"current" gorm:"default:false"`
	Description string     `json:"description" gorm:"type:text"`
	Grade       string     `json:"grade" gorm:"size:50"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
