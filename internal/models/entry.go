package models

import (
	"time"
)

// Entry represents one recorded study session
type Entry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string `gorm:"index" json:"username,omitempty"` // empty when recorded anonymously
	Subject      string `gorm:"not null" json:"subject"`
	Date         string `gorm:"not null;index" json:"date"` // calendar date, YYYY-MM-DD
	DayOfWeek    string `json:"day_of_week"`
	StudyMinutes int    `gorm:"default:0" json:"study_minutes"`
}

// DailyTotal is one row of the per-day report: total minutes across
// all subjects recorded on a single date.
type DailyTotal struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"total_minutes"`
}
