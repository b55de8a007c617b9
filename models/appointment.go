package models

import (
	"time"
)

// Appointment represents a scheduled visit with a doctor.
//
// Status and Type are free-form strings at the persistence layer; the
// front end cycles status through pending/confirmed/completed/cancelled
// via plain updates, but the store does not enforce an enum.
type Appointment struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Doctor    string    `json:"doctor" db:"doctor" gorm:"type:varchar(100);not null"`
	Specialty *string   `json:"specialty,omitempty" db:"specialty" gorm:"type:varchar(100)"`
	Date      string    `json:"date" db:"date" gorm:"type:date;not null"`
	Time      string    `json:"time" db:"time" gorm:"type:time;not null"`
	Reason    *string   `json:"reason,omitempty" db:"reason" gorm:"type:text"`
	Status    string    `json:"status" db:"status" gorm:"type:varchar(20);default:'pending'"`
	Type      string    `json:"type" db:"type" gorm:"type:varchar(20);default:'regular'"`
	Location  *string   `json:"location,omitempty" db:"location" gorm:"type:varchar(200)"`
	Comments  *string   `json:"comments,omitempty" db:"comments" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:date;not null;default:CURRENT_DATE"`
}

// DateOnly truncates t to its calendar date at UTC midnight, matching the
// precision of a date column so a value round-trips through the store
// unchanged.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
