package database

import (
	"github.com/mediconnect/backend/models"
	"gorm.io/gorm"
)

type Database struct {
	blogRepo        *BlogRepo
	appointmentRepo *AppointmentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogRepo:        NewBlogRepo(db),
		appointmentRepo: NewAppointmentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) AppointmentRepo() *AppointmentRepo {
	return d.appointmentRepo
}

// Migrate creates or updates the schema for every entity owned by this store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.BlogPost{}, &models.Appointment{})
}
