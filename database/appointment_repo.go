package database

import (
	"errors"
	"time"

	"github.com/mediconnect/backend/models"
	"gorm.io/gorm"
)

type AppointmentRepo struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepo {
	return &AppointmentRepo{db}
}

// FindAll returns all appointments in insertion order. No cross-record
// checks happen anywhere in this repo: double-booking a doctor is allowed.
func (r *AppointmentRepo) FindAll() ([]*models.Appointment, error) {
	appointments := []*models.Appointment{}
	err := r.db.Find(&appointments).Error
	return appointments, err
}

// FindByID returns an appointment by its ID, or nil when no such appointment exists
func (r *AppointmentRepo) FindByID(id int) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Add inserts a new appointment into the database. The creation date is
// held at date precision so the created record reads back identically.
func (r *AppointmentRepo) Add(appointment *models.Appointment) error {
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now().UTC()
	}
	appointment.CreatedAt = models.DateOnly(appointment.CreatedAt)
	return r.db.Create(appointment).Error
}

// UpdateFields applies a partial update to the appointment matching id,
// touching only the supplied columns. Returns nil when no such appointment
// exists.
func (r *AppointmentRepo) UpdateFields(id int, fields map[string]any) (*models.Appointment, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.db.Model(&models.Appointment{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

// Delete removes the appointment matching id and returns its value as it
// stood immediately before deletion. Returns nil when no such appointment
// exists.
func (r *AppointmentRepo) Delete(id int) (*models.Appointment, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.db.Delete(&models.Appointment{}, id).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
