package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/1conorsteward/Appointment-Now/internal/models"
)

// Actions recorded in the audit trail.
const (
	ActionUserRegistered     = "user_registered"
	ActionUserLoggedIn       = "user_logged_in"
	ActionUserDeleted        = "user_deleted"
	ActionAppointmentCreated = "appointment_created"
	ActionAppointmentUpdated = "appointment_updated"
	ActionAppointmentDeleted = "appointment_deleted"
	ActionVisitExported      = "visit_exported"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
