package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"index;not null" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PatientName string `gorm:"size:100;not null;index" json:"patient_name"`
	DoctorName  string `gorm:"size:100;not null" json:"doctor_name"`

	// Stored as YYYY-MM-DD. The store does not validate calendar dates;
	// the form layer owns that.
	AppointmentDate string `gorm:"size:10" json:"appointment_date"`

	Status string `gorm:"size:50;default:'Scheduled'" json:"status"`

	Notes    string `gorm:"size:255" json:"notes"`
	Location string `gorm:"size:255" json:"location"`

	// Object key of the attached PDF, nil when nothing is attached.
	AttachmentKey *string `gorm:"size:64" json:"attachment_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
