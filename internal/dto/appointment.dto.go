package dto

import "github.com/1conorsteward/Appointment-Now/internal/models"

type AppointmentDTO struct {
	ID              uint   `json:"id"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	Location        string `json:"location"`
	HasAttachment   bool   `json:"has_attachment"`
}

func FromModel(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		PatientName:     ap.PatientName,
		DoctorName:      ap.DoctorName,
		AppointmentDate: ap.AppointmentDate,
		Status:          ap.Status,
		Notes:           ap.Notes,
		Location:        ap.Location,
		HasAttachment:   ap.AttachmentKey != nil,
	}
}
