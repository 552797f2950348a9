package appointment

import (
	"context"

	"github.com/1conorsteward/Appointment-Now/internal/models"
)

// UpdateFields carries every mutable column of an appointment. The owner
// is fixed for the lifetime of the record and is deliberately absent.
type UpdateFields struct {
	PatientName     string
	DoctorName      string
	AppointmentDate string
	Status          string
	Notes           string
	Location        string
}

type Repository interface {
	// -------- Create --------
	// Create persists a new appointment. The owner-existence check and
	// the insert run in one transaction; a missing owner yields the
	// unknown_owner business error and no row.
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Read --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)

	// Search filters by owner, exact status and a case-sensitive
	// substring of the patient name. An empty term matches everything.
	Search(
		ctx context.Context,
		ownerID uint,
		status string,
		term string,
	) ([]models.Appointment, error)

	// -------- Mutate --------
	Update(
		ctx context.Context,
		id uint,
		fields UpdateFields,
	) (bool, error)

	SetAttachmentKey(
		ctx context.Context,
		id uint,
		key *string,
	) (bool, error)

	Delete(
		ctx context.Context,
		id uint,
	) (bool, error)
}
