package appointment

import (
	"context"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	OwnerID uint

	PatientName     string
	DoctorName      string
	AppointmentDate string
	Status          string
	Notes           string
	Location        string
}

// ======================================================
// USE CASE
// ======================================================

// dispatcher matches audit.Dispatcher; tests swap in a recorder.
type dispatcher interface {
	Dispatch(ev audit.Event)
}

type Create struct {
	repo  domain.Repository
	audit dispatcher
}

func NewCreate(repo domain.Repository, audit dispatcher) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	status := in.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	ap := &models.Appointment{
		OwnerID:         in.OwnerID,
		PatientName:     in.PatientName,
		DoctorName:      in.DoctorName,
		AppointmentDate: in.AppointmentDate,
		Status:          status,
		Notes:           in.Notes,
		Location:        in.Location,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
