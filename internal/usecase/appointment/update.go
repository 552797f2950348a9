package appointment

import (
	"context"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

type UpdateInput struct {
	ID      uint
	OwnerID uint

	PatientName     string
	DoctorName      string
	AppointmentDate string
	Status          string
	Notes           string
	Location        string
}

type Update struct {
	repo  domain.Repository
	audit dispatcher
}

func NewUpdate(repo domain.Repository, audit dispatcher) *Update {
	return &Update{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces every mutable field of the record. False when the id
// does not exist for the calling owner; the owner itself never changes.
func (uc *Update) Execute(ctx context.Context, in UpdateInput) (bool, error) {
	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return false, err
	}
	if existing == nil || existing.OwnerID != in.OwnerID {
		return false, nil
	}

	ok, err := uc.repo.Update(ctx, in.ID, domain.UpdateFields{
		PatientName:     in.PatientName,
		DoctorName:      in.DoctorName,
		AppointmentDate: in.AppointmentDate,
		Status:          in.Status,
		Notes:           in.Notes,
		Location:        in.Location,
	})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "appointment",
		EntityID: &in.ID,
	})

	return true, nil
}

// ownedByCaller loads an appointment and hides records of other owners
// behind not_found.
func ownedByCaller(
	ctx context.Context,
	repo domain.Repository,
	id uint,
	ownerID uint,
) (*models.Appointment, error) {

	ap, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil || ap.OwnerID != ownerID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return ap, nil
}
