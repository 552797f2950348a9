package appointment

import (
	"context"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/dto"
)

type ListByOwner struct {
	repo domain.Repository
}

func NewListByOwner(repo domain.Repository) *ListByOwner {
	return &ListByOwner{repo: repo}
}

func (uc *ListByOwner) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromModel(&ap))
	}

	return out, nil
}
