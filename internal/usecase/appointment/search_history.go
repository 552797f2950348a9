package appointment

import (
	"context"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/dto"
)

type SearchHistoryInput struct {
	OwnerID uint

	// Status defaults to Completed, matching the visit history screen.
	Status string

	// Term narrows by patient name, case-sensitive substring. Empty
	// matches everything.
	Term string
}

type SearchHistory struct {
	repo domain.Repository
}

func NewSearchHistory(repo domain.Repository) *SearchHistory {
	return &SearchHistory{repo: repo}
}

func (uc *SearchHistory) Execute(
	ctx context.Context,
	in SearchHistoryInput,
) ([]dto.AppointmentDTO, error) {

	status := in.Status
	if status == "" {
		status = string(domain.StatusCompleted)
	}

	appointments, err := uc.repo.Search(ctx, in.OwnerID, status, in.Term)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromModel(&ap))
	}

	return out, nil
}
