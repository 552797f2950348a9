package appointment

import (
	"context"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

// Execute returns the record, or the not_found business error when it
// does not exist or belongs to another owner.
func (uc *Get) Execute(
	ctx context.Context,
	id uint,
	ownerID uint,
) (*models.Appointment, error) {
	return ownedByCaller(ctx, uc.repo, id, ownerID)
}
