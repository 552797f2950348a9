package appointment

import (
	"context"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/export"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

// renderer matches export.Renderer.
type renderer interface {
	VisitDetails(ap *models.Appointment) *export.Document
}

type ExportVisit struct {
	repo     domain.Repository
	renderer renderer
	audit    dispatcher
}

func NewExportVisit(
	repo domain.Repository,
	r renderer,
	audit dispatcher,
) *ExportVisit {
	return &ExportVisit{
		repo:     repo,
		renderer: r,
		audit:    audit,
	}
}

func (uc *ExportVisit) Execute(
	ctx context.Context,
	id uint,
	ownerID uint,
) (*export.Document, error) {

	ap, err := ownedByCaller(ctx, uc.repo, id, ownerID)
	if err != nil {
		return nil, err
	}

	doc := uc.renderer.VisitDetails(ap)

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   audit.ActionVisitExported,
		Entity:   "appointment",
		EntityID: &id,
	})

	return doc, nil
}
