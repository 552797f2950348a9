package appointment

import (
	"context"
	"log"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
)

// attachmentRemover matches storage.AttachmentStore.
type attachmentRemover interface {
	Delete(ctx context.Context, key string) error
}

type Delete struct {
	repo        domain.Repository
	attachments attachmentRemover
	audit       dispatcher
}

func NewDelete(
	repo domain.Repository,
	attachments attachmentRemover,
	audit dispatcher,
) *Delete {
	return &Delete{
		repo:        repo,
		attachments: attachments,
		audit:       audit,
	}
}

// Execute removes the record and, best effort, its stored attachment.
// False when the id does not exist for the calling owner.
func (uc *Delete) Execute(ctx context.Context, id uint, ownerID uint) (bool, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil || existing.OwnerID != ownerID {
		return false, nil
	}

	ok, err := uc.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}

	// The row is gone either way; an orphaned object only wastes bucket
	// space.
	if existing.AttachmentKey != nil {
		if err := uc.attachments.Delete(ctx, *existing.AttachmentKey); err != nil {
			log.Printf("delete attachment %s: %v", *existing.AttachmentKey, err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "appointment",
		EntityID: &id,
	})

	return true, nil
}
