package auth

import (
	"context"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	domain "github.com/1conorsteward/Appointment-Now/internal/domain/credential"
)

// revoker matches session.Store.
type revoker interface {
	RevokeAll(ctx context.Context, userID uint) error
}

type DeleteAccount struct {
	repo     domain.Repository
	sessions revoker
	audit    dispatcher
}

func NewDeleteAccount(
	repo domain.Repository,
	sessions revoker,
	audit dispatcher,
) *DeleteAccount {
	return &DeleteAccount{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// Execute removes the user, every appointment the user owns (foreign
// key cascade) and revokes all live sessions. False when the user does
// not exist.
func (uc *DeleteAccount) Execute(ctx context.Context, userID uint) (bool, error) {
	ok, err := uc.repo.DeleteUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := uc.sessions.RevokeAll(ctx, userID); err != nil {
		return true, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionUserDeleted,
		Entity:   "user",
		EntityID: &userID,
	})

	return true, nil
}
