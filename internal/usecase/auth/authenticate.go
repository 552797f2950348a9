package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	domain "github.com/1conorsteward/Appointment-Now/internal/domain/credential"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

// dispatcher matches audit.Dispatcher; tests swap in a recorder.
type dispatcher interface {
	Dispatch(ev audit.Event)
}

type Authenticate struct {
	repo  domain.Repository
	audit dispatcher
}

func NewAuthenticate(repo domain.Repository, audit dispatcher) *Authenticate {
	return &Authenticate{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates a credential pair. A missing user and a wrong
// password are indistinguishable to the caller.
func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserLoggedIn,
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
