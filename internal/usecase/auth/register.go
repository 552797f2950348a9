package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	domain "github.com/1conorsteward/Appointment-Now/internal/domain/credential"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Email    string
	Password string
	SMSOptIn bool
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  domain.Repository
	audit dispatcher
}

func NewRegister(repo domain.Repository, audit dispatcher) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateEmail)
	}

	// bcrypt embeds a per-user random salt in the digest.
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		SMSOptIn:     in.SMSOptIn,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
