package credential

import (
	"context"

	"github.com/1conorsteward/Appointment-Now/internal/models"
)

type Repository interface {
	// CreateUser persists a new user. A duplicate email yields the
	// duplicate_email business error and no row.
	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// FindByID returns (nil, nil) when no user matches.
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	// DeleteUser removes the user and, through the foreign key, every
	// appointment the user owns. False when the id does not exist.
	DeleteUser(
		ctx context.Context,
		id uint,
	) (bool, error)
}
