package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/credential"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// The unique index on email backs the EmailExists short-circuit
		// against concurrent registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness(httperr.CodeDuplicateEmail)
		}
		return constraintViolation(err)
	}
	return nil
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) (bool, error) {

	// Owned appointments go with the user via ON DELETE CASCADE on
	// appointments.owner_id.
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
