package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/appointment"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("id = ?", ap.OwnerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return httperr.ErrBusiness(httperr.CodeUnknownOwner)
		}

		if err := tx.Create(ap).Error; err != nil {
			// The owner can still vanish between the check and the
			// insert; the foreign key catches that.
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return httperr.ErrBusiness(httperr.CodeUnknownOwner)
			}
			return constraintViolation(err)
		}
		return nil
	})
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).First(&ap, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) Search(
	ctx context.Context,
	ownerID uint,
	status string,
	term string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			// Plain LIKE keeps the substring match case-sensitive;
			// an empty term widens the pattern to %%.
			"owner_id = ? AND status = ? AND patient_name LIKE ?",
			ownerID, status, "%"+term+"%",
		).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Mutate
// --------------------------------------------------

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id uint,
	fields domain.UpdateFields,
) (bool, error) {

	// Explicit column map so owner_id can never be touched and zero
	// values still overwrite.
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"patient_name":     fields.PatientName,
			"doctor_name":      fields.DoctorName,
			"appointment_date": fields.AppointmentDate,
			"status":           fields.Status,
			"notes":            fields.Notes,
			"location":         fields.Location,
		})

	if res.Error != nil {
		return false, constraintViolation(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) SetAttachmentKey(
	ctx context.Context,
	id uint,
	key *string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("attachment_key", key)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
