package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/1conorsteward/Appointment-Now/internal/httperr"
)

// constraintViolation converts residual check-constraint failures from
// the driver into the generic business code. Duplicate keys and foreign
// keys are mapped at their call sites; anything else passes through.
func constraintViolation(err error) error {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return httperr.ErrBusiness(httperr.CodeConstraintViolation)
	}
	return err
}
