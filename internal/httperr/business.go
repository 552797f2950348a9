package httperr

import "errors"

// Error codes shared between the stores and the HTTP layer.
const (
	CodeDuplicateEmail      = "duplicate_email"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeUnknownOwner        = "unknown_owner"
	CodeNotFound            = "not_found"
	CodeConstraintViolation = "constraint_violation"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
