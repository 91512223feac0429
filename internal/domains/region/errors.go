package region

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrRegionNotFound = errors.New("Region not found")
	ErrDuplicateCode  = errors.New("Region with this code already exists")
	ErrRegionHasLinks = errors.New("Cannot delete region referenced by articles")
	ErrDatabaseQuery  = errors.New("database query error")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrRegionNotFound):
		return 404
	case errors.Is(err, ErrDuplicateCode), errors.Is(err, ErrRegionHasLinks):
		return 409
	default:
		return 500
	}
}
