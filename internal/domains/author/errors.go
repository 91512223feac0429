package author

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrAuthorNotFound    = errors.New("Author not found")
	ErrAuthorHasArticles = errors.New("Cannot delete author who has written articles")

	ErrDatabaseQuery = errors.New("database query error")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrAuthorHasArticles):
		return 409
	default:
		return 500
	}
}
