package article

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrArticleNotFound = errors.New("Article not found")

	ErrDatabaseQuery = errors.New("database query error")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrArticleNotFound):
		return 404
	default:
		return 500
	}
}
