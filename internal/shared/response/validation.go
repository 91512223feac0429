package response

import (
	"errors"
	"sort"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError is one entry of the details array in a validation failure.
// The msg key is what the client-side formatter collects.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// ValidationDetails flattens ozzo validation errors into a deterministic
// details array. Non-validation errors collapse to their message string.
func ValidationDetails(err error) interface{} {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		details = append(details, FieldError{Field: field, Msg: verrs[field].Error()})
	}
	return details
}

// ValidationFailed writes the 400 envelope for a validation error and
// reports whether err actually was one.
func ValidationFailed(c *gin.Context, err error) bool {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return false
	}

	ErrorWithDetails(c, 400, "Validation failed", ValidationDetails(err))
	return true
}
