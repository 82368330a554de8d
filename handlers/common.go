package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jyothi-samberpu/Food-services/apperrors"

	"github.com/go-playground/validator/v10"
)

// bindingError converts gin binding failures into a validation error that
// enumerates every failing field.
func bindingError(err error) *apperrors.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldMessage(fe))
		}
		return apperrors.Validation(fields...)
	}
	return apperrors.Validation(err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// isForm reports whether the request carries form data rather than JSON.
func isForm(contentType string) bool {
	return strings.HasPrefix(contentType, "multipart/form-data") ||
		strings.HasPrefix(contentType, "application/x-www-form-urlencoded")
}
