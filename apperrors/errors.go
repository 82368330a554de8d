// Package apperrors defines the domain error taxonomy and the single place
// where domain errors become HTTP responses. Handlers build errors here and
// hand them to Respond; no handler picks status codes on its own.
package apperrors

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindNotFound
	KindDuplicate
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	// Fields lists every failing field for validation errors, not just
	// the first one.
	Fields []string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validation reports bad input. Each entry in fields should read as a
// standalone message, e.g. "price must be a positive number".
func Validation(fields ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

// Internal wraps an unexpected failure. The cause is logged server-side;
// clients only ever see the generic message.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", cause: cause}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindDuplicate:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond translates any error into a JSON response. Unrecognized errors
// are treated as internal so raw store errors never leak to the client.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	if appErr.Kind == KindInternal {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}

	body := gin.H{"error": appErr.Message}
	if len(appErr.Fields) > 1 {
		body["fields"] = appErr.Fields
	}
	c.JSON(statusFor(appErr.Kind), body)
}

// FromDB maps store lookup errors: missing records become NotFound for the
// named entity, anything else is internal.
func FromDB(err error, entity string) *Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(entity)
	}
	return Internal(err)
}
