package utils

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

// AppError is the one error type that crosses the handler boundary. Domain
// code attaches a status and message and lets the error middleware produce the
// client-visible response.
type AppError struct {
	Status  int
	Message string
	Fields  []validation.FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func ValidationFailed(fields []validation.FieldError) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: "Error de validación", Fields: fields}
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

func Internal() *AppError {
	return NewAppError(http.StatusInternalServerError, "Error interno del servidor")
}

// Postgres error codes surfaced by pgx. The storage driver has no typed error
// hierarchy beyond *pgconn.PgError, so codes are matched here and nowhere else.
const (
	pgUniqueViolation = "23505"
	pgInvalidTextRep  = "22P02"
)

// constraint name -> user-facing field name, for unique-violation messages.
var uniqueConstraintFields = map[string]string{
	"users_email_key":        "email",
	"users_username_key":     "username",
	"users_phone_number_key": "phoneNumber",
	"users_pkey":             "id",
}

// Normalize maps any error to the AppError that becomes the HTTP response.
// Precedence: validation list, malformed id, unique violation, token
// signature, token expiry, explicit AppError, then a generic 500.
func Normalize(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRep:
			// Malformed ids must not leak whether the resource exists.
			return NotFound("Recurso no encontrado")
		case pgUniqueViolation:
			field, ok := uniqueConstraintFields[pgErr.ConstraintName]
			if !ok {
				field = pgErr.ConstraintName
			}
			return Conflict("El campo " + field + " ya existe. Por favor, utiliza un valor diferente.")
		}
	}

	if errors.Is(err, jwt.ErrTokenExpired) {
		return Unauthorized("Tu sesión ha expirado. Por favor, inicia sesión de nuevo.")
	}
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
		return Unauthorized("Token de autenticación inválido")
	}

	if appErr != nil {
		return appErr
	}

	return Internal()
}
