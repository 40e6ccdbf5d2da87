// Package apierror provides the standardized error vocabulary of the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Error de validacion", Fields: fields}
}

// Sentinel error kinds. Services return these (possibly wrapped); handlers
// translate them into HTTP statuses via Status. Unknown identifier and wrong
// password share a single sentinel so the response cannot be used to
// enumerate accounts.
var (
	ErrCredencialesInvalidas = errors.New("RUT o contraseña incorrectos")
	ErrNoAutenticado         = errors.New("No autenticado")
	ErrAccesoDenegado        = errors.New("Acceso denegado")
	ErrRutDuplicado          = errors.New("El RUT ya está registrado")
	ErrRolInvalido           = errors.New("Rol de usuario inválido")
	ErrFechaInvalida         = errors.New("Fecha inválida. Use formato YYYY-MM-DD")
	ErrNoEncontrado          = errors.New("Recurso no encontrado")
)

// Status maps an error to its HTTP status and safe response body. Anything
// outside the sentinel taxonomy is an infrastructure failure: it maps to a
// generic 500 and the caller is expected to log the real error server-side.
func Status(err error) (int, *APIError) {
	switch {
	case errors.Is(err, ErrCredencialesInvalidas):
		return http.StatusUnauthorized, New(ErrCredencialesInvalidas.Error())
	case errors.Is(err, ErrNoAutenticado):
		return http.StatusUnauthorized, New(ErrNoAutenticado.Error())
	case errors.Is(err, ErrAccesoDenegado):
		return http.StatusForbidden, New(ErrAccesoDenegado.Error())
	case errors.Is(err, ErrRutDuplicado):
		return http.StatusBadRequest, New(ErrRutDuplicado.Error())
	case errors.Is(err, ErrRolInvalido):
		return http.StatusBadRequest, New(ErrRolInvalido.Error())
	case errors.Is(err, ErrFechaInvalida):
		return http.StatusBadRequest, New(ErrFechaInvalida.Error())
	case errors.Is(err, ErrNoEncontrado):
		return http.StatusNotFound, New(ErrNoEncontrado.Error())
	default:
		return http.StatusInternalServerError, New("Error interno del servidor")
	}
}
