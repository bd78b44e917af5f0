package api

import (
	"errors"
	"fmt"
)

// Error kinds, one per branch of the client's failure taxonomy.
const (
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindNotFound     = "not_found"
	KindNetwork      = "network"
	KindServer       = "server"
)

// Error is what every backend call returns on failure. Message is already
// user-facing: either the backend's payload message or the taxonomy default.
type Error struct {
	Kind    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

// Default user-facing messages per kind.
const (
	MsgSessionExpired = "Tu sesión ha expirado. Por favor, inicia sesión nuevamente."
	MsgForbidden      = "No tienes permiso para realizar esta acción."
	MsgNotFound       = "Recurso no encontrado."
	MsgNoConnection   = "No se pudo conectar con el servidor. Verifica tu conexión a internet."
	MsgNoToken        = "No hay token de autenticación. Por favor, inicia sesión nuevamente."
)

func kindFor(status int) string {
	switch status {
	case 401:
		return KindUnauthorized
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	default:
		return KindServer
	}
}

func defaultMessage(status int) string {
	switch status {
	case 401:
		return MsgSessionExpired
	case 403:
		return MsgForbidden
	case 404:
		return MsgNotFound
	default:
		return fmt.Sprintf("Error del servidor (%d)", status)
	}
}

func asError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

func kindIs(err error, kind string) bool {
	apiErr := asError(err)
	return apiErr != nil && apiErr.Kind == kind
}

func IsUnauthorized(err error) bool { return kindIs(err, KindUnauthorized) }
func IsForbidden(err error) bool    { return kindIs(err, KindForbidden) }
func IsNotFound(err error) bool     { return kindIs(err, KindNotFound) }
func IsNetwork(err error) bool      { return kindIs(err, KindNetwork) }

// UserMessage extracts the user-facing message from any error the client
// produced, with a generic fallback for everything else.
func UserMessage(err error, fallback string) string {
	if apiErr := asError(err); apiErr != nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
