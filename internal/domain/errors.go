package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrTransient    = errors.New("error transitorio de red")
	ErrUpstream     = errors.New("respuesta inesperada del backend")
	// ErrSuperseded: una petición más reciente para la misma clave reemplazó a esta.
	ErrSuperseded = errors.New("petición reemplazada por una más reciente")
)

// InvalidInputError error de validación con el campo afectado, para mostrarlo en línea.
type InvalidInputError struct {
	Field  string
	Reason string
}

// NewInvalidInput construye un InvalidInputError.
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return ErrInvalidInput.Error() + ": " + e.Reason
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput.Error(), e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// APIError respuesta no exitosa del backend. Kind es el sentinel equivalente
// (ErrUnauthorized, ErrNotFound, ErrTransient...) y Message el texto que envió el backend.
type APIError struct {
	Status  int
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend %d: %v", e.Status, e.Kind)
	}
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Kind }
