package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnsupportedFormat = errors.New("formato de reporte no soportado")
)

// ValidationError describe un campo requerido ausente o mal formado.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye el error para el campo indicado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// IsNotFound indica si err corresponde a un recurso inexistente.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation indica si err es un error de validación de entrada.
func IsValidation(err error) bool { return errors.Is(err, ErrInvalidInput) }
