package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrMissingField      = errors.New("campo requerido ausente")
	ErrInvalidPrice      = errors.New("precio inválido")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrDuplicateSKU      = errors.New("el SKU ya existe")
	ErrPersistence       = errors.New("error de persistencia al insertar")
	ErrCommitFailed      = errors.New("error al confirmar la transacción")
	ErrStorageRead       = errors.New("error de lectura en almacenamiento")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// MissingFieldError indica qué campo requerido falta en la entrada.
// errors.Is(err, ErrMissingField) devuelve true para este tipo.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("campo requerido ausente: %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
