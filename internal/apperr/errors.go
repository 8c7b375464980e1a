package apperr

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures so the HTTP layer can pick a status code.
type ErrorType string

const (
	// TypeValidation is a missing or malformed request field
	TypeValidation ErrorType = "VALIDATION"

	// TypeUnauthorized covers bad credentials and bad tokens
	TypeUnauthorized ErrorType = "UNAUTHORIZED"

	// TypeConflict is a duplicate unique field
	TypeConflict ErrorType = "CONFLICT"

	// TypeNotFound is a referenced entity that does not exist
	TypeNotFound ErrorType = "NOT_FOUND"

	// TypeInternal is a persistence or infrastructure failure
	TypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is makes two AppErrors match when type and message agree, so sentinels survive wrapping.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

func NewValidation(message string) *AppError {
	return &AppError{Type: TypeValidation, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Type: TypeUnauthorized, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Type: TypeConflict, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Type: TypeNotFound, Message: message}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{Type: TypeInternal, Message: message, Err: err}
}

// Domain errors. Messages are shown to the mobile client as-is.
var (
	ErrInvalidCredentials  = NewUnauthorized("Email ou senha incorretos")
	ErrInvalidToken        = NewUnauthorized("Token inválido ou expirado")
	ErrDuplicateEmail      = NewConflict("Email já cadastrado")
	ErrDuplicateNationalID = NewConflict("CPF já cadastrado")
	ErrUserNotFound        = NewNotFound("Usuário não encontrado")
	ErrIncidentNotFound    = NewNotFound("Ocorrência não encontrada")
	ErrCategoryNotFound    = NewNotFound("Categoria não encontrada")
	ErrUnknownCategory     = NewValidation("Categoria inválida")
)

// TypeOf returns the type of the first AppError in the chain, or TypeInternal.
func TypeOf(err error) ErrorType {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Type
	}
	return TypeInternal
}

// MessageOf returns the client-facing message of the first AppError in the chain.
// Internal errors never expose the underlying cause.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Type != TypeInternal {
		return ae.Message
	}
	return "Erro interno do servidor"
}
