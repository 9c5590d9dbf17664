package errors

import (
	"errors"
	"fmt"
	"net/http"

	"stockpile/internal/domain"
)

// AppError é a interface central para todos os erros customizados da API.
// Ela permite que o Handler acesse o Código, o Status HTTP e os detalhes por campo.
type AppError interface {
	Error() string                 // Implementa a interface error padrão do Go
	Category() string              // Código legível por máquina (e.g., "VALIDATION_ERROR", "NOT_FOUND")
	HTTPStatus() int               // Código HTTP sugerido para o Handler
	Details() []domain.ErrorDetail // Falhas por campo (vazio fora de validação)
	Unwrap() error                 // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg    string
	Fields []domain.ErrorDetail
}

func (e *ValidationError) Error() string                 { return e.Msg }
func (e *ValidationError) Category() string              { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int               { return http.StatusBadRequest } // 400
func (e *ValidationError) Details() []domain.ErrorDetail { return e.Fields }
func (e *ValidationError) Unwrap() error                 { return nil }

// NewValidationError cria um novo erro de validação com zero ou mais detalhes.
func NewValidationError(msg string, details ...domain.ErrorDetail) AppError {
	return &ValidationError{Msg: msg, Fields: details}
}

// NewFieldError é um atalho para a falha de um único campo.
func NewFieldError(field, msg string) AppError {
	return NewValidationError("Invalid request data", domain.ErrorDetail{Field: field, Message: msg})
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string                 { return e.Msg }
func (e *NotFoundError) Category() string              { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int               { return http.StatusNotFound } // 404
func (e *NotFoundError) Details() []domain.ErrorDetail { return nil }
func (e *NotFoundError) Unwrap() error                 { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa uma violação de unicidade (e.g., SKU duplicado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string                 { return e.Msg }
func (e *ConflictError) Category() string              { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int               { return http.StatusConflict } // 409
func (e *ConflictError) Details() []domain.ErrorDetail { return nil }
func (e *ConflictError) Unwrap() error                 { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// NewDuplicateSKUError é o conflito padrão de SKU, usado pelos dois repositórios.
func NewDuplicateSKUError(sku string) AppError {
	return NewConflictError(fmt.Sprintf("SKU '%s' already exists", sku))
}

// RateLimitError é devolvido pelo middleware de rate limiting.
type RateLimitError struct {
	Msg string
}

func (e *RateLimitError) Error() string                 { return e.Msg }
func (e *RateLimitError) Category() string              { return "RATE_LIMITED" }
func (e *RateLimitError) HTTPStatus() int               { return http.StatusTooManyRequests } // 429
func (e *RateLimitError) Details() []domain.ErrorDetail { return nil }
func (e *RateLimitError) Unwrap() error                 { return nil }

// NewRateLimitError cria um erro de limite de requisições excedido.
func NewRateLimitError(msg string) AppError {
	return &RateLimitError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}
func (e *InternalError) Category() string              { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int               { return http.StatusInternalServerError } // 500
func (e *InternalError) Details() []domain.ErrorDetail { return nil }
func (e *InternalError) Unwrap() error                 { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// internalMessage é a única mensagem que o cliente vê para erros 500.
const internalMessage = "Internal server error"

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o status HTTP e o corpo de resposta.
// Erros internos nunca expõem a causa ao cliente.
func MapToHTTPStatus(err error) (int, domain.ErrorBody) {
	var appErr AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus() < http.StatusInternalServerError {
		details := appErr.Details()
		if details == nil {
			details = []domain.ErrorDetail{}
		}
		return appErr.HTTPStatus(), domain.ErrorBody{
			Code:    appErr.Category(),
			Message: appErr.Error(),
			Details: details,
		}
	}

	// Erro interno ou não tipado: resposta genérica.
	return http.StatusInternalServerError, domain.ErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: internalMessage,
		Details: []domain.ErrorDetail{},
	}
}
