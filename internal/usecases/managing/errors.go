package managing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// Categorias de erro do gerenciamento de campanhas
var (
	// Entrada malformada ou que viola alguma restrição (400)
	ErrValidation = errors.New("validation error")
	// Registro referenciado não existe (404)
	ErrNotFound = errors.New("not found")
	// Falha inesperada no armazenamento (500)
	ErrStorage = errors.New("storage error")

	// Registro relacionado ausente durante o enriquecimento; sempre embrulhado em ErrStorage
	ErrDataIntegrity = errors.New("data integrity fault")
	// Mudança de status fora do grafo permitido; sempre embrulhado em ErrValidation
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ManagingError é um erro com contexto adicional para a camada HTTP
type ManagingError struct {
	Err      error  // Categoria (ErrValidation, ErrNotFound, ErrStorage)
	Cause    error  // Erro de origem, quando existir
	Code     string // Código de erro para API
	EntityID int    // ID do registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ManagingError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap permite errors.Is tanto na categoria quanto na causa
func (e *ManagingError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newValidationError(code string, details string) *ManagingError {
	return &ManagingError{
		Err:     ErrValidation,
		Code:    code,
		Details: details,
	}
}

func newTransitionError(entityID int, details string) *ManagingError {
	return &ManagingError{
		Err:      ErrValidation,
		Cause:    ErrInvalidTransition,
		Code:     apiErrors.ErrInvalidTransition,
		EntityID: entityID,
		Details:  details,
	}
}

func newNotFoundError(code string, entityID int, details string) *ManagingError {
	return &ManagingError{
		Err:      ErrNotFound,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}

func newStorageError(cause error, details string) *ManagingError {
	return &ManagingError{
		Err:     ErrStorage,
		Cause:   cause,
		Code:    apiErrors.ErrDatabaseOperation,
		Details: details,
	}
}

func newIntegrityError(entityID int, details string) *ManagingError {
	return &ManagingError{
		Err:      ErrStorage,
		Cause:    ErrDataIntegrity,
		Code:     apiErrors.ErrDataIntegrity,
		EntityID: entityID,
		Details:  details,
	}
}
