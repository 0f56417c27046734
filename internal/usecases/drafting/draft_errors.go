package drafting

import (
	"errors"
	"fmt"
)

// Tipos de erros do ciclo de vida de drafts
var (
	ErrDraftNotFound     = errors.New("draft não encontrado")
	ErrInvalidDraftState = errors.New("transição de estado de draft inválida")
	ErrMissingDraftData  = errors.New("dados obrigatórios do draft ausentes")
)

// DraftError é um erro com contexto adicional do ciclo de vida de drafts
type DraftError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	DraftID string // Draft envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DraftError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DraftError) Unwrap() error {
	return e.Err
}

// NewDraftError cria um novo erro de draft
func NewDraftError(baseErr error, code string, draftID string, details string) *DraftError {
	return &DraftError{
		Err:     baseErr,
		Code:    code,
		DraftID: draftID,
		Details: details,
	}
}
