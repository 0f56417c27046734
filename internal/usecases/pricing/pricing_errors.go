package pricing

import (
	"errors"
	"fmt"
)

// Tipos de erros de precificação personalizados
var (
	ErrMissingPricing    = errors.New("snapshot de preço incompleto")
	ErrInvalidAdjustment = errors.New("ajuste de preço inválido")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrChannelNotFound   = errors.New("canal de venda desconhecido")
)

// PricingError é um erro com contexto adicional de precificação
type PricingError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProductID string // Produto envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PricingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PricingError) Unwrap() error {
	return e.Err
}

// NewPricingError cria um novo erro de precificação
func NewPricingError(baseErr error, code string, details string) *PricingError {
	return &PricingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewProductPricingError cria um novo erro de precificação com contexto de produto
func NewProductPricingError(baseErr error, code string, productID string, details string) *PricingError {
	return &PricingError{
		Err:       baseErr,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
