package domain

import "time"

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

type Product struct {
	ID        string        `json:"id"`
	SKU       string        `json:"sku"`
	Name      string        `json:"name"`
	Brand     *string       `json:"brand"`
	EAN       *string       `json:"ean"`
	Status    ProductStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ProductFilters representa os filtros disponíveis para listagem de produtos
type ProductFilters struct {
	Brand  *string        `json:"brand"`
	Status *ProductStatus `json:"status"`
	Search *string        `json:"search"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ProductImportEntry representa uma linha de importação de produto (upsert por SKU)
type ProductImportEntry struct {
	SKU     string   `json:"sku"`
	Name    string   `json:"name"`
	Brand   *string  `json:"brand"`
	EAN     *string  `json:"ean"`
	CostEur *float64 `json:"cost_eur"`
}

type ImportProductsResponse struct {
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Message string `json:"message"`
	Error   bool   `json:"error"`
}
