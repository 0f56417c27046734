package pricefeeddomain

// Quote é o formato de um preço observado conforme entregue pelo feed externo
type Quote struct {
	SKU        string  `json:"sku"`
	Competitor string  `json:"competitor"`
	NetPrice   float64 `json:"net_price"`
	Currency   string  `json:"currency"`
	URL        *string `json:"url"`
}

// FetchQuotesParams define os parâmetros da consulta ao feed
type FetchQuotesParams struct {
	SKU string
}
