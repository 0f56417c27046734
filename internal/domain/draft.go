package domain

import "time"

type DraftStatus string

const (
	DraftStatusPending  DraftStatus = "pending"
	DraftStatusApproved DraftStatus = "approved"
	DraftStatusRejected DraftStatus = "rejected"
)

// PriceDraft representa uma proposta de alteração de preço aguardando aprovação.
// A identidade e o ciclo de vida do draft pertencem exclusivamente ao Draft Ledger;
// depois de aprovado o draft é imutável.
type PriceDraft struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"product_id"`
	Channel      string      `json:"channel"`
	OldNet       float64     `json:"old_net"`
	OldGross     float64     `json:"old_gross"`
	OldMarginPct float64     `json:"old_margin_pct"`
	NewNet       float64     `json:"new_net"`
	NewGross     float64     `json:"new_gross"`
	NewMarginPct float64     `json:"new_margin_pct"`
	ChangePct    float64     `json:"change_pct"`
	Notes        string      `json:"notes"`
	Status       DraftStatus `json:"status"`
	ApprovedBy   *int        `json:"approved_by"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type ApproveDraftResponse struct {
	DraftID   string `json:"draft_id"`
	ProductID string `json:"product_id"`
	Applied   bool   `json:"applied"`
}
