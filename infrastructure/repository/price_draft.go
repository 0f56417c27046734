package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

const (
	priceDraftsTable = "price_drafts"
)

type PriceDraftRepository interface {
	CreatePriceDraft(draft *domain.PriceDraft) error
	GetDraftByID(draftID string) (*domain.PriceDraft, error)
	ListDrafts(status *domain.DraftStatus) ([]*domain.PriceDraft, error)
	UpdateDraftStatus(draftID string, status domain.DraftStatus, approverID int) (bool, error)
}

type priceDraftRepository struct {
	conn *postgres.Connection
}

func NewPriceDraftRepository(conn *postgres.Connection) PriceDraftRepository {
	return &priceDraftRepository{
		conn: conn,
	}
}

func (r *priceDraftRepository) CreatePriceDraft(draft *domain.PriceDraft) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(priceDraftsTable).
		Columns(
			"id",
			"product_id",
			"channel",
			"old_net",
			"old_gross",
			"old_margin_pct",
			"new_net",
			"new_gross",
			"new_margin_pct",
			"change_pct",
			"notes",
			"status",
		).
		Values(
			draft.ID,
			draft.ProductID,
			draft.Channel,
			draft.OldNet,
			draft.OldGross,
			draft.OldMarginPct,
			draft.NewNet,
			draft.NewGross,
			draft.NewMarginPct,
			draft.ChangePct,
			draft.Notes,
			draft.Status,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *priceDraftRepository) GetDraftByID(draftID string) (*domain.PriceDraft, error) {
	query, args, err := squirrel.
		Select(
			"pd.id", "pd.product_id", "pd.channel",
			"pd.old_net", "pd.old_gross", "pd.old_margin_pct",
			"pd.new_net", "pd.new_gross", "pd.new_margin_pct",
			"pd.change_pct", "pd.notes", "pd.status", "pd.approved_by",
			"pd.created_at", "pd.updated_at",
		).
		From(priceDraftsTable + " pd").
		Where(squirrel.Eq{"pd.id": draftID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	draft, err := r.scanDraftRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear draft: %w", err)
	}

	return draft, nil
}

func (r *priceDraftRepository) ListDrafts(status *domain.DraftStatus) ([]*domain.PriceDraft, error) {
	queryBuilder := squirrel.
		Select(
			"pd.id", "pd.product_id", "pd.channel",
			"pd.old_net", "pd.old_gross", "pd.old_margin_pct",
			"pd.new_net", "pd.new_gross", "pd.new_margin_pct",
			"pd.change_pct", "pd.notes", "pd.status", "pd.approved_by",
			"pd.created_at", "pd.updated_at",
		).
		From(priceDraftsTable + " pd").
		OrderBy("pd.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"pd.status": *status})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	drafts := make([]*domain.PriceDraft, 0)
	for rows.Next() {
		draft, err := r.scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear draft: %w", err)
		}
		drafts = append(drafts, draft)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return drafts, nil
}

// UpdateDraftStatus efetiva a transição de estado de um draft pendente.
// A cláusula WHERE status = 'pending' garante que drafts aprovados ou
// rejeitados nunca sejam alterados; retorna false quando nada foi atualizado.
func (r *priceDraftRepository) UpdateDraftStatus(draftID string, status domain.DraftStatus, approverID int) (bool, error) {
	query, args, err := squirrel.
		Update(priceDraftsTable).
		Set("status", status).
		Set("approved_by", approverID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": draftID, "status": domain.DraftStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar query de atualização: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *priceDraftRepository) scanDraft(rows *sql.Rows) (*domain.PriceDraft, error) {
	draft := &domain.PriceDraft{}

	err := rows.Scan(
		&draft.ID,
		&draft.ProductID,
		&draft.Channel,
		&draft.OldNet,
		&draft.OldGross,
		&draft.OldMarginPct,
		&draft.NewNet,
		&draft.NewGross,
		&draft.NewMarginPct,
		&draft.ChangePct,
		&draft.Notes,
		&draft.Status,
		&draft.ApprovedBy,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return draft, nil
}

func (r *priceDraftRepository) scanDraftRow(row *sql.Row) (*domain.PriceDraft, error) {
	draft := &domain.PriceDraft{}

	err := row.Scan(
		&draft.ID,
		&draft.ProductID,
		&draft.Channel,
		&draft.OldNet,
		&draft.OldGross,
		&draft.OldMarginPct,
		&draft.NewNet,
		&draft.NewGross,
		&draft.NewMarginPct,
		&draft.ChangePct,
		&draft.Notes,
		&draft.Status,
		&draft.ApprovedBy,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return draft, nil
}
