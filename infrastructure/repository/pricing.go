package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

const (
	channelPricesTable    = "channel_prices"
	competitorPricesTable = "competitor_prices"
	pricingHistoryTable   = "pricing_history"
	learningSignalsTable  = "learning_signals"
)

type PricingRepository interface {
	GetPricingSnapshot(productID, channel string) (*domain.PricingSnapshot, error)
	ListCompetitorPrices(productID string) ([]*domain.CompetitorObservation, error)
	SaveCompetitorPrices(productID string, observations []*domain.CompetitorObservation) error
	UpdateChannelPrice(productID, channel string, net, gross float64) error
	RecordPricingHistory(entry *domain.PricingHistoryEntry) error
	RecordLearningSignal(signal *domain.LearningSignal) error
}

type pricingRepository struct {
	conn *postgres.Connection
}

func NewPricingRepository(conn *postgres.Connection) PricingRepository {
	return &pricingRepository{
		conn: conn,
	}
}

// GetPricingSnapshot monta o snapshot normalizado de preço de um produto em um canal.
// Retorna nil (sem erro) quando não há custo ou preço de canal — o chamador decide
// como tratar a ausência; nunca devolve um snapshot parcial.
func (r *pricingRepository) GetPricingSnapshot(productID, channel string) (*domain.PricingSnapshot, error) {
	query, args, err := squirrel.
		Select("cp.channel", "cp.net", "cp.gross", "cp.currency", "cp.vat_rate", "pc.cost_eur").
		From(channelPricesTable + " cp").
		Join(productsTable + " p ON p.id = cp.product_id").
		LeftJoin(productCostsTable + " pc ON pc.product_sku = p.sku").
		Where(squirrel.Eq{"cp.product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshot := &domain.PricingSnapshot{
		ProductID:     productID,
		Channel:       channel,
		ChannelPrices: make(map[string]float64),
	}

	var cost sql.NullFloat64
	channelFound := false

	for rows.Next() {
		var (
			rowChannel string
			net        float64
			gross      float64
			currency   string
			vatRate    float64
		)

		if err := rows.Scan(&rowChannel, &net, &gross, &currency, &vatRate, &cost); err != nil {
			return nil, fmt.Errorf("erro ao escanear preço de canal: %w", err)
		}

		snapshot.ChannelPrices[rowChannel] = net

		if rowChannel == channel {
			channelFound = true
			snapshot.Net = net
			snapshot.Gross = gross
			snapshot.Currency = currency
			snapshot.VATRate = vatRate
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// Sem custo ou sem preço no canal solicitado não há snapshot válido
	if !channelFound || !cost.Valid {
		return nil, nil
	}

	snapshot.CostEur = cost.Float64
	if snapshot.Net > 0 {
		snapshot.MarginPct = (snapshot.Net - snapshot.CostEur) / snapshot.Net * 100
	}

	return snapshot, nil
}

func (r *pricingRepository) ListCompetitorPrices(productID string) ([]*domain.CompetitorObservation, error) {
	query, args, err := squirrel.
		Select("co.competitor_name", "co.net_price", "co.currency", "co.url").
		From(competitorPricesTable + " co").
		Where(squirrel.Eq{"co.product_id": productID}).
		OrderBy("co.competitor_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	observations := make([]*domain.CompetitorObservation, 0)
	for rows.Next() {
		obs := &domain.CompetitorObservation{}
		if err := rows.Scan(&obs.CompetitorName, &obs.NetPrice, &obs.Currency, &obs.URL); err != nil {
			return nil, fmt.Errorf("erro ao escanear observação de concorrente: %w", err)
		}
		observations = append(observations, obs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return observations, nil
}

// SaveCompetitorPrices substitui as observações de um produto pelo resultado mais recente do feed
func (r *pricingRepository) SaveCompetitorPrices(productID string, observations []*domain.CompetitorObservation) error {
	if len(observations) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(competitorPricesTable).
		Columns("product_id", "competitor_name", "net_price", "currency", "url").
		PlaceholderFormat(squirrel.Dollar)

	for _, obs := range observations {
		query = query.Values(productID, obs.CompetitorName, obs.NetPrice, obs.Currency, obs.URL)
	}

	query = query.Suffix(`
		ON CONFLICT (product_id, competitor_name) DO UPDATE SET
			net_price = EXCLUDED.net_price,
			currency = EXCLUDED.currency,
			url = EXCLUDED.url,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// UpdateChannelPrice escreve o novo preço no registro vivo do canal
func (r *pricingRepository) UpdateChannelPrice(productID, channel string, net, gross float64) error {
	query, args, err := squirrel.
		Update(channelPricesTable).
		Set("net", net).
		Set("gross", gross).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"product_id": productID, "channel": channel}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de atualização: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("nenhum preço de canal encontrado para produto %s no canal %s", productID, channel)
	}

	return nil
}

func (r *pricingRepository) RecordPricingHistory(entry *domain.PricingHistoryEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(pricingHistoryTable).
		Columns("product_id", "channel", "old_net", "new_net", "old_gross", "new_gross", "source", "actor_id").
		Values(entry.ProductID, entry.Channel, entry.OldNet, entry.NewNet, entry.OldGross, entry.NewGross, entry.Source, entry.ActorID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de histórico: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar histórico de preço: %w", err)
	}

	return nil
}

func (r *pricingRepository) RecordLearningSignal(signal *domain.LearningSignal) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(learningSignalsTable).
		Columns("product_id", "channel", "reason", "adjustment_fraction", "applied", "mode").
		Values(signal.ProductID, signal.Channel, signal.Reason, signal.AdjustmentFraction, signal.Applied, signal.Mode).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de sinal de aprendizado: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar sinal de aprendizado: %w", err)
	}

	return nil
}
