// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

const (
	productsTable     = "products"
	productCostsTable = "product_costs"
)

type ProductRepository interface {
	FindByIDOrSKU(idOrSKU string) (*domain.Product, error)
	ListProducts(filters *domain.ProductFilters) ([]*domain.Product, error)
	ListActiveProductIDs(limit int) ([]string, error)
	UpsertFromImport(ctx context.Context, products []*domain.Product, costs map[string]float64) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) FindByIDOrSKU(idOrSKU string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id", "p.sku", "p.name", "p.brand", "p.ean", "p.status", "p.created_at", "p.updated_at").
		From(productsTable + " p").
		Where(squirrel.Or{
			squirrel.Eq{"p.id": idOrSKU},
			squirrel.Eq{"p.sku": idOrSKU},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	product, err := r.scanProductRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(filters *domain.ProductFilters) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("p.id", "p.sku", "p.name", "p.brand", "p.ean", "p.status", "p.created_at", "p.updated_at").
		From(productsTable + " p").
		OrderBy("p.sku ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Brand != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"p.brand": *filters.Brand})
		}
		if filters.Status != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"p.status": *filters.Status})
		}
		if filters.Search != nil && *filters.Search != "" {
			queryBuilder = queryBuilder.Where(squirrel.ILike{"p.name": "%" + *filters.Search + "%"})
		}
		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}
		if filters.Offset > 0 {
			queryBuilder = queryBuilder.Offset(uint64(filters.Offset))
		}
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// ListActiveProductIDs retorna os IDs de produtos ativos para processamento em lote
func (r *productRepository) ListActiveProductIDs(limit int) ([]string, error) {
	queryBuilder := squirrel.
		Select("p.id").
		From(productsTable + " p").
		Where(squirrel.Eq{"p.status": domain.ProductStatusActive}).
		OrderBy("p.sku ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id de produto: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

// UpsertFromImport insere ou atualiza produtos importados (chave de conflito: sku).
// Os custos informados são gravados na mesma transação para manter o snapshot coerente.
func (r *productRepository) UpsertFromImport(ctx context.Context, products []*domain.Product, costs map[string]float64) error {
	if len(products) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query := squirrel.StatementBuilder.
			Insert(productsTable).
			Columns("id", "sku", "name", "brand", "ean", "status").
			PlaceholderFormat(squirrel.Dollar)

		for _, product := range products {
			query = query.Values(
				product.ID,
				product.SKU,
				product.Name,
				product.Brand,
				product.EAN,
				product.Status,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (sku) DO UPDATE SET
				name = EXCLUDED.name,
				brand = EXCLUDED.brand,
				ean = EXCLUDED.ean,
				updated_at = CURRENT_TIMESTAMP
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err = tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		if len(costs) == 0 {
			return nil
		}

		costQuery := squirrel.StatementBuilder.
			Insert(productCostsTable).
			Columns("product_sku", "cost_eur").
			PlaceholderFormat(squirrel.Dollar)

		for sku, cost := range costs {
			costQuery = costQuery.Values(sku, cost)
		}

		costQuery = costQuery.Suffix(`
			ON CONFLICT (product_sku) DO UPDATE SET
				cost_eur = EXCLUDED.cost_eur,
				updated_at = CURRENT_TIMESTAMP
		`)

		costSQL, costArgs, err := costQuery.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de custos: %w", err)
		}

		if _, err = tx.ExecContext(ctx, costSQL, costArgs...); err != nil {
			return fmt.Errorf("erro ao executar query de custos: %w", err)
		}

		return nil
	})
}

func (r *productRepository) scanProduct(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}

	err := rows.Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&product.Brand,
		&product.EAN,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) scanProductRow(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}

	err := row.Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&product.Brand,
		&product.EAN,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
