package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feewhiz/feewhiz/internal/model"
)

type RateTableRepository struct {
	pool *pgxpool.Pool
}

func NewRateTableRepository(pool *pgxpool.Pool) *RateTableRepository {
	return &RateTableRepository{pool: pool}
}

// LoadDocument reassembles a platform's rate document. A platform without a
// rate_documents row returns pgx.ErrNoRows.
func (r *RateTableRepository) LoadDocument(ctx context.Context, platform string) (*model.RateDocument, error) {
	doc := &model.RateDocument{
		Fees: model.Fees{Domestic: map[string]model.FeeFormula{}},
	}
	err := r.pool.QueryRow(ctx,
		`SELECT platform, name, source_url, last_checked, base_currency, todos
		FROM rate_documents WHERE platform = $1`, platform).
		Scan(&doc.Platform, &doc.Name, &doc.SourceURL, &doc.LastChecked, &doc.BaseCurrency, &doc.Todos)
	if err != nil {
		return nil, err
	}

	if err := r.loadFormulas(ctx, doc); err != nil {
		return nil, err
	}
	if err := r.loadOptions(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *RateTableRepository) loadFormulas(ctx context.Context, doc *model.RateDocument) error {
	rows, err := r.pool.Query(ctx,
		`SELECT region, formula_key, kind, rate, fixed_amount, cap, min_fee
		FROM fee_formulas WHERE platform = $1
		ORDER BY region, formula_key`, doc.Platform)
	if err != nil {
		return fmt.Errorf("query fee formulas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var region, key string
		var f model.FeeFormula
		if err := rows.Scan(&region, &key, &f.Type, &f.Rate, &f.Fixed, &f.Cap, &f.MinFee); err != nil {
			return fmt.Errorf("scan fee formula: %w", err)
		}
		switch region {
		case "international":
			if doc.Fees.International == nil {
				doc.Fees.International = map[string]model.FeeFormula{}
			}
			doc.Fees.International[key] = f
		default:
			doc.Fees.Domestic[key] = f
		}
	}
	return rows.Err()
}

func (r *RateTableRepository) loadOptions(ctx context.Context, doc *model.RateDocument) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description FROM transaction_types
		WHERE platform = $1 ORDER BY position`, doc.Platform)
	if err != nil {
		return fmt.Errorf("query transaction types: %w", err)
	}
	for rows.Next() {
		var tt model.TransactionType
		if err := rows.Scan(&tt.ID, &tt.Name, &tt.Description); err != nil {
			rows.Close()
			return fmt.Errorf("scan transaction type: %w", err)
		}
		doc.TransactionTypes = append(doc.TransactionTypes, tt)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT id, name FROM regions WHERE platform = $1 ORDER BY position`, doc.Platform)
	if err != nil {
		return fmt.Errorf("query regions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var reg model.Region
		if err := rows.Scan(&reg.ID, &reg.Name); err != nil {
			return fmt.Errorf("scan region: %w", err)
		}
		doc.Regions = append(doc.Regions, reg)
	}
	return rows.Err()
}

// Platforms lists the platforms with a stored rate document.
func (r *RateTableRepository) Platforms(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT platform FROM rate_documents ORDER BY platform`)
	if err != nil {
		return nil, fmt.Errorf("query platforms: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
