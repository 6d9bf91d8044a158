package database

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/feewhiz/feewhiz/internal/fee"
	"github.com/feewhiz/feewhiz/internal/model"
	"github.com/feewhiz/feewhiz/internal/ratetable"
)

// SeedRateTables copies the bundled rate documents into Postgres. It does
// nothing when rate documents already exist.
func SeedRateTables(ctx context.Context, pool *pgxpool.Pool, documents fs.FS) error {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM rate_documents").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("rate tables already seeded, skipping")
		return nil
	}

	src := ratetable.FSSource{FS: documents}
	var docs []*model.RateDocument
	for _, desc := range fee.Platforms() {
		doc, err := src.Document(ctx, string(desc.ID))
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	formulas := 0
	for _, doc := range docs {
		n, err := insertDocument(ctx, tx, doc)
		if err != nil {
			return err
		}
		formulas += n
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Int("documents", len(docs)).Int("formulas", formulas).Msg("rate tables seeded")
	return nil
}

func insertDocument(ctx context.Context, tx pgx.Tx, doc *model.RateDocument) (int, error) {
	todos := doc.Todos
	if todos == nil {
		todos = []string{}
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO rate_documents (platform, name, source_url, last_checked, base_currency, todos)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		doc.Platform, doc.Name, doc.SourceURL, doc.LastChecked, doc.BaseCurrency, todos)
	if err != nil {
		return 0, fmt.Errorf("insert rate document %s: %w", doc.Platform, err)
	}

	batch := &pgx.Batch{}
	queue := func(region string, rows map[string]model.FeeFormula) {
		for key, f := range rows {
			batch.Queue(
				`INSERT INTO fee_formulas (platform, region, formula_key, kind, rate, fixed_amount, cap, min_fee)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				doc.Platform, region, key, f.Type, f.Rate, f.Fixed, f.Cap, f.MinFee)
		}
	}
	queue(fee.RegionDomestic, doc.Fees.Domestic)
	queue(fee.RegionInternational, doc.Fees.International)
	formulas := batch.Len()

	for i, tt := range doc.TransactionTypes {
		batch.Queue(
			`INSERT INTO transaction_types (platform, id, name, description, position) VALUES ($1, $2, $3, $4, $5)`,
			doc.Platform, tt.ID, tt.Name, tt.Description, i)
	}
	for i, r := range doc.Regions {
		batch.Queue(
			`INSERT INTO regions (platform, id, name, position) VALUES ($1, $2, $3, $4)`,
			doc.Platform, r.ID, r.Name, i)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert %s rows: %w", doc.Platform, err)
	}
	return formulas, nil
}
