// Package ratetable loads rate documents and compiles them into calculators.
package ratetable

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/feewhiz/feewhiz/internal/fee"
)

type Options struct {
	// Strict turns any single platform failure into a load error.
	Strict bool
}

type loadResult struct {
	calc *fee.Calculator
	err  error
}

// Load builds a dispatcher over every registered platform. Platforms are
// loaded concurrently and independently: one bad document makes only that
// platform unavailable.
func Load(ctx context.Context, src Source, opts Options) (*fee.Dispatcher, error) {
	platforms := fee.Platforms()
	results := make([]loadResult, len(platforms))

	g, gctx := errgroup.WithContext(ctx)
	for i, desc := range platforms {
		i, desc := i, desc
		g.Go(func() error {
			calc, err := loadPlatform(gctx, src, desc)
			results[i] = loadResult{calc: calc, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var (
		calcs    []*fee.Calculator
		failures = make(map[fee.PlatformID]error)
		errs     []error
	)
	for i, r := range results {
		id := platforms[i].ID
		if r.err != nil {
			log.Error().Err(r.err).Str("platform", string(id)).Msg("rate table unavailable")
			failures[id] = r.err
			errs = append(errs, fmt.Errorf("%s: %w", id, r.err))
			continue
		}
		log.Info().
			Str("platform", string(id)).
			Int("formulas", len(r.calc.Table().Domestic)).
			Bool("international", r.calc.Table().International != nil).
			Msg("rate table loaded")
		calcs = append(calcs, r.calc)
	}

	if opts.Strict && len(errs) > 0 {
		return nil, fmt.Errorf("load rate tables: %w", errors.Join(errs...))
	}

	return fee.NewDispatcher(calcs, failures), nil
}

func loadPlatform(ctx context.Context, src Source, desc fee.Descriptor) (*fee.Calculator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := src.Document(ctx, string(desc.ID))
	if err != nil {
		return nil, err
	}
	table, err := Compile(desc, doc)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", desc.ID, err)
	}
	return fee.NewCalculator(desc, table), nil
}
