package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/feewhiz/feewhiz/internal/fee"
)

// SampleAmounts are priced when a comparison is requested without amounts.
var SampleAmounts = []float64{50, 100, 500, 1000}

type ComparisonService struct {
	dispatcher *fee.Dispatcher
}

func NewComparisonService(dispatcher *fee.Dispatcher) *ComparisonService {
	return &ComparisonService{dispatcher: dispatcher}
}

type ComparisonRow struct {
	Amount     float64
	A          *Calculation
	B          *Calculation
	Difference float64
	Winner     string
}

type Comparison struct {
	PlatformA fee.PlatformID
	PlatformB fee.PlatformID
	NameA     string
	NameB     string
	Rows      []ComparisonRow
}

const (
	WinnerA   = "a"
	WinnerB   = "b"
	WinnerTie = "tie"
)

// Compare prices each amount on both platforms with their default
// transaction type. The two sides never share intermediate values.
func (s *ComparisonService) Compare(ctx context.Context, platformA, platformB string, amounts []float64) (*Comparison, error) {
	if len(amounts) == 0 {
		amounts = SampleAmounts
	}
	for _, amt := range amounts {
		if err := fee.ValidateAmount(amt); err != nil {
			return nil, err
		}
	}

	calcA, err := s.dispatcher.Dispatch(platformA)
	if err != nil {
		return nil, err
	}
	calcB, err := s.dispatcher.Dispatch(platformB)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		PlatformA: calcA.Platform(),
		PlatformB: calcB.Platform(),
		NameA:     calcA.Table().Name,
		NameB:     calcB.Table().Name,
		Rows:      make([]ComparisonRow, len(amounts)),
	}

	for i, amt := range amounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := calculate(calcA, amt, "", fee.RegionDomestic)
		if err != nil {
			return nil, err
		}
		b, err := calculate(calcB, amt, "", fee.RegionDomestic)
		if err != nil {
			return nil, err
		}

		diff := a.Result.Fee - b.Result.Fee
		cmp.Rows[i] = ComparisonRow{
			Amount:     amt,
			A:          a,
			B:          b,
			Difference: diff,
			Winner:     winner(diff),
		}
	}

	return cmp, nil
}

func winner(diff float64) string {
	switch {
	case diff < 0:
		return WinnerA
	case diff > 0:
		return WinnerB
	}
	return WinnerTie
}

// Quote prices amount on every available platform and orders the results
// from cheapest to most expensive.
func (s *ComparisonService) Quote(ctx context.Context, amount float64, region string) ([]*Calculation, error) {
	if err := fee.ValidateAmount(amount); err != nil {
		return nil, err
	}

	calcs := s.dispatcher.Available()
	results := make([]*Calculation, len(calcs))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range calcs {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := calculate(c, amount, "", region)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.Fee < results[j].Result.Fee
	})
	return results, nil
}
