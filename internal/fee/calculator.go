package fee

import "fmt"

type Breakdown struct {
	PercentageFee float64
	FixedFee      float64
	TotalFee      float64
}

type Result struct {
	Amount        float64
	Fee           float64
	NetAmount     float64
	EffectiveRate float64
	Breakdown     Breakdown
}

// Calculator prices transactions for a single platform.
type Calculator struct {
	desc  Descriptor
	table *Table
}

func NewCalculator(desc Descriptor, table *Table) *Calculator {
	return &Calculator{desc: desc, table: table}
}

func (c *Calculator) Platform() PlatformID {
	return c.desc.ID
}

func (c *Calculator) Descriptor() Descriptor {
	return c.desc
}

func (c *Calculator) Table() *Table {
	return c.table
}

// Resolve picks the formula for txType. An empty txType means the platform
// default; a missing one falls through the platform's fallback chain.
func (c *Calculator) Resolve(txType string) (string, Formula, error) {
	if txType == "" {
		txType = c.desc.DefaultType
	}
	if f, ok := c.table.formula(txType); ok {
		return txType, f, nil
	}
	for _, key := range c.desc.Fallback {
		if f, ok := c.table.formula(key); ok {
			return key, f, nil
		}
	}
	return "", Formula{}, fmt.Errorf("%w: %q for %s", ErrUnknownTransactionType, txType, c.desc.ID)
}

// Calculate computes the fee for amount. Results are raw floats; rounding to
// currency precision is left to whoever displays them.
func (c *Calculator) Calculate(amount float64, txType, region string) (Result, error) {
	_, f, err := c.Resolve(txType)
	if err != nil {
		return Result{}, err
	}

	base := Evaluate(amount, f)
	pct := f.PercentageComponent(amount)
	fixed := f.FixedComponent()

	if region == RegionInternational && c.table.International != nil {
		surcharge := amount * c.table.International.Rate
		total := base.Fee + surcharge
		return Result{
			Amount:        amount,
			Fee:           total,
			NetAmount:     amount - total,
			EffectiveRate: effectiveRate(amount, total),
			Breakdown: Breakdown{
				PercentageFee: pct + surcharge,
				FixedFee:      fixed,
				TotalFee:      total,
			},
		}, nil
	}

	return Result{
		Amount:        amount,
		Fee:           base.Fee,
		NetAmount:     base.NetAmount,
		EffectiveRate: base.EffectiveRate,
		Breakdown: Breakdown{
			PercentageFee: pct,
			FixedFee:      fixed,
			TotalFee:      base.Fee,
		},
	}, nil
}
