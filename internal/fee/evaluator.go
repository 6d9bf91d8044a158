package fee

import "math"

// Outcome is the raw result of applying a single formula to an amount.
type Outcome struct {
	Fee           float64
	NetAmount     float64
	EffectiveRate float64
}

// Evaluate applies f to amount. A kind that is not recognised yields a zero
// fee; tables are validated on load so this only happens with hand-built
// formulas.
//
// Adjustments run in a fixed order: the kind's base formula, the fixed
// floor, the cap, and finally the minimum fee.
func Evaluate(amount float64, f Formula) Outcome {
	var v float64

	switch f.Kind {
	case PercentagePlusFixed, InterchangePlus:
		v = amount*f.Rate + f.FixedAmount
		if f.FixedFloor && f.FixedAmount > 0 && v < f.FixedAmount {
			v = f.FixedAmount
		}
	case PercentageOnly:
		v = amount * f.Rate
	case FixedOnly:
		v = f.FixedAmount
	}

	if f.Cap != nil {
		v = math.Min(v, *f.Cap)
	}
	if f.MinFee != nil {
		v = math.Max(v, *f.MinFee)
	}

	return outcome(amount, v)
}

func outcome(amount, fee float64) Outcome {
	return Outcome{
		Fee:           fee,
		NetAmount:     amount - fee,
		EffectiveRate: effectiveRate(amount, fee),
	}
}

func effectiveRate(amount, fee float64) float64 {
	if amount > 0 {
		return fee / amount
	}
	return 0
}
