// Package fee computes payment processing fees from per-platform rate tables.
//
// Everything in this package is pure: tables are built once at startup and
// never mutated, so calculators may be shared freely between goroutines.
package fee

import (
	"fmt"
	"math"
)

type Kind string

const (
	PercentagePlusFixed Kind = "percentage_plus_fixed"
	PercentageOnly      Kind = "percentage_only"
	FixedOnly           Kind = "fixed_only"
	// InterchangePlus is priced as rate + fixed. The rate in the table is an
	// estimate of the interchange markup, not the card network's actual cost.
	InterchangePlus Kind = "interchange_plus"
)

func (k Kind) Valid() bool {
	switch k {
	case PercentagePlusFixed, PercentageOnly, FixedOnly, InterchangePlus:
		return true
	}
	return false
}

func (k Kind) hasRate() bool {
	return k != FixedOnly
}

func (k Kind) hasFixed() bool {
	return k != PercentageOnly
}

// Formula is one row of a rate table.
type Formula struct {
	Kind        Kind
	Rate        float64
	FixedAmount float64
	Cap         *float64
	MinFee      *float64
	// FixedFloor stops a rate+fixed fee from dropping below its fixed part.
	FixedFloor bool
}

// Limit returns a pointer suitable for Formula.Cap and Formula.MinFee.
func Limit(v float64) *float64 {
	return &v
}

// PercentageComponent is the rate-driven part of the fee before any cap,
// floor or minimum is applied.
func (f Formula) PercentageComponent(amount float64) float64 {
	if !f.Kind.hasRate() {
		return 0
	}
	return amount * f.Rate
}

// FixedComponent is the flat part of the fee.
func (f Formula) FixedComponent() float64 {
	if !f.Kind.hasFixed() {
		return 0
	}
	return f.FixedAmount
}

// Validate rejects formulas a rate table must not contain.
func (f Formula) Validate() error {
	if !f.Kind.Valid() {
		return fmt.Errorf("%w: kind %q", ErrInvalidFormula, f.Kind)
	}
	if err := nonNegative("rate", f.Rate); err != nil {
		return err
	}
	if err := nonNegative("fixed", f.FixedAmount); err != nil {
		return err
	}
	if f.Cap != nil {
		if err := nonNegative("cap", *f.Cap); err != nil {
			return err
		}
	}
	if f.MinFee != nil {
		if err := nonNegative("min_fee", *f.MinFee); err != nil {
			return err
		}
	}
	if f.Cap != nil && f.MinFee != nil && *f.Cap < *f.MinFee {
		return fmt.Errorf("%w: cap %.4f below min_fee %.4f", ErrInvalidFormula, *f.Cap, *f.MinFee)
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidFormula, field, v)
	}
	return nil
}

// Surcharge is a percentage added on top of the domestic fee for
// international transactions.
type Surcharge struct {
	Key  string
	Rate float64
}
