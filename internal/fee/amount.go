package fee

import (
	"fmt"
	"math"
)

// MaxAmount is the largest amount callers may price.
const MaxAmount = 999999

// ValidateAmount rejects amounts callers must not send to a calculator.
// Calculators themselves accept zero.
func ValidateAmount(amount float64) error {
	switch {
	case math.IsNaN(amount) || math.IsInf(amount, 0):
		return fmt.Errorf("%w: must be a finite number", ErrInvalidAmount)
	case amount <= 0:
		return fmt.Errorf("%w: must be greater than 0", ErrInvalidAmount)
	case amount > MaxAmount:
		return fmt.Errorf("%w: must be less than 1,000,000", ErrInvalidAmount)
	}
	return nil
}
