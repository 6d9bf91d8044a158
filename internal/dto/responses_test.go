package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feewhiz/feewhiz/internal/fee"
	"github.com/feewhiz/feewhiz/internal/service"
)

func TestCurrency(t *testing.T) {
	cases := map[float64]string{
		0:                  "0.00",
		3.98:               "3.98",
		3.9800000000000004: "3.98",
		0.176:              "0.18",
		0.125:              "0.13",
		14.8:               "14.80",
		-3.14:              "-3.14",
		999999:             "999999.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(in), "input %v", in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "3.98%", Percent(0.0398))
	assert.Equal(t, "17.60%", Percent(0.176))
	assert.Equal(t, "0.00%", Percent(0))
}

func TestNewComparisonResponse(t *testing.T) {
	calc := func(id fee.PlatformID, f float64) *service.Calculation {
		return &service.Calculation{Platform: id, Result: fee.Result{Amount: 100, Fee: f, NetAmount: 100 - f}}
	}
	cmp := &service.Comparison{
		PlatformA: fee.PayPal,
		PlatformB: fee.Stripe,
		NameA:     "PayPal",
		NameB:     "Stripe",
		Rows: []service.ComparisonRow{
			{Amount: 100, A: calc(fee.PayPal, 3.98), B: calc(fee.Stripe, 3.2), Difference: 0.78, Winner: service.WinnerB},
			{Amount: 100, A: calc(fee.PayPal, 1), B: calc(fee.Stripe, 2), Difference: -1, Winner: service.WinnerA},
			{Amount: 100, A: calc(fee.PayPal, 1), B: calc(fee.Stripe, 1), Difference: 0, Winner: service.WinnerTie},
		},
	}

	resp := NewComparisonResponse(cmp)
	assert.Equal(t, "+0.78", resp.Rows[0].Display)
	assert.Equal(t, "Stripe", resp.Rows[0].WinnerName)
	assert.Equal(t, "-1.00", resp.Rows[1].Display)
	assert.Equal(t, "PayPal", resp.Rows[1].WinnerName)
	assert.Equal(t, "0.00", resp.Rows[2].Display)
	assert.Empty(t, resp.Rows[2].WinnerName)
	assert.Equal(t, "3.98", resp.Rows[0].A.Display.Fee)
}
