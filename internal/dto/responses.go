package dto

import (
	"github.com/shopspring/decimal"

	"github.com/feewhiz/feewhiz/internal/fee"
	"github.com/feewhiz/feewhiz/internal/service"
)

type Breakdown struct {
	PercentageFee float64 `json:"percentage_fee"`
	FixedFee      float64 `json:"fixed_fee"`
	TotalFee      float64 `json:"total_fee"`
}

// Display holds the values rounded for presentation. Raw fields are never
// rounded.
type Display struct {
	Amount        string `json:"amount"`
	Fee           string `json:"fee"`
	NetAmount     string `json:"net_amount"`
	EffectiveRate string `json:"effective_rate"`
	PercentageFee string `json:"percentage_fee"`
	FixedFee      string `json:"fixed_fee"`
}

type CalculationResponse struct {
	Platform        string    `json:"platform"`
	PlatformName    string    `json:"platform_name"`
	TransactionType string    `json:"transaction_type"`
	Region          string    `json:"region"`
	Amount          float64   `json:"amount"`
	Fee             float64   `json:"fee"`
	NetAmount       float64   `json:"net_amount"`
	EffectiveRate   float64   `json:"effective_rate"`
	Breakdown       Breakdown `json:"breakdown"`
	Display         Display   `json:"display"`
}

func NewCalculationResponse(c *service.Calculation) CalculationResponse {
	r := c.Result
	return CalculationResponse{
		Platform:        string(c.Platform),
		PlatformName:    c.PlatformName,
		TransactionType: c.TransactionType,
		Region:          c.Region,
		Amount:          r.Amount,
		Fee:             r.Fee,
		NetAmount:       r.NetAmount,
		EffectiveRate:   r.EffectiveRate,
		Breakdown: Breakdown{
			PercentageFee: r.Breakdown.PercentageFee,
			FixedFee:      r.Breakdown.FixedFee,
			TotalFee:      r.Breakdown.TotalFee,
		},
		Display: NewDisplay(r),
	}
}

func NewDisplay(r fee.Result) Display {
	return Display{
		Amount:        Currency(r.Amount),
		Fee:           Currency(r.Fee),
		NetAmount:     Currency(r.NetAmount),
		EffectiveRate: Percent(r.EffectiveRate),
		PercentageFee: Currency(r.Breakdown.PercentageFee),
		FixedFee:      Currency(r.Breakdown.FixedFee),
	}
}

// Currency formats v as a two-decimal amount, rounding half away from zero.
func Currency(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Percent formats a fraction as a percentage with two decimals.
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(2) + "%"
}

type ComparisonRowResponse struct {
	Amount     float64             `json:"amount"`
	A          CalculationResponse `json:"a"`
	B          CalculationResponse `json:"b"`
	Difference float64             `json:"difference"`
	Winner     string              `json:"winner"`
	WinnerName string              `json:"winner_name,omitempty"`
	Display    string              `json:"display_difference"`
}

type ComparisonResponse struct {
	PlatformA string                  `json:"platform_a"`
	PlatformB string                  `json:"platform_b"`
	NameA     string                  `json:"name_a"`
	NameB     string                  `json:"name_b"`
	Rows      []ComparisonRowResponse `json:"rows"`
}

func NewComparisonResponse(c *service.Comparison) ComparisonResponse {
	resp := ComparisonResponse{
		PlatformA: string(c.PlatformA),
		PlatformB: string(c.PlatformB),
		NameA:     c.NameA,
		NameB:     c.NameB,
		Rows:      make([]ComparisonRowResponse, len(c.Rows)),
	}
	for i, row := range c.Rows {
		name := ""
		switch row.Winner {
		case service.WinnerA:
			name = c.NameA
		case service.WinnerB:
			name = c.NameB
		}
		diff := Currency(row.Difference)
		if row.Difference > 0 {
			diff = "+" + diff
		}
		resp.Rows[i] = ComparisonRowResponse{
			Amount:     row.Amount,
			A:          NewCalculationResponse(row.A),
			B:          NewCalculationResponse(row.B),
			Difference: row.Difference,
			Winner:     row.Winner,
			WinnerName: name,
			Display:    diff,
		}
	}
	return resp
}

type OptionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type PlatformResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Available        bool             `json:"available"`
	Error            string           `json:"error,omitempty"`
	DefaultType      string           `json:"default_transaction_type"`
	SourceURL        string           `json:"source_url,omitempty"`
	LastChecked      string           `json:"last_checked,omitempty"`
	BaseCurrency     string           `json:"base_currency,omitempty"`
	TransactionTypes []OptionResponse `json:"transaction_types"`
	Regions          []OptionResponse `json:"regions"`
	Todos            []string         `json:"todos,omitempty"`
}

func NewPlatformResponse(p service.PlatformInfo) PlatformResponse {
	return PlatformResponse{
		ID:               string(p.ID),
		Name:             p.Name,
		Available:        p.Available,
		Error:            p.Error,
		DefaultType:      p.DefaultType,
		SourceURL:        p.SourceURL,
		LastChecked:      p.LastChecked,
		BaseCurrency:     p.BaseCurrency,
		TransactionTypes: options(p.TransactionTypes),
		Regions:          options(p.Regions),
		Todos:            p.Todos,
	}
}

func options(in []fee.Option) []OptionResponse {
	out := make([]OptionResponse, len(in))
	for i, o := range in {
		out[i] = OptionResponse{ID: o.ID, Name: o.Name, Description: o.Description}
	}
	return out
}

type ReportResponse struct {
	GeneratedAt string                `json:"generated_at"`
	Amount      float64               `json:"amount"`
	Region      string                `json:"region"`
	Quotes      []CalculationResponse `json:"quotes"`
	Savings     string                `json:"savings"`
	Unavailable []string              `json:"unavailable"`
}

func NewReportResponse(r *service.ReportData) ReportResponse {
	resp := ReportResponse{
		GeneratedAt: r.GeneratedAt,
		Amount:      r.Amount,
		Region:      r.Region,
		Quotes:      make([]CalculationResponse, len(r.Quotes)),
		Savings:     Currency(r.Savings),
		Unavailable: []string{},
	}
	for i, q := range r.Quotes {
		resp.Quotes[i] = NewCalculationResponse(q)
	}
	for _, p := range r.Unavailable {
		resp.Unavailable = append(resp.Unavailable, string(p))
	}
	return resp
}
