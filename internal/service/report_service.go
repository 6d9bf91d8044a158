package service

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feewhiz/feewhiz/internal/fee"
)

type ReportService struct {
	comparison *ComparisonService
}

func NewReportService(comparison *ComparisonService) *ReportService {
	return &ReportService{comparison: comparison}
}

type ReportData struct {
	GeneratedAt string
	Amount      float64
	Region      string
	Quotes      []*Calculation
	// Savings is what the cheapest platform saves over the most expensive.
	Savings     float64
	Unavailable []fee.PlatformID
}

// GenerateReport quotes amount on every platform. Platforms whose rate table
// failed to load are listed rather than priced.
func (s *ReportService) GenerateReport(ctx context.Context, amount float64, region string) (*ReportData, error) {
	if region == "" {
		region = fee.RegionDomestic
	}

	quotes, err := s.comparison.Quote(ctx, amount, region)
	if err != nil {
		return nil, err
	}

	data := &ReportData{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05 MST"),
		Amount:      amount,
		Region:      region,
		Quotes:      quotes,
	}
	if len(quotes) > 1 {
		data.Savings = quotes[len(quotes)-1].Result.Fee - quotes[0].Result.Fee
	}
	failures := s.comparison.dispatcher.Failures()
	for _, desc := range fee.Platforms() {
		if _, ok := failures[desc.ID]; ok {
			data.Unavailable = append(data.Unavailable, desc.ID)
		}
	}
	return data, nil
}

//go:embed templates/report.html
var ReportTemplate string

func (s *ReportService) RenderHTML(data *ReportData) (string, error) {
	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return decimal.NewFromFloat(v).StringFixed(2)
		},
		"percent": func(v float64) string {
			return decimal.NewFromFloat(v).Shift(2).StringFixed(2) + "%"
		},
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(ReportTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
