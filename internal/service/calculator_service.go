package service

import (
	"context"
	"fmt"

	"github.com/feewhiz/feewhiz/internal/fee"
)

type CalculatorService struct {
	dispatcher *fee.Dispatcher
}

func NewCalculatorService(dispatcher *fee.Dispatcher) *CalculatorService {
	return &CalculatorService{dispatcher: dispatcher}
}

type CalculationRequest struct {
	Platform        string
	Amount          float64
	TransactionType string
	Region          string
}

type Calculation struct {
	Platform        fee.PlatformID
	PlatformName    string
	TransactionType string
	Region          string
	Result          fee.Result
}

func (s *CalculatorService) Calculate(ctx context.Context, req CalculationRequest) (*Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fee.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	calc, err := s.dispatcher.Dispatch(req.Platform)
	if err != nil {
		return nil, err
	}
	return calculate(calc, req.Amount, req.TransactionType, req.Region)
}

func calculate(calc *fee.Calculator, amount float64, txType, region string) (*Calculation, error) {
	if region == "" {
		region = fee.RegionDomestic
	}

	resolved, _, err := calc.Resolve(txType)
	if err != nil {
		return nil, err
	}
	result, err := calc.Calculate(amount, resolved, region)
	if err != nil {
		return nil, fmt.Errorf("calculate %s: %w", calc.Platform(), err)
	}

	return &Calculation{
		Platform:        calc.Platform(),
		PlatformName:    calc.Table().Name,
		TransactionType: resolved,
		Region:          region,
		Result:          result,
	}, nil
}

// MsgRateTableUnavailable is reported for platforms whose rate table failed
// to load. The cause is logged by the loader.
const MsgRateTableUnavailable = "rate table unavailable"

type PlatformInfo struct {
	ID               fee.PlatformID
	Name             string
	Available        bool
	Error            string
	DefaultType      string
	SourceURL        string
	LastChecked      string
	BaseCurrency     string
	TransactionTypes []fee.Option
	Regions          []fee.Option
	Todos            []string
}

// Platforms describes every registered platform, including ones whose rate
// table failed to load.
func (s *CalculatorService) Platforms() []PlatformInfo {
	failures := s.dispatcher.Failures()
	loaded := make(map[fee.PlatformID]*fee.Calculator)
	for _, c := range s.dispatcher.Available() {
		loaded[c.Platform()] = c
	}

	var out []PlatformInfo
	for _, desc := range fee.Platforms() {
		if c, ok := loaded[desc.ID]; ok {
			out = append(out, platformInfo(c))
			continue
		}
		info := PlatformInfo{ID: desc.ID, Name: desc.Name, DefaultType: desc.DefaultType}
		if _, ok := failures[desc.ID]; ok {
			info.Error = MsgRateTableUnavailable
		}
		out = append(out, info)
	}
	return out
}

func (s *CalculatorService) Platform(id string) (*PlatformInfo, error) {
	calc, err := s.dispatcher.Dispatch(id)
	if err != nil {
		return nil, err
	}
	info := platformInfo(calc)
	return &info, nil
}

func platformInfo(c *fee.Calculator) PlatformInfo {
	t := c.Table()
	return PlatformInfo{
		ID:               c.Platform(),
		Name:             t.Name,
		Available:        true,
		DefaultType:      c.Descriptor().DefaultType,
		SourceURL:        t.SourceURL,
		LastChecked:      t.LastChecked,
		BaseCurrency:     t.BaseCurrency,
		TransactionTypes: t.TransactionTypes,
		Regions:          t.Regions,
		Todos:            t.Todos,
	}
}
