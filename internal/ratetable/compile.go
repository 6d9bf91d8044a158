package ratetable

import (
	"fmt"

	"github.com/feewhiz/feewhiz/internal/fee"
	"github.com/feewhiz/feewhiz/internal/model"
)

// Compile validates doc and turns it into an immutable fee.Table for desc.
func Compile(desc fee.Descriptor, doc *model.RateDocument) (*fee.Table, error) {
	if doc.Platform != string(desc.ID) {
		return nil, fmt.Errorf("%w: document is for %q, expected %q", fee.ErrInvalidFormula, doc.Platform, desc.ID)
	}
	if len(doc.Fees.Domestic) == 0 {
		return nil, fmt.Errorf("%w: no domestic fees", fee.ErrInvalidFormula)
	}

	domestic := make(map[string]fee.Formula, len(doc.Fees.Domestic))
	for key, row := range doc.Fees.Domestic {
		f, err := compileFormula(row, desc.FixedFloor)
		if err != nil {
			return nil, fmt.Errorf("domestic %s: %w", key, err)
		}
		domestic[key] = f
	}

	if !hasAny(domestic, desc.DefaultType, desc.Fallback) {
		return nil, fmt.Errorf("%w: none of %q or fallback %v defined", fee.ErrUnknownTransactionType, desc.DefaultType, desc.Fallback)
	}

	table := &fee.Table{
		Platform:     desc.ID,
		Name:         doc.Name,
		SourceURL:    doc.SourceURL,
		LastChecked:  doc.LastChecked,
		BaseCurrency: doc.BaseCurrency,
		Domestic:     domestic,
		Todos:        append([]string(nil), doc.Todos...),
	}
	if table.Name == "" {
		table.Name = desc.Name
	}

	if desc.SurchargeKey != "" {
		if row, ok := doc.Fees.International[desc.SurchargeKey]; ok {
			s, err := compileSurcharge(desc.SurchargeKey, row)
			if err != nil {
				return nil, err
			}
			table.International = s
		}
	}

	for _, tt := range doc.TransactionTypes {
		table.TransactionTypes = append(table.TransactionTypes, fee.Option{ID: tt.ID, Name: tt.Name, Description: tt.Description})
	}
	for _, r := range doc.Regions {
		table.Regions = append(table.Regions, fee.Option{ID: r.ID, Name: r.Name})
	}

	return table, nil
}

func compileFormula(row model.FeeFormula, fixedFloor bool) (fee.Formula, error) {
	f := fee.Formula{
		Kind:        fee.Kind(row.Type),
		Rate:        row.Rate,
		FixedAmount: row.Fixed,
	}
	if row.Cap != nil {
		f.Cap = fee.Limit(*row.Cap)
	}
	if row.MinFee != nil {
		f.MinFee = fee.Limit(*row.MinFee)
	}
	if err := f.Validate(); err != nil {
		return fee.Formula{}, err
	}

	switch f.Kind {
	case fee.FixedOnly:
		f.Rate = 0
	case fee.PercentageOnly:
		f.FixedAmount = 0
	case fee.PercentagePlusFixed, fee.InterchangePlus:
		f.FixedFloor = fixedFloor
	}
	return f, nil
}

func compileSurcharge(key string, row model.FeeFormula) (*fee.Surcharge, error) {
	if fee.Kind(row.Type) != fee.PercentageOnly {
		return nil, fmt.Errorf("%w: international %s must be %s, got %q", fee.ErrInvalidFormula, key, fee.PercentageOnly, row.Type)
	}
	f := fee.Formula{Kind: fee.PercentageOnly, Rate: row.Rate}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("international %s: %w", key, err)
	}
	return &fee.Surcharge{Key: key, Rate: row.Rate}, nil
}

func hasAny(domestic map[string]fee.Formula, def string, fallback []string) bool {
	if _, ok := domestic[def]; ok {
		return true
	}
	for _, key := range fallback {
		if _, ok := domestic[key]; ok {
			return true
		}
	}
	return false
}
