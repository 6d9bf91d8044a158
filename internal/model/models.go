package model

type FeeFormula struct {
	Type   string   `json:"type"`
	Rate   float64  `json:"rate"`
	Fixed  float64  `json:"fixed"`
	Cap    *float64 `json:"cap,omitempty"`
	MinFee *float64 `json:"min_fee,omitempty"`
}

type Fees struct {
	Domestic      map[string]FeeFormula `json:"domestic"`
	International map[string]FeeFormula `json:"international,omitempty"`
}

type TransactionType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RateDocument is the on-disk and in-database shape of one platform's fees.
type RateDocument struct {
	Platform         string            `json:"platform"`
	Name             string            `json:"name"`
	SourceURL        string            `json:"source_url"`
	LastChecked      string            `json:"last_checked"`
	BaseCurrency     string            `json:"base_currency"`
	Fees             Fees              `json:"fees"`
	TransactionTypes []TransactionType `json:"transaction_types"`
	Regions          []Region          `json:"regions"`
	Todos            []string          `json:"todos"`
}
