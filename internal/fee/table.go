package fee

// Option is a selectable transaction type or region shown to users.
type Option struct {
	ID          string
	Name        string
	Description string
}

// Table is a compiled, immutable rate table for one platform.
type Table struct {
	Platform     PlatformID
	Name         string
	SourceURL    string
	LastChecked  string
	BaseCurrency string

	Domestic      map[string]Formula
	International *Surcharge

	TransactionTypes []Option
	Regions          []Option
	Todos            []string
}

func (t *Table) formula(key string) (Formula, bool) {
	f, ok := t.Domestic[key]
	return f, ok
}
