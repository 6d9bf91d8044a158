package fee

import "errors"

var (
	ErrUnknownPlatform        = errors.New("unknown platform")
	ErrPlatformUnavailable    = errors.New("platform rate table unavailable")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidFormula         = errors.New("invalid fee formula")
)
