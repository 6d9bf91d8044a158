package fee

import (
	"fmt"
	"strings"
)

type PlatformID string

const (
	PayPal       PlatformID = "paypal"
	Stripe       PlatformID = "stripe"
	Square       PlatformID = "square"
	Adyen        PlatformID = "adyen"
	Braintree    PlatformID = "braintree"
	AuthorizeNet PlatformID = "authorize-net"
)

const (
	RegionDomestic      = "domestic"
	RegionInternational = "international"
)

// Descriptor holds the per-platform rules that are not part of the rate
// documents themselves.
type Descriptor struct {
	ID   PlatformID
	Name string
	// DefaultType is used when the caller does not name a transaction type.
	DefaultType string
	// Fallback is tried in order when the requested type is missing.
	Fallback []string
	// SurchargeKey names the fees.international entry applied for the
	// international region. Empty means the platform ignores region.
	SurchargeKey string
	// FixedFloor is stamped onto every rate+fixed formula of the platform.
	FixedFloor bool
}

var registry = []Descriptor{
	{
		ID:           PayPal,
		Name:         "PayPal",
		DefaultType:  "standard",
		Fallback:     []string{"standard"},
		SurchargeKey: "additional_fee",
	},
	{
		ID:           Stripe,
		Name:         "Stripe",
		DefaultType:  "standard",
		Fallback:     []string{"standard"},
		SurchargeKey: "additional_fee",
	},
	{
		ID:          Square,
		Name:        "Square",
		DefaultType: "in_person",
		Fallback:    []string{"in_person"},
		FixedFloor:  true,
	},
	{
		ID:          Adyen,
		Name:        "Adyen",
		DefaultType: "card_interchange",
		Fallback:    []string{"us_cards", "card_interchange"},
	},
	{
		ID:           Braintree,
		Name:         "Braintree",
		DefaultType:  "standard",
		Fallback:     []string{"standard"},
		SurchargeKey: "multi_currency",
	},
	{
		ID:          AuthorizeNet,
		Name:        "Authorize.Net",
		DefaultType: "standard",
		Fallback:    []string{"standard"},
	},
}

// Platforms returns every supported platform in display order.
func Platforms() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

func Describe(id PlatformID) (Descriptor, bool) {
	for _, d := range registry {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ParsePlatformID is the only place an arbitrary string becomes a PlatformID.
func ParsePlatformID(s string) (PlatformID, error) {
	id := PlatformID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Describe(id); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
	return id, nil
}
