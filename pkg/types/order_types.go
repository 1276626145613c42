package types

import (
	"github.com/shopspring/decimal"
)

// Addon is a post-selection price adjustment attached to an existing cart
// line (protein, meatballs, side). Replacing an addon applies the price delta
// against the line's unit price; it never stacks. Negative prices are valid
// and model "no side" discounts.
type Addon struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// LineItem is one priced, quantified entry in the cart, uniquely identified
// by Key. UnitPrice is always the absolute price of one unit under the chosen
// configuration, never a delta.
type LineItem struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	OptionLabel string          `json:"option_label,omitempty"`
	Addon       *Addon          `json:"addon,omitempty"`
}

// LineTotal is the line's contribution before any bundle override.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Quote is the priced view of a cart. Total carries a fixed two-decimal
// currency rendering; Savings is a plain number the caller formats only when
// it is positive.
type Quote struct {
	Total   string  `json:"total"`
	Savings float64 `json:"savings"`
}
