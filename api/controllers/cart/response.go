package cart

import (
	"github.com/boondocksgrill/ordering/internal/pricing"
	"github.com/boondocksgrill/ordering/pkg/types"
)

// AddonView is the wire shape of an addon attached to a line.
type AddonView struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// LineView is the wire shape of one cart line. LineTotal already folds in
// the wings bundle pricing so rows sum to the cart total.
type LineView struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	OptionLabel string     `json:"option_label,omitempty"`
	UnitPrice   string     `json:"unit_price"`
	Quantity    int        `json:"quantity"`
	Addon       *AddonView `json:"addon,omitempty"`
	LineTotal   string     `json:"line_total"`
}

// CartView is the wire shape of the whole cart plus its quote.
type CartView struct {
	Lines   []LineView `json:"lines"`
	Total   string     `json:"total"`
	Savings float64    `json:"savings"`
}

// CheckoutView wraps the finalized order, its quote and the printable receipt.
type CheckoutView struct {
	Lines   []LineView `json:"lines"`
	Total   string     `json:"total"`
	Savings float64    `json:"savings"`
	Receipt string     `json:"receipt"`
}

func newLineView(line types.LineItem) LineView {
	view := LineView{
		Key:         line.Key,
		Name:        line.Name,
		OptionLabel: line.OptionLabel,
		UnitPrice:   line.UnitPrice.StringFixed(2),
		Quantity:    line.Quantity,
		LineTotal:   pricing.LineContribution(line).StringFixed(2),
	}
	if line.Addon != nil {
		view.Addon = &AddonView{
			Name:  line.Addon.Name,
			Price: line.Addon.Price.StringFixed(2),
		}
	}
	return view
}

func newCartView(lines []types.LineItem, quote types.Quote) CartView {
	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, newLineView(line))
	}
	return CartView{Lines: views, Total: quote.Total, Savings: quote.Savings}
}
