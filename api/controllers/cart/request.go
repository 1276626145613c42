package cart

import (
	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/internal/catalog"
	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
	"github.com/boondocksgrill/ordering/pkg/types"
)

// AddItemRequest carries one configured add. Option serves choice-list and
// with-side items; the pizza fields serve size/topping matrix items.
type AddItemRequest struct {
	Item        string `json:"item" validate:"required"`
	Option      string `json:"option,omitempty"`
	Size        string `json:"size,omitempty"`
	Topping     string `json:"topping,omitempty"`
	ExtraCheese bool   `json:"extra_cheese,omitempty"`
}

func (r AddItemRequest) toSelection() catalog.Selection {
	sel := catalog.Selection{Option: r.Option}
	if r.Size != "" {
		// Setter order matters: size first, then the dependent choices.
		sel.Pizza.SetSize(r.Size)
		sel.Pizza.SetToppingTier(r.Topping)
		sel.Pizza.SetExtraCheese(r.ExtraCheese)
	}
	return sel
}

// SetAddonRequest names the addition to attach to an existing line.
type SetAddonRequest struct {
	Addon string `json:"addon" validate:"required"`
}

// ReplaceLineInput mirrors one line of a bulk cart replace.
type ReplaceLineInput struct {
	Key         string            `json:"key" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	UnitPrice   string            `json:"unit_price" validate:"required"`
	Quantity    int               `json:"quantity" validate:"required,min=1"`
	OptionLabel string            `json:"option_label,omitempty"`
	Addon       *ReplaceAddonItem `json:"addon,omitempty"`
}

// ReplaceAddonItem mirrors an addon attached to a replaced line.
type ReplaceAddonItem struct {
	Name  string `json:"name" validate:"required"`
	Price string `json:"price" validate:"required"`
}

// ReplaceCartRequest swaps the whole cart.
type ReplaceCartRequest struct {
	Lines []ReplaceLineInput `json:"lines" validate:"dive"`
}

func (r ReplaceCartRequest) toLineItems() ([]types.LineItem, error) {
	lines := make([]types.LineItem, 0, len(r.Lines))
	for _, input := range r.Lines {
		unitPrice, err := decimal.NewFromString(input.UnitPrice)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit price")
		}
		line := types.LineItem{
			Key:         input.Key,
			Name:        input.Name,
			UnitPrice:   unitPrice,
			Quantity:    input.Quantity,
			OptionLabel: input.OptionLabel,
		}
		if input.Addon != nil {
			price, err := decimal.NewFromString(input.Addon.Price)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid addon price")
			}
			line.Addon = &types.Addon{Name: input.Addon.Name, Price: price}
		}
		lines = append(lines, line)
	}
	return lines, nil
}
