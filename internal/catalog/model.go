package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/pkg/enums"
)

// Option is one discrete choice on a menu item. Price is the absolute price
// of the item configured with this option, not a delta on a base price.
type Option struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// SizeOption is one size of a size/topping matrix item. Price is the base
// price of that size before topping and extra-cheese surcharges.
type SizeOption struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// MenuItem is a single orderable dish. Exactly one configuration shape
// applies: a flat price, a discrete options list, or a sizes+toppings matrix.
// Type additionally marks the item eligible for a post-add addon catalog.
type MenuItem struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Options     []Option        `json:"options,omitempty"`
	Sizes       []SizeOption    `json:"sizes,omitempty"`
	Toppings    []string        `json:"toppings,omitempty"`
	Proteins    []Option        `json:"proteins,omitempty"`

	// ExtraCheesePricing maps a size name to the flat extra-cheese surcharge
	// for that size. Required for every size of a matrix item.
	ExtraCheesePricing map[string]decimal.Decimal `json:"extra_cheese_pricing,omitempty"`

	Type enums.ItemType `json:"type,omitempty"`
}

// Kind reports the configuration class of the item.
func (m MenuItem) Kind() enums.ConfigKind {
	switch {
	case len(m.Sizes) > 0:
		return enums.ConfigKindSizeToppingMatrix
	case m.Type == enums.ItemTypeWithSide && len(m.Options) > 0:
		return enums.ConfigKindWithSide
	case len(m.Options) > 0:
		return enums.ConfigKindChoiceList
	default:
		return enums.ConfigKindFlat
	}
}

// RequiresSelection reports whether the item cannot be added without a
// configured choice.
func (m MenuItem) RequiresSelection() bool {
	return m.Kind() != enums.ConfigKindFlat
}

// FindOption returns the named option, or false when the item has no such
// option.
func (m MenuItem) FindOption(name string) (Option, bool) {
	for _, opt := range m.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// FindSize returns the named size, or false when the item has no such size.
func (m MenuItem) FindSize(name string) (SizeOption, bool) {
	for _, size := range m.Sizes {
		if size.Name == name {
			return size, true
		}
	}
	return SizeOption{}, false
}

// HasToppingTier reports whether the item lists the named topping tier.
func (m MenuItem) HasToppingTier(name string) bool {
	for _, tier := range m.Toppings {
		if tier == name {
			return true
		}
	}
	return false
}

// Category groups menu items under a display heading.
type Category struct {
	Category string     `json:"category" validate:"required"`
	Items    []MenuItem `json:"items" validate:"required,dive"`
}

// Menu is the full static catalog, loaded once at startup.
type Menu struct {
	Categories []Category `json:"menu" validate:"required,dive"`
}
