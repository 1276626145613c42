package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/pkg/enums"
	"github.com/boondocksgrill/ordering/pkg/types"
)

func dollars(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Default addon catalogs by item type. A salad item may override the protein
// list with its own `proteins` entry in the menu file.
var (
	proteinAddons = []types.Addon{
		{Name: "No Addition", Price: dollars("0.00")},
		{Name: "Grilled Chicken", Price: dollars("4.00")},
		{Name: "Pepper Chicken", Price: dollars("4.00")},
		{Name: "Crispy Chicken", Price: dollars("4.00")},
		{Name: "Seafood", Price: dollars("4.00")},
		{Name: "Donair", Price: dollars("4.00")},
	}

	pastaAddons = []types.Addon{
		{Name: "No Addition", Price: dollars("0.00")},
		{Name: "Meatballs", Price: dollars("4.00")},
	}

	// The "No Side" entry discounts the plate; negative prices are valid and
	// must flow through addon deltas unclamped.
	sideAddons = []types.Addon{
		{Name: "No Side", Price: dollars("-2.00")},
		{Name: "Fries", Price: dollars("0.00")},
		{Name: "Caesar Salad", Price: dollars("1.00")},
		{Name: "Onion Rings", Price: dollars("1.50")},
		{Name: "Poutine", Price: dollars("3.00")},
	}
)

// AddonsFor returns the addon catalog an item of the given type is eligible
// for. Items with no type take no addons.
func AddonsFor(itemType enums.ItemType) []types.Addon {
	switch itemType {
	case enums.ItemTypeSalad:
		return cloneAddons(proteinAddons)
	case enums.ItemTypePasta:
		return cloneAddons(pastaAddons)
	case enums.ItemTypeWithSide:
		return cloneAddons(sideAddons)
	default:
		return nil
	}
}

// AddonsForItem resolves the eligible addon catalog for a concrete item,
// honoring a salad's own protein list when present.
func AddonsForItem(item MenuItem) []types.Addon {
	if item.Type == enums.ItemTypeSalad && len(item.Proteins) > 0 {
		addons := make([]types.Addon, 0, len(item.Proteins))
		for _, protein := range item.Proteins {
			addons = append(addons, types.Addon{Name: protein.Name, Price: protein.Price})
		}
		return addons
	}
	return AddonsFor(item.Type)
}

func cloneAddons(addons []types.Addon) []types.Addon {
	out := make([]types.Addon, len(addons))
	copy(out, addons)
	return out
}
