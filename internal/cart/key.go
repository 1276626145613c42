package cart

import (
	"strings"

	"github.com/google/uuid"

	"github.com/boondocksgrill/ordering/internal/catalog"
	"github.com/boondocksgrill/ordering/pkg/enums"
)

// Key is the typed identity of a prospective cart line. Two additions merge
// into one line only when their keys render identically, which requires every
// component of the key to match. WithSide keys carry a fresh token per add,
// so they never merge.
type Key struct {
	Kind        enums.ConfigKind
	Item        string
	Option      string
	Size        string
	ToppingTier string
	ExtraCheese bool
	Token       string
}

// PlainKey identifies an unconfigured item.
func PlainKey(item string) Key {
	return Key{Kind: enums.ConfigKindFlat, Item: item}
}

// OptionKey identifies an item configured with a discrete option.
func OptionKey(item, option string) Key {
	return Key{Kind: enums.ConfigKindChoiceList, Item: item, Option: option}
}

// PizzaKey identifies a size/topping matrix configuration. Name, size,
// topping tier and the extra-cheese marker must all match for a merge.
func PizzaKey(item string, sel catalog.PizzaSelection) Key {
	return Key{
		Kind:        enums.ConfigKindSizeToppingMatrix,
		Item:        item,
		Size:        sel.Size,
		ToppingTier: sel.ToppingTier,
		ExtraCheese: sel.ExtraCheese,
	}
}

// DistinctKey identifies a with-side order. The embedded token guarantees a
// new line on every add, so each order can take its own side later.
func DistinctKey(item, option string) Key {
	return Key{
		Kind:   enums.ConfigKindWithSide,
		Item:   item,
		Option: option,
		Token:  uuid.NewString(),
	}
}

// Mergeable reports whether re-adding the same configuration should
// increment the existing line instead of creating a new one.
func (k Key) Mergeable() bool {
	return k.Kind != enums.ConfigKindWithSide
}

// String renders the stable string form used as the cart's primary key.
func (k Key) String() string {
	parts := []string{k.Item}
	switch k.Kind {
	case enums.ConfigKindChoiceList:
		parts = append(parts, k.Option)
	case enums.ConfigKindSizeToppingMatrix:
		parts = append(parts, k.Size, k.ToppingTier)
		if k.ExtraCheese {
			parts = append(parts, "Extra Cheese")
		}
	case enums.ConfigKindWithSide:
		parts = append(parts, k.Option, k.Token)
	}
	return strings.Join(parts, "-")
}
