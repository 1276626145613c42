package enums

import "fmt"

// ConfigKind enumerates the configuration a menu item requires before it can
// be added to the cart. The kind drives both price resolution and how line
// identity keys merge.
type ConfigKind string

const (
	// ConfigKindFlat items carry a single base price and no selections.
	ConfigKindFlat ConfigKind = "flat"
	// ConfigKindChoiceList items require one option from a flat list.
	ConfigKindChoiceList ConfigKind = "choice_list"
	// ConfigKindSizeToppingMatrix items (pizzas) require a size plus a
	// topping tier, with optional extra cheese.
	ConfigKindSizeToppingMatrix ConfigKind = "size_topping_matrix"
	// ConfigKindWithSide items require an option and never merge: each add
	// creates its own line so sides can be customized independently.
	ConfigKindWithSide ConfigKind = "with_side"
)

var validConfigKinds = []ConfigKind{
	ConfigKindFlat,
	ConfigKindChoiceList,
	ConfigKindSizeToppingMatrix,
	ConfigKindWithSide,
}

// String implements fmt.Stringer.
func (c ConfigKind) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ConfigKind.
func (c ConfigKind) IsValid() bool {
	for _, candidate := range validConfigKinds {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseConfigKind converts raw input into a ConfigKind.
func ParseConfigKind(value string) (ConfigKind, error) {
	for _, candidate := range validConfigKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid config kind %q", value)
}
