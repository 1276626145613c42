package enums

import "fmt"

// ItemType selects which addon catalog a cart line is eligible for after it
// has been added: salads take protein additions, pastas take meatballs, and
// "with side" entrees take side choices.
type ItemType string

const (
	ItemTypeNone     ItemType = ""
	ItemTypeSalad    ItemType = "salad"
	ItemTypePasta    ItemType = "pasta"
	ItemTypeWithSide ItemType = "with_side"
)

var validItemTypes = []ItemType{
	ItemTypeNone,
	ItemTypeSalad,
	ItemTypePasta,
	ItemTypeWithSide,
}

// String implements fmt.Stringer.
func (i ItemType) String() string {
	return string(i)
}

// IsValid reports whether the value is a known ItemType.
func (i ItemType) IsValid() bool {
	for _, candidate := range validItemTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseItemType converts raw input into an ItemType.
func ParseItemType(value string) (ItemType, error) {
	for _, candidate := range validItemTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item type %q", value)
}
