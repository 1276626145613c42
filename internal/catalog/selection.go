package catalog

// PizzaSelection tracks the in-progress configuration of a size/topping
// matrix item. Size is the first-order choice: changing it invalidates the
// dependent topping and extra-cheese choices, so SetSize clears them.
type PizzaSelection struct {
	Size        string
	ToppingTier string
	ExtraCheese bool
}

// SetSize records a size choice and resets the dependent fields.
func (s *PizzaSelection) SetSize(size string) {
	if s.Size == size {
		return
	}
	s.Size = size
	s.ToppingTier = ""
	s.ExtraCheese = false
}

// SetToppingTier records a topping tier choice.
func (s *PizzaSelection) SetToppingTier(tier string) {
	s.ToppingTier = tier
}

// SetExtraCheese toggles extra cheese.
func (s *PizzaSelection) SetExtraCheese(on bool) {
	s.ExtraCheese = on
}

// Complete reports whether the selection can price a pizza.
func (s PizzaSelection) Complete() bool {
	return s.Size != "" && s.ToppingTier != ""
}

// Selection is the configuration payload accompanying an add: at most one of
// Option or the pizza fields is meaningful, decided by the item's ConfigKind.
type Selection struct {
	Option string
	Pizza  PizzaSelection
}

// Empty reports whether no choice at all was made.
func (s Selection) Empty() bool {
	return s.Option == "" && s.Pizza == (PizzaSelection{})
}
