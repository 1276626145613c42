package cart

import (
	"github.com/boondocksgrill/ordering/pkg/types"
)

// Snapshot is an immutable view of the cart. Every mutation returns a new
// snapshot and leaves the receiver untouched, so the presentation layer can
// hold prior snapshots safely.
type Snapshot []types.LineItem

// Find returns the line with the given key.
func (s Snapshot) Find(key string) (types.LineItem, bool) {
	for _, line := range s {
		if line.Key == key {
			return line, true
		}
	}
	return types.LineItem{}, false
}

// QuantityOf returns the quantity for the key, or 0 when absent.
func (s Snapshot) QuantityOf(key string) int {
	if line, ok := s.Find(key); ok {
		return line.Quantity
	}
	return 0
}

// Append adds a brand-new line to the end of the cart.
func (s Snapshot) Append(line types.LineItem) Snapshot {
	next := make(Snapshot, len(s), len(s)+1)
	copy(next, s)
	return append(next, line)
}

// Increment bumps the quantity of an existing line. The second return is
// false when the key is absent.
func (s Snapshot) Increment(key string) (Snapshot, bool) {
	if _, ok := s.Find(key); !ok {
		return s, false
	}
	next := make(Snapshot, len(s))
	copy(next, s)
	for i := range next {
		if next[i].Key == key {
			next[i].Quantity++
		}
	}
	return next, true
}

// Decrement lowers the quantity of an existing line, removing it entirely
// when the quantity reaches zero. A line never persists at quantity 0.
// Absent keys are a no-op.
func (s Snapshot) Decrement(key string) Snapshot {
	line, ok := s.Find(key)
	if !ok {
		return s
	}
	if line.Quantity <= 1 {
		return s.Delete(key)
	}
	next := make(Snapshot, len(s))
	copy(next, s)
	for i := range next {
		if next[i].Key == key {
			next[i].Quantity--
		}
	}
	return next
}

// Delete removes the line regardless of quantity. Absent keys are a no-op.
func (s Snapshot) Delete(key string) Snapshot {
	next := make(Snapshot, 0, len(s))
	for _, line := range s {
		if line.Key != key {
			next = append(next, line)
		}
	}
	return next
}

// SetAddon replaces the line's addon and applies the price delta
// (-old + new) to the unit price. Negative addon prices pass through
// unclamped. The second return is false when the key is absent.
func (s Snapshot) SetAddon(key string, addon types.Addon) (Snapshot, bool) {
	if _, ok := s.Find(key); !ok {
		return s, false
	}
	next := make(Snapshot, len(s))
	copy(next, s)
	for i := range next {
		if next[i].Key != key {
			continue
		}
		price := next[i].UnitPrice
		if next[i].Addon != nil {
			price = price.Sub(next[i].Addon.Price)
		}
		applied := addon
		next[i].Addon = &applied
		next[i].UnitPrice = price.Add(addon.Price)
	}
	return next, true
}
