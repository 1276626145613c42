package cart

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/boondocksgrill/ordering/internal/catalog"
	"github.com/boondocksgrill/ordering/internal/pricing"
	"github.com/boondocksgrill/ordering/pkg/enums"
	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
	"github.com/boondocksgrill/ordering/pkg/logger"
	"github.com/boondocksgrill/ordering/pkg/metrics"
	"github.com/boondocksgrill/ordering/pkg/types"
)

// Service owns the single in-memory cart. Mutations are serialized by a
// mutex the way the original UI's event loop serialized clicks; every
// operation works against the current snapshot and swaps in the snapshot it
// produces.
type Service interface {
	AddItem(ctx context.Context, itemName string, sel catalog.Selection) (Snapshot, error)
	Decrement(ctx context.Context, key string) Snapshot
	Delete(ctx context.Context, key string) Snapshot
	SetAddon(ctx context.Context, key, addonName string) (Snapshot, error)
	Replace(ctx context.Context, lines []types.LineItem) (Snapshot, error)
	QuantityOf(key string) int
	Items() Snapshot
	Quote() types.Quote
	Checkout(ctx context.Context) (Snapshot, types.Quote, error)
}

type service struct {
	menu catalog.Service
	metr *metrics.OrderMetrics
	logg *logger.Logger

	mu      sync.Mutex
	current Snapshot
}

// NewService builds the cart service over the loaded menu.
func NewService(menu catalog.Service, metr *metrics.OrderMetrics, logg *logger.Logger) (Service, error) {
	if menu == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	return &service{menu: menu, metr: metr, logg: logg}, nil
}

// AddItem resolves the line identity and price for the selection and either
// merges into an existing line or appends a new one. A mandatory
// configuration with no selection leaves the cart unchanged and returns a
// validation error.
func (s *service) AddItem(ctx context.Context, itemName string, sel catalog.Selection) (Snapshot, error) {
	item, err := s.menu.FindItem(itemName)
	if err != nil {
		return nil, err
	}

	key, resolved, err := resolveAdd(item, sel)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keyString := key.String()
	if key.Mergeable() {
		if next, ok := s.current.Increment(keyString); ok {
			s.current = next
			s.metr.IncItemAdded(key.Kind.String())
			return s.current, nil
		}
	}

	s.current = s.current.Append(types.LineItem{
		Key:         keyString,
		Name:        item.Name,
		UnitPrice:   resolved.UnitPrice,
		Quantity:    1,
		OptionLabel: resolved.Label,
	})
	s.metr.IncItemAdded(key.Kind.String())

	if s.logg != nil {
		s.logg.Info(s.logg.WithLineKey(ctx, keyString), "cart.line_added")
	}
	return s.current, nil
}

func resolveAdd(item *catalog.MenuItem, sel catalog.Selection) (Key, pricing.ResolvedConfig, error) {
	switch item.Kind() {
	case enums.ConfigKindFlat:
		return PlainKey(item.Name), pricing.ResolveFlat(item), nil
	case enums.ConfigKindChoiceList:
		resolved, err := pricing.ResolveOption(item, sel.Option)
		if err != nil {
			return Key{}, pricing.ResolvedConfig{}, err
		}
		return OptionKey(item.Name, sel.Option), resolved, nil
	case enums.ConfigKindSizeToppingMatrix:
		resolved, err := pricing.ResolvePizza(item, sel.Pizza)
		if err != nil {
			return Key{}, pricing.ResolvedConfig{}, err
		}
		return PizzaKey(item.Name, sel.Pizza), resolved, nil
	case enums.ConfigKindWithSide:
		resolved, err := pricing.ResolveOption(item, sel.Option)
		if err != nil {
			return Key{}, pricing.ResolvedConfig{}, err
		}
		return DistinctKey(item.Name, sel.Option), resolved, nil
	default:
		return Key{}, pricing.ResolvedConfig{}, pkgerrors.New(pkgerrors.CodeInternal,
			fmt.Sprintf("unhandled config kind for %s", item.Name))
	}
}

// Decrement lowers the keyed line by one, removing it at quantity 1. An
// absent key is a wiring bug in the caller; it is logged and ignored.
func (s *service) Decrement(ctx context.Context, key string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.current.Find(key); !ok {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithLineKey(ctx, key), "cart.decrement_unknown_key")
		}
		return s.current
	}
	s.current = s.current.Decrement(key)
	s.metr.IncItemRemoved("decrement")
	return s.current
}

// Delete removes the keyed line regardless of quantity.
func (s *service) Delete(ctx context.Context, key string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.current.Find(key); !ok {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithLineKey(ctx, key), "cart.delete_unknown_key")
		}
		return s.current
	}
	s.current = s.current.Delete(key)
	s.metr.IncItemRemoved("delete")
	return s.current
}

// SetAddon attaches the named addon from the line's eligible catalog,
// replacing any prior addon via a price delta.
func (s *service) SetAddon(ctx context.Context, key, addonName string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.current.Find(key)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("cart has no line %q", key))
	}

	item, err := s.menu.FindItem(line.Name)
	if err != nil {
		return nil, err
	}

	eligible := s.menu.Addons(item)
	if len(eligible) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s does not take additions", line.Name))
	}

	var addon *types.Addon
	for i := range eligible {
		if eligible[i].Name == addonName {
			addon = &eligible[i]
			break
		}
	}
	if addon == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s has no addition %q", line.Name, addonName))
	}

	next, _ := s.current.SetAddon(key, *addon)
	s.current = next
	return s.current, nil
}

// Replace swaps the whole cart for the provided lines, used after the client
// edits lines in bulk.
func (s *service) Replace(ctx context.Context, lines []types.LineItem) (Snapshot, error) {
	seen := map[string]struct{}{}
	for _, line := range lines {
		if line.Key == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line key is required")
		}
		if line.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("line %q must have positive quantity", line.Key))
		}
		if _, dup := seen[line.Key]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("duplicate line key %q", line.Key))
		}
		seen[line.Key] = struct{}{}
	}

	next := make(Snapshot, len(lines))
	copy(next, lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
	return s.current, nil
}

func (s *service) QuantityOf(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.QuantityOf(key)
}

func (s *service) Items() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Quote prices the current cart from scratch.
func (s *service) Quote() types.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.PriceCart(s.current)
}

// Checkout prices the cart one final time, empties it and returns the
// snapshot and quote the receipt is rendered from. An empty cart cannot be
// checked out.
func (s *service) Checkout(ctx context.Context) (Snapshot, types.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.current) == 0 {
		return nil, types.Quote{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	lines := s.current
	quote := pricing.PriceCart(lines)
	s.current = nil

	total, _ := strconv.ParseFloat(quote.Total, 64)
	s.metr.ObserveCheckout(total)

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"lines": len(lines), "total": quote.Total})
		s.logg.Info(ctx, "cart.checkout_complete")
	}
	return lines, quote, nil
}
