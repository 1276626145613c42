package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/internal/catalog"
	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
)

// ResolvedConfig is the priced outcome of a configuration choice: the
// absolute unit price and the human-readable option label carried onto the
// cart line.
type ResolvedConfig struct {
	UnitPrice decimal.Decimal
	Label     string
}

const (
	toppingTierCheese  = "Cheese"
	toppingTierGourmet = "Gourmet Pizza"
)

// ResolveFlat prices an unconfigured item.
func ResolveFlat(item *catalog.MenuItem) ResolvedConfig {
	return ResolvedConfig{UnitPrice: item.Price}
}

// ResolveOption prices a discrete option choice.
func ResolveOption(item *catalog.MenuItem, optionName string) (ResolvedConfig, error) {
	if optionName == "" {
		return ResolvedConfig{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s requires an option selection", item.Name))
	}
	opt, ok := item.FindOption(optionName)
	if !ok {
		return ResolvedConfig{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s has no option %q", item.Name, optionName))
	}
	return ResolvedConfig{UnitPrice: opt.Price, Label: opt.Name}, nil
}

// ResolvePizza prices a size/topping matrix selection:
// size base + topping surcharge + extra cheese.
func ResolvePizza(item *catalog.MenuItem, sel catalog.PizzaSelection) (ResolvedConfig, error) {
	if !sel.Complete() {
		return ResolvedConfig{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s requires a size and topping selection", item.Name))
	}
	size, ok := item.FindSize(sel.Size)
	if !ok {
		return ResolvedConfig{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s has no size %q", item.Name, sel.Size))
	}
	if !item.HasToppingTier(sel.ToppingTier) {
		return ResolvedConfig{}, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s has no topping tier %q", item.Name, sel.ToppingTier))
	}

	price := size.Price.Add(toppingSurcharge(size.Name, sel.ToppingTier))

	label := fmt.Sprintf("%s, %s", size.Name, sel.ToppingTier)
	if sel.ExtraCheese {
		surcharge, ok := item.ExtraCheesePricing[size.Name]
		if !ok {
			return ResolvedConfig{}, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("%s has no extra cheese pricing for size %q", item.Name, size.Name))
		}
		price = price.Add(surcharge)
		label += ", Extra Cheese"
	}

	return ResolvedConfig{UnitPrice: price, Label: label}, nil
}

type sizeTier int

const (
	sizeTierSmallMedium sizeTier = iota
	sizeTierLargeXL
	sizeTierGiant
)

func classifySize(size string) sizeTier {
	switch size {
	case "Giant":
		return sizeTierGiant
	case "Large", "Extra Large":
		return sizeTierLargeXL
	default:
		return sizeTierSmallMedium
	}
}

// largeXLSurcharge is the fixed topping surcharge table for Large and Extra
// Large pizzas.
var largeXLSurcharge = map[int]decimal.Decimal{
	1: decimal.NewFromInt(2),
	2: decimal.NewFromInt(3),
	3: decimal.NewFromInt(4),
	4: decimal.NewFromInt(5),
}

func toppingSurcharge(size, tier string) decimal.Decimal {
	if tier == toppingTierCheese {
		return decimal.Zero
	}

	if tier == toppingTierGourmet {
		switch classifySize(size) {
		case sizeTierSmallMedium:
			return decimal.NewFromInt(5)
		default:
			return decimal.NewFromInt(6)
		}
	}

	count := toppingCount(tier)
	switch classifySize(size) {
	case sizeTierLargeXL:
		if surcharge, ok := largeXLSurcharge[count]; ok {
			return surcharge
		}
		return decimal.NewFromInt(int64(count + 1))
	case sizeTierGiant:
		return decimal.NewFromInt(int64(count * 2))
	default:
		return decimal.NewFromInt(int64(count))
	}
}

// toppingCount parses the leading integer out of a tier label like
// "2 Toppings".
func toppingCount(tier string) int {
	fields := strings.Fields(tier)
	if len(fields) == 0 {
		return 0
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return 0
	}
	return count
}
