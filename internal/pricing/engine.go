package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/pkg/types"
)

// Wings bundle: every pair of "10 Wings" orders on one line is priced at the
// pair price instead of two singles. The rule is keyed on the option label,
// not the bare item name, so other wing configurations price normally.
const (
	wingsItemName    = "Wings"
	wingsBundleLabel = "10 Wings"
)

var wingsPairPrice = decimal.NewFromInt(28)

// PriceCart computes the aggregate quote for the cart. It is pure: identical
// line items always produce the identical quote, and nothing is cached
// between calls.
func PriceCart(lines []types.LineItem) types.Quote {
	total := decimal.Zero
	savings := decimal.Zero

	for _, line := range lines {
		contribution, saved := lineContribution(line)
		total = total.Add(contribution)
		savings = savings.Add(saved)
	}

	return types.Quote{
		Total:   total.StringFixed(2),
		Savings: savings.InexactFloat64(),
	}
}

// LineContribution is the priced contribution of a single line after bundle
// rules, used for per-line display.
func LineContribution(line types.LineItem) decimal.Decimal {
	contribution, _ := lineContribution(line)
	return contribution
}

func lineContribution(line types.LineItem) (contribution, savings decimal.Decimal) {
	if !bundleEligible(line) {
		return line.LineTotal(), decimal.Zero
	}

	pairs := int64(line.Quantity / 2)
	remainder := int64(line.Quantity % 2)

	contribution = wingsPairPrice.Mul(decimal.NewFromInt(pairs)).
		Add(line.UnitPrice.Mul(decimal.NewFromInt(remainder)))
	savings = line.UnitPrice.Mul(decimal.NewFromInt(2)).
		Sub(wingsPairPrice).
		Mul(decimal.NewFromInt(pairs))
	return contribution, savings
}

func bundleEligible(line types.LineItem) bool {
	if line.Name != wingsItemName || line.OptionLabel != wingsBundleLabel {
		return false
	}
	// The bundle only applies while pairing actually beats two singles.
	return line.UnitPrice.Mul(decimal.NewFromInt(2)).GreaterThan(wingsPairPrice)
}
