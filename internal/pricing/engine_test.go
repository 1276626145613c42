package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/pkg/types"
)

func wingsLine(qty int) types.LineItem {
	return types.LineItem{
		Key:         "Wings-10 Wings",
		Name:        "Wings",
		UnitPrice:   decimal.NewFromInt(15),
		Quantity:    qty,
		OptionLabel: "10 Wings",
	}
}

func TestPriceCartEmpty(t *testing.T) {
	t.Parallel()

	quote := PriceCart(nil)
	if quote.Total != "0.00" {
		t.Fatalf("expected zero total, got %s", quote.Total)
	}
	if quote.Savings != 0 {
		t.Fatalf("expected zero savings, got %v", quote.Savings)
	}
}

func TestPriceCartWingsBundle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		qty         int
		wantTotal   string
		wantSavings float64
	}{
		{qty: 1, wantTotal: "15.00", wantSavings: 0},
		{qty: 2, wantTotal: "28.00", wantSavings: 2},
		{qty: 3, wantTotal: "43.00", wantSavings: 2},
		{qty: 4, wantTotal: "56.00", wantSavings: 4},
		{qty: 5, wantTotal: "71.00", wantSavings: 4},
	}

	for _, tc := range cases {
		quote := PriceCart([]types.LineItem{wingsLine(tc.qty)})
		if quote.Total != tc.wantTotal {
			t.Fatalf("qty %d: expected total %s, got %s", tc.qty, tc.wantTotal, quote.Total)
		}
		if quote.Savings != tc.wantSavings {
			t.Fatalf("qty %d: expected savings %v, got %v", tc.qty, tc.wantSavings, quote.Savings)
		}
	}
}

func TestPriceCartBundleNeedsTheBundleOption(t *testing.T) {
	t.Parallel()

	smallOrder := types.LineItem{
		Key:         "Wings-6 Wings",
		Name:        "Wings",
		UnitPrice:   decimal.NewFromInt(10),
		Quantity:    2,
		OptionLabel: "6 Wings",
	}
	quote := PriceCart([]types.LineItem{smallOrder})
	if quote.Total != "20.00" || quote.Savings != 0 {
		t.Fatalf("expected plain pricing for 6 Wings, got %+v", quote)
	}
}

func TestPriceCartBundleSkippedWhenPairingCostsMore(t *testing.T) {
	t.Parallel()

	cheap := wingsLine(2)
	cheap.UnitPrice = decimal.NewFromInt(13)
	quote := PriceCart([]types.LineItem{cheap})
	if quote.Total != "26.00" || quote.Savings != 0 {
		t.Fatalf("expected plain pricing when pair beats bundle, got %+v", quote)
	}
}

func TestPriceCartSumsMixedLines(t *testing.T) {
	t.Parallel()

	pasta := types.LineItem{
		Key:       "Spaghetti",
		Name:      "Spaghetti",
		UnitPrice: decimal.NewFromInt(11),
		Quantity:  2,
	}
	quote := PriceCart([]types.LineItem{wingsLine(2), pasta})
	if quote.Total != "50.00" {
		t.Fatalf("expected total 50.00, got %s", quote.Total)
	}
	if quote.Savings != 2 {
		t.Fatalf("expected savings 2, got %v", quote.Savings)
	}
}

func TestPriceCartIsPure(t *testing.T) {
	t.Parallel()

	lines := []types.LineItem{wingsLine(4)}
	first := PriceCart(lines)
	second := PriceCart(lines)
	if first != second {
		t.Fatalf("expected identical quotes, got %+v and %+v", first, second)
	}
}

func TestLineContributionFoldsBundle(t *testing.T) {
	t.Parallel()

	contribution := LineContribution(wingsLine(3))
	if contribution.StringFixed(2) != "43.00" {
		t.Fatalf("expected 43.00, got %s", contribution.StringFixed(2))
	}
}
