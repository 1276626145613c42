package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/internal/pricing"
	"github.com/boondocksgrill/ordering/pkg/types"
)

// Receipt is the printable record of a completed checkout.
type Receipt struct {
	Header   string           `json:"header"`
	PlacedAt time.Time        `json:"placed_at"`
	Lines    []types.LineItem `json:"lines"`
	Quote    types.Quote      `json:"quote"`
	Text     string           `json:"text"`
}

const rule = "----------------------------------------"

// Render formats the checkout into a plain-text receipt.
func Render(header string, placedAt time.Time, lines []types.LineItem, quote types.Quote) Receipt {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "%s\n", placedAt.Format("Jan 2 2006 3:04 PM"))
	fmt.Fprintf(&b, "%s\n", rule)

	for _, line := range lines {
		label := line.Name
		if line.OptionLabel != "" {
			label = fmt.Sprintf("%s - %s", line.Name, line.OptionLabel)
		}
		contribution := pricing.LineContribution(line)
		fmt.Fprintf(&b, "%-30s %9s\n", fmt.Sprintf("%s (x%d)", label, line.Quantity), money(contribution))
		if line.Addon != nil {
			fmt.Fprintf(&b, "  + %-26s %9s\n", line.Addon.Name, money(line.Addon.Price))
		}
	}

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "%-30s %9s\n", "Total", "$"+quote.Total)
	if quote.Savings > 0 {
		fmt.Fprintf(&b, "You saved $%.2f by ordering multiple sets of wings!\n", quote.Savings)
	}

	return Receipt{
		Header:   header,
		PlacedAt: placedAt,
		Lines:    lines,
		Quote:    quote,
		Text:     b.String(),
	}
}

func money(value decimal.Decimal) string {
	if value.IsNegative() {
		return "-$" + value.Neg().StringFixed(2)
	}
	return "$" + value.StringFixed(2)
}
