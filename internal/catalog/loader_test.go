package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
)

const validMenuJSON = `{
  "menu": [
    {
      "category": "Appetizers",
      "items": [
        {"name": "Onion Rings", "description": "Beer battered", "price": 6.5},
        {"name": "Wings", "options": [
          {"name": "6 Wings", "price": 10.0},
          {"name": "10 Wings", "price": 15.0}
        ]}
      ]
    },
    {
      "category": "Pizza",
      "items": [
        {
          "name": "Boondocks Pizza",
          "sizes": [
            {"name": "Small", "price": 9.0},
            {"name": "Large", "price": 14.0}
          ],
          "toppings": ["Cheese", "1 Topping", "2 Toppings"],
          "extra_cheese_pricing": {"Small": 1.0, "Large": 1.5}
        }
      ]
    },
    {
      "category": "Entrees",
      "items": [
        {"name": "Chicken Fingers", "type": "with_side", "options": [
          {"name": "3 Piece", "price": 11.0},
          {"name": "5 Piece", "price": 14.0}
        ]}
      ]
    }
  ]
}`

func TestParseValidMenu(t *testing.T) {
	t.Parallel()

	menu, err := Parse([]byte(validMenuJSON))
	require.NoError(t, err)
	require.Len(t, menu.Categories, 3)

	assert.Equal(t, "Appetizers", menu.Categories[0].Category)
	assert.Len(t, menu.Categories[0].Items, 2)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"menu": [`))
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestParseRejectsContractViolations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{
			name: "empty catalog",
			raw:  `{"menu": []}`,
		},
		{
			name: "duplicate item names",
			raw: `{"menu": [{"category": "A", "items": [
				{"name": "Fries", "price": 4.0},
				{"name": "Fries", "price": 5.0}
			]}]}`,
		},
		{
			name: "sizes and options on one item",
			raw: `{"menu": [{"category": "A", "items": [{
				"name": "Weird",
				"sizes": [{"name": "Small", "price": 9.0}],
				"toppings": ["Cheese"],
				"extra_cheese_pricing": {"Small": 1.0},
				"options": [{"name": "X", "price": 1.0}]
			}]}]}`,
		},
		{
			name: "sizes without topping tiers",
			raw: `{"menu": [{"category": "A", "items": [{
				"name": "Weird",
				"sizes": [{"name": "Small", "price": 9.0}],
				"extra_cheese_pricing": {"Small": 1.0}
			}]}]}`,
		},
		{
			name: "missing extra cheese pricing for a size",
			raw: `{"menu": [{"category": "A", "items": [{
				"name": "Weird",
				"sizes": [{"name": "Small", "price": 9.0}, {"name": "Large", "price": 14.0}],
				"toppings": ["Cheese"],
				"extra_cheese_pricing": {"Small": 1.0}
			}]}]}`,
		},
		{
			name: "negative price",
			raw:  `{"menu": [{"category": "A", "items": [{"name": "Fries", "price": -4.0}]}]}`,
		},
		{
			name: "unknown item type",
			raw:  `{"menu": [{"category": "A", "items": [{"name": "Fries", "price": 4.0, "type": "dessert_tower"}]}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.raw))
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}
