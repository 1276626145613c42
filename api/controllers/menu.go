package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/boondocksgrill/ordering/api/responses"
	"github.com/boondocksgrill/ordering/internal/catalog"
	"github.com/boondocksgrill/ordering/pkg/enums"
	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
	"github.com/boondocksgrill/ordering/pkg/logger"
	"github.com/boondocksgrill/ordering/pkg/types"
)

type menuOptionResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type menuItemResponse struct {
	Name               string               `json:"name"`
	Description        string               `json:"description,omitempty"`
	Price              string               `json:"price,omitempty"`
	Kind               string               `json:"kind"`
	Type               string               `json:"type,omitempty"`
	Options            []menuOptionResponse `json:"options,omitempty"`
	Sizes              []menuOptionResponse `json:"sizes,omitempty"`
	Toppings           []string             `json:"toppings,omitempty"`
	ExtraCheesePricing map[string]string    `json:"extra_cheese_pricing,omitempty"`
}

type menuCategoryResponse struct {
	Category string             `json:"category"`
	Items    []menuItemResponse `json:"items"`
}

type menuResponse struct {
	Menu []menuCategoryResponse `json:"menu"`
}

type addonResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// MenuList returns the catalog, optionally filtered by a case-insensitive
// name search.
func MenuList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		search := strings.TrimSpace(r.URL.Query().Get("search"))
		categories := svc.Search(search)

		out := menuResponse{Menu: make([]menuCategoryResponse, 0, len(categories))}
		for _, category := range categories {
			items := make([]menuItemResponse, 0, len(category.Items))
			for _, item := range category.Items {
				items = append(items, newMenuItemResponse(item))
			}
			out.Menu = append(out.Menu, menuCategoryResponse{Category: category.Category, Items: items})
		}

		responses.WriteSuccess(w, out)
	}
}

// MenuAddons returns the addon catalog for an item type ("salad", "pasta",
// "with_side").
func MenuAddons(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		itemType, err := enums.ParseItemType(chi.URLParam(r, "type"))
		if err != nil || itemType == enums.ItemTypeNone {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown addon type"))
			return
		}

		addons := catalog.AddonsFor(itemType)
		out := make([]addonResponse, 0, len(addons))
		for _, addon := range addons {
			out = append(out, newAddonResponse(addon))
		}
		responses.WriteSuccess(w, map[string][]addonResponse{"addons": out})
	}
}

func newMenuItemResponse(item catalog.MenuItem) menuItemResponse {
	out := menuItemResponse{
		Name:        item.Name,
		Description: item.Description,
		Kind:        item.Kind().String(),
		Type:        item.Type.String(),
		Toppings:    item.Toppings,
	}

	if !item.RequiresSelection() {
		out.Price = item.Price.StringFixed(2)
	}
	for _, opt := range item.Options {
		out.Options = append(out.Options, menuOptionResponse{Name: opt.Name, Price: opt.Price.StringFixed(2)})
	}
	for _, size := range item.Sizes {
		out.Sizes = append(out.Sizes, menuOptionResponse{Name: size.Name, Price: size.Price.StringFixed(2)})
	}
	if len(item.ExtraCheesePricing) > 0 {
		out.ExtraCheesePricing = make(map[string]string, len(item.ExtraCheesePricing))
		for size, surcharge := range item.ExtraCheesePricing {
			out.ExtraCheesePricing[size] = surcharge.StringFixed(2)
		}
	}
	return out
}

func newAddonResponse(addon types.Addon) addonResponse {
	return addonResponse{Name: addon.Name, Price: addon.Price.StringFixed(2)}
}
