package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
)

var validate = validator.New()

// Load reads and validates the menu file. Malformed catalog data is an
// external-data contract violation, so any problem here fails startup rather
// than surfacing at order time.
func Load(path string) (*Menu, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read catalog file")
	}
	return Parse(raw)
}

// Parse decodes and validates raw menu JSON.
func Parse(raw []byte) (*Menu, error) {
	var menu Menu
	if err := json.Unmarshal(raw, &menu); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode catalog")
	}
	if err := validate.Struct(&menu); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "catalog shape invalid")
	}
	if err := menu.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "catalog contract violated")
	}
	return &menu, nil
}

// Validate enforces the catalog contract: unique item names, a coherent
// configuration shape per item, and complete pricing tables for matrix items.
func (m *Menu) Validate() error {
	var errs []error
	seen := map[string]struct{}{}

	if len(m.Categories) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no categories"))
	}

	for _, category := range m.Categories {
		if len(category.Items) == 0 {
			errs = append(errs, fmt.Errorf("category %q has no items", category.Category))
		}
		for _, item := range category.Items {
			if _, dup := seen[item.Name]; dup {
				errs = append(errs, fmt.Errorf("duplicate item name %q", item.Name))
			}
			seen[item.Name] = struct{}{}
			errs = append(errs, validateItem(item)...)
		}
	}

	return multierr.Combine(errs...)
}

func validateItem(item MenuItem) []error {
	var errs []error

	if len(item.Sizes) > 0 && len(item.Options) > 0 {
		errs = append(errs, fmt.Errorf("item %q mixes sizes and options", item.Name))
	}
	if !item.Type.IsValid() {
		errs = append(errs, fmt.Errorf("item %q has unknown type %q", item.Name, item.Type))
	}

	for _, opt := range item.Options {
		if opt.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("item %q option %q has negative price", item.Name, opt.Name))
		}
	}
	for _, protein := range item.Proteins {
		if protein.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("item %q protein %q has negative price", item.Name, protein.Name))
		}
	}

	switch {
	case len(item.Sizes) > 0:
		if len(item.Toppings) == 0 {
			errs = append(errs, fmt.Errorf("item %q has sizes but no topping tiers", item.Name))
		}
		for _, size := range item.Sizes {
			if size.Price.IsNegative() {
				errs = append(errs, fmt.Errorf("item %q size %q has negative price", item.Name, size.Name))
			}
			if _, ok := item.ExtraCheesePricing[size.Name]; !ok {
				errs = append(errs, fmt.Errorf("item %q missing extra cheese pricing for size %q", item.Name, size.Name))
			}
		}
	case len(item.Options) > 0:
		// choice list or with-side: base price is ignored, options carry it
	default:
		if item.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("item %q has negative price", item.Name))
		}
	}

	return errs
}
