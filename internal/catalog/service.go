package catalog

import (
	"fmt"
	"strings"

	pkgerrors "github.com/boondocksgrill/ordering/pkg/errors"
	"github.com/boondocksgrill/ordering/pkg/types"
)

// Service exposes read access to the loaded menu.
type Service interface {
	Categories() []Category
	Search(query string) []Category
	FindItem(name string) (*MenuItem, error)
	Addons(item *MenuItem) []types.Addon
}

type service struct {
	menu   *Menu
	byName map[string]*MenuItem
}

// NewService indexes the validated menu.
func NewService(menu *Menu) (Service, error) {
	if menu == nil {
		return nil, fmt.Errorf("menu required")
	}
	byName := map[string]*MenuItem{}
	for ci := range menu.Categories {
		for ii := range menu.Categories[ci].Items {
			item := &menu.Categories[ci].Items[ii]
			byName[item.Name] = item
		}
	}
	return &service{menu: menu, byName: byName}, nil
}

func (s *service) Categories() []Category {
	return s.menu.Categories
}

// Search filters items by case-insensitive substring on the item name,
// keeping every category (with an empty item list when nothing matches) so
// the client can render the full category skeleton.
func (s *service) Search(query string) []Category {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return s.menu.Categories
	}

	filtered := make([]Category, 0, len(s.menu.Categories))
	for _, category := range s.menu.Categories {
		items := make([]MenuItem, 0, len(category.Items))
		for _, item := range category.Items {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				items = append(items, item)
			}
		}
		filtered = append(filtered, Category{Category: category.Category, Items: items})
	}
	return filtered
}

func (s *service) FindItem(name string) (*MenuItem, error) {
	item, ok := s.byName[name]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("menu item %q not found", name))
	}
	return item, nil
}

func (s *service) Addons(item *MenuItem) []types.Addon {
	if item == nil {
		return nil
	}
	return AddonsForItem(*item)
}
