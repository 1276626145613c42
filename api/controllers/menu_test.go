package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/boondocksgrill/ordering/internal/catalog"
	"github.com/boondocksgrill/ordering/pkg/types"
)

type stubCatalog struct {
	categories []catalog.Category
	lastSearch string
}

func (s *stubCatalog) Categories() []catalog.Category { return s.categories }

func (s *stubCatalog) Search(query string) []catalog.Category {
	s.lastSearch = query
	return s.categories
}

func (s *stubCatalog) FindItem(name string) (*catalog.MenuItem, error) { return nil, nil }

func (s *stubCatalog) Addons(item *catalog.MenuItem) []types.Addon { return nil }

func testCategories() []catalog.Category {
	return []catalog.Category{
		{
			Category: "Appetizers",
			Items: []catalog.MenuItem{
				{Name: "Onion Rings", Price: decimal.RequireFromString("6.50")},
				{Name: "Wings", Options: []catalog.Option{
					{Name: "6 Wings", Price: decimal.NewFromInt(10)},
					{Name: "10 Wings", Price: decimal.NewFromInt(15)},
				}},
			},
		},
	}
}

func TestMenuListMapsCatalog(t *testing.T) {
	stub := &stubCatalog{categories: testCategories()}
	handler := MenuList(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menu?search=wing", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.lastSearch != "wing" {
		t.Fatalf("unexpected search term: %q", stub.lastSearch)
	}

	var envelope struct {
		Data struct {
			Menu []struct {
				Category string `json:"category"`
				Items    []struct {
					Name    string `json:"name"`
					Kind    string `json:"kind"`
					Price   string `json:"price"`
					Options []struct {
						Name  string `json:"name"`
						Price string `json:"price"`
					} `json:"options"`
				} `json:"items"`
			} `json:"menu"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	items := envelope.Data.Menu[0].Items
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
	if items[0].Kind != "flat" || items[0].Price != "6.50" {
		t.Fatalf("unexpected flat item: %+v", items[0])
	}
	if items[1].Kind != "choice_list" || items[1].Price != "" {
		t.Fatalf("configurable items must not carry a base price: %+v", items[1])
	}
	if len(items[1].Options) != 2 || items[1].Options[1].Price != "15.00" {
		t.Fatalf("unexpected options: %+v", items[1].Options)
	}
}

func TestMenuAddonsByType(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/menu/addons/{type}", MenuAddons(&stubCatalog{}, nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menu/addons/with_side", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Addons []struct {
				Name  string `json:"name"`
				Price string `json:"price"`
			} `json:"addons"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Addons) != 5 {
		t.Fatalf("expected five side addons, got %d", len(envelope.Data.Addons))
	}
	if envelope.Data.Addons[0].Name != "No Side" || envelope.Data.Addons[0].Price != "-2.00" {
		t.Fatalf("unexpected first addon: %+v", envelope.Data.Addons[0])
	}
}

func TestMenuAddonsRejectsUnknownType(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/menu/addons/{type}", MenuAddons(&stubCatalog{}, nil))

	for _, target := range []string{"/api/v1/menu/addons/dessert", "/api/v1/menu/addons/%20"} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", target, resp.Code)
		}
	}
}
