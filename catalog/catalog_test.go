package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmahub/models"

	"github.com/julienschmidt/httprouter"
)

func TestCatalogConsistency(t *testing.T) {
	if len(Products()) == 0 || len(Categories()) == 0 {
		t.Fatal("catalog seed is empty")
	}

	categoryNames := map[int]string{}
	for _, c := range Categories() {
		categoryNames[c.ID] = c.Name
	}

	seen := map[int]bool{}
	for _, p := range Products() {
		if seen[p.ID] {
			t.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true

		if name, ok := categoryNames[p.CategoryID]; !ok {
			t.Errorf("product %d references unknown category %d", p.ID, p.CategoryID)
		} else if name != p.Category {
			t.Errorf("product %d category %q does not match category %d name %q", p.ID, p.Category, p.CategoryID, name)
		}

		if p.Type != "kedon" && p.Type != "khongkedon" {
			t.Errorf("product %d has type %q", p.ID, p.Type)
		}
		if len(p.Units) == 0 {
			t.Errorf("product %d has no units", p.ID)
		}
		for _, u := range p.Units {
			if u.Price <= 0 {
				t.Errorf("product %d unit %q has price %d", p.ID, u.Name, u.Price)
			}
		}
	}
}

func TestUnitLookup(t *testing.T) {
	u, ok := Unit(1, "Vỉ 10 viên")
	if !ok || u.Price != 50000 {
		t.Errorf("Unit(1, Vỉ 10 viên) = %+v, %v", u, ok)
	}
	if _, ok := Unit(1, "Thùng"); ok {
		t.Error("unknown unit resolved")
	}
	if _, ok := Unit(999, "Vỉ 10 viên"); ok {
		t.Error("unknown product resolved")
	}
}

func TestGetProductHandler(t *testing.T) {
	w := httptest.NewRecorder()
	GetProduct(w, httptest.NewRequest("GET", "/api/products/1", nil),
		httprouter.Params{{Key: "id", Value: "1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != 1 || p.Name != "Paracetamol 500mg" {
		t.Errorf("product = %+v", p)
	}

	w = httptest.NewRecorder()
	GetProduct(w, httptest.NewRequest("GET", "/api/products/999", nil),
		httprouter.Params{{Key: "id", Value: "999"}})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product: expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	GetProduct(w, httptest.NewRequest("GET", "/api/products/abc", nil),
		httprouter.Params{{Key: "id", Value: "abc"}})
	if w.Code != http.StatusNotFound {
		t.Errorf("non-numeric id: expected 404, got %d", w.Code)
	}
}

func TestGetProductsHandler(t *testing.T) {
	w := httptest.NewRecorder()
	GetProducts(w, httptest.NewRequest("GET", "/api/products", nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []models.Product
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != len(Products()) {
		t.Errorf("handler returned %d products, catalog has %d", len(list), len(Products()))
	}
}
