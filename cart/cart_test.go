package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmahub/globals"
	"pharmahub/memstore"
	"pharmahub/models"

	"github.com/julienschmidt/httprouter"
)

func authedRequest(method, target, body string, userID int) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(r.Context(), globals.UserIDKey, userID)
	ctx = context.WithValue(ctx, globals.RoleKey, "user")
	return r.WithContext(ctx)
}

func TestAddResolvesServerPrice(t *testing.T) {
	carts := memstore.NewCarts()
	api := &API{Carts: carts}

	// a client-sent price is not part of the input model and is ignored
	body := `{"productId":1,"unit":"Vỉ 10 viên","quantity":2,"price":1}`
	w := httptest.NewRecorder()
	api.Add(w, authedRequest("POST", "/api/cart", body, 1), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	lines, _ := carts.Lines(context.Background(), 1)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Price != 50000 {
		t.Errorf("price = %d, want catalog price 50000", lines[0].Price)
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", lines[0].Quantity)
	}
}

func TestAddMergesSameProductAndUnit(t *testing.T) {
	carts := memstore.NewCarts()
	api := &API{Carts: carts}

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		api.Add(w, authedRequest("POST", "/api/cart", `{"productId":1,"unit":"Vỉ 10 viên","quantity":2}`, 1), nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("add %d: expected 201, got %d", i, w.Code)
		}
	}
	// a different unit of the same product is its own line
	w := httptest.NewRecorder()
	api.Add(w, authedRequest("POST", "/api/cart", `{"productId":1,"unit":"Hộp 10 vỉ","quantity":1}`, 1), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("add other unit: expected 201, got %d", w.Code)
	}

	lines, _ := carts.Lines(context.Background(), 1)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		switch line.Unit {
		case "Vỉ 10 viên":
			if line.Quantity != 4 {
				t.Errorf("merged quantity = %d, want 4", line.Quantity)
			}
		case "Hộp 10 vỉ":
			if line.Quantity != 1 {
				t.Errorf("new unit quantity = %d, want 1", line.Quantity)
			}
		}
	}
}

func TestAddRejectsUnknownProductOrUnit(t *testing.T) {
	api := &API{Carts: memstore.NewCarts()}

	w := httptest.NewRecorder()
	api.Add(w, authedRequest("POST", "/api/cart", `{"productId":999,"unit":"Vỉ 10 viên","quantity":1}`, 1), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product: expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	api.Add(w, authedRequest("POST", "/api/cart", `{"productId":1,"unit":"Thùng 100 vỉ","quantity":1}`, 1), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown unit: expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	api.Add(w, authedRequest("POST", "/api/cart", `{"productId":1,"unit":"Vỉ 10 viên","quantity":0}`, 1), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero quantity: expected 400, got %d", w.Code)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	carts := memstore.NewCarts()
	api := &API{Carts: carts}
	carts.Add(context.Background(), models.CartLine{
		ID: "line1", UserID: 1, ProductID: 1, Unit: "Vỉ 10 viên", Quantity: 2, Price: 50000,
	})

	ps := httprouter.Params{{Key: "id", Value: "line1"}}

	w := httptest.NewRecorder()
	api.UpdateQuantity(w, authedRequest("PUT", "/api/cart/line1", `{"quantity":5}`, 1), ps)
	if w.Code != http.StatusOK {
		t.Fatalf("set quantity: expected 200, got %d", w.Code)
	}
	lines, _ := carts.Lines(context.Background(), 1)
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}

	w = httptest.NewRecorder()
	api.UpdateQuantity(w, authedRequest("PUT", "/api/cart/line1", `{"quantity":0}`, 1), ps)
	if w.Code != http.StatusOK {
		t.Fatalf("zero quantity: expected 200, got %d", w.Code)
	}
	lines, _ = carts.Lines(context.Background(), 1)
	if len(lines) != 0 {
		t.Errorf("expected line removed at quantity 0, got %d lines", len(lines))
	}
}

func TestCartsAreScopedPerUser(t *testing.T) {
	carts := memstore.NewCarts()
	api := &API{Carts: carts}
	carts.Add(context.Background(), models.CartLine{
		ID: "line1", UserID: 1, ProductID: 1, Unit: "Vỉ 10 viên", Quantity: 2, Price: 50000,
	})

	// user 2 cannot remove user 1's line
	w := httptest.NewRecorder()
	api.Remove(w, authedRequest("DELETE", "/api/cart/line1", "", 2), httprouter.Params{{Key: "id", Value: "line1"}})
	if w.Code != http.StatusNotFound {
		t.Errorf("foreign remove: expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	api.Get(w, authedRequest("GET", "/api/cart", "", 2), nil)
	var other []models.EnrichedCartLine
	json.NewDecoder(w.Body).Decode(&other)
	if len(other) != 0 {
		t.Errorf("user 2 sees %d lines, want 0", len(other))
	}
}

func TestGetEnrichesFromCatalog(t *testing.T) {
	carts := memstore.NewCarts()
	api := &API{Carts: carts}
	carts.Add(context.Background(), models.CartLine{
		ID: "line1", UserID: 1, ProductID: 1, Unit: "Vỉ 10 viên", Quantity: 1, Price: 50000,
	})
	// line whose product has since left the catalog
	carts.Add(context.Background(), models.CartLine{
		ID: "line2", UserID: 1, ProductID: 999, Unit: "Hộp", Quantity: 1, Price: 10000,
	})

	w := httptest.NewRecorder()
	api.Get(w, authedRequest("GET", "/api/cart", "", 1), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var lines []models.EnrichedCartLine
	if err := json.NewDecoder(w.Body).Decode(&lines); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductName != "Paracetamol 500mg" {
		t.Errorf("line 1 name = %q, want catalog name", lines[0].ProductName)
	}
	if lines[1].ProductName != "Sản phẩm không còn kinh doanh" {
		t.Errorf("vanished product name = %q, want placeholder", lines[1].ProductName)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	api := &API{Carts: memstore.NewCarts()}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		api.Clear(w, authedRequest("DELETE", "/api/cart", "", 1), nil)
		if w.Code != http.StatusOK {
			t.Errorf("clear %d: expected 200, got %d", i, w.Code)
		}
	}
}
