package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RitheshHB23/cafeteriaa/entity"
	"github.com/RitheshHB23/cafeteriaa/services"

	"github.com/gin-gonic/gin"
)

// Minimal stores for exercising the HTTP contract.

type stubDishStore struct{ dish *entity.Dish }

func (s *stubDishStore) List(context.Context, string) ([]entity.Dish, error) { return nil, nil }
func (s *stubDishStore) Popular(context.Context) ([]entity.Dish, error)      { return nil, nil }
func (s *stubDishStore) Create(context.Context, *entity.Dish) error          { return nil }
func (s *stubDishStore) GetByID(_ context.Context, id string) (*entity.Dish, error) {
	if s.dish != nil && s.dish.ID == id {
		return s.dish, nil
	}
	return nil, nil
}

type stubCartStore struct{ items []entity.CartItem }

func (s *stubCartStore) ListBySession(_ context.Context, sid string) ([]entity.CartItem, error) {
	out := make([]entity.CartItem, 0)
	for _, it := range s.items {
		if it.SessionID == sid {
			out = append(out, it)
		}
	}
	return out, nil
}
func (s *stubCartStore) Find(_ context.Context, sid, did string) (*entity.CartItem, error) {
	for _, it := range s.items {
		if it.SessionID == sid && it.DishID == did {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}
func (s *stubCartStore) Insert(_ context.Context, item *entity.CartItem) error {
	s.items = append(s.items, *item)
	return nil
}
func (s *stubCartStore) IncrementQty(context.Context, string, string) error { return nil }
func (s *stubCartStore) SetQty(_ context.Context, sid, did string, _ int) (int64, error) {
	for _, it := range s.items {
		if it.SessionID == sid && it.DishID == did {
			return 1, nil
		}
	}
	return 0, nil
}
func (s *stubCartStore) Delete(_ context.Context, sid, did string) (int64, error) {
	for i, it := range s.items {
		if it.SessionID == sid && it.DishID == did {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
func (s *stubCartStore) ClearSession(context.Context, string) error { return nil }

func newCartRouter(cart *stubCartStore, dishes *stubDishStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewCartController(services.NewCartService(cart, dishes))
	api := r.Group("/api")
	api.GET("/cart/:session_id", ctrl.Get)
	api.POST("/cart/add", ctrl.Add)
	api.PUT("/cart/update", ctrl.Update)
	api.DELETE("/cart/remove/:session_id/:dish_id", ctrl.Remove)
	api.DELETE("/cart/clear/:session_id", ctrl.Clear)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartAddHTTP(t *testing.T) {
	dish := &entity.Dish{ID: "d1", Name: "Espresso", Price: 50, ImageURL: "espresso.jpg"}
	r := newCartRouter(&stubCartStore{}, &stubDishStore{dish: dish})

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"session_id":"s1","dish_id":"d1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body)
	}
	var item entity.CartItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if item.DishName != "Espresso" || item.Quantity != 1 {
		t.Errorf("item = %+v", item)
	}
}

func TestCartAddHTTPDishMissing(t *testing.T) {
	r := newCartRouter(&stubCartStore{}, &stubDishStore{})

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"session_id":"s1","dish_id":"nope"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Dish not found") {
		t.Errorf("body = %s", w.Body)
	}
}

func TestCartAddHTTPBadBody(t *testing.T) {
	r := newCartRouter(&stubCartStore{}, &stubDishStore{})

	// missing dish_id fails binding before the service runs
	w := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"session_id":"s1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCartUpdateHTTP(t *testing.T) {
	tests := []struct {
		name     string
		seeded   bool
		body     string
		wantCode int
		wantMsg  string
	}{
		{
			name: "update existing", seeded: true,
			body:     `{"session_id":"s1","dish_id":"d1","quantity":3}`,
			wantCode: http.StatusOK, wantMsg: "Cart updated successfully",
		},
		{
			name: "zero quantity removes", seeded: true,
			body:     `{"session_id":"s1","dish_id":"d1","quantity":0}`,
			wantCode: http.StatusOK, wantMsg: "Item removed from cart",
		},
		{
			name: "missing row", seeded: false,
			body:     `{"session_id":"s1","dish_id":"d1","quantity":3}`,
			wantCode: http.StatusNotFound, wantMsg: "Cart item not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &stubCartStore{}
			if tt.seeded {
				cart.items = []entity.CartItem{{ID: "c1", SessionID: "s1", DishID: "d1", Quantity: 1}}
			}
			r := newCartRouter(cart, &stubDishStore{})

			w := doJSON(t, r, http.MethodPut, "/api/cart/update", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if !strings.Contains(w.Body.String(), tt.wantMsg) {
				t.Errorf("body = %s, want %q", w.Body, tt.wantMsg)
			}
		})
	}
}

func TestCartUpdateHTTPMissingQuantity(t *testing.T) {
	cart := &stubCartStore{items: []entity.CartItem{{ID: "c1", SessionID: "s1", DishID: "d1", Quantity: 1}}}
	r := newCartRouter(cart, &stubDishStore{})

	// quantity omitted entirely: must fail binding, never delete the row
	w := doJSON(t, r, http.MethodPut, "/api/cart/update", `{"session_id":"s1","dish_id":"d1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body)
	}
	if len(cart.items) != 1 {
		t.Errorf("row deleted by invalid body, rows = %d, want 1", len(cart.items))
	}
}

func TestCartRemoveAndClearHTTP(t *testing.T) {
	cart := &stubCartStore{items: []entity.CartItem{{ID: "c1", SessionID: "s1", DishID: "d1", Quantity: 1}}}
	r := newCartRouter(cart, &stubDishStore{})

	w := doJSON(t, r, http.MethodDelete, "/api/cart/remove/s1/d1", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Item removed from cart") {
		t.Errorf("remove: status %d body %s", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/cart/remove/s1/d1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second remove: status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/cart/clear/s1", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Cart cleared") {
		t.Errorf("clear: status %d body %s", w.Code, w.Body)
	}
}

func TestCartGetHTTPEmptyList(t *testing.T) {
	r := newCartRouter(&stubCartStore{}, &stubDishStore{})

	w := doJSON(t, r, http.MethodGet, "/api/cart/s1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}
