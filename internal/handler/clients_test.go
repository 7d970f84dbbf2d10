package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/handler"
)

func setupClientRouter(refdata *fakeRefData) *chi.Mux {
	h := handler.NewClientHandler(refdata)
	r := chi.NewRouter()
	r.Route("/clients", h.RegisterRoutes)
	return r
}

func TestClientList(t *testing.T) {
	refdata := newFakeRefData()
	refdata.clients = []catalog.Client{
		{ID: uuid.New(), Name: "Ahmed Hassan", Phone: "0501234567"},
		{ID: uuid.New(), Name: "Fatima Ali", Phone: "0559876543"},
	}
	router := setupClientRouter(refdata)

	req := httptest.NewRequest(http.MethodGet, "/clients/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Clients []catalog.Client `json:"clients"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Clients) != 2 {
		t.Errorf("expected 2 clients, got %d", len(resp.Clients))
	}
}

func TestClientListSearch(t *testing.T) {
	refdata := newFakeRefData()
	refdata.clients = []catalog.Client{
		{ID: uuid.New(), Name: "Ahmed Hassan", Phone: "0501234567"},
		{ID: uuid.New(), Name: "Fatima Ali", Phone: "0559876543"},
	}
	router := setupClientRouter(refdata)

	tests := []struct {
		query string
		want  int
	}{
		{"ahmed", 1},
		{"055", 1},
		{"nobody", 0},
		{"a", 2},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/clients/?q="+tt.query, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var resp struct {
			Clients []catalog.Client `json:"clients"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("q=%s: decode response: %v", tt.query, err)
		}
		if len(resp.Clients) != tt.want {
			t.Errorf("q=%s: got %d clients, want %d", tt.query, len(resp.Clients), tt.want)
		}
	}
}

func TestClientMatch(t *testing.T) {
	ahmed := catalog.Client{ID: uuid.New(), Name: "Ahmed Hassan", Phone: "0501234567"}
	refdata := newFakeRefData()
	refdata.clients = []catalog.Client{ahmed}
	router := setupClientRouter(refdata)

	tests := []struct {
		name    string
		phone   string
		matched bool
	}{
		{"exact local form", "0501234567", true},
		{"international form", "+971501234567", true},
		{"zero-prefixed international", "00971501234567", true},
		{"too short to match", "234567", false},
		{"different number", "0507654321", false},
		{"placeholder", "0000000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"phone": tt.phone})
			req := httptest.NewRequest(http.MethodPost, "/clients/match", bytes.NewReader(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}
			var resp struct {
				Matched bool            `json:"matched"`
				Client  *catalog.Client `json:"client"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Matched != tt.matched {
				t.Errorf("matched = %v, want %v", resp.Matched, tt.matched)
			}
			if tt.matched && (resp.Client == nil || resp.Client.ID != ahmed.ID) {
				t.Errorf("client = %+v, want %v", resp.Client, ahmed.ID)
			}
		})
	}
}

func TestCatalogList(t *testing.T) {
	refdata := newFakeRefData()
	refdata.add(catalog.Product{Name: "Shirt", Category: "Clothes", Price: decimal.NewFromInt(10), Favorite: true})
	refdata.add(catalog.Product{Name: "Dress", Category: "Clothes", Price: decimal.NewFromInt(25)})
	refdata.add(catalog.Product{Name: "Carpet", Category: "Home", Price: decimal.NewFromInt(0), AreaPriced: true})

	h := handler.NewCatalogHandler(refdata)
	router := chi.NewRouter()
	router.Route("/products", h.RegisterRoutes)

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?favorites=true", 1},
		{"?category=Clothes", 2},
		{"?category=Home&favorites=true", 0},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/products/"+tt.query, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tt.query, rr.Code)
		}
		var resp struct {
			Products []catalog.Product `json:"products"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: decode response: %v", tt.query, err)
		}
		if len(resp.Products) != tt.want {
			t.Errorf("%s: got %d products, want %d", tt.query, len(resp.Products), tt.want)
		}
	}
}
