package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/washbay-pos/api/internal/catalog"
)

// ProductSnapshot defines the catalog reads the handler needs.
// Satisfied by *refdata.Cache; narrow interface for testability.
type ProductSnapshot interface {
	Products() []catalog.Product
	RefreshedAt() time.Time
}

// CatalogHandler serves the product catalog snapshot.
type CatalogHandler struct {
	snapshot ProductSnapshot
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(snapshot ProductSnapshot) *CatalogHandler {
	return &CatalogHandler{snapshot: snapshot}
}

// RegisterRoutes registers catalog endpoints on the given Chi router.
// Expected to be mounted at /products.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

type productListResponse struct {
	Products    []catalog.Product `json:"products"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

// List handles GET /products. Supports ?favorites=true for the quick-access
// rail and ?category= to filter one catalog section.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.snapshot.Products()

	favoritesOnly := r.URL.Query().Get("favorites") == "true"
	category := r.URL.Query().Get("category")

	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if favoritesOnly && !p.Favorite {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	writeJSON(w, http.StatusOK, productListResponse{
		Products:    filtered,
		RefreshedAt: h.snapshot.RefreshedAt(),
	})
}
