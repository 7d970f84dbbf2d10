package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/washbay-pos/api/internal/cart"
	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/enum"
	"github.com/washbay-pos/api/internal/middleware"
	"github.com/washbay-pos/api/internal/phone"
	"github.com/washbay-pos/api/internal/pricing"
	"github.com/washbay-pos/api/internal/service"
	"github.com/washbay-pos/api/internal/session"
	"github.com/washbay-pos/api/internal/upstream"
)

// SessionStore defines the session operations the handler needs.
// Satisfied by *session.Store; narrow interface for testability.
type SessionStore interface {
	Create() *session.Session
	Get(id uuid.UUID) (*session.Session, error)
	Delete(id uuid.UUID)
}

// RefData defines the reference-data reads the handler needs.
// Satisfied by *refdata.Cache; narrow interface for testability.
type RefData interface {
	Product(id uuid.UUID) (catalog.Product, bool)
	Clients() []catalog.Client
}

// Submitter runs the submission gate. Satisfied by *service.SubmitService.
type Submitter interface {
	Submit(ctx context.Context, sess *session.Session, req service.SubmitRequest) (*service.SubmitResult, error)
}

// SessionHandler handles cart session endpoints.
type SessionHandler struct {
	store   SessionStore
	refdata RefData
	submit  Submitter
	log     *zap.Logger
}

// NewSessionHandler creates a new SessionHandler. log may be nil.
func NewSessionHandler(store SessionStore, refdata RefData, submit Submitter, log *zap.Logger) *SessionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionHandler{store: store, refdata: refdata, submit: submit, log: log}
}

// RegisterRoutes registers session endpoints on the given Chi router.
// Expected to be mounted at /sessions.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/{sid}", h.Get)
	r.Delete("/{sid}", h.Delete)

	r.Post("/{sid}/products/{pid}/increment", h.Increment)
	r.Post("/{sid}/products/{pid}/decrement", h.Decrement)
	r.Put("/{sid}/products/{pid}/split", h.SetSplit)
	r.Post("/{sid}/products/{pid}/carpet", h.AddCarpet)
	r.Delete("/{sid}/products/{pid}/carpet", h.RemoveCarpet)
	r.Patch("/{sid}/carpet/{eid}/service", h.ToggleCarpetService)

	r.Post("/{sid}/custom", h.AddCustom)
	r.Post("/{sid}/custom/variant", h.AddVariant)
	r.Delete("/{sid}/custom", h.RemoveCustom)

	r.Put("/{sid}/overrides", h.SetOverride)
	r.Delete("/{sid}/overrides", h.ClearOverride)

	r.Put("/{sid}/customer", h.SetCustomer)
	r.Patch("/{sid}/meta", h.PatchMeta)

	r.Post("/{sid}/submit", h.Submit)
}

// --- Request / Response types ---

type splitRequest struct {
	ServiceType string `json:"service_type"`
	Quantity    int    `json:"quantity"`
}

type carpetRequest struct {
	AreaSqm float64 `json:"area_sqm"`
}

type toggleServiceRequest struct {
	ServiceType string `json:"service_type"`
}

type customItemRequest struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type variantRequest struct {
	ProductID string   `json:"product_id"`
	Size      string   `json:"size"`
	Styles    []string `json:"styles"`
	Quantity  int      `json:"quantity"`
}

type removeCustomRequest struct {
	Name string `json:"name"`
}

type overrideRequest struct {
	ProductID   string `json:"product_id"`
	ServiceType string `json:"service_type"`
	Price       string `json:"price"`
}

type customerRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type metaRequest struct {
	Urgent             *bool      `json:"urgent"`
	DiscountPercent    *string    `json:"discount_percent"`
	Tips               *string    `json:"tips"`
	Notes              *string    `json:"notes"`
	DeliveryType       *string    `json:"delivery_type"`
	ExpectedDeliveryAt *time.Time `json:"expected_delivery_at"`
}

type submitRequest struct {
	Pin string `json:"pin"`
}

type walkInResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// cartViewResponse is the full derived state of one session: the flattened
// line items, the money breakdown, and the order attributes.
type cartViewResponse struct {
	SessionID          uuid.UUID           `json:"session_id"`
	Items              []pricing.OrderItem `json:"items"`
	Totals             pricing.Totals      `json:"totals"`
	Urgent             bool                `json:"urgent"`
	DiscountPercent    decimal.Decimal     `json:"discount_percent"`
	Tips               decimal.Decimal     `json:"tips"`
	Notes              string              `json:"notes"`
	DeliveryType       string              `json:"delivery_type"`
	ExpectedDeliveryAt *time.Time          `json:"expected_delivery_at"`
	ClientID           *uuid.UUID          `json:"client_id"`
	WalkIn             walkInResponse      `json:"walk_in"`
}

type submitResponse struct {
	OrderNumber string          `json:"order_number"`
	OrderID     uuid.UUID       `json:"order_id"`
	Items       string          `json:"items"`
	Totals      pricing.Totals  `json:"totals"`
	EntryBy     string          `json:"entry_by"`
	State       string          `json:"state"`
	FinalAmount decimal.Decimal `json:"final_amount"`
}

// --- Handlers ---

// Create handles POST /sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()
	writeJSON(w, http.StatusCreated, h.view(sess))
}

// Get handles GET /sessions/{sid}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// Delete handles DELETE /sessions/{sid}. The cart is discarded.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}
	h.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// Increment handles POST /sessions/{sid}/products/{pid}/increment.
func (h *SessionHandler) Increment(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := h.sessionProduct(w, r)
	if !ok {
		return
	}

	err := sess.Do(func(c *cart.Cart) error { return c.Increment(p) })
	if err != nil {
		if errors.Is(err, cart.ErrAreaPriced) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "area-priced product: add a measured entry instead"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// Decrement handles POST /sessions/{sid}/products/{pid}/decrement.
// For area-priced products this removes the most recently added entry.
func (h *SessionHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := h.sessionProduct(w, r)
	if !ok {
		return
	}

	_ = sess.Do(func(c *cart.Cart) error { return c.Decrement(p) })
	writeJSON(w, http.StatusOK, h.view(sess))
}

// SetSplit handles PUT /sessions/{sid}/products/{pid}/split.
func (h *SessionHandler) SetSplit(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := h.sessionProduct(w, r)
	if !ok {
		return
	}

	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	err := sess.Do(func(c *cart.Cart) error {
		return c.SetServiceSplit(p.ID, req.ServiceType, req.Quantity)
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrNoQuantity) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// AddCarpet handles POST /sessions/{sid}/products/{pid}/carpet.
// The prompt guard drops rapid repeats so a double-click cannot produce two
// entries from one measurement.
func (h *SessionHandler) AddCarpet(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := h.sessionProduct(w, r)
	if !ok {
		return
	}

	var req carpetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if !sess.Prompt.TryOpen() {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "area entry already in progress"})
		return
	}
	defer sess.Prompt.Close()

	err := sess.Do(func(c *cart.Cart) error {
		_, err := c.AddCarpetEntry(p, req.AreaSqm)
		return err
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// RemoveCarpet handles DELETE /sessions/{sid}/products/{pid}/carpet.
// Removes the most recently added entry for the product.
func (h *SessionHandler) RemoveCarpet(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := h.sessionProduct(w, r)
	if !ok {
		return
	}

	removed := false
	_ = sess.Do(func(c *cart.Cart) error {
		removed = c.RemoveLastCarpetEntry(p.ID)
		return nil
	})
	if !removed {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no carpet entries for product"})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// ToggleCarpetService handles PATCH /sessions/{sid}/carpet/{eid}/service.
func (h *SessionHandler) ToggleCarpetService(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "eid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entry ID"})
		return
	}

	var req toggleServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	err = sess.Do(func(c *cart.Cart) error {
		return c.ToggleCarpetService(entryID, req.ServiceType)
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrEntryNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// AddCustom handles POST /sessions/{sid}/custom.
func (h *SessionHandler) AddCustom(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req customItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid unit_price"})
		return
	}

	err = sess.Do(func(c *cart.Cart) error {
		return c.AddCustomItem(req.Name, price, req.Quantity)
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// AddVariant handles POST /sessions/{sid}/custom/variant. A sized/styled
// variant enters the cart as a custom line whose computed name encodes the
// selection, priced by the product's size tier.
func (h *SessionHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req variantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product_id"})
		return
	}
	p, ok := h.refdata.Product(productID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	if req.Size != "" && req.Size != enum.SizeSmall && req.Size != enum.SizeMedium && req.Size != enum.SizeLarge {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid size"})
		return
	}

	labels := make([]string, 0, len(req.Styles)+1)
	if req.Size != "" {
		labels = append(labels, sizeLabel(req.Size))
	}
	labels = append(labels, req.Styles...)

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	err = sess.Do(func(c *cart.Cart) error {
		return c.AddCustomItem(cart.VariantName(p.Name, labels...), p.SizePrice(req.Size), qty)
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// RemoveCustom handles DELETE /sessions/{sid}/custom.
func (h *SessionHandler) RemoveCustom(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req removeCustomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	removed := false
	_ = sess.Do(func(c *cart.Cart) error {
		removed = c.RemoveCustomItem(req.Name)
		return nil
	})
	if !removed {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "custom item not found"})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// SetOverride handles PUT /sessions/{sid}/overrides.
func (h *SessionHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product_id"})
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid price"})
		return
	}

	err = sess.Do(func(c *cart.Cart) error {
		return c.SetOverride(productID, req.ServiceType, price)
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// ClearOverride handles DELETE /sessions/{sid}/overrides.
func (h *SessionHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product_id"})
		return
	}

	_ = sess.Do(func(c *cart.Cart) error {
		c.ClearOverride(productID, req.ServiceType)
		return nil
	})
	writeJSON(w, http.StatusOK, h.view(sess))
}

// SetCustomer handles PUT /sessions/{sid}/customer. Either an existing
// client is selected by ID, or walk-in identity fields are recorded. The
// walk-in phone is normalized to local form on entry.
func (h *SessionHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid client_id"})
			return
		}
		found := false
		for _, cl := range h.refdata.Clients() {
			if cl.ID == clientID {
				found = true
				break
			}
		}
		if !found {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "client not found"})
			return
		}
		_ = sess.Do(func(c *cart.Cart) error {
			c.SelectClient(clientID)
			return nil
		})
		writeJSON(w, http.StatusOK, h.view(sess))
		return
	}

	_ = sess.Do(func(c *cart.Cart) error {
		c.SetWalkIn(cart.WalkIn{
			Name:    req.Name,
			Phone:   phone.Normalize(req.Phone),
			Address: req.Address,
		})
		return nil
	})
	writeJSON(w, http.StatusOK, h.view(sess))
}

// PatchMeta handles PATCH /sessions/{sid}/meta. Only the fields present in
// the body change.
func (h *SessionHandler) PatchMeta(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req metaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var discount, tips decimal.Decimal
	var err error
	if req.DiscountPercent != nil {
		discount, err = decimal.NewFromString(*req.DiscountPercent)
		if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "discount_percent must be between 0 and 100"})
			return
		}
	}
	if req.Tips != nil {
		tips, err = decimal.NewFromString(*req.Tips)
		if err != nil || tips.IsNegative() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "tips must be >= 0"})
			return
		}
	}
	if req.DeliveryType != nil && *req.DeliveryType != "" &&
		*req.DeliveryType != enum.DeliveryTypePickup && *req.DeliveryType != enum.DeliveryTypeHome {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid delivery_type"})
		return
	}

	_ = sess.Do(func(c *cart.Cart) error {
		if req.Urgent != nil {
			c.Urgent = *req.Urgent
		}
		if req.DiscountPercent != nil {
			c.DiscountPercent = discount
		}
		if req.Tips != nil {
			c.Tips = tips
		}
		if req.Notes != nil {
			c.Notes = *req.Notes
		}
		if req.DeliveryType != nil {
			c.DeliveryType = *req.DeliveryType
		}
		if req.ExpectedDeliveryAt != nil {
			t := *req.ExpectedDeliveryAt
			c.ExpectedDeliveryAt = &t
		}
		return nil
	})
	writeJSON(w, http.StatusOK, h.view(sess))
}

// Submit handles POST /sessions/{sid}/submit.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.submit.Submit(r.Context(), sess, service.SubmitRequest{
		Pin:      req.Pin,
		Operator: claims.Name,
	})
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		OrderNumber: result.Order.OrderNumber,
		OrderID:     result.Order.ID,
		Items:       result.Items,
		Totals:      result.Totals,
		EntryBy:     result.Worker.Name,
		State:       string(result.State),
		FinalAmount: result.Totals.FinalTotal,
	})
}

// writeSubmitError maps submission gate errors to HTTP status codes.
func (h *SessionHandler) writeSubmitError(w http.ResponseWriter, err error) {
	var conflict *upstream.ConflictError
	switch {
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":           conflict.Error(),
			"existing_client": conflict.Existing,
		})
	case errors.Is(err, service.ErrSubmitInFlight):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidPin):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrMissingCustomer),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrStaleCatalog):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.log.Error("submit failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "order submission failed"})
	}
}

// --- Helpers ---

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return nil, false
	}
	sess, err := h.store.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

func (h *SessionHandler) sessionProduct(w http.ResponseWriter, r *http.Request) (*session.Session, catalog.Product, bool) {
	sess, ok := h.session(w, r)
	if !ok {
		return nil, catalog.Product{}, false
	}
	productID, err := uuid.Parse(chi.URLParam(r, "pid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
		return nil, catalog.Product{}, false
	}
	p, ok := h.refdata.Product(productID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return nil, catalog.Product{}, false
	}
	return sess, p, true
}

// view recomputes the derived cart state. The client's registered discount
// pre-fills the rate when the operator has not set one, mirroring what the
// submission gate will charge.
func (h *SessionHandler) view(sess *session.Session) cartViewResponse {
	var resp cartViewResponse
	_ = sess.Do(func(c *cart.Cart) error {
		discount := c.DiscountPercent
		if discount.IsZero() && c.ClientID != uuid.Nil {
			for _, cl := range h.refdata.Clients() {
				if cl.ID == c.ClientID {
					discount = cl.DiscountPercent
					break
				}
			}
		}

		items := pricing.DeriveOrderItems(c, h.refdata)
		resp = cartViewResponse{
			SessionID:          sess.ID,
			Items:              items,
			Totals:             pricing.ComputeTotals(items, c.Urgent, discount, c.Tips),
			Urgent:             c.Urgent,
			DiscountPercent:    discount,
			Tips:               c.Tips,
			Notes:              c.Notes,
			DeliveryType:       c.DeliveryType,
			ExpectedDeliveryAt: c.ExpectedDeliveryAt,
			WalkIn: walkInResponse{
				Name:    c.WalkIn.Name,
				Phone:   c.WalkIn.Phone,
				Address: c.WalkIn.Address,
			},
		}
		if c.ClientID != uuid.Nil {
			id := c.ClientID
			resp.ClientID = &id
		}
		if resp.Items == nil {
			resp.Items = []pricing.OrderItem{}
		}
		return nil
	})
	return resp
}

func sizeLabel(size string) string {
	switch size {
	case enum.SizeSmall:
		return "Small"
	case enum.SizeMedium:
		return "Medium"
	case enum.SizeLarge:
		return "Large"
	}
	return ""
}
