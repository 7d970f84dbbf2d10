package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/matcher"
	"github.com/washbay-pos/api/internal/phone"
)

// ClientSnapshot defines the client-registry reads the handler needs.
// Satisfied by *refdata.Cache; narrow interface for testability.
type ClientSnapshot interface {
	Clients() []catalog.Client
}

// ClientHandler serves the client registry and phone matching.
type ClientHandler struct {
	snapshot ClientSnapshot
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(snapshot ClientSnapshot) *ClientHandler {
	return &ClientHandler{snapshot: snapshot}
}

// RegisterRoutes registers client endpoints on the given Chi router.
// Expected to be mounted at /clients.
func (h *ClientHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/match", h.Match)
}

type matchRequest struct {
	Phone string `json:"phone"`
}

type matchResponse struct {
	Matched bool            `json:"matched"`
	Client  *catalog.Client `json:"client,omitempty"`
}

// List handles GET /clients. Supports ?q= to filter by name substring or
// phone digits.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients := h.snapshot.Clients()

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q != "" {
		qLower := strings.ToLower(q)
		qDigits := phone.Digits(q)
		filtered := make([]catalog.Client, 0, len(clients))
		for _, cl := range clients {
			if strings.Contains(strings.ToLower(cl.Name), qLower) {
				filtered = append(filtered, cl)
				continue
			}
			if qDigits != "" && strings.Contains(phone.Digits(cl.Phone), qDigits) {
				filtered = append(filtered, cl)
			}
		}
		clients = filtered
	}
	if clients == nil {
		clients = []catalog.Client{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"clients": clients})
}

// Match handles POST /clients/match. As the operator types a walk-in phone,
// the screen probes for a registered client with the same number so the order
// can attach to the existing record instead of duplicating it.
func (h *ClientHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cl, ok := matcher.FindMatch(req.Phone, h.snapshot.Clients())
	if !ok {
		writeJSON(w, http.StatusOK, matchResponse{Matched: false})
		return
	}
	writeJSON(w, http.StatusOK, matchResponse{Matched: true, Client: &cl})
}
