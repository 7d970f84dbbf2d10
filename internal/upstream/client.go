// Package upstream is the HTTP client for the back-office API that owns
// reference data and order persistence. The terminal service never stores
// products, clients, or orders itself; it reads and submits through here.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/enum"
)

// Errors returned by the upstream client.
var (
	ErrPinRejected = errors.New("pin rejected")
	ErrUnavailable = errors.New("upstream unavailable")
)

// ConflictError is returned when order creation is refused because the
// customer phone already belongs to a registered client. It carries the
// existing identity so the operator can switch to "use existing".
type ConflictError struct {
	Message  string
	Existing catalog.Client
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "customer already exists"
}

// Worker is the staff identity returned by PIN verification.
type Worker struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// OrderInput is the persistence API's order shape. Field names and the
// flattened items string are consumed as-is by the downstream stages.
type OrderInput struct {
	ClientID           *uuid.UUID      `json:"clientId"`
	CustomerName       string          `json:"customerName"`
	CustomerPhone      string          `json:"customerPhone"`
	DeliveryAddress    string          `json:"deliveryAddress"`
	OrderNumber        string          `json:"orderNumber"`
	Items              string          `json:"items"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	DiscountPercent    decimal.Decimal `json:"discountPercent"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	Tips               decimal.Decimal `json:"tips"`
	FinalAmount        decimal.Decimal `json:"finalAmount"`
	EntryDate          time.Time       `json:"entryDate"`
	ExpectedDeliveryAt *time.Time      `json:"expectedDeliveryAt"`
	DeliveryType       string          `json:"deliveryType"`
	ServiceType        string          `json:"serviceType"`
	Urgent             bool            `json:"urgent"`
	EntryBy            string          `json:"entryBy"`
	EntryByWorkerID    uuid.UUID       `json:"entryByWorkerId"`
	CreatedBy          string          `json:"createdBy"`
	Notes              *string         `json:"notes"`
}

// Order is the persisted order as echoed back by the API.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Client talks to the back-office API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

// New creates an upstream client. log may be nil.
func New(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// ListProducts fetches the full product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListClients fetches the client registry.
func (c *Client) ListClients(ctx context.Context) ([]catalog.Client, error) {
	var clients []catalog.Client
	if err := c.getJSON(ctx, "/clients", &clients); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// VerifyPin submits a staff PIN and returns the authenticated worker.
// Both a wrong PIN and a PIN belonging to a role without billing rights
// come back as ErrPinRejected with the server's message.
func (c *Client) VerifyPin(ctx context.Context, pin string) (Worker, error) {
	body, status, err := c.postJSON(ctx, "/workers/verify-pin", map[string]string{"pin": pin})
	if err != nil {
		return Worker{}, fmt.Errorf("verify pin: %w: %w", ErrUnavailable, err)
	}

	if status != http.StatusOK {
		return Worker{}, fmt.Errorf("%w: %s", ErrPinRejected, extractMessage(body))
	}

	var resp struct {
		Success bool   `json:"success"`
		Worker  Worker `json:"worker"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || !resp.Success {
		return Worker{}, fmt.Errorf("%w: %s", ErrPinRejected, extractMessage(body))
	}
	if !enum.HasBillingRights(resp.Worker.Role) {
		return Worker{}, fmt.Errorf("%w: role %s has no billing rights", ErrPinRejected, resp.Worker.Role)
	}
	return resp.Worker, nil
}

// CreateOrder persists the order. A 409 becomes a *ConflictError carrying
// the existing client; other failures surface the server's message.
func (c *Client) CreateOrder(ctx context.Context, in OrderInput) (Order, error) {
	body, status, err := c.postJSON(ctx, "/orders", in)
	if err != nil {
		return Order{}, fmt.Errorf("create order: %w: %w", ErrUnavailable, err)
	}

	switch {
	case status == http.StatusConflict:
		var conflict struct {
			Error          string         `json:"error"`
			ExistingClient catalog.Client `json:"existingClient"`
		}
		_ = json.Unmarshal(body, &conflict)
		return Order{}, &ConflictError{Message: conflict.Error, Existing: conflict.ExistingClient}
	case status != http.StatusOK && status != http.StatusCreated:
		return Order{}, fmt.Errorf("create order: %s", extractMessage(body))
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return Order{}, fmt.Errorf("create order: decode response: %w", err)
	}
	return order, nil
}

// --- HTTP plumbing ---

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GET %s: %s", path, extractMessage(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, in any) ([]byte, int, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("path", path), zap.Error(err))
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
}

// extractMessage pulls a human-readable error out of a response body,
// trying the common "error" and "message" fields before giving up.
func extractMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return "request failed"
}
