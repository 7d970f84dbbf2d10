// Package service implements the order submission gate: field validation,
// the staff PIN round-trip, payload assembly, and the post-submit reset.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/washbay-pos/api/internal/cart"
	"github.com/washbay-pos/api/internal/catalog"
	"github.com/washbay-pos/api/internal/enum"
	"github.com/washbay-pos/api/internal/journal"
	"github.com/washbay-pos/api/internal/pricing"
	"github.com/washbay-pos/api/internal/session"
	"github.com/washbay-pos/api/internal/upstream"
)

// Gate states. Submission walks them in order; every failure path names the
// state it failed in so the screen can show a field-specific message.
type State string

const (
	StateIdle        State = "IDLE"
	StateValidating  State = "VALIDATING_FIELDS"
	StateAwaitingPin State = "AWAITING_PIN"
	StateSubmitting  State = "SUBMITTING"
	StateSuccess     State = "SUCCESS"
	StateFailed      State = "FAILED"
)

// Errors returned by the submission gate.
var (
	ErrMissingCustomer  = errors.New("select a client or fill at least 2 of name, phone, address")
	ErrEmptyCart        = errors.New("cart has no items")
	ErrClientNotFound   = errors.New("selected client no longer exists")
	ErrStaleCatalog     = errors.New("cart items are no longer in the product list")
	ErrInvalidPin       = errors.New("invalid pin")
	ErrSubmitInFlight   = errors.New("a submission is already in progress")
	ErrSubmissionFailed = errors.New("order submission failed")
)

// minWalkInFields is how many of name/phone/address a walk-in order needs.
const minWalkInFields = 2

// pinLength is the exact staff PIN length.
const pinLength = 5

// PinVerifier authenticates a staff PIN. Satisfied by *upstream.Client.
type PinVerifier interface {
	VerifyPin(ctx context.Context, pin string) (upstream.Worker, error)
}

// OrderCreator persists orders. Satisfied by *upstream.Client.
type OrderCreator interface {
	CreateOrder(ctx context.Context, in upstream.OrderInput) (upstream.Order, error)
}

// RefData provides the current reference-data snapshot.
// Satisfied by *refdata.Cache.
type RefData interface {
	Product(id uuid.UUID) (catalog.Product, bool)
	Clients() []catalog.Client
}

// OrderJournal records successfully submitted orders locally.
// Satisfied by *journal.Journal.
type OrderJournal interface {
	Append(rec journal.Record) error
}

// Feed pushes submitted orders to the stage screens.
// Satisfied by *ws.Hub.
type Feed interface {
	OrderCreated(rec journal.Record)
}

// SubmitRequest carries the inputs the submit action needs beyond the cart.
// Operator is the logged-in terminal identity, passed in explicitly rather
// than read from ambient state.
type SubmitRequest struct {
	Pin      string
	Operator string
}

// SubmitResult reports a confirmed submission.
type SubmitResult struct {
	Order  upstream.Order
	Worker upstream.Worker
	Items  string
	Totals pricing.Totals
	State  State
}

// SubmitService is the order submission gate.
type SubmitService struct {
	pins    PinVerifier
	orders  OrderCreator
	refdata RefData
	journal OrderJournal
	feed    Feed
	log     *zap.Logger

	// Now is the clock used for the order number and entry date.
	// Overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// NewSubmitService creates the gate. journal, feed and log may be nil.
func NewSubmitService(pins PinVerifier, orders OrderCreator, refdata RefData, j OrderJournal, feed Feed, log *zap.Logger) *SubmitService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SubmitService{
		pins:    pins,
		orders:  orders,
		refdata: refdata,
		journal: j,
		feed:    feed,
		log:     log,
		Now:     time.Now,
	}
}

// orderSnapshot is the cart state captured under the session lock before the
// PIN and order round-trips, so a mutation racing with those round-trips
// cannot tear the payload.
type orderSnapshot struct {
	customerName    string
	customerPhone   string
	deliveryAddress string
	clientID        *uuid.UUID
	discountPercent decimal.Decimal
	itemsStr        string
	totals          pricing.Totals
	serviceType     string
	urgent          bool
	deliveryType    string
	expectedAt      *time.Time
	notes           *string
}

// Submit runs the full gate on one session: validate fields, verify the PIN,
// post the order, and reset the cart only on confirmed success. Any failure
// leaves the cart exactly as it was so the operator can retry.
//
// The cart is only ever touched under the session lock: the payload is
// derived from a locked snapshot before the network round-trips, and the
// success-path reset reacquires the lock.
func (s *SubmitService) Submit(ctx context.Context, sess *session.Session, req SubmitRequest) (*SubmitResult, error) {
	if !sess.BeginSubmit() {
		return nil, ErrSubmitInFlight
	}
	defer sess.EndSubmit()

	// --- ValidatingFields ---
	var snap orderSnapshot
	if err := sess.Do(func(c *cart.Cart) error {
		return s.snapshot(c, &snap)
	}); err != nil {
		return nil, err
	}

	// --- AwaitingPin ---
	if len(req.Pin) != pinLength || !allDigits(req.Pin) {
		return nil, fmt.Errorf("%w: pin must be %d digits", ErrInvalidPin, pinLength)
	}
	worker, err := s.pins.VerifyPin(ctx, req.Pin)
	if err != nil {
		if errors.Is(err, upstream.ErrPinRejected) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPin, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	// --- Submitting ---
	now := s.Now()

	input := upstream.OrderInput{
		ClientID:           snap.clientID,
		CustomerName:       snap.customerName,
		CustomerPhone:      snap.customerPhone,
		DeliveryAddress:    snap.deliveryAddress,
		OrderNumber:        strconv.FormatInt(now.UnixMilli(), 10),
		Items:              snap.itemsStr,
		TotalAmount:        snap.totals.ChargedAmount,
		DiscountPercent:    snap.discountPercent,
		DiscountAmount:     snap.totals.DiscountAmount,
		Tips:               snap.totals.Tips,
		FinalAmount:        snap.totals.FinalTotal,
		EntryDate:          now,
		ExpectedDeliveryAt: snap.expectedAt,
		DeliveryType:       snap.deliveryType,
		ServiceType:        snap.serviceType,
		Urgent:             snap.urgent,
		EntryBy:            worker.Name,
		EntryByWorkerID:    worker.ID,
		CreatedBy:          req.Operator,
		Notes:              snap.notes,
	}

	order, err := s.orders.CreateOrder(ctx, input)
	if err != nil {
		var conflict *upstream.ConflictError
		if errors.As(err, &conflict) {
			// Surfaced as-is so the screen can offer "use existing client".
			return nil, conflict
		}
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	// --- Success: reset the whole order-entry surface ---
	_ = sess.Do(func(c *cart.Cart) error {
		c.Reset()
		return nil
	})

	rec := journal.Record{
		OrderNumber: input.OrderNumber,
		Items:       snap.itemsStr,
		Subtotal:    snap.totals.Subtotal,
		Discount:    snap.totals.DiscountAmount,
		Tips:        snap.totals.Tips,
		FinalAmount: snap.totals.FinalTotal,
		Urgent:      input.Urgent,
		EntryBy:     worker.Name,
		WorkerID:    worker.ID,
		SubmittedAt: now,
	}
	if s.journal != nil {
		if err := s.journal.Append(rec); err != nil {
			// The order is already persisted upstream; a journal miss only
			// degrades local reconciliation.
			s.log.Warn("journal append failed", zap.String("order", rec.OrderNumber), zap.Error(err))
		}
	}
	if s.feed != nil {
		s.feed.OrderCreated(rec)
	}

	s.log.Info("order submitted",
		zap.String("order", input.OrderNumber),
		zap.String("entry_by", worker.Name),
		zap.String("final_amount", snap.totals.FinalTotal.StringFixed(2)))

	return &SubmitResult{
		Order:  order,
		Worker: worker,
		Items:  snap.itemsStr,
		Totals: snap.totals,
		State:  StateSuccess,
	}, nil
}

// snapshot validates the cart and captures everything the order payload
// needs. Runs under the session lock via session.Do.
func (s *SubmitService) snapshot(c *cart.Cart, snap *orderSnapshot) error {
	name, phone, address, clientID, discount, err := s.resolveCustomer(c)
	if err != nil {
		return err
	}
	if !c.HasItems() {
		return ErrEmptyCart
	}

	// The cart's discount wins when the operator changed it; otherwise the
	// client's registered discount pre-fills.
	if !c.DiscountPercent.IsZero() {
		discount = c.DiscountPercent
	}

	items := pricing.DeriveOrderItems(c, s.refdata)
	if len(items) == 0 {
		// The cart tracks products, but every one has vanished from the
		// catalog snapshot since it was added. Posting would produce an
		// order with no lines and a zero total.
		return ErrStaleCatalog
	}

	snap.customerName = name
	snap.customerPhone = phone
	snap.deliveryAddress = address
	snap.clientID = clientID
	snap.discountPercent = discount
	snap.itemsStr = pricing.EncodeItems(items)
	snap.totals = pricing.ComputeTotals(items, c.Urgent, discount, c.Tips)
	snap.serviceType = summarizeService(items)
	snap.urgent = c.Urgent
	snap.deliveryType = c.DeliveryType
	snap.expectedAt = c.ExpectedDeliveryAt
	if c.Notes != "" {
		n := c.Notes
		snap.notes = &n
	}
	return nil
}

// resolveCustomer produces the customer identity fields for the payload:
// either the selected client's registry record, or the walk-in fields when
// at least two of them are filled.
func (s *SubmitService) resolveCustomer(c *cart.Cart) (name, phone, address string, clientID *uuid.UUID, discount decimal.Decimal, err error) {
	if c.ClientID != uuid.Nil {
		for _, cl := range s.refdata.Clients() {
			if cl.ID == c.ClientID {
				id := cl.ID
				return cl.Name, cl.Phone, cl.Address, &id, cl.DiscountPercent, nil
			}
		}
		return "", "", "", nil, decimal.Zero, ErrClientNotFound
	}

	if c.WalkIn.FilledFields() < minWalkInFields {
		return "", "", "", nil, decimal.Zero, ErrMissingCustomer
	}
	return c.WalkIn.Name, c.WalkIn.Phone, c.WalkIn.Address, nil, decimal.Zero, nil
}

// summarizeService reduces the line set to one order-level service label:
// the single tier when every line shares it, MIXED otherwise.
func summarizeService(items []pricing.OrderItem) string {
	seen := ""
	for _, it := range items {
		if seen == "" {
			seen = it.ServiceType
			continue
		}
		if it.ServiceType != seen {
			return "MIXED"
		}
	}
	if seen == "" {
		return enum.ServiceTypeNormal
	}
	return seen
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
