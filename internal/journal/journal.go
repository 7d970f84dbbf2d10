// Package journal keeps a local append-only record of every order this
// terminal successfully submitted, for end-of-day reconciliation against the
// back office. It is an audit spool, not the system of record.
package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	bolt "go.etcd.io/bbolt"
)

var bucketOrders = []byte("orders")

// Record is one submitted order as the terminal saw it.
type Record struct {
	OrderNumber string          `json:"order_number"`
	Items       string          `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Tips        decimal.Decimal `json:"tips"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Urgent      bool            `json:"urgent"`
	EntryBy     string          `json:"entry_by"`
	WorkerID    uuid.UUID       `json:"worker_id"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// Journal is a bbolt-backed order spool.
type Journal struct {
	db *bolt.DB
}

// Open opens (creating if needed) the journal file.
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketOrders)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the journal file.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append stores a record keyed by order number.
func (j *Journal) Append(rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode journal record: %w", err)
	}
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketOrders).Put([]byte(rec.OrderNumber), payload)
	})
}

// ByNumber looks up one record. ok is false when the order is unknown.
func (j *Journal) ByNumber(orderNumber string) (rec Record, ok bool, err error) {
	err = j.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketOrders).Get([]byte(orderNumber))
		if raw == nil {
			return nil
		}
		ok = true
		return json.Unmarshal(raw, &rec)
	})
	return rec, ok, err
}

// Day returns every record submitted on the given calendar day, in key
// order. Order numbers are timestamp-derived, so key order is entry order.
func (j *Journal) Day(day time.Time) ([]Record, error) {
	y, m, d := day.Date()
	var out []Record
	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketOrders).ForEach(func(_, raw []byte) error {
			var rec Record
			if err := json.Unmarshal(raw, &rec); err != nil {
				return err
			}
			ry, rm, rd := rec.SubmittedAt.Date()
			if ry == y && rm == m && rd == d {
				out = append(out, rec)
			}
			return nil
		})
	})
	return out, err
}
