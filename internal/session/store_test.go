package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washbay-pos/api/internal/cart"
)

func TestCreateGetDelete(t *testing.T) {
	st := NewStore()

	s := st.Create()
	if s.Cart == nil || s.Prompt == nil {
		t.Fatal("session missing cart or prompt guard")
	}

	got, err := st.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get = %v, %v", got, err)
	}

	st.Delete(s.ID)
	if _, err := st.Get(s.ID); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d, want 0", st.Len())
	}
}

func TestGetUnknown(t *testing.T) {
	st := NewStore()
	if _, err := st.Get(uuid.New()); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSubmitGuardSingleFlight(t *testing.T) {
	s := NewStore().Create()

	if !s.BeginSubmit() {
		t.Fatal("first BeginSubmit must succeed")
	}
	if s.BeginSubmit() {
		t.Fatal("second BeginSubmit while in flight must fail")
	}
	s.EndSubmit()
	if !s.BeginSubmit() {
		t.Fatal("BeginSubmit after EndSubmit must succeed")
	}
}

func TestDoSerializesCartAccess(t *testing.T) {
	s := NewStore().Create()

	err := s.Do(func(c *cart.Cart) error {
		return c.AddCustomItem("Button repair", decimal.NewFromInt(5), 1)
	})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Cart.HasItems() {
		t.Error("mutation through Do not applied")
	}
}
