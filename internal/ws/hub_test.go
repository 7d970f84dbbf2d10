package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/washbay-pos/api/internal/journal"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub, stage string) *Client {
	return &Client{
		hub:   hub,
		stage: stage,
		send:  make(chan []byte, 256),
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub, StageTagging)
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	if hub.rooms[StageTagging] == nil {
		t.Fatal("stage room not created")
	}
	if !hub.rooms[StageTagging][client] {
		t.Fatal("client not registered in stage room")
	}
}

func TestHubUnregistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub, StagePacking)
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	// Room should be cleaned up when empty
	if hub.rooms[StagePacking] != nil {
		t.Fatal("stage room not cleaned up after last client unregistered")
	}
}

func TestBroadcastToSingleStage(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	tagging := mockClient(hub, StageTagging)
	delivery := mockClient(hub, StageDelivery)
	hub.register <- tagging
	hub.register <- delivery
	time.Sleep(10 * time.Millisecond)

	testPayload := json.RawMessage(`{"order_number":"1756382400000"}`)
	hub.BroadcastToStage(StageTagging, Event{Type: "order.created", Payload: testPayload})

	select {
	case msg := <-tagging.send:
		var received Event
		if err := json.Unmarshal(msg, &received); err != nil {
			t.Fatalf("failed to unmarshal message: %v", err)
		}
		if received.Type != "order.created" {
			t.Errorf("expected type 'order.created', got '%s'", received.Type)
		}
		if string(received.Payload) != string(testPayload) {
			t.Errorf("expected payload '%s', got '%s'", testPayload, received.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("tagging client did not receive message")
	}

	select {
	case <-delivery.send:
		t.Fatal("delivery client should not have received a tagging-only event")
	case <-time.After(50 * time.Millisecond):
		// Expected - no message received
	}
}

func TestOrderCreatedReachesEveryStage(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	clients := []*Client{
		mockClient(hub, StageTagging),
		mockClient(hub, StagePacking),
		mockClient(hub, StageDelivery),
	}
	for _, c := range clients {
		hub.register <- c
	}
	time.Sleep(10 * time.Millisecond)

	hub.OrderCreated(journal.Record{
		OrderNumber: "1756382400000",
		Items:       "2x Shirt [N], 1x Carpet 5sqm @ 60.00 AED",
		Urgent:      true,
	})

	for i, c := range clients {
		select {
		case msg := <-c.send:
			var received Event
			if err := json.Unmarshal(msg, &received); err != nil {
				t.Fatalf("client %d: unmarshal: %v", i, err)
			}
			if received.Type != "order.created" {
				t.Errorf("client %d: type = %s", i, received.Type)
			}
			var rec journal.Record
			if err := json.Unmarshal(received.Payload, &rec); err != nil {
				t.Fatalf("client %d: payload: %v", i, err)
			}
			if rec.Items != "2x Shirt [N], 1x Carpet 5sqm @ 60.00 AED" {
				t.Errorf("client %d: items = %q", i, rec.Items)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client %d did not receive the order", i)
		}
	}
}

func TestIsValidStage(t *testing.T) {
	for _, stage := range []string{StageTagging, StagePacking, StageDelivery, StageIncidents} {
		if !IsValidStage(stage) {
			t.Errorf("IsValidStage(%q) = false", stage)
		}
	}
	if IsValidStage("billing") {
		t.Error("unknown stage accepted")
	}
}

func TestHubCleanupEmptyRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub, StageTagging)
	client2 := mockClient(hub, StageTagging)
	hub.register <- client1
	hub.register <- client2
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	if len(hub.rooms[StageTagging]) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(hub.rooms[StageTagging]))
	}
	hub.mu.RUnlock()

	hub.unregister <- client1
	hub.unregister <- client2
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	if hub.rooms[StageTagging] != nil {
		t.Fatal("room should be deleted when last client unregisters")
	}
	hub.mu.RUnlock()
}
