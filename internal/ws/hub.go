package ws

import (
	"encoding/json"
	"sync"

	"github.com/washbay-pos/api/internal/journal"
)

// Downstream stages that follow the order feed. Each re-parses the order's
// flattened items string for its own board.
const (
	StageTagging   = "tagging"
	StagePacking   = "packing"
	StageDelivery  = "delivery"
	StageIncidents = "incidents"
)

// IsValidStage reports whether s names a known stage room.
func IsValidStage(s string) bool {
	switch s {
	case StageTagging, StagePacking, StageDelivery, StageIncidents:
		return true
	}
	return false
}

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// stageEvent is an internal struct for routing events to stage rooms;
// an empty Stage addresses every room.
type stageEvent struct {
	Stage string
	Event Event
}

// Hub maintains the set of active stage-screen clients and broadcasts
// submitted orders to them
type Hub struct {
	// Registered clients by stage room
	rooms map[string]map[*Client]bool

	// Inbound messages from clients (register/unregister)
	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	broadcast chan *stageEvent

	// Mutex for thread-safe room access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *stageEvent, 256),
	}
}

// Run starts the hub's main loop
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.stage] == nil {
				h.rooms[client.stage] = make(map[*Client]bool)
			}
			h.rooms[client.stage][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.stage]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					// Clean up empty rooms
					if len(clients) == 0 {
						delete(h.rooms, client.stage)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			message, err := json.Marshal(event.Event)
			if err != nil {
				h.mu.Unlock()
				continue
			}

			for stage, clients := range h.rooms {
				if event.Stage != "" && event.Stage != stage {
					continue
				}
				for client := range clients {
					select {
					case client.send <- message:
					default:
						// Client's send buffer is full, close and unregister
						close(client.send)
						delete(clients, client)
					}
				}
				if len(clients) == 0 {
					delete(h.rooms, stage)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToStage sends an event to all clients subscribed to one stage
func (h *Hub) BroadcastToStage(stage string, event Event) {
	h.broadcast <- &stageEvent{Stage: stage, Event: event}
}

// OrderCreated pushes a submitted order to every stage room. The payload is
// the journal record: order number plus the items string the stages parse.
func (h *Hub) OrderCreated(rec journal.Record) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return
	}
	h.broadcast <- &stageEvent{Event: Event{Type: "order.created", Payload: payload}}
}
