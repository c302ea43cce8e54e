package hub

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Event represents a real-time event to be sent to a client.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// UpdateEvent tells a client that something it displays changed and it
// should re-query the server. Delivery carries no data on purpose: clients
// re-fetch state independently, so nothing depends on this arriving.
func UpdateEvent(from string) Event {
	return Event{Type: "update", Payload: map[string]interface{}{"from": from}}
}

// Client is a single live connection (the event-stream handler listens on it).
type Client chan []byte

// NewClient returns a client channel with enough buffer that a briefly slow
// reader does not drop events.
func NewClient() Client {
	return make(Client, 8)
}

// Hub is the process-wide presence registry: at most one live client per
// username. It is ephemeral and rebuildable; restarting the server simply
// forgets who was online.
type Hub struct {
	clients map[string]Client
	mu      sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]Client),
	}
}

// Register records username's live connection. Last write wins: a previous
// connection for the same user is closed and replaced, mirroring a client
// that reconnected.
func (h *Hub) Register(username string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.clients[username]; ok {
		close(old)
	}
	h.clients[username] = client
}

// Unregister clears username's presence, but only if client is still the
// registered connection. A stale disconnect must not evict a newer session.
func (h *Hub) Unregister(username string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.clients[username]; ok && current == client {
		delete(h.clients, username)
		close(client)
	}
}

// Online reports whether username has a live connection.
func (h *Hub) Online(username string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.clients[username]
	return ok
}

// Notify delivers an event to username's live connection, at most once.
// It never blocks and never retries: an offline or saturated peer is logged
// and the event is dropped.
func (h *Hub) Notify(username string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.clients[username]
	if !ok {
		log.WithField("username", username).Debug("notify skipped, user offline")
		return
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Warn("failed to encode event")
		return
	}

	select {
	case client <- messageBytes:
	default:
		log.WithField("username", username).Debug("notify dropped, client not reading")
	}
}
