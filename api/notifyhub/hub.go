// Package notifyhub fans controller events out to every connected
// presentation client over WebSocket.
package notifyhub

import (
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/menulens/menulens-go/types"
)

// Envelope wraps each event with its kind so one socket carries both streams.
type Envelope struct {
	Type  string `json:"type"`
	Event any    `json:"event"`
}

const (
	EventLifecycle = "lifecycle"
	EventGallery   = "gallery"
)

// Hub holds WebSocket connections and broadcasts events to all clients.
// It implements lifecycle.EventSink and gallery.EventSink.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

// New creates a new event hub.
func New() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Register adds a WebSocket connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

// Unregister removes a WebSocket connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// LifecycleEvent broadcasts an upload lifecycle transition.
func (h *Hub) LifecycleEvent(ev types.LifecycleEvent) {
	h.broadcast(Envelope{Type: EventLifecycle, Event: ev})
}

// GalleryEvent broadcasts a carousel state change.
func (h *Hub) GalleryEvent(ev types.GalleryEvent) {
	h.broadcast(Envelope{Type: EventGallery, Event: ev})
}

func (h *Hub) broadcast(envelope Envelope) {
	payload, err := sonic.Marshal(envelope)
	if err != nil {
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		_ = conn.WriteMessage(websocket.TextMessage, payload)
	}
}
