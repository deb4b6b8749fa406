package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type WSClient struct {
	CoachID uuid.UUID
	Conn    *websocket.Conn
	mu      sync.Mutex
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(messageType, data)
}

// Ping writes a keepalive frame.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uuid.UUID]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.CoachID] == nil {
		h.clients[c.CoachID] = make(map[*WSClient]struct{})
	}
	h.clients[c.CoachID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.CoachID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.CoachID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Connections(coachID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[coachID])
}

func (h *RealtimeHub) Broadcast(coachID uuid.UUID, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		log.Printf("realtime: marshal failed: %v", err)
		return
	}
	// writes happen outside the lock so a slow socket cannot stall the hub
	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[coachID]))
	for c := range h.clients[coachID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			log.Printf("realtime: write to coach %s failed: %v", coachID, err)
		}
	}
}
