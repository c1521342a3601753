package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// heartbeatInterval keeps idle connections alive through proxies.
	heartbeatInterval = 30 * time.Second

	// clientBuffer is the per-connection send queue size. A client that
	// falls this far behind is disconnected rather than blocking the hub.
	clientBuffer = 64
)

// Event is a single server-sent event.
type Event struct {
	Name string
	Data any
}

// Client is one open SSE connection.
type Client struct {
	ID     string
	UserID string
	send   chan Event
}

// Manager fans events out to connected SSE clients. Clients register when
// the HTTP handler starts streaming and unregister on disconnect.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client

	// OnConnect and OnDisconnect are invoked from the hub goroutine after a
	// client is registered or removed. Set them before calling Run.
	OnConnect    func(clientID, userID string)
	OnDisconnect func(clientID, userID string)
}

// NewManager creates a new SSE manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes client registration. It blocks and should be started in its
// own goroutine.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			m.clients[client.ID] = client
			m.mu.Unlock()
			log.Printf("[SSE] Client %s connected (user %s)", client.ID, client.UserID)
			if m.OnConnect != nil {
				m.OnConnect(client.ID, client.UserID)
			}
		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client.ID]; ok {
				delete(m.clients, client.ID)
				close(client.send)
			}
			m.mu.Unlock()
			log.Printf("[SSE] Client %s disconnected (user %s)", client.ID, client.UserID)
			if m.OnDisconnect != nil {
				m.OnDisconnect(client.ID, client.UserID)
			}
		}
	}
}

// HasClient reports whether a connection with the given id is live.
func (m *Manager) HasClient(clientID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.clients[clientID]
	return ok
}

// SendToClient queues an event for one connection. Returns false when the
// client is unknown or its queue is full.
//
// The read lock is held across the send: Run closes the channel under the
// write lock, so a sender can never hit a closed channel. The send itself
// never blocks (select with default), so holding the lock is safe.
func (m *Manager) SendToClient(clientID, event string, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	client, ok := m.clients[clientID]
	if !ok {
		return false
	}
	select {
	case client.send <- Event{Name: event, Data: data}:
		return true
	default:
		log.Printf("[SSE] Client %s send queue full, dropping event %s", clientID, event)
		return false
	}
}

// SendToUser queues an event for every connection owned by a user. As in
// SendToClient, the read lock is held across the non-blocking sends.
func (m *Manager) SendToUser(userID, event string, data any) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, client := range m.clients {
		if client.UserID != userID {
			continue
		}
		select {
		case client.send <- Event{Name: event, Data: data}:
		default:
			log.Printf("[SSE] Client %s send queue full, dropping event %s", client.ID, event)
		}
	}
}

// ServeHTTP streams events to one client until the connection closes. The
// first event is "hello" carrying the client_id the caller uses for
// subscription changes.
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	client := &Client{
		ID:     uuid.New().String(),
		UserID: userID,
		send:   make(chan Event, clientBuffer),
	}

	writeEvent(c, "hello", gin.H{"client_id": client.ID})
	flusher.Flush()

	m.register <- client
	defer func() { m.unregister <- client }()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case event, ok := <-client.send:
			if !ok {
				return
			}
			writeEvent(c, event.Name, event.Data)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeEvent(c *gin.Context, name string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("[SSE] Failed to marshal event %s: %v", name, err)
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", name, payload)
}
