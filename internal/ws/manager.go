package ws

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConnectionManager tracks active WebSocket connections, one per user.
// Registering a second connection for the same user closes the first.
type ConnectionManager struct {
	clients    map[uuid.UUID]*Client
	register   chan *Client
	unregister chan *Client
	logger     *zap.Logger
	mu         sync.RWMutex
}

// NewConnectionManager creates a manager and starts its control loop.
func NewConnectionManager(logger *zap.Logger) *ConnectionManager {
	m := &ConnectionManager{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.Named("ConnectionManager"),
	}
	go m.run()
	return m
}

func (m *ConnectionManager) run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if old, ok := m.clients[client.userID]; ok {
				m.logger.Info("Replacing existing connection", zap.String("userID", client.userID.String()))
				close(old.send)
				_ = old.conn.Close()
			}
			m.clients[client.userID] = client
			m.mu.Unlock()
			m.logger.Info("Client registered", zap.String("userID", client.userID.String()))

		case client := <-m.unregister:
			m.mu.Lock()
			// Match on identity, not just user id: a stale connection's
			// teardown must not evict the connection that replaced it.
			if current, ok := m.clients[client.userID]; ok && current == client {
				delete(m.clients, client.userID)
				close(client.send)
				m.logger.Info("Client unregistered", zap.String("userID", client.userID.String()))
			}
			m.mu.Unlock()
		}
	}
}

// RegisterClient adds a client to the manager.
func (m *ConnectionManager) RegisterClient(client *Client) {
	m.register <- client
}

// UnregisterClient removes a client if it is still the active connection
// for its user. A no-op for connections that have already been replaced.
func (m *ConnectionManager) UnregisterClient(client *Client) {
	m.unregister <- client
}

// SendToUser queues a message for one user. Returns false when the user is
// offline or their send buffer is full.
func (m *ConnectionManager) SendToUser(userID uuid.UUID, message []byte) bool {
	m.mu.RLock()
	client, ok := m.clients[userID]
	m.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case client.send <- message:
		return true
	default:
		m.logger.Warn("Send buffer full, dropping message", zap.String("userID", userID.String()))
		return false
	}
}

// Broadcast queues a message for every connected user and returns how many
// clients accepted it.
func (m *ConnectionManager) Broadcast(message []byte) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	delivered := 0
	for userID, client := range m.clients {
		select {
		case client.send <- message:
			delivered++
		default:
			m.logger.Warn("Send buffer full during broadcast", zap.String("userID", userID.String()))
		}
	}
	return delivered
}

// ConnectionCount returns the number of active connections.
func (m *ConnectionManager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
