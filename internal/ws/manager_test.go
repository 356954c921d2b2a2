package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// dialTestConn opens a real client-side WebSocket connection against a
// throwaway server, so manager tests exercise actual conn teardown.
func dialTestConn(t *testing.T) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverConn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		go func() {
			for {
				if _, _, err := serverConn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newTestClient(t *testing.T, userID uuid.UUID, buffer int) *Client {
	t.Helper()
	return &Client{
		userID: userID,
		conn:   dialTestConn(t),
		send:   make(chan []byte, buffer),
		logger: zap.NewNop(),
	}
}

func waitForCount(t *testing.T, m *ConnectionManager, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.ConnectionCount() == want
	}, time.Second, 5*time.Millisecond)
}

func TestConnectionManager_RegisterAndSend(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	userID := uuid.New()
	client := newTestClient(t, userID, sendBufferSize)

	m.RegisterClient(client)
	waitForCount(t, m, 1)

	require.True(t, m.SendToUser(userID, []byte(`{"type":"ANNOUNCEMENT"}`)))
	select {
	case msg := <-client.send:
		assert.Equal(t, `{"type":"ANNOUNCEMENT"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("message never reached the client buffer")
	}
}

func TestConnectionManager_SendToOfflineUser(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	assert.False(t, m.SendToUser(uuid.New(), []byte("hello")))
}

func TestConnectionManager_SendDropsWhenBufferFull(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	userID := uuid.New()
	client := newTestClient(t, userID, 1)

	m.RegisterClient(client)
	waitForCount(t, m, 1)

	require.True(t, m.SendToUser(userID, []byte("first")))
	assert.False(t, m.SendToUser(userID, []byte("second")))
}

func TestConnectionManager_BroadcastCountsDeliveries(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	first := newTestClient(t, uuid.New(), sendBufferSize)
	second := newTestClient(t, uuid.New(), sendBufferSize)

	m.RegisterClient(first)
	m.RegisterClient(second)
	waitForCount(t, m, 2)

	assert.Equal(t, 2, m.Broadcast([]byte("to everyone")))
	assert.Equal(t, "to everyone", string(<-first.send))
	assert.Equal(t, "to everyone", string(<-second.send))
}

func TestConnectionManager_SecondConnectionReplacesFirst(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	userID := uuid.New()
	old := newTestClient(t, userID, sendBufferSize)
	replacement := newTestClient(t, userID, sendBufferSize)

	m.RegisterClient(old)
	waitForCount(t, m, 1)
	m.RegisterClient(replacement)

	// The old client's send channel is closed by the manager.
	require.Eventually(t, func() bool {
		select {
		case _, open := <-old.send:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, m.ConnectionCount())
	require.True(t, m.SendToUser(userID, []byte("after replace")))
	assert.Equal(t, "after replace", string(<-replacement.send))
}

func TestConnectionManager_Unregister(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	userID := uuid.New()
	client := newTestClient(t, userID, sendBufferSize)

	m.RegisterClient(client)
	waitForCount(t, m, 1)

	m.UnregisterClient(client)
	waitForCount(t, m, 0)
	assert.False(t, m.SendToUser(userID, []byte("gone")))
}

func TestConnectionManager_StaleUnregisterIsNoop(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	userID := uuid.New()
	old := newTestClient(t, userID, sendBufferSize)
	replacement := newTestClient(t, userID, sendBufferSize)

	m.RegisterClient(old)
	waitForCount(t, m, 1)
	m.RegisterClient(replacement)
	waitForCount(t, m, 1)

	// The replaced connection unregistering itself must not evict its
	// successor.
	m.UnregisterClient(old)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, m.ConnectionCount())
	assert.True(t, m.SendToUser(userID, []byte("still here")))

	m.UnregisterClient(replacement)
	waitForCount(t, m, 0)
}

func TestConnectionManager_ReconnectSurvivesOldConnectionTeardown(t *testing.T) {
	m := NewConnectionManager(zap.NewNop())
	userID := uuid.New()

	old := newTestClient(t, userID, sendBufferSize)
	m.RegisterClient(old)
	go old.writePump()
	go old.readPump(m)
	waitForCount(t, m, 1)

	// Reconnect. The manager closes the old conn, whose dying readPump
	// fires an unregister for the same user id.
	replacement := newTestClient(t, userID, sendBufferSize)
	m.RegisterClient(replacement)
	go replacement.writePump()
	go replacement.readPump(m)

	// Give the old connection's teardown time to run to completion.
	time.Sleep(500 * time.Millisecond)

	assert.Equal(t, 1, m.ConnectionCount())
	assert.True(t, m.SendToUser(userID, []byte(`{"type":"ANNOUNCEMENT"}`)),
		"reconnected user must still be reachable after the old connection dies")
}
