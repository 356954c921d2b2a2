package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"prosports-server/internal/auth"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cross-origin access is governed by the token check below, not by
		// the Origin header.
		return true
	},
}

// Handler upgrades authenticated HTTP requests to WebSocket connections.
type Handler struct {
	manager  *ConnectionManager
	sessions auth.SessionService
	logger   *zap.Logger
}

func NewHandler(manager *ConnectionManager, sessions auth.SessionService, logger *zap.Logger) *Handler {
	return &Handler{
		manager:  manager,
		sessions: sessions,
		logger:   logger.Named("WSHandler"),
	}
}

// ServeWS handles GET /ws?token=... Browsers cannot set headers on the
// WebSocket handshake, so the session token travels as a query parameter
// and is verified before the upgrade.
func (h *Handler) ServeWS(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.String(http.StatusUnauthorized, "missing token")
		return
	}

	claims, err := h.sessions.VerifyToken(c.Request.Context(), tokenString)
	if err != nil {
		h.logger.Warn("WebSocket token rejected", zap.Error(err))
		c.String(http.StatusUnauthorized, "invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrader already wrote the HTTP error.
		h.logger.Error("Failed to upgrade connection", zap.Error(err), zap.String("userID", claims.UserID.String()))
		return
	}

	h.logger.Info("WebSocket connection established", zap.String("userID", claims.UserID.String()))

	client := &Client{
		userID: claims.UserID,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		logger: h.logger.With(zap.String("userID", claims.UserID.String())),
	}
	h.manager.RegisterClient(client)

	go client.writePump()
	go client.readPump(h.manager)
}
