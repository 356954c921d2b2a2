package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prosports-server/internal/models"
)

func (h *ClubHandler) listNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		zap.L().Error("User ID missing in context during notification list")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			badRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	items, nextCursor, err := h.notifications.ListForUser(c.Request.Context(), userID, c.Query("cursor"), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notificationListResponse{
		Items:      items,
		NextCursor: nextCursor,
	})
}

func (h *ClubHandler) markNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		zap.L().Error("User ID missing in context during notification read")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), id, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *ClubHandler) broadcastNotification(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.notifications.Broadcast(c.Request.Context(), models.NotificationAnnouncement, req.Title, req.Body); err != nil {
		handleServiceError(c, err)
		return
	}

	notificationsBroadcastTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Broadcast queued"})
}
