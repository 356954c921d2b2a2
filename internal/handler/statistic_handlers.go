package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prosports-server/internal/models"
)

func (h *ClubHandler) getStatistic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stat, err := h.statistics.GetStatistic(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stat)
}

func (h *ClubHandler) listPlayerStatistics(c *gin.Context) {
	playerID, ok := pathID(c, "playerId")
	if !ok {
		return
	}
	stats, err := h.statistics.ListStatisticsByPlayer(c.Request.Context(), playerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ClubHandler) listMatchStatistics(c *gin.Context) {
	matchID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.statistics.ListStatisticsByMatch(c.Request.Context(), matchID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ClubHandler) createStatistic(c *gin.Context) {
	var req statisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		badRequest(c, "Invalid playerId")
		return
	}
	matchID, err := uuid.Parse(req.MatchID)
	if err != nil {
		badRequest(c, "Invalid matchId")
		return
	}

	stat := &models.PlayerStatistic{
		PlayerID:      playerID,
		MatchID:       matchID,
		Goals:         req.Goals,
		Assists:       req.Assists,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
		MinutesPlayed: req.MinutesPlayed,
	}
	if err := h.statistics.CreateStatistic(c.Request.Context(), stat); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stat)
}

func (h *ClubHandler) deleteStatistic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.statistics.DeleteStatistic(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
