package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prosports-server/internal/models"
)

func (h *ClubHandler) listTournaments(c *gin.Context) {
	tournaments, err := h.tournaments.ListTournaments(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

func (h *ClubHandler) getTournament(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tournament, err := h.tournaments.GetTournament(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

func (h *ClubHandler) createTournament(c *gin.Context) {
	var req tournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tournament := &models.Tournament{
		Name:      req.Name,
		Season:    req.Season,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
	}
	if err := h.tournaments.CreateTournament(c.Request.Context(), tournament); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tournament)
}

func (h *ClubHandler) updateTournament(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req tournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tournament := &models.Tournament{
		ID:        id,
		Name:      req.Name,
		Season:    req.Season,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
	}
	if err := h.tournaments.UpdateTournament(c.Request.Context(), tournament); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

func (h *ClubHandler) deleteTournament(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.tournaments.DeleteTournament(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
