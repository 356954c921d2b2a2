package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prosports-server/internal/models"
)

func (h *ClubHandler) listTeams(c *gin.Context) {
	teams, err := h.teams.ListTeams(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (h *ClubHandler) getTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	team, err := h.teams.GetTeam(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *ClubHandler) createTeam(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	team := &models.Team{
		Name:        req.Name,
		City:        req.City,
		FoundedYear: req.FoundedYear,
		CoachName:   req.CoachName,
	}
	if err := h.teams.CreateTeam(c.Request.Context(), team); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *ClubHandler) updateTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	team := &models.Team{
		ID:          id,
		Name:        req.Name,
		City:        req.City,
		FoundedYear: req.FoundedYear,
		CoachName:   req.CoachName,
	}
	if err := h.teams.UpdateTeam(c.Request.Context(), team); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *ClubHandler) deleteTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.teams.DeleteTeam(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
