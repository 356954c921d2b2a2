package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prosports-server/internal/models"
)

func (h *ClubHandler) listPlayers(c *gin.Context) {
	var teamID *uuid.UUID
	if raw := c.Query("teamId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "Invalid teamId filter")
			return
		}
		teamID = &id
	}

	players, err := h.players.ListPlayers(c.Request.Context(), teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

func (h *ClubHandler) getPlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	player, err := h.players.GetPlayer(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *ClubHandler) createPlayer(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	player, err := playerFromRequest(&req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.players.CreatePlayer(c.Request.Context(), player); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

func (h *ClubHandler) updatePlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	player, err := playerFromRequest(&req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	player.ID = id
	if err := h.players.UpdatePlayer(c.Request.Context(), player); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *ClubHandler) deletePlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.players.DeletePlayer(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func playerFromRequest(req *playerRequest) (*models.Player, error) {
	player := &models.Player{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		BirthDate:    req.BirthDate,
	}
	if req.TeamID != nil && *req.TeamID != "" {
		teamID, err := uuid.Parse(*req.TeamID)
		if err != nil {
			return nil, errors.New("Invalid teamId")
		}
		player.TeamID = &teamID
	}
	return player, nil
}
