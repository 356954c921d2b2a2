package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prosports-server/internal/models"
)

func (h *ClubHandler) listMatches(c *gin.Context) {
	var tournamentID *uuid.UUID
	if raw := c.Query("tournamentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "Invalid tournamentId filter")
			return
		}
		tournamentID = &id
	}

	matches, err := h.matches.ListMatches(c.Request.Context(), tournamentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *ClubHandler) getMatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	match, err := h.matches.GetMatch(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *ClubHandler) createMatch(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	match, err := matchFromRequest(&req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.matches.CreateMatch(c.Request.Context(), match); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

func (h *ClubHandler) updateMatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	match, err := matchFromRequest(&req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	match.ID = id
	if err := h.matches.UpdateMatch(c.Request.Context(), match); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *ClubHandler) deleteMatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.matches.DeleteMatch(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func matchFromRequest(req *matchRequest) (*models.Match, error) {
	homeID, err := uuid.Parse(req.HomeTeamID)
	if err != nil {
		return nil, errors.New("Invalid homeTeamId")
	}
	awayID, err := uuid.Parse(req.AwayTeamID)
	if err != nil {
		return nil, errors.New("Invalid awayTeamId")
	}

	match := &models.Match{
		HomeTeamID:  homeID,
		AwayTeamID:  awayID,
		ScheduledAt: req.ScheduledAt,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		Status:      req.Status,
	}
	if req.TournamentID != nil && *req.TournamentID != "" {
		tournamentID, err := uuid.Parse(*req.TournamentID)
		if err != nil {
			return nil, errors.New("Invalid tournamentId")
		}
		match.TournamentID = &tournamentID
	}
	return match, nil
}
