package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prosports-server/internal/models"
)

func (h *ClubHandler) listTransactions(c *gin.Context) {
	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}
	transactions, err := h.finances.ListTransactions(c.Request.Context(), teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *ClubHandler) getFinanceSummary(c *gin.Context) {
	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}
	summary, err := h.finances.Summarize(c.Request.Context(), teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ClubHandler) getTransaction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	transaction, err := h.finances.GetTransaction(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func (h *ClubHandler) createTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	teamID, err := uuid.Parse(req.TeamID)
	if err != nil {
		badRequest(c, "Invalid teamId")
		return
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	transaction := &models.Transaction{
		TeamID:      teamID,
		Kind:        req.Kind,
		AmountCents: req.AmountCents,
		Category:    req.Category,
		Description: req.Description,
		OccurredAt:  occurredAt,
	}
	if err := h.finances.CreateTransaction(c.Request.Context(), transaction); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

func (h *ClubHandler) deleteTransaction(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.finances.DeleteTransaction(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
