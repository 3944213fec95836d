package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bank-reconciliation-backend/internal/models"
	service "bank-reconciliation-backend/internal/services/reconciliation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReconciliationHandler struct {
	service *service.Service
}

func NewReconciliationHandler(s *service.Service) *ReconciliationHandler {
	return &ReconciliationHandler{service: s}
}

// GetSummary handles GET /api/reconciliation?statementId=<id>
func (h *ReconciliationHandler) GetSummary(c *gin.Context) {
	statementID, ok := parseUUIDQuery(c, "statementId")
	if !ok {
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), statementID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// Match handles POST /api/reconciliation/match. bookTransactionId is the
// journal entry being matched against.
func (h *ReconciliationHandler) Match(c *gin.Context) {
	var payload struct {
		StatementID       string `json:"statementId" binding:"required"`
		BankTransactionID string `json:"bankTransactionId" binding:"required"`
		BookTransactionID string `json:"bookTransactionId" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "statementId, bankTransactionId and bookTransactionId are required"})
		return
	}

	txID, err := uuid.Parse(payload.BankTransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid bankTransactionId"})
		return
	}
	entryID, err := uuid.Parse(payload.BookTransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid bookTransactionId"})
		return
	}

	tx, err := h.service.MatchTransaction(c.Request.Context(), txID, entryID, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tx})
}

// Unmatch handles DELETE /api/reconciliation/match
func (h *ReconciliationHandler) Unmatch(c *gin.Context) {
	var payload struct {
		BankTransactionID string `json:"bankTransactionId" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bankTransactionId is required"})
		return
	}

	txID, err := uuid.Parse(payload.BankTransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid bankTransactionId"})
		return
	}

	tx, err := h.service.UnmatchTransaction(c.Request.Context(), txID, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tx})
}

// Reject handles POST /api/reconciliation/reject
func (h *ReconciliationHandler) Reject(c *gin.Context) {
	var payload struct {
		BankTransactionID string `json:"bankTransactionId" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bankTransactionId is required"})
		return
	}

	txID, err := uuid.Parse(payload.BankTransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid bankTransactionId"})
		return
	}

	tx, err := h.service.RejectTransaction(c.Request.Context(), txID, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tx})
}

// Reconcile handles PUT /api/reconciliation. A 200 means the operation ran;
// the resulting statement status is in the response.
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	var payload struct {
		StatementID string `json:"statementId" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "statementId is required"})
		return
	}

	statementID, err := uuid.Parse(payload.StatementID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid statementId"})
		return
	}

	ok, err := h.service.ReconcileStatement(c.Request.Context(), statementID, currentUser(c))
	if err != nil || !ok {
		if errors.Is(err, service.ErrStatementNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": service.ErrStatementNotFound.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListUnmatched handles GET /api/reconciliation/unmatched?cursor=&limit=
func (h *ReconciliationHandler) ListUnmatched(c *gin.Context) {
	cursor := uuid.Nil
	if raw := c.Query("cursor"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid cursor"})
			return
		}
		cursor = parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid limit"})
			return
		}
		limit = parsed
	}

	txs, nextCursor, hasMore, err := h.service.ListUnmatched(c.Request.Context(), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"success": true, "data": txs, "has_more": hasMore}
	if hasMore {
		resp["next_cursor"] = nextCursor.String()
	}
	c.JSON(http.StatusOK, resp)
}

// History handles GET /api/reconciliation/history/:accountId
func (h *ReconciliationHandler) History(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid account ID"})
		return
	}

	history, err := h.service.History(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": history})
}

// CreateStatement handles POST /api/statements, the statement import hook.
func (h *ReconciliationHandler) CreateStatement(c *gin.Context) {
	var payload models.NewBankStatement
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	statement, err := h.service.CreateStatement(c.Request.Context(), &payload, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": statement})
}

func parseUUIDQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": name + " is required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// currentUser reads the caller identity for the audit trail. Authentication
// lives upstream; an absent header falls back to "system".
func currentUser(c *gin.Context) string {
	if user := c.GetHeader("X-User-ID"); user != "" {
		return user
	}
	return "system"
}

// respondError maps domain errors to HTTP statuses: not-found to 404, rule
// violations to 400, anything else to a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStatementNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrJournalEntryNotFound),
		errors.Is(err, service.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrAlreadyMatched),
		errors.Is(err, service.ErrAmountMismatch),
		errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}
