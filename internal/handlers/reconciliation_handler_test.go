package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "bank-reconciliation-backend/internal/handlers"
	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/repository/memstore"
	service "bank-reconciliation-backend/internal/services/reconciliation"
)

type env struct {
	router  *gin.Engine
	store   *memstore.Store
	stmtID  uuid.UUID
	txID    uuid.UUID
	entryID uuid.UUID
	acctID  uuid.UUID
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	svc := service.NewService(store, &memstore.Recorder{}, logrus.New())
	h := handler.NewReconciliationHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	recon := api.Group("/reconciliation")
	recon.GET("", h.GetSummary)
	recon.PUT("", h.Reconcile)
	recon.POST("/match", h.Match)
	recon.DELETE("/match", h.Unmatch)
	recon.POST("/reject", h.Reject)
	recon.GET("/unmatched", h.ListUnmatched)
	recon.GET("/history/:accountId", h.History)
	api.POST("/statements", h.CreateStatement)

	e := &env{
		router:  r,
		store:   store,
		stmtID:  uuid.New(),
		txID:    uuid.New(),
		entryID: uuid.New(),
		acctID:  uuid.New(),
	}

	amount := decimal.RequireFromString("75.00")
	e.store.AddAccount(models.BankAccount{ID: e.acctID, Name: "Operating", AccountNumber: "42"})
	e.store.AddStatement(models.BankStatement{
		ID:            e.stmtID,
		BankAccountID: e.acctID,
		StatementDate: time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		Status:        models.StatementPending,
	})
	e.store.AddTransaction(models.BankTransaction{
		ID:          e.txID,
		StatementID: e.stmtID,
		Amount:      amount,
		Type:        models.TypeDebit,
		Status:      models.StatusUnmatched,
	})
	e.store.AddJournalEntry(models.JournalEntry{ID: e.entryID, Debit: amount, Credit: amount})

	return e
}

func (e *env) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestGetSummary_Contract(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/api/reconciliation?statementId="+e.stmtID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalTransactions     int `json:"total_transactions"`
			UnmatchedTransactions int `json:"unmatched_transactions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.TotalTransactions)
	assert.Equal(t, 1, resp.Data.UnmatchedTransactions)

	// Missing statementId.
	rec = e.do(t, http.MethodGet, "/api/reconciliation", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown statement.
	rec = e.do(t, http.MethodGet, "/api/reconciliation?statementId="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatch_Contract(t *testing.T) {
	e := newEnv(t)

	payload := gin.H{
		"statementId":       e.stmtID.String(),
		"bankTransactionId": e.txID.String(),
		"bookTransactionId": e.entryID.String(),
	}
	rec := e.do(t, http.MethodPost, "/api/reconciliation/match", payload)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Matching again: 400, already matched.
	rec = e.do(t, http.MethodPost, "/api/reconciliation/match", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing field.
	rec = e.do(t, http.MethodPost, "/api/reconciliation/match", gin.H{"statementId": e.stmtID.String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown transaction.
	rec = e.do(t, http.MethodPost, "/api/reconciliation/match", gin.H{
		"statementId":       e.stmtID.String(),
		"bankTransactionId": uuid.NewString(),
		"bookTransactionId": e.entryID.String(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnmatch_Contract(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodDelete, "/api/reconciliation/match", gin.H{"bankTransactionId": e.txID.String()})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodDelete, "/api/reconciliation/match", gin.H{"bankTransactionId": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReject_Contract(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/reconciliation/reject", gin.H{"bankTransactionId": e.txID.String()})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/reconciliation/reject", gin.H{"bankTransactionId": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReconcile_Contract(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPut, "/api/reconciliation", gin.H{"statementId": e.stmtID.String()})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Engine failure (unknown statement) maps to 400 on this route.
	rec = e.do(t, http.MethodPut, "/api/reconciliation", gin.H{"statementId": uuid.NewString()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUnmatchedAndHistory_Contract(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/api/reconciliation/unmatched?limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/reconciliation/history/"+e.acctID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/reconciliation/history/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/reconciliation/history/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateStatement_Contract(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/statements", gin.H{
		"bank_account_id":  e.acctID.String(),
		"statement_number": "ST-2026-03",
		"statement_date":   "2026-03-31T00:00:00Z",
		"closing_balance":  "10.00",
		"transactions": []gin.H{
			{"transaction_date": "2026-03-05T00:00:00Z", "description": "Fee", "amount": "5.00", "type": "debit"},
		},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Non-positive amount fails validation.
	rec = e.do(t, http.MethodPost, "/api/statements", gin.H{
		"bank_account_id":  e.acctID.String(),
		"statement_number": "ST-2026-04",
		"statement_date":   "2026-04-30T00:00:00Z",
		"transactions": []gin.H{
			{"transaction_date": "2026-04-05T00:00:00Z", "amount": "-5.00", "type": "debit"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
