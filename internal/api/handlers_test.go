package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikh-saqib/personal-finance-ledger/internal/ledger"
	"github.com/sheikh-saqib/personal-finance-ledger/internal/models"
	"github.com/sheikh-saqib/personal-finance-ledger/internal/ratelimit"
	"github.com/sheikh-saqib/personal-finance-ledger/internal/storage/memory"
)

func newTestRouter() (http.Handler, *memory.MemoryTransactionStore) {
	store := memory.NewMemoryTransactionStore()
	l := ledger.NewLedger(store, nil)
	return NewRouter(NewHandlers(l)), store
}

func postTransaction(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateTransaction_Created(t *testing.T) {
	router, _ := newTestRouter()

	w := postTransaction(t, router, `{"user_id":"u1","title":"Coffee","amount":-3.50,"category":"Food"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var tx models.Transaction
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tx))
	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, "u1", tx.UserID)
	assert.Equal(t, "Coffee", tx.Title)
	assert.Equal(t, "-3.5", tx.Amount.String())
	assert.Equal(t, "Food", tx.Category)
}

func TestCreateTransaction_MissingAmount(t *testing.T) {
	router, store := newTestRouter()

	w := postTransaction(t, router, `{"user_id":"u2","title":"Salary","category":"Pay"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"missing required fields"}`, w.Body.String())

	rows, err := store.FindByUser(context.Background(), "u2")
	assert.NoError(t, err)
	assert.Empty(t, rows, "no row may be persisted")
}

func TestCreateTransaction_MalformedBody(t *testing.T) {
	router, _ := newTestRouter()

	w := postTransaction(t, router, `{"user_id":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTransactions_ListsNewestFirst(t *testing.T) {
	router, _ := newTestRouter()

	postTransaction(t, router, `{"user_id":"u1","title":"Coffee","amount":-3.50,"category":"Food"}`)
	postTransaction(t, router, `{"user_id":"u1","title":"Salary","amount":1200.00,"category":"Pay"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var transactions []models.Transaction
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
	assert.Len(t, transactions, 2)
	assert.Equal(t, "Salary", transactions[0].Title)
	assert.Equal(t, "Coffee", transactions[1].Title)
}

func TestGetTransactions_UnknownUserIsEmptyArray(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/nobody", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteTransaction_Success(t *testing.T) {
	router, _ := newTestRouter()

	postTransaction(t, router, `{"user_id":"u1","title":"Coffee","amount":-3.50,"category":"Food"}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Transaction deleted successfully"}`, w.Body.String())

	listReq := httptest.NewRequest(http.MethodGet, "/api/transactions/u1", nil)
	listW := httptest.NewRecorder()
	router.ServeHTTP(listW, listReq)
	assert.JSONEq(t, `[]`, listW.Body.String())
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"transaction not found"}`, w.Body.String())
}

func TestDeleteTransaction_InvalidID(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"invalid transaction id"}`, w.Body.String())
}

func TestGetSummary(t *testing.T) {
	router, _ := newTestRouter()

	postTransaction(t, router, `{"user_id":"u1","title":"Coffee","amount":-3.50,"category":"Food"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/summary/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.Summary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "-3.5", summary.Balance.String())
	assert.Equal(t, "0", summary.Income.String())
	assert.Equal(t, "-3.5", summary.Expenses.String())
	assert.True(t, summary.Balance.Equal(summary.Income.Add(summary.Expenses)))
}

func TestGetSummary_UnknownUserAllZero(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/summary/nobody", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"balance":"0","income":"0","expenses":"0"}`, w.Body.String())
}

func TestRateLimitedRouter_DeniesWith429(t *testing.T) {
	router, _ := newTestRouter()
	limiter := ratelimit.NewLimiter(1, 1)
	limited := limiter.Middleware(router)

	first := httptest.NewRequest(http.MethodGet, "/health", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w1 := httptest.NewRecorder()
	limited.ServeHTTP(w1, first)
	assert.Equal(t, http.StatusOK, w1.Code)

	second := httptest.NewRequest(http.MethodGet, "/health", nil)
	second.RemoteAddr = "10.0.0.1:1234"
	w2 := httptest.NewRecorder()
	limited.ServeHTTP(w2, second)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	assert.NotEmpty(t, w2.Header().Get("Retry-After"))
}
