package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/personal-finance-ledger/internal/ledger"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

// Handlers is the inbound HTTP adapter: it maps requests to ledger service
// calls and service errors to status codes. No business rules live here.
type Handlers struct {
	ledger *ledger.Ledger
}

func NewHandlers(l *ledger.Ledger) *Handlers {
	return &Handlers{ledger: l}
}

// NewRouter mounts all routes. The limiter middleware, if any, is applied
// by the caller so the routes stay testable without it.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions", h.CreateTransaction).Methods(http.MethodPost)
	r.HandleFunc("/api/transactions/summary/{userId}", h.GetSummary).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/{userId}", h.GetTransactions).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/{id}", h.DeleteTransaction).Methods(http.MethodDelete)
	return r
}

type createTransactionRequest struct {
	UserID   string           `json:"user_id"`
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category string           `json:"category"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.ledger.CreateTransaction(r.Context(), ledger.CreateParams{
		UserID:   req.UserID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

func (h *Handlers) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	transactions, err := h.ledger.ListTransactions(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ledger.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Transaction deleted successfully")
}

func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	summary, err := h.ledger.Summarize(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// writeError translates the ledger error taxonomy to transport responses.
// Storage failures stay opaque to the client.
func writeError(w http.ResponseWriter, err error) {
	var validationErr ledger.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, ledger.ErrTransactionNotFound):
		writeMessage(w, http.StatusNotFound, "transaction not found")
	default:
		logger.Error().Err(err).Msg("request failed")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
