package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookkeeping/internal/domain/record"
)

// RecordHandler serves the ledger CRUD and summary endpoints.
type RecordHandler struct {
	service *record.Service
}

func NewRecordHandler(service *record.Service) *RecordHandler {
	return &RecordHandler{service: service}
}

type CreateRecordRequest struct {
	User      string  `json:"user"`
	Item      string  `json:"item"`
	Amount    float64 `json:"amount"`
	Timestamp *int64  `json:"timestamp,omitempty"` // optional, defaults to now
}

type UpdateRecordRequest struct {
	User      *string  `json:"user,omitempty"`
	Item      *string  `json:"item,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Timestamp *int64   `json:"timestamp,omitempty"`
}

// HandleRecords serves the collection endpoint: GET lists all records,
// POST creates one.
func (h *RecordHandler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandleRecordByID serves GET, PUT and DELETE on a single record.
func (h *RecordHandler) HandleRecordByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/records/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "record ID is required")
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record ID")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, id)
	case http.MethodPut:
		h.handleUpdate(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandleUserSummary aggregates the records of a single user. The user
// segment is matched exactly against the stored (trimmed) value.
func (h *RecordHandler) HandleUserSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/users/")
	user, ok := strings.CutSuffix(rest, "/summary")
	if !ok || user == "" || strings.Contains(user, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	summary, err := h.service.UserSummary(r.Context(), user)
	if err != nil {
		h.writeDomainError(w, err, "summarizing user "+user)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *RecordHandler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err, "listing records")
		return
	}
	if records == nil {
		records = []record.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *RecordHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.service.Create(r.Context(), record.CreateParams{
		User:      req.User,
		Item:      req.Item,
		Amount:    req.Amount,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		h.writeDomainError(w, err, "creating record")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *RecordHandler) handleGet(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err, "getting record "+id.String())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *RecordHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.service.Update(r.Context(), id, record.UpdateParams{
		User:      req.User,
		Item:      req.Item,
		Amount:    req.Amount,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		h.writeDomainError(w, err, "updating record "+id.String())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *RecordHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeDomainError(w, err, "deleting record "+id.String())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps domain error kinds to HTTP responses.
func (h *RecordHandler) writeDomainError(w http.ResponseWriter, err error, context string) {
	var verr *record.ValidationError
	var perr *record.PersistenceError

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, record.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.As(err, &perr):
		log.Error().Err(err).Msgf("Persistence failure %s", context)
		writeError(w, http.StatusInternalServerError, "failed to save ledger")
	default:
		log.Error().Err(err).Msgf("Error %s", context)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
