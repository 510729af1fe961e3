package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/trainwell/vitals-api/internal/api/validation"
	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/internal/service"
	"github.com/trainwell/vitals-api/pkg/pagination"
	"github.com/trainwell/vitals-api/pkg/problem"
)

type SyncHandler struct {
	service service.SyncService
}

func NewSyncHandler(service service.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

// Sync handles POST /v1/users/{userId}/sync
// @Summary Sync a vendor date range
// @Description Fetch a date range from a vendor driver, run the analyzer battery and persist a snapshot
// @Tags sync
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.SyncRequest true "Sync request"
// @Success 200 {object} domain.SyncResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 502 {object} problem.Problem
// @Router /users/{userId}/sync [post]
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Sync(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrUnknownSource):
			problem.BadRequest("No driver registered for source").Write(w)
		case errors.Is(err, domain.ErrDriverUnavailable):
			problem.BadGateway("Vendor API request failed").Write(w)
		default:
			problem.InternalError("Failed to sync").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ListSnapshots handles GET /v1/users/{userId}/snapshots
// @Summary List analysis snapshots
// @Description List stored analysis snapshots for a user, newest first, cursor-paginated
// @Tags sync
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Earliest day (RFC3339)"
// @Param to query string false "Latest day (RFC3339)"
// @Param limit query int false "Page size (max 100)"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} domain.SnapshotListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Router /users/{userId}/snapshots [get]
func (h *SyncHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseSnapshotFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.ListSnapshots(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, pagination.ErrInvalidCursor) {
			problem.BadRequest("Invalid pagination cursor").Write(w)
			return
		}
		problem.InternalError("Failed to list snapshots").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSnapshotFilter(r *http.Request) (domain.SnapshotFilter, []problem.FieldError) {
	var filter domain.SnapshotFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
