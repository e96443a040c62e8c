package handlers

//go:generate mockgen -source=column_entries.go -destination=column_entries_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// ColumnEntriesGetter defines the interface that the service must implement.
type ColumnEntriesGetter interface {
	GetColumnEntries(ctx context.Context, userID uuid.UUID, columnName string, rng *models.DateRange) (*services.ColumnView, error)
}

// ColumnEntriesDeleter defines the interface that the service must implement.
type ColumnEntriesDeleter interface {
	DeleteColumnEntries(ctx context.Context, userID uuid.UUID, columnName string, rng *models.DateRange) error
}

// ColumnEntriesResponse is a column narrowed to the requested range
// swagger:model ColumnEntriesResponse
type ColumnEntriesResponse struct {
	// default: Column entries retrieved successfully
	Message string `json:"message"`
	services.ColumnView
}

// DeleteColumnEntriesRequest names the column to prune
// swagger:model DeleteColumnEntriesRequest
type DeleteColumnEntriesRequest struct {
	// required: true
	ColumnName string `json:"columnName" validate:"required"`
}

// NewGetColumnEntriesHandler returns an HTTP handler that reads one column.
// @Summary Get column entries
// @Description Returns the entries of the column inside the optional inclusive date range and statistics over their numeric values.
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param columnName path string true "Column name"
// @Param startDate query string false "Range start, RFC 3339 or YYYY-MM-DD"
// @Param endDate query string false "Range end, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} handlers.ColumnEntriesResponse "Column entries retrieved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date or column name"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Column not found"
// @Failure 500 {object} handlers.ErrorResponse "Error retrieving column entries"
// @Router /api/users/column-entries/{columnName} [get]
func NewGetColumnEntriesHandler(svc ColumnEntriesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := accountID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		rng, err := parseDateRange(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid date")
			return
		}

		columnName, err := columnNameParam(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid column name")
			return
		}

		view, err := svc.GetColumnEntries(r.Context(), userID, columnName, rng)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrColumnNotFound):
				writeMessage(w, http.StatusNotFound, "Column not found")
			default:
				writeInternalError(w, "Error retrieving column entries", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ColumnEntriesResponse{
			Message:    "Column entries retrieved successfully",
			ColumnView: *view,
		})
	}
}

// columnNameParam returns the decoded column name path segment. chi routes on
// the raw path when the request has one, leaving the segment escaped.
func columnNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "columnName")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}

// NewDeleteColumnEntriesHandler returns an HTTP handler that prunes a column.
// @Summary Delete column entries
// @Description Keeps the entries inside the optional inclusive date range and removes the rest. Without a range every entry is removed.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deleteColumnEntriesRequest body handlers.DeleteColumnEntriesRequest true "Column"
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} handlers.MessageResponse "Entries deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Column name is required"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Column not found"
// @Failure 500 {object} handlers.ErrorResponse "Error deleting column entries"
// @Router /api/users/column-entries [delete]
func NewDeleteColumnEntriesHandler(svc ColumnEntriesDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := accountID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		var req DeleteColumnEntriesRequest
		if !decodeBody(w, r, &req, "Column name is required") {
			return
		}

		rng, err := parseDateRange(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid date")
			return
		}

		if err := svc.DeleteColumnEntries(r.Context(), userID, req.ColumnName, rng); err != nil {
			switch {
			case errors.Is(err, services.ErrColumnNotFound):
				writeMessage(w, http.StatusNotFound, "Column not found")
			default:
				writeInternalError(w, "Error deleting column entries", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Entries deleted successfully"})
	}
}
