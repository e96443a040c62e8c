package handlers

//go:generate mockgen -source=column_entry.go -destination=column_entry_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ColumnEntryAdder defines the interface that the service must implement.
type ColumnEntryAdder interface {
	AddColumnEntry(ctx context.Context, userID uuid.UUID, columnName string, value models.EntryValue, date *time.Time, unit *string) (*models.ColumnEntryDB, error)
}

// AddColumnEntryRequest represents the JSON body for recording a value
// swagger:model AddColumnEntryRequest
type AddColumnEntryRequest struct {
	// Column to append to, created on first use
	// required: true
	// default: feed
	ColumnName string `json:"columnName" validate:"required,max=100"`

	// Number or string
	// required: true
	Value models.EntryValue `json:"value" swaggertype:"primitive,number"`

	// RFC 3339 timestamp or YYYY-MM-DD, defaults to now
	Date *string `json:"date,omitempty"`

	// Unit label, only kept when the column is created
	Unit *string `json:"unit,omitempty" validate:"omitempty,max=50"`
}

// AddColumnEntryResponse represents the recorded entry
// swagger:model AddColumnEntryResponse
type AddColumnEntryResponse struct {
	// default: Entry added successfully
	Message string               `json:"message"`
	Entry   models.ColumnEntryDB `json:"entry"`
}

// NewAddColumnEntryHandler returns an HTTP handler that appends a value to a column.
// @Summary Add column entry
// @Description Appends a number or string to the named column of the caller, creating the column on first use.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addColumnEntryRequest body handlers.AddColumnEntryRequest true "Entry"
// @Success 200 {object} handlers.AddColumnEntryResponse "Entry added successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Error adding column entry"
// @Router /api/users/column-entry [post]
func NewAddColumnEntryHandler(svc ColumnEntryAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := accountID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		const invalid = "Column name and value are required"

		var req AddColumnEntryRequest
		if !decodeBody(w, r, &req, invalid) {
			return
		}
		if req.Value.IsZero() {
			writeMessage(w, http.StatusBadRequest, invalid)
			return
		}

		var date *time.Time
		if req.Date != nil && *req.Date != "" {
			t, err := parseDate(*req.Date)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "Invalid date")
				return
			}
			date = &t
		}

		entry, err := svc.AddColumnEntry(r.Context(), userID, req.ColumnName, req.Value, date, req.Unit)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnsupportedValue):
				writeMessage(w, http.StatusBadRequest, invalid)
			default:
				writeInternalError(w, "Error adding column entry", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, AddColumnEntryResponse{
			Message: "Entry added successfully",
			Entry:   *entry,
		})
	}
}
