package handlers

//go:generate mockgen -source=profit_entry.go -destination=profit_entry_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// ProfitEntryAdder defines the interface that the service must implement.
type ProfitEntryAdder interface {
	AddWeeklyProfitEntry(ctx context.Context, userID uuid.UUID, date time.Time, amount decimal.Decimal, description, notes string) (*models.ProfitEntryDB, decimal.Decimal, error)
}

// ProfitEntryDeleter defines the interface that the service must implement.
type ProfitEntryDeleter interface {
	DeleteWeeklyProfitEntry(ctx context.Context, userID uuid.UUID, entryID string) (decimal.Decimal, error)
}

// AddProfitEntryRequest represents the JSON body for booking a profit
// swagger:model AddProfitEntryRequest
type AddProfitEntryRequest struct {
	// RFC 3339 timestamp or YYYY-MM-DD
	// required: true
	// default: 2024-01-10
	Date string `json:"date" validate:"required"`

	// Profit amount, may be negative
	// required: true
	Amount *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`

	Description string `json:"description" validate:"max=500"`

	// Replaces the notes of the week when not empty
	Notes string `json:"notes" validate:"max=1000"`
}

// ProfitEntryResponse is a booked profit
type ProfitEntryResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

func newProfitEntryResponse(e models.ProfitEntryDB) ProfitEntryResponse {
	return ProfitEntryResponse{
		ID:          e.EntryID,
		Date:        e.EntryDate,
		Amount:      e.Amount.InexactFloat64(),
		Description: e.Description,
	}
}

// AddProfitEntryResponse carries the booked entry and the new week total
// swagger:model AddProfitEntryResponse
type AddProfitEntryResponse struct {
	// default: Profit entry added successfully
	Message     string              `json:"message"`
	Entry       ProfitEntryResponse `json:"entry"`
	TotalProfit float64             `json:"totalProfit"`
}

// DeleteProfitEntryRequest names the entry to remove
// swagger:model DeleteProfitEntryRequest
type DeleteProfitEntryRequest struct {
	// required: true
	EntryID string `json:"entryId" validate:"required"`
}

// DeleteProfitEntryResponse carries the recomputed week total
// swagger:model DeleteProfitEntryResponse
type DeleteProfitEntryResponse struct {
	// default: Entry deleted successfully
	Message     string  `json:"message"`
	TotalProfit float64 `json:"totalProfit"`
}

// NewAddProfitEntryHandler returns an HTTP handler that books a profit into its week.
// @Summary Add weekly profit entry
// @Description Books the amount into the Monday to Sunday (UTC) week containing the date and returns the new week total.
// @Tags profit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addProfitEntryRequest body handlers.AddProfitEntryRequest true "Profit entry"
// @Success 200 {object} handlers.AddProfitEntryResponse "Profit entry added successfully"
// @Failure 400 {object} handlers.ErrorResponse "Date and amount are required"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Error adding profit entry"
// @Router /api/users/profit-entry [post]
func NewAddProfitEntryHandler(svc ProfitEntryAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := accountID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		var req AddProfitEntryRequest
		if !decodeBody(w, r, &req, "Date and amount are required") {
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid date")
			return
		}

		entry, total, err := svc.AddWeeklyProfitEntry(r.Context(), userID, date, *req.Amount, req.Description, req.Notes)
		if err != nil {
			writeInternalError(w, "Error adding profit entry", err)
			return
		}

		writeJSON(w, http.StatusOK, AddProfitEntryResponse{
			Message:     "Profit entry added successfully",
			Entry:       newProfitEntryResponse(*entry),
			TotalProfit: total.InexactFloat64(),
		})
	}
}

// NewDeleteProfitEntryHandler returns an HTTP handler that removes a profit entry.
// @Summary Delete weekly profit entry
// @Tags profit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deleteProfitEntryRequest body handlers.DeleteProfitEntryRequest true "Entry"
// @Success 200 {object} handlers.DeleteProfitEntryResponse "Entry deleted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Entry ID is required"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Failure 500 {object} handlers.ErrorResponse "Error deleting profit entry"
// @Router /api/users/profit-entry [delete]
func NewDeleteProfitEntryHandler(svc ProfitEntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := accountID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		var req DeleteProfitEntryRequest
		if !decodeBody(w, r, &req, "Entry ID is required") {
			return
		}

		total, err := svc.DeleteWeeklyProfitEntry(r.Context(), userID, req.EntryID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfitEntryNotFound):
				writeMessage(w, http.StatusNotFound, "Entry not found")
			default:
				writeInternalError(w, "Error deleting profit entry", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteProfitEntryResponse{
			Message:     "Entry deleted successfully",
			TotalProfit: total.InexactFloat64(),
		})
	}
}
