package handlers

//go:generate mockgen -source=all_columns.go -destination=all_columns_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

// AllColumnsGetter defines the interface that the service must implement.
type AllColumnsGetter interface {
	GetAllColumns(ctx context.Context, userID uuid.UUID, rng *models.DateRange) ([]services.ColumnView, error)
}

// AllColumnsResponse lists every column of the caller
// swagger:model AllColumnsResponse
type AllColumnsResponse struct {
	// default: User columns retrieved successfully
	Message string                `json:"message"`
	Columns []services.ColumnView `json:"columns"`
}

// NewAllColumnsHandler returns an HTTP handler that lists every column.
// @Summary Get all columns
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} handlers.AllColumnsResponse "User columns retrieved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Error retrieving columns"
// @Router /api/users/all-columns [get]
func NewAllColumnsHandler(svc AllColumnsGetter) http.HandlerFunc {
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

		columns, err := svc.GetAllColumns(r.Context(), userID, rng)
		if err != nil {
			writeInternalError(w, "Error retrieving columns", err)
			return
		}

		writeJSON(w, http.StatusOK, AllColumnsResponse{
			Message: "User columns retrieved successfully",
			Columns: columns,
		})
	}
}
