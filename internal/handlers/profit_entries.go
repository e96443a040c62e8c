package handlers

//go:generate mockgen -source=profit_entries.go -destination=profit_entries_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ProfitEntriesGetter defines the interface that the service must implement.
type ProfitEntriesGetter interface {
	GetWeeklyProfitEntries(ctx context.Context, userID uuid.UUID, rng *models.DateRange) ([]models.WeeklyProfitDB, aggregation.WeeklyStats, error)
}

// WeeklyProfitResponse is one week of bookings
type WeeklyProfitResponse struct {
	ID            uuid.UUID             `json:"id"`
	WeekStartDate time.Time             `json:"weekStartDate"`
	WeekEndDate   time.Time             `json:"weekEndDate"`
	TotalProfit   float64               `json:"totalProfit"`
	Entries       []ProfitEntryResponse `json:"entries"`
	Notes         string                `json:"notes"`
}

// ProfitEntriesResponse lists the weeks and their summary
// swagger:model ProfitEntriesResponse
type ProfitEntriesResponse struct {
	// default: Weekly profit entries retrieved successfully
	Message      string                  `json:"message"`
	Entries      []WeeklyProfitResponse  `json:"entries"`
	OverallStats aggregation.WeeklyStats `json:"overallStats"`
}

// NewProfitEntriesHandler returns an HTTP handler that lists weekly profits.
// @Summary Get weekly profit entries
// @Description Returns the weeks starting at or after startDate and ending at or before endDate, ascending by week start.
// @Tags profit
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end"
// @Success 200 {object} handlers.ProfitEntriesResponse "Weekly profit entries retrieved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Error retrieving weekly profit entries"
// @Router /api/users/profit-entries [get]
func NewProfitEntriesHandler(svc ProfitEntriesGetter) http.HandlerFunc {
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

		weeks, stats, err := svc.GetWeeklyProfitEntries(r.Context(), userID, rng)
		if err != nil {
			writeInternalError(w, "Error retrieving weekly profit entries", err)
			return
		}

		resp := ProfitEntriesResponse{
			Message:      "Weekly profit entries retrieved successfully",
			Entries:      make([]WeeklyProfitResponse, 0, len(weeks)),
			OverallStats: stats,
		}
		for _, week := range weeks {
			entries := make([]ProfitEntryResponse, 0, len(week.Entries))
			for _, e := range week.Entries {
				entries = append(entries, newProfitEntryResponse(e))
			}
			resp.Entries = append(resp.Entries, WeeklyProfitResponse{
				ID:            week.WeeklyProfitID,
				WeekStartDate: week.WeekStart,
				WeekEndDate:   week.WeekEnd,
				TotalProfit:   week.TotalProfit.InexactFloat64(),
				Entries:       entries,
				Notes:         week.Notes,
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
