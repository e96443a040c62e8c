package handlers

//go:generate mockgen -source=net_profit.go -destination=net_profit_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
)

// NetProfitSummarizer defines the interface that the service must implement.
type NetProfitSummarizer interface {
	NetProfitSummary(ctx context.Context, userID uuid.UUID) (aggregation.NetProfitReport, error)
}

// NetProfitResponse is the daily net profit of the caller
// swagger:model NetProfitResponse
type NetProfitResponse struct {
	// default: Net profit calculated successfully
	Message string `json:"message"`
	aggregation.NetProfitReport
}

// NewNetProfitHandler returns an HTTP handler for the net profit summary.
// @Summary Net profit summary
// @Description Buckets every column entry and profit entry by UTC day. Numeric column values count as costs.
// @Tags profit
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.NetProfitResponse "Net profit calculated successfully"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Error calculating net profit"
// @Router /api/users/net-profit [get]
func NewNetProfitHandler(svc NetProfitSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := accountID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		report, err := svc.NetProfitSummary(r.Context(), userID)
		if err != nil {
			writeInternalError(w, "Error calculating net profit", err)
			return
		}

		writeJSON(w, http.StatusOK, NetProfitResponse{
			Message:         "Net profit calculated successfully",
			NetProfitReport: report,
		})
	}
}
