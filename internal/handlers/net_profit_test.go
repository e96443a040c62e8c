package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
)

func TestNetProfitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	report := aggregation.NetProfitReport{
		Daily: []aggregation.DailyNetProfit{
			{Date: "2024-01-01", TotalColumnValue: 30, TotalProfit: 100, NetProfit: 70},
			{Date: "2024-01-02", TotalColumnValue: 10, TotalProfit: 0, NetProfit: -10},
		},
		Overall: aggregation.NetProfitTotals{TotalColumnValue: 40, TotalProfit: 100, NetProfit: 60},
	}

	mockSvc := NewMockNetProfitSummarizer(ctrl)
	mockSvc.EXPECT().NetProfitSummary(gomock.Any(), userID).Return(report, nil)

	rr := httptest.NewRecorder()
	NewNetProfitHandler(mockSvc).ServeHTTP(rr, withAccount(httptest.NewRequest(http.MethodGet, "/api/users/net-profit", nil), userID))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, "Net profit calculated successfully", body["message"])
	assert.Len(t, body["dailyNetProfit"], 2)
	assert.Equal(t, map[string]any{
		"totalColumnValue": 40.0,
		"totalProfit":      100.0,
		"netProfit":        60.0,
	}, body["overallSummary"])

	mockSvc.EXPECT().NetProfitSummary(gomock.Any(), userID).Return(aggregation.NetProfitReport{}, errors.New("db down"))
	rr = httptest.NewRecorder()
	NewNetProfitHandler(mockSvc).ServeHTTP(rr, withAccount(httptest.NewRequest(http.MethodGet, "/api/users/net-profit", nil), userID))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Error calculating net profit", decodeMap(t, rr)["message"])
}
