package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-profit-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
	"github.com/sbilibin2017/gw-profit-tracker/internal/services"
)

func TestGetColumnEntriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	unit := "kg"
	entry := models.ColumnEntryDB{EntryID: "e1", RecordedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}
	entry.SetValue(models.NumberValue(4))

	view := &services.ColumnView{
		ColumnName: "feed",
		Unit:       &unit,
		Entries:    []models.ColumnEntryDB{entry},
		Statistics: &aggregation.Statistics{Count: 1, Total: 4, Average: 4, Min: 4, Max: 4},
	}

	t.Run("with range", func(t *testing.T) {
		mockSvc := NewMockColumnEntriesGetter(ctrl)
		mockSvc.EXPECT().GetColumnEntries(gomock.Any(), userID, "feed", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, rng *models.DateRange) (*services.ColumnView, error) {
				require.NotNil(t, rng)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
				assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *rng.End)
				return view, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/users/column-entries/feed?startDate=2024-01-01&endDate=2024-01-31", nil)
		req = withAccount(withURLParam(req, "columnName", "feed"), userID)
		rr := httptest.NewRecorder()
		NewGetColumnEntriesHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeMap(t, rr)
		assert.Equal(t, "Column entries retrieved successfully", body["message"])
		assert.Equal(t, "feed", body["columnName"])
		assert.Equal(t, "kg", body["unit"])
		assert.Len(t, body["entries"], 1)
		assert.Equal(t, 4.0, body["statistics"].(map[string]any)["average"])
	})

	t.Run("missing column", func(t *testing.T) {
		mockSvc := NewMockColumnEntriesGetter(ctrl)
		mockSvc.EXPECT().GetColumnEntries(gomock.Any(), userID, "ghost", nil).Return(nil, services.ErrColumnNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/users/column-entries/ghost", nil)
		req = withAccount(withURLParam(req, "columnName", "ghost"), userID)
		rr := httptest.NewRecorder()
		NewGetColumnEntriesHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Column not found", decodeMap(t, rr)["message"])
	})

	t.Run("bad date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/column-entries/feed?startDate=soon", nil)
		req = withAccount(withURLParam(req, "columnName", "feed"), userID)
		rr := httptest.NewRecorder()
		NewGetColumnEntriesHandler(NewMockColumnEntriesGetter(ctrl)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetColumnEntriesHandler_EncodedColumnName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{name: "escaped slash", target: "/api/users/column-entries/fuel%2Foil", expected: "fuel/oil"},
		{name: "escaped plus", target: "/api/users/column-entries/fuel%2Boil", expected: "fuel+oil"},
		{name: "escaped space", target: "/api/users/column-entries/fuel%20cost", expected: "fuel cost"},
		{name: "escaped percent", target: "/api/users/column-entries/50%25", expected: "50%"},
		{name: "mixed escapes", target: "/api/users/column-entries/50%25%2Fday", expected: "50%/day"},
		{name: "plain", target: "/api/users/column-entries/feed", expected: "feed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockColumnEntriesGetter(ctrl)
			mockSvc.EXPECT().GetColumnEntries(gomock.Any(), userID, tt.expected, nil).
				Return(&services.ColumnView{ColumnName: tt.expected, Entries: []models.ColumnEntryDB{}}, nil)

			r := chi.NewRouter()
			r.Get("/api/users/column-entries/{columnName}", NewGetColumnEntriesHandler(mockSvc))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, withAccount(httptest.NewRequest(http.MethodGet, tt.target, nil), userID))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.expected, decodeMap(t, rr)["columnName"])
		})
	}

	t.Run("undecodable name", func(t *testing.T) {
		r := chi.NewRouter()
		r.Get("/api/users/column-entries/{columnName}", NewGetColumnEntriesHandler(NewMockColumnEntriesGetter(ctrl)))

		req := httptest.NewRequest(http.MethodGet, "/api/users/column-entries/x", nil)
		req.URL.RawPath = "/api/users/column-entries/%zz"

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, withAccount(req, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid column name", decodeMap(t, rr)["message"])
	})
}

func TestDeleteColumnEntriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func(m *MockColumnEntriesDeleter)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:   "keep range",
			target: "/api/users/column-entries?startDate=2024-01-01",
			body:   `{"columnName":"feed"}`,
			mockSetup: func(m *MockColumnEntriesDeleter) {
				m.EXPECT().DeleteColumnEntries(gomock.Any(), userID, "feed", gomock.Not(gomock.Nil())).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Entries deleted successfully",
		},
		{
			name:   "wipe column",
			target: "/api/users/column-entries",
			body:   `{"columnName":"feed"}`,
			mockSetup: func(m *MockColumnEntriesDeleter) {
				m.EXPECT().DeleteColumnEntries(gomock.Any(), userID, "feed", nil).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Entries deleted successfully",
		},
		{
			name:   "missing column",
			target: "/api/users/column-entries",
			body:   `{"columnName":"ghost"}`,
			mockSetup: func(m *MockColumnEntriesDeleter) {
				m.EXPECT().DeleteColumnEntries(gomock.Any(), userID, "ghost", nil).Return(services.ErrColumnNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Column not found",
		},
		{
			name:   "internal error",
			target: "/api/users/column-entries",
			body:   `{"columnName":"feed"}`,
			mockSetup: func(m *MockColumnEntriesDeleter) {
				m.EXPECT().DeleteColumnEntries(gomock.Any(), userID, "feed", nil).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Error deleting column entries",
		},
		{
			name:         "missing name",
			target:       "/api/users/column-entries",
			body:         `{}`,
			mockSetup:    func(m *MockColumnEntriesDeleter) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Column name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockColumnEntriesDeleter(ctrl)
			tt.mockSetup(mockSvc)

			req := withAccount(newJSONRequest(t, http.MethodDelete, tt.target, tt.body), userID)
			rr := httptest.NewRecorder()
			NewDeleteColumnEntriesHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, decodeMap(t, rr)["message"])
		})
	}
}

func TestAllColumnsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSvc := NewMockAllColumnsGetter(ctrl)
	mockSvc.EXPECT().GetAllColumns(gomock.Any(), userID, nil).Return([]services.ColumnView{
		{ColumnName: "feed", Entries: []models.ColumnEntryDB{}},
		{ColumnName: "notes", Entries: []models.ColumnEntryDB{}},
	}, nil)

	rr := httptest.NewRecorder()
	NewAllColumnsHandler(mockSvc).ServeHTTP(rr, withAccount(httptest.NewRequest(http.MethodGet, "/api/users/all-columns", nil), userID))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, "User columns retrieved successfully", body["message"])
	assert.Len(t, body["columns"], 2)

	mockSvc.EXPECT().GetAllColumns(gomock.Any(), userID, nil).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	NewAllColumnsHandler(mockSvc).ServeHTTP(rr, withAccount(httptest.NewRequest(http.MethodGet, "/api/users/all-columns", nil), userID))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
