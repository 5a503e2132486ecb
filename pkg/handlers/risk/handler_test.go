package risk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/isteps/burnout-risk/pkg/models/api"
	"github.com/isteps/burnout-risk/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Ingest(ctx context.Context, userID string, records []domain.StepRecord) (int, error) {
	args := m.Called(ctx, userID, records)
	return args.Int(0), args.Error(1)
}

func (m *mockService) Records(ctx context.Context, userID string, start, end time.Time) ([]domain.StepRecord, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StepRecord), args.Error(1)
}

func (m *mockService) Stats(ctx context.Context, userID string) (*domain.RecordStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordStats), args.Error(1)
}

func (m *mockService) Users(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) Risk(ctx context.Context, userID string, start, end time.Time) (*domain.BurnoutRiskResult, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BurnoutRiskResult), args.Error(1)
}

func (m *mockService) Weekly(ctx context.Context, userID string, start, end time.Time) (domain.WeeklySummary, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).(domain.WeeklySummary), args.Error(1)
}

func (m *mockService) Series(ctx context.Context, userID string, start, end time.Time) ([]domain.RiskPoint, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RiskPoint), args.Error(1)
}

func (m *mockService) Trend(ctx context.Context, userID string, start, end time.Time) (domain.Trend, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).(domain.Trend), args.Error(1)
}

func (m *mockService) Activity(ctx context.Context, userID string, start, end time.Time) (domain.ActivitySummary, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).(domain.ActivitySummary), args.Error(1)
}

func newRequest(method, target, user, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("user", user)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestHandler_IngestSteps(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "stores records",
			body: `[{"date":"2025-06-01","count":4000},{"date":"2025-06-02T08:00:00Z","count":1200,"source":"watch"}]`,
			setupMock: func(m *mockService) {
				m.On("Ingest", mock.Anything, "alice", []domain.StepRecord{
					{Date: day(1), Count: 4000},
					{Date: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), Count: 1200, Source: "watch"},
				}).Return(2, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "negative count",
			body:           `[{"date":"2025-06-01","count":-1}]`,
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "step count cannot be negative",
		},
		{
			name:           "malformed body",
			body:           `{"date":`,
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "decode records",
		},
		{
			name: "store failure",
			body: `[{"date":"2025-06-01","count":10}]`,
			setupMock: func(m *mockService) {
				m.On("Ingest", mock.Anything, "alice", mock.Anything).Return(0, errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to store step records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setupMock(svc)
			h := NewHandler(svc, time.UTC)

			rec := httptest.NewRecorder()
			h.IngestSteps(rec, newRequest(http.MethodPost, "/api/v1/users/alice/steps", "alice", tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var body api.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Contains(t, body.Error, tt.expectedError)
			} else {
				var body api.IngestResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, 2, body.Accepted)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_GetRisk(t *testing.T) {
	t.Run("scored result", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Risk", mock.Anything, "alice", time.Time{}, time.Time{}).
			Return(&domain.BurnoutRiskResult{TotalSteps: 8000, Score: 50, Label: domain.RiskLabelModerate, Confidence: 61}, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, time.UTC).GetRisk(rec, newRequest(http.MethodGet, "/api/v1/users/alice/risk", "alice", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		var body api.RiskResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, intPtr(50), body.Score)
		assert.Equal(t, "Moderate", body.Label)
		assert.Equal(t, 61, body.Confidence)
	})

	t.Run("no data", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Risk", mock.Anything, "ghost", time.Time{}, time.Time{}).Return(nil, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, time.UTC).GetRisk(rec, newRequest(http.MethodGet, "/api/v1/users/ghost/risk", "ghost", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"no_data"}`, rec.Body.String())
	})

	t.Run("date range", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Risk", mock.Anything, "alice", day(1), day(8)).Return(nil, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, time.UTC).GetRisk(rec,
			newRequest(http.MethodGet, "/api/v1/users/alice/risk?from=2025-06-01&to=2025-06-07", "alice", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Risk", mock.Anything, "alice", mock.Anything, mock.Anything).Return(nil, errors.New("io"))

		rec := httptest.NewRecorder()
		NewHandler(svc, time.UTC).GetRisk(rec, newRequest(http.MethodGet, "/api/v1/users/alice/risk", "alice", ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_InvalidDates(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"bad from", "?from=06/01/2025", "invalid 'from' date format. Expected format: YYYY-MM-DD"},
		{"bad to", "?to=yesterday", "invalid 'to' date format. Expected format: YYYY-MM-DD"},
		{"reversed", "?from=2025-06-10&to=2025-06-01", "'from' must not be after 'to'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			h := NewHandler(svc, time.UTC)

			for _, handle := range []http.HandlerFunc{h.GetRisk, h.GetWeekly, h.GetSeries, h.GetTrend, h.GetActivity} {
				rec := httptest.NewRecorder()
				handle(rec, newRequest(http.MethodGet, "/api/v1/users/alice/x"+tt.query, "alice", ""))

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				var body api.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.message, body.Error)
			}
			svc.AssertNotCalled(t, "Risk", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_SameDayRange(t *testing.T) {
	svc := new(mockService)
	svc.On("Weekly", mock.Anything, "alice", day(3), day(4)).Return(domain.WeeklySummary{}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC).GetWeekly(rec,
		newRequest(http.MethodGet, "/api/v1/users/alice/weekly?from=2025-06-03&to=2025-06-03", "alice", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_GetWeekly(t *testing.T) {
	svc := new(mockService)
	svc.On("Weekly", mock.Anything, "alice", time.Time{}, time.Time{}).
		Return(domain.WeeklySummary{ScoredDays: 2, AverageScore: 40, TrendDelta: 14, Narrative: domain.NarrativeIncreasing}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC).GetWeekly(rec, newRequest(http.MethodGet, "/api/v1/users/alice/weekly", "alice", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.WeeklySummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "+14", body.DeltaText)
	assert.True(t, body.Insufficient)
	assert.Equal(t, string(domain.NarrativeIncreasing), body.Narrative)
}

func TestHandler_GetSeries(t *testing.T) {
	label := domain.RiskLabelHigh
	svc := new(mockService)
	svc.On("Series", mock.Anything, "alice", time.Time{}, time.Time{}).Return([]domain.RiskPoint{
		{Day: day(1), StepsThatDay: 2000, Score: intPtr(100), Label: &label},
		{Day: day(2), StepsThatDay: 0},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC).GetSeries(rec, newRequest(http.MethodGet, "/api/v1/users/alice/series", "alice", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"day":"2025-06-01","steps":2000,"score":100,"label":"High"},
		{"day":"2025-06-02","steps":0,"score":null,"label":null}
	]`, rec.Body.String())
}

func TestHandler_GetTrend(t *testing.T) {
	svc := new(mockService)
	svc.On("Trend", mock.Anything, "alice", time.Time{}, time.Time{}).Return(domain.Trend{}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC).GetTrend(rec, newRequest(http.MethodGet, "/api/v1/users/alice/trend", "alice", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.Trend
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.HasData)
	assert.Nil(t, body.Latest)
}

func TestHandler_GetActivity(t *testing.T) {
	svc := new(mockService)
	svc.On("Activity", mock.Anything, "alice", time.Time{}, time.Time{}).
		Return(domain.ActivitySummary{TotalSteps: 10000, Calories: 500, DistanceKm: 5, HasData: true}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC).GetActivity(rec, newRequest(http.MethodGet, "/api/v1/users/alice/activity", "alice", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.ActivitySummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 500, body.Calories)
	assert.Contains(t, body.ShareText, "5.0 km")
}

func TestHandler_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(new(mockService), nil).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_GetStats(t *testing.T) {
	first := day(1)
	svc := new(mockService)
	svc.On("Stats", mock.Anything, "alice").Return(&domain.RecordStats{RecordsCount: 2, FirstRecordTime: &first, LastRecordTime: &first}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC).GetStats(rec, newRequest(http.MethodGet, "/api/v1/users/alice/stats", "alice", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.RecordStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(2), body.RecordsCount)
	require.NotNil(t, body.FirstRecordTime)
	assert.True(t, first.Equal(*body.FirstRecordTime))
}

func TestHandler_DeleteSteps(t *testing.T) {
	svc := new(mockService)
	svc.On("Delete", mock.Anything, "alice").Return(int64(3), nil)
	svc.On("Delete", mock.Anything, "bob").Return(int64(0), errors.New("locked"))
	h := NewHandler(svc, time.UTC)

	rec := httptest.NewRecorder()
	h.DeleteSteps(rec, newRequest(http.MethodDelete, "/api/v1/users/alice/steps", "alice", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":3}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.DeleteSteps(rec, newRequest(http.MethodDelete, "/api/v1/users/bob/steps", "bob", ""))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
