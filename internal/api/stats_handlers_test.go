package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/hydration/internal/api"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/internal/service/mocks"
	"github.com/limbo/hydration/internal/stats"
	"github.com/limbo/hydration/pkg/entity"
)

func TestGetStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: sService,
	})
	loc := time.FixedZone("MSK", 3*60*60)
	now := time.Date(2026, time.March, 15, 18, 0, 0, 0, loc)
	logs := []entity.BeverageLog{
		{ID: uuid.New(), UserID: userID, BeverageType: "water", AmountMl: 500, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), UserID: userID, BeverageType: "coffee", AmountMl: 250, CreatedAt: now.Add(-time.Hour)},
	}
	summary := &service.Statistics{Summary: stats.Summarize(logs, 2000, now)}

	testCases := []struct {
		Name         string
		ExpectedCode int
		MockPrepFunc func()
		Query        string
		Unavailable  bool
	}{
		{
			Name:         "default zone",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().Statistics(gomock.Any(), userID, time.UTC).Return(summary, nil)
			},
		},
		{
			Name:         "explicit zone",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().Statistics(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, l *time.Location) (*service.Statistics, error) {
						assert.Equal(t, "UTC", l.String())
						return summary, nil
					})
			},
			Query: "?tz=UTC",
		},
		{
			Name:         "data unavailable",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().Statistics(gomock.Any(), userID, time.UTC).Return(&service.Statistics{
					Summary:         stats.Summarize(nil, 2000, now),
					DataUnavailable: true,
				}, nil)
			},
			Unavailable: true,
		},
		{
			Name:         "unknown zone",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Query:        "?tz=Nowhere/Atlantis",
		},
		{
			Name:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				sService.EXPECT().Statistics(gomock.Any(), userID, time.UTC).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/stats"+tc.Query, nil)
			r = r.WithContext(api.WithUID(r.Context(), userID))
			serv.GetStatistics(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode != http.StatusOK {
				return
			}
			result := make(map[string]any)
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
			assert.Equal(t, tc.Unavailable, result["data_unavailable"])
			assert.Contains(t, result, "daily")
			assert.Contains(t, result, "weekly")
			assert.Contains(t, result, "monthly")
			assert.Contains(t, result, "breakdown")
			if !tc.Unavailable {
				assert.EqualValues(t, 750, result["today_intake_ml"])
			}
		})
	}
}

func TestGetProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: sService,
	})
	progress := stats.CalculateProgress(1000, 2000)

	t.Run("ok", func(t *testing.T) {
		sService.EXPECT().Progress(gomock.Any(), userID, time.UTC).Return(&progress, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
		r = r.WithContext(api.WithUID(r.Context(), userID))
		serv.GetProgress(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp stats.Progress
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, stats.Progress{CurrentMl: 1000, GoalMl: 2000, Percent: 50, RemainingMl: 1000}, resp)
	})
	t.Run("service error", func(t *testing.T) {
		sService.EXPECT().Progress(gomock.Any(), userID, time.UTC).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
		r = r.WithContext(api.WithUID(r.Context(), userID))
		serv.GetProgress(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}
