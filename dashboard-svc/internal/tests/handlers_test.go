package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nutrilens/aggregator"
	httpapi "nutrilens/dashboard-svc/internal/api/http"
	"nutrilens/dashboard-svc/internal/domain"
	"nutrilens/dashboard-svc/internal/mocks"
	"nutrilens/dashboard-svc/internal/service"
	"nutrilens/session"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "dashboard-secret"

func newTestRouter(t *testing.T) (http.Handler, *mocks.DashboardServiceInterface, *service.Hub) {
	dashboard := mocks.NewDashboardServiceInterface(t)
	hub := service.NewHub()
	dashboard.On("Today").Return(testDay).Maybe()
	handler := httpapi.NewHandler(dashboard, hub)
	return httpapi.NewRouter(handler, session.NewAuthenticator(testSecret)), dashboard, hub
}

func tokenFor(t *testing.T, userID uuid.UUID) string {
	token, err := session.IssueToken(testSecret, userID, "", time.Hour)
	require.NoError(t, err)
	return token
}

func authedGet(t *testing.T, target string) *http.Request {
	req := httptest.NewRequest("GET", target, nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, testUserID))
	return req
}

func TestHealthCheckHandler(t *testing.T) {
	router, _, _ := newTestRouter(t)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard-svc")
}

func TestGetDailyHandler(t *testing.T) {
	other := testDay.AddDays(-3)

	tests := []struct {
		name      string
		target    string
		setupMock func(m *mocks.DashboardServiceInterface)
		wantCode  int
	}{
		{
			name:   "defaults to today",
			target: "/api/dashboard/daily",
			setupMock: func(m *mocks.DashboardServiceInterface) {
				m.On("Daily", mock.Anything, testDay).
					Return(&aggregator.DailyTotals{Date: testDay, Calories: decimal.NewFromInt(900), MealCount: 3}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "explicit date",
			target: "/api/dashboard/daily?date=" + other.String(),
			setupMock: func(m *mocks.DashboardServiceInterface) {
				m.On("Daily", mock.Anything, other).Return(&aggregator.DailyTotals{Date: other}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "bad date",
			target:    "/api/dashboard/daily?date=05-03-2024",
			setupMock: func(m *mocks.DashboardServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "service error",
			target: "/api/dashboard/daily",
			setupMock: func(m *mocks.DashboardServiceInterface) {
				m.On("Daily", mock.Anything, testDay).Return(nil, assert.AnError).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, dashboard, _ := newTestRouter(t)
			testCase.setupMock(dashboard)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, authedGet(t, testCase.target))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetDailyHandler_UsesServiceClock(t *testing.T) {
	yesterday := testDay.AddDays(-1)
	repo := mocks.NewMealRepository(t)
	cache := mocks.NewTotalsCache(t)
	svc := service.NewDashboardService(repo, cache).WithClock(func() time.Time { return yesterday.Start().Add(23 * time.Hour) })
	router := httpapi.NewRouter(httpapi.NewHandler(svc, service.NewHub()), session.NewAuthenticator(testSecret))

	cache.On("GetTotals", mock.Anything, testUserID, yesterday).
		Return(&aggregator.DailyTotals{Date: yesterday, Calories: decimal.NewFromInt(1200), MealCount: 4}, true, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedGet(t, "/api/dashboard/daily"))

	require.Equal(t, http.StatusOK, w.Code)
	var got aggregator.DailyTotals
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, yesterday, got.Date)
	assert.Equal(t, 4, got.MealCount)
}

func TestGetHistoryHandler(t *testing.T) {
	t.Run("defaults to the last week", func(t *testing.T) {
		router, dashboard, _ := newTestRouter(t)
		dashboard.On("History", mock.Anything, testDay.AddDays(-6), testDay).Return(nil, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedGet(t, "/api/dashboard/history"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("explicit range", func(t *testing.T) {
		router, dashboard, _ := newTestRouter(t)
		from, to := testDay.AddDays(-30), testDay.AddDays(-1)
		dashboard.On("History", mock.Anything, from, to).
			Return([]aggregator.DailyTotals{{Date: from, MealCount: 1}}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedGet(t, "/api/dashboard/history?from="+from.String()+"&to="+to.String()))

		require.Equal(t, http.StatusOK, w.Code)
		var history []aggregator.DailyTotals
		require.NoError(t, json.NewDecoder(w.Body).Decode(&history))
		require.Len(t, history, 1)
		assert.Equal(t, from, history[0].Date)
	})

	t.Run("reversed range", func(t *testing.T) {
		router, dashboard, _ := newTestRouter(t)
		dashboard.On("History", mock.Anything, testDay, testDay.AddDays(-1)).Return(nil, service.ErrInvalidRange).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedGet(t, "/api/dashboard/history?from="+testDay.String()+"&to="+testDay.AddDays(-1).String()))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBestDaysHandler(t *testing.T) {
	t.Run("default window", func(t *testing.T) {
		router, dashboard, _ := newTestRouter(t)
		dashboard.On("BestDays", mock.Anything, 30).
			Return(&domain.BestDays{From: testDay.AddDays(-30), To: testDay}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedGet(t, "/api/dashboard/best-days"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"from":"2024-02-04","to":"2024-03-05"}`, w.Body.String())
	})

	t.Run("with report", func(t *testing.T) {
		router, dashboard, _ := newTestRouter(t)
		report := &aggregator.BestDayReport{
			LowestCalorieDay:  aggregator.DayValue{Date: testDay, Value: decimal.NewFromInt(200)},
			HighestProteinDay: aggregator.DayValue{Date: testDay, Value: decimal.NewFromInt(30)},
		}
		dashboard.On("BestDays", mock.Anything, 7).
			Return(&domain.BestDays{From: testDay.AddDays(-7), To: testDay, Report: report}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedGet(t, "/api/dashboard/best-days?days=7"))

		require.Equal(t, http.StatusOK, w.Code)
		var best domain.BestDays
		require.NoError(t, json.NewDecoder(w.Body).Decode(&best))
		require.NotNil(t, best.Report)
		assert.Equal(t, testDay, best.Report.LowestCalorieDay.Date)
	})

	t.Run("not a number", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedGet(t, "/api/dashboard/best-days?days=month"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("out of bounds", func(t *testing.T) {
		router, dashboard, _ := newTestRouter(t)
		dashboard.On("BestDays", mock.Anything, 400).Return(nil, service.ErrInvalidWindow).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedGet(t, "/api/dashboard/best-days?days=400"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/dashboard/best-days", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func liveURL(srv *httptest.Server, token string) string {
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/dashboard/live"
	if token != "" {
		u += "?access_token=" + token
	}
	return u
}

func TestLiveHandler(t *testing.T) {
	router, _, hub := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	feed := mocks.NewTotalsFeed(t)
	updates := make(chan domain.TotalsUpdate)
	feed.On("Updates", mock.Anything).Return((<-chan domain.TotalsUpdate)(updates), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	relayDone := make(chan struct{})
	go func() {
		service.NewRelay(feed, hub).Start(ctx)
		close(relayDone)
	}()

	conn, _, err := websocket.DefaultDialer.Dial(liveURL(srv, tokenFor(t, testUserID)), nil)
	require.NoError(t, err)

	otherUser := uuid.New()
	otherConn, _, err := websocket.DefaultDialer.Dial(liveURL(srv, tokenFor(t, otherUser)), nil)
	require.NoError(t, err)
	defer otherConn.Close()

	require.Eventually(t, func() bool {
		return hub.Connected(testUserID) == 1 && hub.Connected(otherUser) == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload := `{"date":"2024-03-05","calories":"760","meal_count":2}`
	updates <- domain.TotalsUpdate{UserID: testUserID, Payload: json.RawMessage(payload)}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(msg))

	otherConn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = otherConn.ReadMessage()
	assert.Error(t, err, "updates are only sent to their owner")

	conn.Close()
	require.Eventually(t, func() bool { return hub.Connected(testUserID) == 0 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	close(updates)
	select {
	case <-relayDone:
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestLiveHandler_RequiresToken(t *testing.T) {
	router, _, _ := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(liveURL(srv, ""), nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRelay_StopsWhenSubscribeFails(t *testing.T) {
	feed := mocks.NewTotalsFeed(t)
	feed.On("Updates", mock.Anything).Return(nil, assert.AnError).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service.NewRelay(feed, service.NewHub()).Start(ctx)
}
