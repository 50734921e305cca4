package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"task-manager-backend/internal/api/handlers"
	"task-manager-backend/internal/mocks"
	"task-manager-backend/internal/notify"
	"task-manager-backend/internal/service"
	"task-manager-backend/internal/testutils"
	"task-manager-backend/internal/visibility"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardServiceInterface(ctrl)
	actor := memberActor()

	httpSuite := routerAs(&actor)
	httpSuite.Router.GET("/api/v1/dashboard", handlers.NewDashboardHandler(mockService).Get)

	mockService.EXPECT().Get(gomock.Any(), actor).Return(&service.DashboardResponse{
		Stats:    service.DashboardStats{Total: 4, Completed: 1, ByPriority: map[string]int64{"low": 0, "medium": 2, "high": 1, "urgent": 0}},
		Recent:   &service.TaskListResponse{Kind: visibility.Flat},
		Upcoming: &service.TaskListResponse{Kind: visibility.Flat},
	}, nil)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/dashboard", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(4), stats["total"])
	recent := body["recent"].(map[string]interface{})
	assert.Equal(t, "flat", recent["kind"])
	assert.Equal(t, []interface{}{}, recent["data"])
}

func TestNotificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockNotificationServiceInterface(ctrl)
	actor := managerActor()

	httpSuite := routerAs(&actor)
	httpSuite.Router.GET("/api/v1/notifications", handlers.NewNotificationHandler(mockService).Drain)

	t.Run("drains queued notifications", func(t *testing.T) {
		mockService.EXPECT().Drain(gomock.Any(), actor).Return([]notify.Notification{{
			Kind:      notify.KindTeamCreated,
			Level:     notify.LevelSuccess,
			Message:   "Team created",
			Data:      map[string]string{"code": "0A1B2C3D"},
			CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		}}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)

		var body []notify.Notification
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Len(t, body, 1)
		assert.Equal(t, "0A1B2C3D", body[0].Data["code"])
	})

	t.Run("outbox failure is a 500", func(t *testing.T) {
		mockService.EXPECT().Drain(gomock.Any(), actor).Return(nil, errors.New("redis: connection refused"))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "redis")
	})
}
