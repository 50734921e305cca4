package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"task-manager-backend/internal/api/handlers"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/mocks"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/service"
	"task-manager-backend/internal/testutils"
	"task-manager-backend/internal/visibility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	actor       policy.Actor
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.actor = managerActor()

	handler := handlers.NewTaskHandler(suite.mockService)
	suite.httpSuite = routerAs(&suite.actor)

	tasks := suite.httpSuite.Router.Group("/api/v1/tasks")
	{
		tasks.GET("", handler.ListTasks)
		tasks.GET("/unread-count", handler.UnreadCount)
		tasks.POST("", handler.CreateTask)
		tasks.GET("/:id", handler.GetTask)
		tasks.PUT("/:id", handler.UpdateTask)
		tasks.DELETE("/:id", handler.DeleteTask)
		tasks.POST("/:id/restore", handler.RestoreTask)
	}
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) TestListTasks_PartitionedResponse() {
	mine := service.TaskResponse{ID: uuid.New(), Title: "Write docs"}
	suite.mockService.EXPECT().
		ListAndAcknowledge(gomock.Any(), suite.actor, visibility.Filters{Status: "pending", SortBy: "due_date"}).
		Return(&service.TaskListResponse{
			Kind:           visibility.Partitioned,
			MyTasks:        []service.TaskResponse{mine},
			CanManageTasks: true,
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks?status=pending&sort_by=due_date", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Equal(suite.T(), "partitioned", body["kind"])
	assert.Equal(suite.T(), true, body["canManageTasks"])
	assert.Len(suite.T(), body["myTasks"], 1)
	assert.Len(suite.T(), body["teamTasks"], 0)
	assert.NotContains(suite.T(), body, "data")
}

func (suite *TaskHandlerTestSuite) TestListTasks_InvalidFilter() {
	suite.mockService.EXPECT().
		ListAndAcknowledge(gomock.Any(), suite.actor, visibility.Filters{Priority: "extreme"}).
		Return(nil, apperrors.NewValidationError("priority", "must be one of low, medium, high, urgent"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks?priority=extreme", nil)

	var body handlers.ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "validation failed", body.Error)
	if assert.Len(suite.T(), body.Fields, 1) {
		assert.Equal(suite.T(), "priority", body.Fields[0].Field)
	}
}

func (suite *TaskHandlerTestSuite) TestUnreadCount() {
	suite.mockService.EXPECT().UnreadCount(gomock.Any(), suite.actor).Return(int64(3), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/unread-count", nil)

	var body handlers.UnreadCountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Equal(suite.T(), int64(3), body.Count)
}

func (suite *TaskHandlerTestSuite) TestGetTask() {
	id := uuid.New()
	suite.mockService.EXPECT().GetTask(gomock.Any(), suite.actor, id).
		Return(&service.TaskResponse{ID: id, Title: "Ship it"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/"+id.String(), nil)

	var body service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Equal(suite.T(), id, body.ID)
}

func (suite *TaskHandlerTestSuite) TestGetTask_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"forbidden", apperrors.NewAuthorizationError("you may not view this task"), http.StatusForbidden, "you may not view this task"},
		{"not found", apperrors.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			id := uuid.New()
			suite.mockService.EXPECT().GetTask(gomock.Any(), suite.actor, id).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/"+id.String(), nil)

			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, tc.msg)
			assert.NotContains(suite.T(), recorder.Body.String(), "connection reset")
		})
	}
}

func (suite *TaskHandlerTestSuite) TestGetTask_MalformedID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task not found")
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	assignee := uuid.New()
	req := service.CreateTaskRequest{Title: "New", Priority: "high", AssignedToUserID: assignee}
	suite.mockService.EXPECT().CreateTask(gomock.Any(), suite.actor, &req).
		Return(&service.TaskResponse{ID: uuid.New(), Title: "New"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks", req)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_InvalidJSON() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks", "not an object")

	testutils.AssertValidationFields(suite.T(), recorder, "body")
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().UpdateTask(gomock.Any(), suite.actor, id, gomock.Any()).
		Return(nil, apperrors.ErrTaskNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/"+id.String(), map[string]string{"status": "completed"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task not found")
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteTask(gomock.Any(), suite.actor, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/tasks/"+id.String(), nil)

	testutils.AssertNoContent(suite.T(), recorder)
}

func (suite *TaskHandlerTestSuite) TestRestoreTask_NotDeleted() {
	id := uuid.New()
	suite.mockService.EXPECT().RestoreTask(gomock.Any(), suite.actor, id).Return(nil, apperrors.ErrTaskNotDeleted)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks/"+id.String()+"/restore", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "task is not deleted")
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
