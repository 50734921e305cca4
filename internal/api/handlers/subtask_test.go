package handlers_test

import (
	"net/http"
	"testing"

	"task-manager-backend/internal/api/handlers"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/mocks"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/service"
	"task-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubtaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSubtaskServiceInterface
	actor       policy.Actor
	httpSuite   *testutils.HTTPTestSuite
	taskID      uuid.UUID
}

func (suite *SubtaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSubtaskServiceInterface(suite.ctrl)
	suite.actor = memberActor()
	suite.taskID = uuid.New()

	handler := handlers.NewSubtaskHandler(suite.mockService)
	suite.httpSuite = routerAs(&suite.actor)

	subtasks := suite.httpSuite.Router.Group("/api/v1/tasks/:id/subtasks")
	{
		subtasks.GET("", handler.ListSubtasks)
		subtasks.POST("", handler.CreateSubtask)
		subtasks.POST("/reorder", handler.ReorderSubtasks)
		subtasks.PUT("/:subtaskId", handler.UpdateSubtask)
		subtasks.DELETE("/:subtaskId", handler.DeleteSubtask)
	}
}

func (suite *SubtaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubtaskHandlerTestSuite) url(suffix string) string {
	return "/api/v1/tasks/" + suite.taskID.String() + "/subtasks" + suffix
}

func (suite *SubtaskHandlerTestSuite) TestListSubtasks() {
	suite.mockService.EXPECT().List(gomock.Any(), suite.actor, suite.taskID).
		Return([]service.SubtaskResponse{{ID: uuid.New(), TaskID: suite.taskID, Title: "a"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.url(""), nil)

	var body []service.SubtaskResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Len(suite.T(), body, 1)
}

func (suite *SubtaskHandlerTestSuite) TestCreateSubtask_ParentForbidden() {
	suite.mockService.EXPECT().Create(gomock.Any(), suite.actor, suite.taskID, gomock.Any()).
		Return(nil, apperrors.NewAuthorizationError("you may not update this task"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url(""), map[string]string{"title": "step"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "you may not update this task")
}

func (suite *SubtaskHandlerTestSuite) TestUpdateSubtask_ParentChange() {
	subtaskID := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), suite.actor, suite.taskID, subtaskID, gomock.Any()).
		Return(nil, apperrors.ErrSubtaskParentChange)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.url("/"+subtaskID.String()), map[string]string{"task_id": uuid.NewString()})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "cannot be moved")
}

func (suite *SubtaskHandlerTestSuite) TestDeleteSubtask() {
	subtaskID := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.actor, suite.taskID, subtaskID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.url("/"+subtaskID.String()), nil)

	testutils.AssertNoContent(suite.T(), recorder)
}

func (suite *SubtaskHandlerTestSuite) TestReorderSubtasks() {
	first, second := 0, 1
	req := service.ReorderSubtasksRequest{Subtasks: []service.SubtaskOrder{
		{ID: uuid.New(), Order: &first},
		{ID: uuid.New(), Order: &second},
	}}
	suite.mockService.EXPECT().Reorder(gomock.Any(), suite.actor, suite.taskID, &req).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/reorder"), req)

	testutils.AssertNoContent(suite.T(), recorder)
}

func (suite *SubtaskHandlerTestSuite) TestReorderSubtasks_ForeignSubtask() {
	suite.mockService.EXPECT().Reorder(gomock.Any(), suite.actor, suite.taskID, gomock.Any()).
		Return(apperrors.ErrSubtaskForeignParent)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.url("/reorder"), map[string]interface{}{
		"subtasks": []map[string]interface{}{{"id": uuid.NewString(), "order": 0}},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "does not belong")
}

func TestSubtaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubtaskHandlerTestSuite))
}
