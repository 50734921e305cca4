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

type OnboardingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOnboardingServiceInterface
	actor       policy.Actor
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *OnboardingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOnboardingServiceInterface(suite.ctrl)
	suite.actor = policy.Actor{ID: uuid.New(), Kind: policy.Unassigned}

	handler := handlers.NewOnboardingHandler(suite.mockService)
	suite.httpSuite = routerAs(&suite.actor)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/me", handler.Me)
	v1.POST("/onboarding/role", handler.SelectRole)
	v1.POST("/onboarding/cancel", handler.Cancel)
}

func (suite *OnboardingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnboardingHandlerTestSuite) TestMe() {
	suite.mockService.EXPECT().Profile(gomock.Any(), suite.actor).
		Return(&service.ProfileResponse{User: service.UserResponse{ID: suite.actor.ID}, Stage: service.StageRoleSelection}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Equal(suite.T(), "role_selection", body["stage"])
	assert.Nil(suite.T(), body["team"])
}

func (suite *OnboardingHandlerTestSuite) TestSelectRole() {
	suite.mockService.EXPECT().SelectRole(gomock.Any(), suite.actor, &service.SelectRoleRequest{Role: "pm"}).
		Return(&service.ProfileResponse{CanManageTasks: true, Stage: service.StageCreateTeam}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/onboarding/role", map[string]string{"role": "pm"})

	var body service.ProfileResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Equal(suite.T(), service.StageCreateTeam, body.Stage)
	assert.True(suite.T(), body.CanManageTasks)
}

func (suite *OnboardingHandlerTestSuite) TestSelectRole_InvalidChoice() {
	suite.mockService.EXPECT().SelectRole(gomock.Any(), suite.actor, gomock.Any()).
		Return(nil, apperrors.NewValidationError("role", "must be one of pm member"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/onboarding/role", map[string]string{"role": "boss"})

	var body handlers.ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "role", body.Fields[0].Field)
}

func (suite *OnboardingHandlerTestSuite) TestCancel_AlreadyInTeam() {
	suite.mockService.EXPECT().Cancel(gomock.Any(), suite.actor).Return(nil, apperrors.ErrAlreadyInTeam)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/onboarding/cancel", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "already belongs")
}

func TestOnboardingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingHandlerTestSuite))
}
