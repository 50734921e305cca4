package service_test

import (
	"context"
	"testing"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/mocks"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	ctx          context.Context
	teamID       uuid.UUID
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, validator.New())
	suite.ctx = context.Background()
	suite.teamID = uuid.New()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestLoadActor() {
	user := newUser(rolePtr(models.RoleSystemAnalyst), &suite.teamID, statusPtr(models.MembershipApproved))
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	actor, err := suite.userService.LoadActor(suite.ctx, user.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, actor.ID)
	assert.Equal(suite.T(), policy.Member, actor.Kind)
	assert.True(suite.T(), actor.IsApprovedMember())
}

func (suite *UserServiceTestSuite) TestLoadActor_NotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.LoadActor(suite.ctx, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers() {
	_, err := suite.userService.ListUsers(suite.ctx, memberActor(suite.teamID))
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	users := []models.User{*newUser(nil, nil, nil), *newUser(rolePtr(models.RoleProjectManager), nil, nil)}
	suite.mockUserRepo.EXPECT().ListAll(gomock.Any()).Return(users, nil)

	resp, err := suite.userService.ListUsers(suite.ctx, managerActor(suite.teamID))
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), users[1].ID, resp[1].ID)
}

func (suite *UserServiceTestSuite) TestListTeamMembers() {
	noTeam := policy.ActorFromUser(newUser(rolePtr(models.RoleBackendDeveloper), nil, nil))
	resp, err := suite.userService.ListTeamMembers(suite.ctx, noTeam)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Empty(suite.T(), resp)

	member := newUser(rolePtr(models.RoleTechnicalWriter), &suite.teamID, statusPtr(models.MembershipApproved))
	suite.mockUserRepo.EXPECT().ListByTeam(gomock.Any(), suite.teamID, models.MembershipApproved).Return([]models.User{*member}, nil)

	resp, err = suite.userService.ListTeamMembers(suite.ctx, memberActor(suite.teamID))
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Technical Writer", resp[0].RoleLabel)
}

func (suite *UserServiceTestSuite) TestUpdateRole_ManagerWithinTeam() {
	target := newUser(rolePtr(models.RoleMemberPendingAssignment), &suite.teamID, statusPtr(models.MembershipApproved))
	updated := *target
	updated.Role = rolePtr(models.RoleFrontendDeveloper)

	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), target.ID, map[string]interface{}{"role": models.RoleFrontendDeveloper}).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(&updated, nil)

	resp, err := suite.userService.UpdateRole(suite.ctx, managerActor(suite.teamID), target.ID, &service.UpdateRoleRequest{Role: models.RoleFrontendDeveloper})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleFrontendDeveloper, *resp.Role)
	assert.Equal(suite.T(), "Frontend Developer", resp.RoleLabel)
}

func (suite *UserServiceTestSuite) TestUpdateRole_ProjectManagerCannotGrantSuperadmin() {
	target := newUser(rolePtr(models.RoleBackendDeveloper), &suite.teamID, statusPtr(models.MembershipApproved))
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)

	_, err := suite.userService.UpdateRole(suite.ctx, managerActor(suite.teamID), target.ID, &service.UpdateRoleRequest{Role: models.RoleSuperadmin})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *UserServiceTestSuite) TestUpdateRole_SuperadminCanGrantSuperadmin() {
	admin := policy.ActorFromUser(newUser(rolePtr(models.RoleSuperadmin), nil, nil))
	target := newUser(rolePtr(models.RoleBackendDeveloper), &suite.teamID, statusPtr(models.MembershipApproved))

	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), target.ID, gomock.Any()).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)

	_, err := suite.userService.UpdateRole(suite.ctx, admin, target.ID, &service.UpdateRoleRequest{Role: models.RoleSuperadmin})

	assert.NoError(suite.T(), err)
}

func (suite *UserServiceTestSuite) TestUpdateRole_InvalidRole() {
	_, err := suite.userService.UpdateRole(suite.ctx, managerActor(suite.teamID), uuid.New(), &service.UpdateRoleRequest{Role: "wizard"})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "role", apperrors.FieldsOf(err)[0].Field)
}

func (suite *UserServiceTestSuite) TestUpdateRole_MemberForbidden() {
	target := newUser(rolePtr(models.RoleBackendDeveloper), &suite.teamID, statusPtr(models.MembershipApproved))
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)

	_, err := suite.userService.UpdateRole(suite.ctx, memberActor(suite.teamID), target.ID, &service.UpdateRoleRequest{Role: models.RoleSystemAnalyst})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}
