package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"task-manager-backend/internal/database/models"
	apperrors "task-manager-backend/internal/errors"
	"task-manager-backend/internal/mocks"
	"task-manager-backend/internal/notify"
	"task-manager-backend/internal/policy"
	"task-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var teamCodePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	outbox       *notify.MemoryOutbox
	teamService  *service.TeamService
	ctx          context.Context
	team         *models.Team
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.outbox = notify.NewMemoryOutbox()
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockUserRepo, suite.outbox, validator.New())
	suite.ctx = context.Background()
	suite.team = &models.Team{Name: "Platform", Description: "core services", Code: "0A1B2C3D"}
	suite.team.ID = uuid.New()
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}

func (suite *TeamServiceTestSuite) TestCreate_Success() {
	manager := policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), nil, nil))

	gomock.InOrder(
		suite.mockTeamRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil),
		suite.mockTeamRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
		suite.mockTeamRepo.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any(), manager.ID).
			DoAndReturn(func(_ context.Context, team *models.Team, _ uuid.UUID) error {
				assert.Equal(suite.T(), "Platform", team.Name)
				assert.Equal(suite.T(), manager.ID, team.CreatedBy)
				assert.Regexp(suite.T(), teamCodePattern, team.Code)
				team.ID = suite.team.ID
				return nil
			}),
	)

	resp, err := suite.teamService.Create(suite.ctx, manager, &service.CreateTeamRequest{Name: " Platform "})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.team.ID, resp.ID)
	assert.Regexp(suite.T(), teamCodePattern, resp.Code)

	pending, err := suite.outbox.Drain(suite.ctx, manager.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), pending, 1)
	assert.Equal(suite.T(), notify.KindTeamCreated, pending[0].Kind)
	assert.Equal(suite.T(), resp.Code, pending[0].Data["code"])
}

func (suite *TeamServiceTestSuite) TestCreate_CodeSpaceExhausted() {
	manager := policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), nil, nil))
	suite.mockTeamRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(10)

	_, err := suite.teamService.Create(suite.ctx, manager, &service.CreateTeamRequest{Name: "Platform"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamCodeExhausted)
}

func (suite *TeamServiceTestSuite) TestCreate_RollbackSurfacesError() {
	manager := policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), nil, nil))
	suite.mockTeamRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockTeamRepo.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any(), manager.ID).Return(errors.New("tx aborted"))

	_, err := suite.teamService.Create(suite.ctx, manager, &service.CreateTeamRequest{Name: "Platform"})

	assert.Error(suite.T(), err)
	drained, _ := suite.outbox.Drain(suite.ctx, manager.ID)
	assert.Empty(suite.T(), drained)
}

func (suite *TeamServiceTestSuite) TestCreate_Rejected() {
	member := policy.ActorFromUser(newUser(rolePtr(models.RoleBackendDeveloper), nil, nil))
	_, err := suite.teamService.Create(suite.ctx, member, &service.CreateTeamRequest{Name: "x"})
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	_, err = suite.teamService.Create(suite.ctx, managerActor(suite.team.ID), &service.CreateTeamRequest{Name: "x"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyInTeam)

	manager := policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), nil, nil))
	_, err = suite.teamService.Create(suite.ctx, manager, &service.CreateTeamRequest{})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestList() {
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{*suite.team}, nil)

	resp, err := suite.teamService.List(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.TeamSummary{{ID: suite.team.ID, Name: "Platform"}}, resp)
}

func (suite *TeamServiceTestSuite) TestGet_HidesCodeFromMembers() {
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil).Times(3)

	resp, err := suite.teamService.Get(suite.ctx, managerActor(suite.team.ID), suite.team.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "0A1B2C3D", resp.Code)

	resp, err = suite.teamService.Get(suite.ctx, memberActor(suite.team.ID), suite.team.ID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.Code)

	_, err = suite.teamService.Get(suite.ctx, memberActor(uuid.New()), suite.team.ID)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *TeamServiceTestSuite) TestUpdate() {
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	_, err := suite.teamService.Update(suite.ctx, memberActor(suite.team.ID), suite.team.ID, &service.UpdateTeamRequest{Name: strPtr("New")})
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil).Times(2)
	suite.mockTeamRepo.EXPECT().Update(gomock.Any(), suite.team.ID, map[string]interface{}{"name": "New"}).Return(nil)
	_, err = suite.teamService.Update(suite.ctx, managerActor(suite.team.ID), suite.team.ID, &service.UpdateTeamRequest{Name: strPtr(" New ")})
	assert.NoError(suite.T(), err)
}

func (suite *TeamServiceTestSuite) TestJoin_Success() {
	user := newUser(rolePtr(models.RoleMemberPendingAssignment), nil, nil)
	joined := *user
	joined.TeamID = &suite.team.ID
	joined.MembershipStatus = statusPtr(models.MembershipPending)

	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), user.ID, map[string]interface{}{
		"team_id":           suite.team.ID,
		"membership_status": models.MembershipPending,
	}).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(&joined, nil)

	resp, err := suite.teamService.Join(suite.ctx, policy.ActorFromUser(user), &service.JoinTeamRequest{TeamID: suite.team.ID, TeamCode: "0a1b2c3d"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipPending, *resp.MembershipStatus)
}

func (suite *TeamServiceTestSuite) TestJoin_WrongCodeLooksLikeMissingTeam() {
	user := newUser(rolePtr(models.RoleMemberPendingAssignment), nil, nil)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)

	_, err := suite.teamService.Join(suite.ctx, policy.ActorFromUser(user), &service.JoinTeamRequest{TeamID: suite.team.ID, TeamCode: "FFFFFFFF"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestJoin_Rejected() {
	_, err := suite.teamService.Join(suite.ctx, policy.ActorFromUser(newUser(nil, nil, nil)), &service.JoinTeamRequest{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleSelectionRequired)

	_, err = suite.teamService.Join(suite.ctx, memberActor(suite.team.ID), &service.JoinTeamRequest{TeamID: suite.team.ID, TeamCode: "0A1B2C3D"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyInTeam)

	missing := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.teamService.Join(suite.ctx, policy.ActorFromUser(newUser(rolePtr(models.RoleSystemAnalyst), nil, nil)), &service.JoinTeamRequest{TeamID: missing, TeamCode: "0A1B2C3D"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestPendingMembers() {
	_, err := suite.teamService.PendingMembers(suite.ctx, memberActor(suite.team.ID))
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	pending := newUser(rolePtr(models.RoleMemberPendingAssignment), &suite.team.ID, statusPtr(models.MembershipPending))
	suite.mockUserRepo.EXPECT().ListByTeam(gomock.Any(), suite.team.ID, models.MembershipPending).Return([]models.User{*pending}, nil)

	resp, err := suite.teamService.PendingMembers(suite.ctx, managerActor(suite.team.ID))
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
}

func (suite *TeamServiceTestSuite) TestApprove() {
	manager := managerActor(suite.team.ID)
	pending := newUser(rolePtr(models.RoleMemberPendingAssignment), &suite.team.ID, statusPtr(models.MembershipPending))
	approved := *pending
	approved.MembershipStatus = statusPtr(models.MembershipApproved)

	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), pending.ID).Return(pending, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), pending.ID, map[string]interface{}{"membership_status": models.MembershipApproved}).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), pending.ID).Return(&approved, nil)

	resp, err := suite.teamService.Approve(suite.ctx, manager, pending.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipApproved, *resp.MembershipStatus)
	msgs, _ := suite.outbox.Drain(suite.ctx, pending.ID)
	require.Len(suite.T(), msgs, 1)
	assert.Equal(suite.T(), notify.KindMembershipApproved, msgs[0].Kind)
}

func (suite *TeamServiceTestSuite) TestApprove_OtherTeamIsNotFound() {
	otherTeam := uuid.New()
	stranger := newUser(rolePtr(models.RoleMemberPendingAssignment), &otherTeam, statusPtr(models.MembershipPending))
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), stranger.ID).Return(stranger, nil)

	_, err := suite.teamService.Approve(suite.ctx, managerActor(suite.team.ID), stranger.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *TeamServiceTestSuite) TestApprove_MemberForbidden() {
	_, err := suite.teamService.Approve(suite.ctx, memberActor(suite.team.ID), uuid.New())

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *TeamServiceTestSuite) TestReject() {
	pending := newUser(rolePtr(models.RoleMemberPendingAssignment), &suite.team.ID, statusPtr(models.MembershipPending))
	detached := *pending
	detached.TeamID = nil
	detached.MembershipStatus = nil

	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), pending.ID).Return(pending, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), pending.ID, map[string]interface{}{
		"team_id":           nil,
		"membership_status": nil,
	}).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), pending.ID).Return(&detached, nil)

	resp, err := suite.teamService.Reject(suite.ctx, managerActor(suite.team.ID), pending.ID)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.TeamID)
	assert.Nil(suite.T(), resp.MembershipStatus)
	msgs, _ := suite.outbox.Drain(suite.ctx, pending.ID)
	require.Len(suite.T(), msgs, 1)
	assert.Equal(suite.T(), notify.LevelWarning, msgs[0].Level)
}

func (suite *TeamServiceTestSuite) TestJoin_ManagerRefused() {
	teamless := policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), nil, nil))
	_, err := suite.teamService.Join(suite.ctx, teamless, &service.JoinTeamRequest{TeamID: suite.team.ID, TeamCode: "0A1B2C3D"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerCannotJoin)

	admin := policy.ActorFromUser(newUser(rolePtr(models.RoleSuperadmin), nil, nil))
	_, err = suite.teamService.Join(suite.ctx, admin, &service.JoinTeamRequest{TeamID: suite.team.ID, TeamCode: "0A1B2C3D"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerCannotJoin)
}

func (suite *TeamServiceTestSuite) TestUpdate_PendingManagerForbidden() {
	pendingManager := policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), &suite.team.ID, statusPtr(models.MembershipPending)))
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)

	_, err := suite.teamService.Update(suite.ctx, pendingManager, suite.team.ID, &service.UpdateTeamRequest{Name: strPtr("Taken")})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *TeamServiceTestSuite) TestApprove_PendingManagerForbidden() {
	pendingManager := policy.ActorFromUser(newUser(rolePtr(models.RoleProjectManager), &suite.team.ID, statusPtr(models.MembershipPending)))

	_, err := suite.teamService.Approve(suite.ctx, pendingManager, pendingManager.ID)
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	_, err = suite.teamService.Reject(suite.ctx, pendingManager, uuid.New())
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *TeamServiceTestSuite) TestApprove_SelfRefused() {
	manager := managerActor(suite.team.ID)

	_, err := suite.teamService.Approve(suite.ctx, manager, manager.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfReview)
}

func (suite *TeamServiceTestSuite) TestApprove_OnlyPendingRequests() {
	member := newUser(rolePtr(models.RoleFrontendDeveloper), &suite.team.ID, statusPtr(models.MembershipApproved))
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), member.ID).Return(member, nil)

	_, err := suite.teamService.Approve(suite.ctx, managerActor(suite.team.ID), member.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestNotFound)
	msgs, _ := suite.outbox.Drain(suite.ctx, member.ID)
	assert.Empty(suite.T(), msgs)
}

func (suite *TeamServiceTestSuite) TestReject_ApprovedManagerStays() {
	creator := newUser(rolePtr(models.RoleProjectManager), &suite.team.ID, statusPtr(models.MembershipApproved))
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), creator.ID).Return(creator, nil)

	_, err := suite.teamService.Reject(suite.ctx, managerActor(suite.team.ID), creator.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestNotFound)
}
