//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	userRepo      *UserRepository
	users         *testutils.UserFactory
	teams         *testutils.TeamFactory
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TeamRepositoryTestSuite) TestCreateWithOwner() {
	owner := suite.users.WithRole(models.RoleProjectManager)
	suite.Require().NoError(suite.userRepo.Create(suite.ctx, owner))
	team := suite.teams.Create(owner.ID)

	suite.Require().NoError(suite.repo.CreateWithOwner(suite.ctx, team, owner.ID))

	stored, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal(team.Code, stored.Code)
	suite.Equal(owner.ID, stored.CreatedBy)

	reloaded, err := suite.userRepo.GetByID(suite.ctx, owner.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.TeamID)
	suite.Equal(team.ID, *reloaded.TeamID)
	suite.Equal(models.MembershipApproved, *reloaded.MembershipStatus)
}

func (suite *TeamRepositoryTestSuite) TestCreateWithOwnerRollsBackWhenOwnerMissing() {
	team := suite.teams.Create(uuid.New())

	err := suite.repo.CreateWithOwner(suite.ctx, team, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByID(suite.ctx, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestCodeExists() {
	owner := suite.users.WithRole(models.RoleProjectManager)
	team := suite.teams.Create(owner.ID)
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, owner, team))

	taken, err := suite.repo.CodeExists(suite.ctx, team.Code)
	suite.Require().NoError(err)
	suite.True(taken)

	free, err := suite.repo.CodeExists(suite.ctx, "ZZZZ9999")
	suite.Require().NoError(err)
	suite.False(free)
}

func (suite *TeamRepositoryTestSuite) TestDuplicateCodeRejected() {
	owner := suite.users.WithRole(models.RoleProjectManager)
	first := suite.teams.Create(owner.ID)
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, owner, first))

	second := suite.teams.Create(owner.ID)
	second.Code = first.Code
	suite.Error(testutils.Insert(suite.baseTestSuite.DB, second))
}

func (suite *TeamRepositoryTestSuite) TestGetAllAndUpdate() {
	owner := suite.users.WithRole(models.RoleProjectManager)
	zed := suite.teams.Create(owner.ID)
	zed.Name = "Zed"
	abc := suite.teams.Create(owner.ID)
	abc.Name = "Abc"
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, owner, zed, abc))

	teams, err := suite.repo.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 2)
	suite.Equal("Abc", teams[0].Name)

	suite.Require().NoError(suite.repo.Update(suite.ctx, zed.ID, map[string]interface{}{"description": "renamed"}))
	stored, err := suite.repo.GetByID(suite.ctx, zed.ID)
	suite.Require().NoError(err)
	suite.Equal("renamed", stored.Description)

	err = suite.repo.Update(suite.ctx, uuid.New(), map[string]interface{}{"description": "x"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
