//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	users         *testutils.UserFactory
	teams         *testutils.TeamFactory
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// createTeam inserts an owner and a team and returns the team
func (suite *UserRepositoryTestSuite) createTeam() *models.Team {
	owner := suite.users.WithRole(models.RoleProjectManager)
	team := suite.teams.Create(owner.ID)
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, owner, team))
	return team
}

func (suite *UserRepositoryTestSuite) TestCreateAndGet() {
	user := suite.users.WithRole(models.RoleBackendDeveloper)

	suite.Require().NoError(suite.repo.Create(suite.ctx, user))
	suite.NotZero(user.CreatedAt)

	byID, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(user.Email, byID.Email)
	suite.Equal(models.RoleBackendDeveloper, *byID.Role)

	byEmail, err := suite.repo.GetByEmail(suite.ctx, user.Email)
	suite.Require().NoError(err)
	suite.Equal(user.ID, byEmail.ID)
}

func (suite *UserRepositoryTestSuite) TestGetMissing() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByEmail(suite.ctx, "nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.users.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	second := suite.users.Create()
	second.Email = first.Email
	suite.Error(suite.repo.Create(suite.ctx, second))
}

func (suite *UserRepositoryTestSuite) TestListAllOrderedByName() {
	b := suite.users.Create()
	b.Name = "Bravo"
	a := suite.users.Create()
	a.Name = "Alpha"
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, b, a))

	users, err := suite.repo.ListAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal("Alpha", users[0].Name)
	suite.Equal("Bravo", users[1].Name)
}

func (suite *UserRepositoryTestSuite) TestListByTeamFiltersStatus() {
	team := suite.createTeam()
	approved := suite.users.InTeam(models.RoleFrontendDeveloper, team.ID, models.MembershipApproved)
	pending := suite.users.InTeam(models.RoleMemberPendingAssignment, team.ID, models.MembershipPending)
	outsider := suite.users.WithRole(models.RoleFrontendDeveloper)
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, approved, pending, outsider))

	members, err := suite.repo.ListByTeam(suite.ctx, team.ID, models.MembershipApproved)
	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal(approved.ID, members[0].ID)

	waiting, err := suite.repo.ListByTeam(suite.ctx, team.ID, models.MembershipPending)
	suite.Require().NoError(err)
	suite.Require().Len(waiting, 1)
	suite.Equal(pending.ID, waiting[0].ID)
}

func (suite *UserRepositoryTestSuite) TestUpdateBumpsUpdatedAt() {
	user := suite.users.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))
	before := user.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.repo.Update(suite.ctx, user.ID, map[string]interface{}{"role": models.RoleSystemAnalyst}))

	updated, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleSystemAnalyst, *updated.Role)
	suite.True(updated.UpdatedAt.After(before))
}

func (suite *UserRepositoryTestSuite) TestUpdateMissing() {
	err := suite.repo.Update(suite.ctx, uuid.New(), map[string]interface{}{"name": "x"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestMaxUpdatedAt() {
	team := suite.createTeam()

	latest, err := suite.repo.MaxUpdatedAt(suite.ctx, team.ID, models.MembershipPending)
	suite.Require().NoError(err)
	suite.Nil(latest)

	pending := suite.users.InTeam(models.RoleMemberPendingAssignment, team.ID, models.MembershipPending)
	suite.Require().NoError(suite.repo.Create(suite.ctx, pending))

	first, err := suite.repo.MaxUpdatedAt(suite.ctx, team.ID, models.MembershipPending)
	suite.Require().NoError(err)
	suite.Require().NotNil(first)

	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.repo.Update(suite.ctx, pending.ID, map[string]interface{}{"name": "Renamed"}))

	second, err := suite.repo.MaxUpdatedAt(suite.ctx, team.ID, models.MembershipPending)
	suite.Require().NoError(err)
	suite.Require().NotNil(second)
	suite.True(second.After(*first))
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
