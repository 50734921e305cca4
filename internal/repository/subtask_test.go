//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SubtaskRepositoryTestSuite tests the SubtaskRepository
type SubtaskRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SubtaskRepository
	taskRepo      *TaskRepository
	subtasks      *testutils.SubtaskFactory
	ctx           context.Context

	task *models.Task
}

// SetupSuite runs before all tests in the suite
func (suite *SubtaskRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSubtaskRepository(suite.baseTestSuite.DB)
	suite.taskRepo = NewTaskRepository(suite.baseTestSuite.DB)
	suite.subtasks = testutils.NewSubtaskFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *SubtaskRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest cleans the database and inserts a task to hang subtasks on
func (suite *SubtaskRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	users := testutils.NewUserFactory()
	manager := users.WithRole(models.RoleProjectManager)
	member := users.WithRole(models.RoleBackendDeveloper)
	suite.task = testutils.NewTaskFactory().Create(manager.ID, member.ID)
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, manager, member, suite.task))
}

func (suite *SubtaskRepositoryTestSuite) newSubtask(title string) *models.Subtask {
	return &models.Subtask{TaskID: suite.task.ID, Title: title, Status: models.SubtaskStatusPending}
}

func (suite *SubtaskRepositoryTestSuite) taskUpdatedAt() time.Time {
	task, err := suite.taskRepo.GetByID(suite.ctx, suite.task.ID)
	suite.Require().NoError(err)
	return task.UpdatedAt
}

func (suite *SubtaskRepositoryTestSuite) TestAppendAssignsNextOrder() {
	first := suite.newSubtask("first")
	suite.Require().NoError(suite.repo.Append(suite.ctx, first))
	suite.Equal(0, first.Order)

	second := suite.newSubtask("second")
	suite.Require().NoError(suite.repo.Append(suite.ctx, second))
	suite.Equal(1, second.Order)

	list, err := suite.repo.ListByTask(suite.ctx, suite.task.ID)
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("first", list[0].Title)
	suite.Equal("second", list[1].Title)
}

func (suite *SubtaskRepositoryTestSuite) TestAppendConcurrentGetsDistinctOrders() {
	const n = 5
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- suite.repo.Append(suite.ctx, suite.newSubtask("parallel"))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.Require().NoError(err)
	}

	list, err := suite.repo.ListByTask(suite.ctx, suite.task.ID)
	suite.Require().NoError(err)
	suite.Require().Len(list, n)
	for i, s := range list {
		suite.Equal(i, s.Order)
	}
}

func (suite *SubtaskRepositoryTestSuite) TestAppendToMissingTask() {
	orphan := &models.Subtask{TaskID: uuid.New(), Title: "orphan", Status: models.SubtaskStatusPending}
	suite.ErrorIs(suite.repo.Append(suite.ctx, orphan), gorm.ErrRecordNotFound)
}

func (suite *SubtaskRepositoryTestSuite) TestWritesTouchParentTask() {
	before := suite.taskUpdatedAt()

	time.Sleep(10 * time.Millisecond)
	subtask := suite.newSubtask("touch")
	suite.Require().NoError(suite.repo.Append(suite.ctx, subtask))
	afterAppend := suite.taskUpdatedAt()
	suite.True(afterAppend.After(before))

	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.repo.Update(suite.ctx, subtask, map[string]interface{}{"status": models.SubtaskStatusCompleted}))
	afterUpdate := suite.taskUpdatedAt()
	suite.True(afterUpdate.After(afterAppend))

	stored, err := suite.repo.GetByID(suite.ctx, subtask.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SubtaskStatusCompleted, stored.Status)

	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.repo.Delete(suite.ctx, subtask))
	suite.True(suite.taskUpdatedAt().After(afterUpdate))

	_, err = suite.repo.GetByID(suite.ctx, subtask.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *SubtaskRepositoryTestSuite) TestCountOwnedAndSetOrder() {
	a := suite.subtasks.Create(suite.task.ID, 0)
	b := suite.subtasks.Create(suite.task.ID, 1)
	c := suite.subtasks.Create(suite.task.ID, 2)
	suite.Require().NoError(testutils.Insert(suite.baseTestSuite.DB, a, b, c))

	owned, err := suite.repo.CountOwned(suite.ctx, suite.task.ID, []uuid.UUID{a.ID, c.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Equal(int64(2), owned)

	err = suite.repo.SetOrder(suite.ctx, suite.task.ID, map[uuid.UUID]int{a.ID: 2, b.ID: 0, c.ID: 1})
	suite.Require().NoError(err)

	list, err := suite.repo.ListByTask(suite.ctx, suite.task.ID)
	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	suite.Equal(b.ID, list[0].ID)
	suite.Equal(c.ID, list[1].ID)
	suite.Equal(a.ID, list[2].ID)
}

func TestSubtaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubtaskRepositoryTestSuite))
}
