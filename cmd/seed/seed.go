package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"task-manager-backend/internal/database/models"
	"task-manager-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// UserData is one seeded account. Team and status are applied after teams exist.
type UserData struct {
	Name             string `yaml:"name"`
	Email            string `yaml:"email"`
	Role             string `yaml:"role,omitempty"`
	Team             string `yaml:"team,omitempty"`
	MembershipStatus string `yaml:"membership_status,omitempty"`
}

// TeamData is one seeded team; Owner is the creator's email
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
	Owner       string `yaml:"owner"`
}

// SubtaskData is one checklist item of a seeded task
type SubtaskData struct {
	Title  string `yaml:"title"`
	Status string `yaml:"status,omitempty"`
}

// TaskData is one seeded task. DueInDays is relative to the seeding time.
type TaskData struct {
	Title         string        `yaml:"title"`
	Description   string        `yaml:"description"`
	Priority      string        `yaml:"priority"`
	Status        string        `yaml:"status,omitempty"`
	DueInDays     *int          `yaml:"due_in_days,omitempty"`
	EstimatedTime *int          `yaml:"estimated_time,omitempty"`
	AssignedTo    string        `yaml:"assigned_to"`
	CreatedBy     string        `yaml:"created_by"`
	Subtasks      []SubtaskData `yaml:"subtasks,omitempty"`
}

// SeedFile is the shape of every YAML file in the seed directory. A file may
// carry any subset of the sections.
type SeedFile struct {
	Users []UserData `yaml:"users"`
	Teams []TeamData `yaml:"teams"`
	Tasks []TaskData `yaml:"tasks"`
}

// Result reports what Apply wrote
type Result struct {
	UsersCreated int
	TeamsCreated int
	TasksCreated int
	// Users maps every seeded email to its id
	Users map[string]uuid.UUID
	// Order lists the seeded emails in file order
	Order []string
}

// LoadDir merges every .yaml file under dir
func LoadDir(dir string) (*SeedFile, error) {
	merged := &SeedFile{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merged.Users = append(merged.Users, file.Users...)
		merged.Teams = append(merged.Teams, file.Teams...)
		merged.Tasks = append(merged.Tasks, file.Tasks...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, merged.Validate()
}

// Validate checks references between sections before anything is written
func (f *SeedFile) Validate() error {
	emails := make(map[string]struct{}, len(f.Users))
	for _, u := range f.Users {
		if u.Email == "" {
			return fmt.Errorf("user %q has no email", u.Name)
		}
		if u.Role != "" && !models.Role(u.Role).IsValid() {
			return fmt.Errorf("user %s has unknown role %q", u.Email, u.Role)
		}
		if u.MembershipStatus != "" && !models.MembershipStatus(u.MembershipStatus).IsValid() {
			return fmt.Errorf("user %s has unknown membership status %q", u.Email, u.MembershipStatus)
		}
		emails[u.Email] = struct{}{}
	}
	teams := make(map[string]struct{}, len(f.Teams))
	for _, t := range f.Teams {
		if _, ok := emails[t.Owner]; !ok {
			return fmt.Errorf("team %s: owner %s is not a seeded user", t.Name, t.Owner)
		}
		if len(t.Code) == 0 || len(t.Code) > 8 {
			return fmt.Errorf("team %s: code must be 1 to 8 characters", t.Name)
		}
		teams[t.Name] = struct{}{}
	}
	for _, u := range f.Users {
		if u.Team == "" {
			continue
		}
		if _, ok := teams[u.Team]; !ok {
			return fmt.Errorf("user %s: team %s is not seeded", u.Email, u.Team)
		}
	}
	for _, t := range f.Tasks {
		if !models.TaskPriority(t.Priority).IsValid() {
			return fmt.Errorf("task %q has unknown priority %q", t.Title, t.Priority)
		}
		if t.Status != "" && !models.TaskStatus(t.Status).IsValid() {
			return fmt.Errorf("task %q has unknown status %q", t.Title, t.Status)
		}
		for _, st := range t.Subtasks {
			if st.Status != "" && !models.SubtaskStatus(st.Status).IsValid() {
				return fmt.Errorf("task %q: subtask %q has unknown status %q", t.Title, st.Title, st.Status)
			}
		}
		for _, ref := range []string{t.AssignedTo, t.CreatedBy} {
			if _, ok := emails[ref]; !ok {
				return fmt.Errorf("task %q: %s is not a seeded user", t.Title, ref)
			}
		}
	}
	return nil
}

// Apply writes the seed data inside one transaction. Records that already
// exist (users by email, teams by code, tasks by title and creator) are left
// untouched, so running it twice is harmless.
func Apply(ctx context.Context, db *gorm.DB, data *SeedFile, now time.Time) (*Result, error) {
	res := &Result{Users: make(map[string]uuid.UUID, len(data.Users))}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		for _, u := range data.Users {
			user, created, err := findOrCreateUser(ctx, users, u)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}
			res.Users[u.Email] = user.ID
			res.Order = append(res.Order, u.Email)
			if created {
				res.UsersCreated++
			}
		}

		teamIDs := make(map[string]uuid.UUID, len(data.Teams))
		for _, t := range data.Teams {
			team, created, err := findOrCreateTeam(tx, t, res.Users[t.Owner])
			if err != nil {
				return fmt.Errorf("team %s: %w", t.Name, err)
			}
			teamIDs[t.Name] = team.ID
			if created {
				res.TeamsCreated++
			}
		}

		for _, u := range data.Users {
			if u.Team == "" {
				continue
			}
			status := models.MembershipApproved
			if u.MembershipStatus != "" {
				status = models.MembershipStatus(u.MembershipStatus)
			}
			if err := users.Update(ctx, res.Users[u.Email], map[string]interface{}{
				"team_id":           teamIDs[u.Team],
				"membership_status": status,
			}); err != nil {
				return fmt.Errorf("assign %s to %s: %w", u.Email, u.Team, err)
			}
		}

		for _, t := range data.Tasks {
			created, err := findOrCreateTask(tx, t, res.Users, now)
			if err != nil {
				return fmt.Errorf("task %q: %w", t.Title, err)
			}
			if created {
				res.TasksCreated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func findOrCreateUser(ctx context.Context, users repository.UserRepositoryInterface, u UserData) (*models.User, bool, error) {
	existing, err := users.GetByEmail(ctx, u.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user := &models.User{Name: u.Name, Email: u.Email}
	if u.Role != "" {
		role := models.Role(u.Role)
		user.Role = &role
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func findOrCreateTeam(tx *gorm.DB, t TeamData, owner uuid.UUID) (*models.Team, bool, error) {
	var team models.Team
	code := strings.ToUpper(t.Code)
	err := tx.Where("code = ?", code).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	team = models.Team{Name: t.Name, Description: t.Description, Code: code, CreatedBy: owner}
	if err := tx.Create(&team).Error; err != nil {
		return nil, false, err
	}
	return &team, true, nil
}

func findOrCreateTask(tx *gorm.DB, t TaskData, users map[string]uuid.UUID, now time.Time) (bool, error) {
	creator := users[t.CreatedBy]
	var existing int64
	if err := tx.Model(&models.Task{}).Where("title = ? AND created_by_user_id = ?", t.Title, creator).
		Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	assignee := users[t.AssignedTo]
	task := models.Task{
		Title:            t.Title,
		Description:      t.Description,
		Priority:         models.TaskPriority(t.Priority),
		Status:           models.TaskStatusPending,
		EstimatedTime:    t.EstimatedTime,
		AssignedToUserID: &assignee,
		CreatedByUserID:  creator,
	}
	if t.Status != "" {
		task.Status = models.TaskStatus(t.Status)
	}
	if t.DueInDays != nil {
		due := now.AddDate(0, 0, *t.DueInDays).UTC().Truncate(24 * time.Hour)
		task.DueDate = &due
	}
	for i, s := range t.Subtasks {
		status := models.SubtaskStatusPending
		if s.Status != "" {
			status = models.SubtaskStatus(s.Status)
		}
		task.Subtasks = append(task.Subtasks, models.Subtask{Title: s.Title, Status: status, Order: i})
	}
	if err := tx.Create(&task).Error; err != nil {
		return false, err
	}
	return true, nil
}
