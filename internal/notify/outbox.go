// Package notify holds one-shot messages for a user until their client
// collects them, e.g. the join code after creating a team.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for the client
type Kind string

const (
	KindTeamCreated        Kind = "team_created"
	KindMembershipApproved Kind = "membership_approved"
	KindMembershipRejected Kind = "membership_rejected"
)

// Level is the toast style the client should use
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notification is a single message waiting for a user
type Notification struct {
	Kind      Kind              `json:"kind"`
	Level     Level             `json:"level"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Outbox queues notifications per user. Drain is consume-once: it returns
// everything queued for the user and removes it.
type Outbox interface {
	Push(ctx context.Context, userID uuid.UUID, n Notification) error
	Drain(ctx context.Context, userID uuid.UUID) ([]Notification, error)
}

// New builds a notification stamped with the current time
func New(kind Kind, level Level, message string, data map[string]string) Notification {
	return Notification{
		Kind:      kind,
		Level:     level,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}
