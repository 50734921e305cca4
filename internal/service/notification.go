package service

import (
	"context"
	"fmt"

	"task-manager-backend/internal/notify"
	"task-manager-backend/internal/policy"
)

// NotificationService hands a user the messages queued for them
type NotificationService struct {
	outbox notify.Outbox
}

// NewNotificationService creates a new notification service
func NewNotificationService(outbox notify.Outbox) *NotificationService {
	return &NotificationService{outbox: outbox}
}

// Drain returns and removes the actor's pending notifications
func (s *NotificationService) Drain(ctx context.Context, actor policy.Actor) ([]notify.Notification, error) {
	items, err := s.outbox.Drain(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to drain notifications: %w", err)
	}
	if items == nil {
		items = []notify.Notification{}
	}
	return items, nil
}
