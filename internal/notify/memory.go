package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryOutbox keeps notifications in process. Used when no redis is configured
// and in tests; contents are lost on restart.
type MemoryOutbox struct {
	mu    sync.Mutex
	queue map[uuid.UUID][]Notification
}

// NewMemoryOutbox creates an empty in-memory outbox
func NewMemoryOutbox() *MemoryOutbox {
	return &MemoryOutbox{queue: make(map[uuid.UUID][]Notification)}
}

// Push appends a notification for the user
func (o *MemoryOutbox) Push(_ context.Context, userID uuid.UUID, n Notification) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.queue[userID] = append(o.queue[userID], n)
	return nil
}

// Drain returns and forgets the user's notifications in push order
func (o *MemoryOutbox) Drain(_ context.Context, userID uuid.UUID) ([]Notification, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := o.queue[userID]
	delete(o.queue, userID)
	if out == nil {
		out = []Notification{}
	}
	return out, nil
}
