package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryOutboxDrainIsConsumeOnce(t *testing.T) {
	ctx := context.Background()
	outbox := NewMemoryOutbox()
	user := uuid.New()
	other := uuid.New()

	require.NoError(t, outbox.Push(ctx, user, New(KindTeamCreated, LevelSuccess, "first", map[string]string{"code": "ABCD1234"})))
	require.NoError(t, outbox.Push(ctx, user, New(KindMembershipApproved, LevelSuccess, "second", nil)))
	require.NoError(t, outbox.Push(ctx, other, New(KindMembershipRejected, LevelWarning, "other", nil)))

	got, err := outbox.Drain(ctx, user)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, "ABCD1234", got[0].Data["code"])
	assert.Equal(t, "second", got[1].Message)

	again, err := outbox.Drain(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.NotNil(t, again)

	others, err := outbox.Drain(ctx, other)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestMemoryOutboxConcurrentPush(t *testing.T) {
	ctx := context.Background()
	outbox := NewMemoryOutbox()
	user := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = outbox.Push(ctx, user, New(KindTeamCreated, LevelInfo, "x", nil))
		}()
	}
	wg.Wait()

	got, err := outbox.Drain(ctx, user)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
