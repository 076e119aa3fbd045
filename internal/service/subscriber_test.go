package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/internal/storage"
)

func newSubscriberService(store SubscriberStore) *SubscriberService {
	return NewSubscriberService(NewSubscriberServiceParams{
		Store: store,
		Log:   zap.NewNop().Sugar(),
	})
}

func TestSubscribe(t *testing.T) {
	s := newSubscriberService(storage.NewMemoryStore())

	subscriber, already, err := s.Subscribe(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, "ana@example.com", subscriber.Email)
	assert.NotEmpty(t, subscriber.ID)
	assert.NotEmpty(t, subscriber.CreatedAt)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	s := newSubscriberService(storage.NewMemoryStore())
	ctx := context.Background()

	for _, email := range []string{"", "   ", "no-arroba"} {
		_, _, err := s.Subscribe(ctx, email)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	}

	entries, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubscribeTwiceIsBenign(t *testing.T) {
	s := newSubscriberService(storage.NewMemoryStore())
	ctx := context.Background()

	_, already, err := s.Subscribe(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.False(t, already)

	_, already, err = s.Subscribe(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, already)

	entries, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestListSubscribersNewestFirst(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	// Seeded directly: CreatedAt has second resolution, calling Subscribe
	// in a loop would not produce distinct timestamps.
	rows := []model.Subscriber{
		{ID: "1", Email: "a@example.com", CreatedAt: "2025-02-01T10:00:00Z"},
		{ID: "2", Email: "b@example.com", CreatedAt: "2025-04-01T10:00:00Z"},
		{ID: "3", Email: "c@example.com", CreatedAt: "2025-03-01T10:00:00Z"},
	}
	for _, row := range rows {
		require.NoError(t, store.InsertSubscriber(ctx, row))
	}

	s := newSubscriberService(store)
	entries, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "b@example.com", entries[0].Email)
	assert.Equal(t, "c@example.com", entries[1].Email)
	assert.Equal(t, "a@example.com", entries[2].Email)
}

func TestUnsubscribe(t *testing.T) {
	s := newSubscriberService(storage.NewMemoryStore())
	ctx := context.Background()

	subscriber, _, err := s.Subscribe(ctx, "ana@example.com")
	require.NoError(t, err)

	email, err := s.Unsubscribe(ctx, subscriber.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)

	entries, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnsubscribeUnknownToken(t *testing.T) {
	s := newSubscriberService(storage.NewMemoryStore())
	ctx := context.Background()

	_, _, err := s.Subscribe(ctx, "ana@example.com")
	require.NoError(t, err)

	_, err = s.Unsubscribe(ctx, "nope")
	assert.ErrorIs(t, err, ErrSubscriberNotFound)

	entries, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
