package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todo-labs/todo-backend/internal/items/domain"
	"github.com/todo-labs/todo-backend/internal/items/repository"
)

func newTestService() *ItemService {
	return NewItemService(repository.NewMemoryStore())
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("creates item with generated id and timestamps", func(t *testing.T) {
		item, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "buy milk"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, "buy milk", item.Text)
		assert.False(t, item.IsDone)
		assert.False(t, item.CreatedAt.IsZero())
		assert.Nil(t, item.UpdatedAt)
	})

	t.Run("create then get round-trips", func(t *testing.T) {
		created, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "call mom", IsDone: true})
		require.NoError(t, err)

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Text, got.Text)
		assert.Equal(t, created.IsDone, got.IsDone)
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[uuid.UUID]bool)
		for i := 0; i < 50; i++ {
			item, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "same text"})
			require.NoError(t, err)
			assert.False(t, seen[item.ID])
			seen[item.ID] = true
		}
	})

	t.Run("text bounds", func(t *testing.T) {
		_, err := svc.Create(ctx, &domain.CreateItemRequest{Text: ""})
		assert.True(t, domain.IsValidation(err))

		_, err = svc.Create(ctx, &domain.CreateItemRequest{Text: strings.Repeat("a", 500)})
		assert.NoError(t, err)

		_, err = svc.Create(ctx, &domain.CreateItemRequest{Text: strings.Repeat("a", 501)})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		svc := newTestService()
		created, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "original"})
		require.NoError(t, err)

		done := true
		updated, err := svc.Update(ctx, created.ID, &domain.UpdateItemRequest{IsDone: &done})
		require.NoError(t, err)
		assert.Equal(t, "original", updated.Text)
		assert.True(t, updated.IsDone)
		require.NotNil(t, updated.UpdatedAt)
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("text-only update keeps completion flag", func(t *testing.T) {
		svc := newTestService()
		created, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "original", IsDone: true})
		require.NoError(t, err)

		text := "renamed"
		updated, err := svc.Update(ctx, created.ID, &domain.UpdateItemRequest{Text: &text})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Text)
		assert.True(t, updated.IsDone)
	})

	t.Run("empty update does not stamp updated_at", func(t *testing.T) {
		svc := newTestService()
		created, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "untouched"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, &domain.UpdateItemRequest{})
		require.NoError(t, err)
		assert.Nil(t, updated.UpdatedAt)
	})

	t.Run("rejected update leaves item unchanged", func(t *testing.T) {
		svc := newTestService()
		created, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "keep me"})
		require.NoError(t, err)

		bad := strings.Repeat("a", 501)
		done := true
		_, err = svc.Update(ctx, created.ID, &domain.UpdateItemRequest{Text: &bad, IsDone: &done})
		assert.True(t, domain.IsValidation(err))

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "keep me", got.Text)
		assert.False(t, got.IsDone)
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newTestService()
		done := true
		_, err := svc.Update(ctx, uuid.New(), &domain.UpdateItemRequest{IsDone: &done})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "short-lived"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrItemNotFound)
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, text := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, &domain.CreateItemRequest{Text: text})
		require.NoError(t, err)
		time.Sleep(time.Millisecond) // distinct created_at timestamps
	}

	got, err := svc.List(ctx, domain.ListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "C", got[0].Text)
	assert.Equal(t, "B", got[1].Text)
	assert.Equal(t, "A", got[2].Text)
}

func TestItemService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc := newTestService()
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalItems)
		assert.Zero(t, stats.CompletedItems)
		assert.Zero(t, stats.PendingItems)
		assert.Zero(t, stats.CompletionRate)
	})

	t.Run("two of five done", func(t *testing.T) {
		svc := newTestService()
		for i := 0; i < 5; i++ {
			_, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "item", IsDone: i < 2})
			require.NoError(t, err)
		}

		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, stats.TotalItems)
		assert.Equal(t, 2, stats.CompletedItems)
		assert.Equal(t, 3, stats.PendingItems)
		assert.InDelta(t, 40.0, stats.CompletionRate, 1e-9)
	})

	t.Run("rate is rounded to two decimals", func(t *testing.T) {
		svc := newTestService()
		for i := 0; i < 3; i++ {
			_, err := svc.Create(ctx, &domain.CreateItemRequest{Text: "item", IsDone: i == 0})
			require.NoError(t, err)
		}

		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 33.33, stats.CompletionRate, 1e-9)
	})
}
