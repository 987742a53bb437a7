package services_test

import (
	"sync"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(t *testing.T, lines ...any) []order.Item {
	t.Helper()

	if len(lines) == 0 {
		lines = []any{"Pizza", 2, "Salad", 1}
	}
	result := make([]order.Item, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		item, err := order.NewItem(lines[i].(string), lines[i+1].(int))
		require.NoError(t, err)
		result = append(result, item)
	}
	return result
}

func TestOrderRegistry_Submit(t *testing.T) {
	placedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	registry := services.NewOrderRegistry(func() time.Time { return placedAt })

	t.Run("should allocate sequential ids starting at 1", func(t *testing.T) {
		for want := order.ID(1); want <= 3; want++ {
			o, err := registry.Submit(items(t), int(want))

			require.NoError(t, err)
			assert.Equal(t, want, o.ID())
			assert.Equal(t, order.Pending, o.Status())
			assert.Equal(t, placedAt, o.PlacedAt())
		}
		assert.Equal(t, 3, registry.Len())
	})

	t.Run("should not consume an id for an invalid order", func(t *testing.T) {
		_, err := registry.Submit(nil, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		o, err := registry.Submit(items(t), 1)
		require.NoError(t, err)
		assert.Equal(t, order.ID(4), o.ID())
	})
}

func TestOrderRegistry_Get(t *testing.T) {
	registry := services.NewOrderRegistry(nil)
	o, err := registry.Submit(items(t), 5)
	require.NoError(t, err)

	t.Run("should return a detached snapshot", func(t *testing.T) {
		snapshot, err := registry.Get(o.ID())
		require.NoError(t, err)

		require.NoError(t, registry.Update(o.ID(), (*order.Order).Claim))

		assert.Equal(t, order.Pending, snapshot.Status)
		current, err := registry.Get(o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Claimed, current.Status)
		assert.Equal(t, "5 min", current.EstimatedTime())
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		_, err := registry.Get(99)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "object not found: 99", err.Error())
	})
}

func TestOrderRegistry_Update(t *testing.T) {
	registry := services.NewOrderRegistry(nil)

	err := registry.Update(1, (*order.Order).Claim)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRegistry_ConcurrentSubmit(t *testing.T) {
	registry := services.NewOrderRegistry(nil)
	const workers = 50

	ids := make(chan order.ID, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := registry.Submit(items(t), 1)
			if assert.NoError(t, err) {
				ids <- o.ID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[order.ID]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "id %s handed out twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	for id := order.ID(1); id <= workers; id++ {
		assert.True(t, seen[id], "id %s missing", id)
	}
}
