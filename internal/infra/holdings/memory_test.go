package holdings_test

import (
	"context"
	"testing"

	"auction-hall/internal/domain/item"
	"auction-hall/internal/infra/holdings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReturn(t *testing.T) {
	payload, err := item.NewPayload("vintage_lamp", nil)
	require.NoError(t, err)

	t.Run("accepts items up to capacity", func(t *testing.T) {
		store := holdings.NewMemoryStore(2)
		account := uuid.New()

		require.NoError(t, store.Return(context.Background(), account, payload))
		require.NoError(t, store.Return(context.Background(), account, payload))
		assert.ErrorIs(t, store.Return(context.Background(), account, payload), holdings.ErrFull)
		assert.Len(t, store.Items(account), 2)
	})

	t.Run("capacity is per account", func(t *testing.T) {
		store := holdings.NewMemoryStore(1)
		first := uuid.New()
		second := uuid.New()

		require.NoError(t, store.Return(context.Background(), first, payload))
		assert.NoError(t, store.Return(context.Background(), second, payload))
	})
}
