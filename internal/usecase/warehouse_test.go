package usecase_test

import (
	"context"
	"testing"
	"time"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/domain/item"
	"auction-hall/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T, store *memStore, status auction.Status, seller uuid.UUID, buyer *uuid.UUID) int64 {
	t.Helper()
	payload, err := item.NewPayload("vintage_lamp", nil)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := auction.Snapshot{
		ID:              uuid.New(),
		SellerID:        seller,
		SellerName:      "seller",
		Item:            payload,
		MinBid:          decimal.NewFromInt(100),
		CurrentBid:      decimal.NewFromInt(115),
		CurrentBidderID: buyer,
		StartTime:       now,
		EndTime:         now.Add(5 * time.Minute),
	}
	id, err := store.InsertHistoryEntry(context.Background(), snap, status)
	require.NoError(t, err)
	return id
}

func TestWarehouseCollect(t *testing.T) {
	seller := uuid.New()
	buyer := uuid.New()

	t.Run("buyer collects a sold item", func(t *testing.T) {
		store := &memStore{}
		holdings := newStubHoldings()
		w := usecase.NewWarehouseUseCase(store, holdings)
		id := seedHistory(t, store, auction.StatusSold, seller, &buyer)

		require.NoError(t, w.Collect(context.Background(), id, buyer))

		require.Len(t, holdings.items[buyer], 1)
		assert.Equal(t, auction.StatusCollected, store.history[0].Status)
	})

	t.Run("seller collects an expired item", func(t *testing.T) {
		store := &memStore{}
		holdings := newStubHoldings()
		w := usecase.NewWarehouseUseCase(store, holdings)
		id := seedHistory(t, store, auction.StatusExpired, seller, nil)

		require.NoError(t, w.Collect(context.Background(), id, seller))
		assert.Len(t, holdings.items[seller], 1)
	})

	t.Run("seller collects a cancelled item", func(t *testing.T) {
		store := &memStore{}
		holdings := newStubHoldings()
		w := usecase.NewWarehouseUseCase(store, holdings)
		id := seedHistory(t, store, auction.StatusCancelled, seller, nil)

		require.NoError(t, w.Collect(context.Background(), id, seller))
		assert.Len(t, holdings.items[seller], 1)
	})

	t.Run("seller cannot collect a sold item", func(t *testing.T) {
		store := &memStore{}
		holdings := newStubHoldings()
		w := usecase.NewWarehouseUseCase(store, holdings)
		id := seedHistory(t, store, auction.StatusSold, seller, &buyer)

		assert.ErrorIs(t, w.Collect(context.Background(), id, seller), usecase.ErrNotOwner)
		assert.Empty(t, holdings.items[seller])
	})

	t.Run("unknown entry", func(t *testing.T) {
		store := &memStore{}
		w := usecase.NewWarehouseUseCase(store, newStubHoldings())
		assert.ErrorIs(t, w.Collect(context.Background(), 99, buyer), usecase.ErrHistoryNotFound)
	})

	t.Run("already collected", func(t *testing.T) {
		store := &memStore{}
		holdings := newStubHoldings()
		w := usecase.NewWarehouseUseCase(store, holdings)
		id := seedHistory(t, store, auction.StatusSold, seller, &buyer)

		require.NoError(t, w.Collect(context.Background(), id, buyer))
		assert.ErrorIs(t, w.Collect(context.Background(), id, buyer), usecase.ErrAlreadyCollected)
		assert.Len(t, holdings.items[buyer], 1)
	})

	t.Run("full holding area leaves the entry uncollected", func(t *testing.T) {
		store := &memStore{}
		holdings := newStubHoldings()
		holdings.full = true
		w := usecase.NewWarehouseUseCase(store, holdings)
		id := seedHistory(t, store, auction.StatusSold, seller, &buyer)

		assert.ErrorIs(t, w.Collect(context.Background(), id, buyer), usecase.ErrHoldingFull)
		assert.Equal(t, auction.StatusSold, store.history[0].Status, "entry stays collectable")
	})
}

func TestWarehouseListUncollected(t *testing.T) {
	seller := uuid.New()
	buyer := uuid.New()

	store := &memStore{}
	w := usecase.NewWarehouseUseCase(store, newStubHoldings())

	soldID := seedHistory(t, store, auction.StatusSold, seller, &buyer)
	seedHistory(t, store, auction.StatusExpired, seller, nil)
	seedHistory(t, store, auction.StatusCancelled, seller, nil)

	t.Run("buyer sees only their purchases", func(t *testing.T) {
		entries, err := w.ListUncollected(context.Background(), buyer)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, soldID, entries[0].ID)
	})

	t.Run("seller sees expired and cancelled lots", func(t *testing.T) {
		entries, err := w.ListUncollected(context.Background(), seller)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("collected entries drop off the list", func(t *testing.T) {
		require.NoError(t, w.Collect(context.Background(), soldID, buyer))
		entries, err := w.ListUncollected(context.Background(), buyer)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
