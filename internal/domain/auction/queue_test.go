package auction_test

import (
	"testing"
	"time"

	"auction-hall/internal/domain/auction"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q, err := auction.NewQueue(3)
	require.NoError(t, err)

	first := newTestRecord(t)
	second := newTestRecord(t)
	require.NoError(t, q.Push(first))
	require.NoError(t, q.Push(second))

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, first.ID(), q.Pop().ID())
	assert.Equal(t, second.ID(), q.Pop().ID())
	assert.Nil(t, q.Pop())
}

func TestQueueCapacity(t *testing.T) {
	t.Run("rejects push beyond capacity", func(t *testing.T) {
		q, err := auction.NewQueue(1)
		require.NoError(t, err)

		require.NoError(t, q.Push(newTestRecord(t)))
		assert.ErrorIs(t, q.Push(newTestRecord(t)), auction.ErrQueueFull)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := auction.NewQueue(0)
		assert.ErrorIs(t, err, auction.ErrInvalidBounds)
	})

	t.Run("shrinking below length keeps records but closes admission", func(t *testing.T) {
		q, err := auction.NewQueue(3)
		require.NoError(t, err)
		for range 3 {
			require.NoError(t, q.Push(newTestRecord(t)))
		}

		require.NoError(t, q.SetCapacity(1))
		assert.Equal(t, 3, q.Len())
		assert.ErrorIs(t, q.Push(newTestRecord(t)), auction.ErrQueueFull)

		q.Pop()
		q.Pop()
		q.Pop()
		assert.NoError(t, q.Push(newTestRecord(t)))
	})
}

func TestQueueOnlyAcceptsPending(t *testing.T) {
	q, err := auction.NewQueue(3)
	require.NoError(t, err)

	rec := newTestRecord(t)
	require.NoError(t, rec.Start(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, q.Push(rec), auction.ErrNotPending)
}

func TestQueueRemove(t *testing.T) {
	q, err := auction.NewQueue(3)
	require.NoError(t, err)

	first := newTestRecord(t)
	middle := newTestRecord(t)
	last := newTestRecord(t)
	require.NoError(t, q.Push(first))
	require.NoError(t, q.Push(middle))
	require.NoError(t, q.Push(last))

	removed, err := q.Remove(middle.ID())
	require.NoError(t, err)
	assert.Equal(t, middle.ID(), removed.ID())

	// Order of the remaining records is preserved.
	assert.Equal(t, first.ID(), q.Pop().ID())
	assert.Equal(t, last.ID(), q.Pop().ID())

	_, err = q.Remove(uuid.New())
	assert.ErrorIs(t, err, auction.ErrNotInQueue)
}

func TestQueuePeek(t *testing.T) {
	q, err := auction.NewQueue(5)
	require.NoError(t, err)

	records := make([]*auction.Record, 3)
	for i := range records {
		records[i] = newTestRecord(t)
		require.NoError(t, q.Push(records[i]))
	}

	peeked := q.Peek(2)
	require.Len(t, peeked, 2)
	assert.Equal(t, records[0].ID(), peeked[0].ID())
	assert.Equal(t, records[1].ID(), peeked[1].ID())
	assert.Equal(t, 3, q.Len())

	assert.Len(t, q.Peek(10), 3)
	assert.Nil(t, q.Peek(0))
}

func TestQueueDrain(t *testing.T) {
	q, err := auction.NewQueue(3)
	require.NoError(t, err)

	first := newTestRecord(t)
	second := newTestRecord(t)
	require.NoError(t, q.Push(first))
	require.NoError(t, q.Push(second))

	drained := q.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, first.ID(), drained[0].ID())
	assert.Equal(t, second.ID(), drained[1].ID())
	assert.Equal(t, 0, q.Len())
}
