package auction

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrQueueFull     = errors.New("auction queue is full")
	ErrNotInQueue    = errors.New("record not found in queue")
	ErrNotPending    = errors.New("only pending records can be queued")
	ErrInvalidBounds = errors.New("queue capacity must be positive")
)

// Queue is the bounded FIFO of pending records. It is owned exclusively by
// the coordinator and never accessed concurrently.
type Queue struct {
	records  []*Record
	capacity int
}

func NewQueue(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, ErrInvalidBounds
	}
	return &Queue{capacity: capacity}, nil
}

func (q *Queue) Push(r *Record) error {
	if r.Status() != StatusPending {
		return ErrNotPending
	}
	if len(q.records) >= q.capacity {
		return ErrQueueFull
	}
	q.records = append(q.records, r)
	return nil
}

// Pop removes and returns the head, or nil when the queue is empty.
func (q *Queue) Pop() *Record {
	if len(q.records) == 0 {
		return nil
	}
	head := q.records[0]
	q.records = q.records[1:]
	return head
}

// Remove takes a record out of an arbitrary position (admin cancellation).
func (q *Queue) Remove(id uuid.UUID) (*Record, error) {
	for i, r := range q.records {
		if r.ID() == id {
			q.records = append(q.records[:i], q.records[i+1:]...)
			return r, nil
		}
	}
	return nil, ErrNotInQueue
}

func (q *Queue) Len() int {
	return len(q.records)
}

func (q *Queue) Capacity() int {
	return q.capacity
}

// SetCapacity applies a reloaded bound. Shrinking below the current length
// does not evict records; admission simply stays closed until it drains.
func (q *Queue) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidBounds
	}
	q.capacity = capacity
	return nil
}

// Peek returns up to limit records from the head without removing them.
func (q *Queue) Peek(limit int) []*Record {
	if limit <= 0 || len(q.records) == 0 {
		return nil
	}
	if limit > len(q.records) {
		limit = len(q.records)
	}
	out := make([]*Record, limit)
	copy(out, q.records[:limit])
	return out
}

// Drain empties the queue, returning the records in arrival order.
func (q *Queue) Drain() []*Record {
	out := q.records
	q.records = nil
	return out
}
