package auction

import (
	"errors"
	"time"

	"auction-hall/internal/domain/item"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotActive   = errors.New("auction record is not active")
	ErrBidBelowMinimum   = errors.New("bid below minimum acceptable amount")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotStarted        = errors.New("auction record has not started")
	ErrEmptySeller       = errors.New("seller name cannot be empty")
	ErrNonPositiveMinBid = errors.New("minimum bid must be positive")
	ErrNegativeStep      = errors.New("step value cannot be negative")
	ErrInvalidDuration   = errors.New("duration must be positive")
)

// smallestUnit is the minimum raise when stepped increments are disabled.
var smallestUnit = decimal.New(1, -2)

// Record is an auction lot. Identity and item fields are immutable after
// creation; bid and timing fields mutate only through Start/ApplyBid/Finalize.
type Record struct {
	id         uuid.UUID
	sellerID   uuid.UUID
	sellerName string
	item       item.Payload

	minBid    decimal.Decimal
	stepValue decimal.Decimal
	duration  time.Duration

	currentBid        decimal.Decimal
	currentBidderID   *uuid.UUID
	currentBidderName string

	startTime time.Time
	endTime   time.Time
	status    Status
}

func NewRecord(
	sellerID uuid.UUID,
	sellerName string,
	payload item.Payload,
	minBid decimal.Decimal,
	stepValue decimal.Decimal,
	duration time.Duration,
) (*Record, error) {
	if sellerName == "" {
		return nil, ErrEmptySeller
	}
	if !minBid.IsPositive() {
		return nil, ErrNonPositiveMinBid
	}
	if stepValue.IsNegative() {
		return nil, ErrNegativeStep
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Record{
		id:         uuid.New(),
		sellerID:   sellerID,
		sellerName: sellerName,
		item:       payload.Clone(),
		minBid:     minBid,
		stepValue:  stepValue,
		duration:   duration,
		currentBid: minBid,
		status:     StatusPending,
	}, nil
}

// ReconstructRecord rebuilds a record loaded from persistence.
func ReconstructRecord(
	id, sellerID uuid.UUID,
	sellerName string,
	payload item.Payload,
	minBid, stepValue decimal.Decimal,
	duration time.Duration,
) *Record {
	return &Record{
		id:         id,
		sellerID:   sellerID,
		sellerName: sellerName,
		item:       payload.Clone(),
		minBid:     minBid,
		stepValue:  stepValue,
		duration:   duration,
		currentBid: minBid,
		status:     StatusPending,
	}
}

// Start promotes the record to the active slot, fixing startTime and endTime
// together.
func (r *Record) Start(now time.Time) error {
	if !canTransition(r.status, StatusActive) {
		return ErrInvalidTransition
	}
	r.status = StatusActive
	r.startTime = now
	r.endTime = now.Add(r.duration)
	return nil
}

// MinimumNextBid is currentBid + stepValue when stepped increments are
// enabled, otherwise currentBid plus the smallest currency unit.
func (r *Record) MinimumNextBid(stepEnabled bool) decimal.Decimal {
	if stepEnabled {
		return r.currentBid.Add(r.stepValue)
	}
	return r.currentBid.Add(smallestUnit)
}

// ApplyBid commits a validated bid. currentBid, currentBidderID and
// currentBidderName change together or not at all.
func (r *Record) ApplyBid(bidderID uuid.UUID, bidderName string, amount decimal.Decimal, stepEnabled bool) error {
	if r.status != StatusActive {
		return ErrRecordNotActive
	}
	if amount.LessThan(r.MinimumNextBid(stepEnabled)) {
		return ErrBidBelowMinimum
	}

	id := bidderID
	r.currentBid = amount
	r.currentBidderID = &id
	r.currentBidderName = bidderName
	return nil
}

// Finalize moves the record to exactly one terminal outcome. A record never
// re-enters Active.
func (r *Record) Finalize(outcome Status) error {
	if outcome != StatusSold && outcome != StatusExpired && outcome != StatusCancelled {
		return ErrInvalidTransition
	}
	if !canTransition(r.status, outcome) {
		return ErrInvalidTransition
	}
	r.status = outcome
	return nil
}

func (r *Record) HasExpired(now time.Time) bool {
	if r.endTime.IsZero() {
		return false
	}
	return !now.Before(r.endTime)
}

func (r *Record) RemainingTime(now time.Time) time.Duration {
	if r.endTime.IsZero() {
		return 0
	}
	remaining := r.endTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (r *Record) HasBidder() bool {
	return r.currentBidderID != nil
}

func (r *Record) ID() uuid.UUID               { return r.id }
func (r *Record) SellerID() uuid.UUID         { return r.sellerID }
func (r *Record) SellerName() string          { return r.sellerName }
func (r *Record) Item() item.Payload          { return r.item }
func (r *Record) MinBid() decimal.Decimal     { return r.minBid }
func (r *Record) StepValue() decimal.Decimal  { return r.stepValue }
func (r *Record) Duration() time.Duration     { return r.duration }
func (r *Record) CurrentBid() decimal.Decimal { return r.currentBid }
func (r *Record) CurrentBidderName() string   { return r.currentBidderName }
func (r *Record) StartTime() time.Time        { return r.startTime }
func (r *Record) EndTime() time.Time          { return r.endTime }
func (r *Record) Status() Status              { return r.status }

func (r *Record) CurrentBidderID() *uuid.UUID {
	if r.currentBidderID == nil {
		return nil
	}
	id := *r.currentBidderID
	return &id
}

// Snapshot is a read-only copy handed to callers, notifiers and stores.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		ID:                r.id,
		SellerID:          r.sellerID,
		SellerName:        r.sellerName,
		Item:              r.item.Clone(),
		MinBid:            r.minBid,
		StepValue:         r.stepValue,
		Duration:          r.duration,
		CurrentBid:        r.currentBid,
		CurrentBidderID:   r.CurrentBidderID(),
		CurrentBidderName: r.currentBidderName,
		StartTime:         r.startTime,
		EndTime:           r.endTime,
		Status:            r.status,
	}
}
