package usecase

import (
	"context"
	"time"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/domain/item"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event keys carried by Notifier broadcasts. Consumers (websocket hub, NATS,
// log sink) treat these as opaque routing keys.
const (
	EventAuctionStart     = "auction.start"
	EventAuctionSold      = "auction.sold"
	EventAuctionExpired   = "auction.expired"
	EventAuctionCancelled = "auction.cancelled"
	EventForceStart       = "auction.force_start"
	EventHalfTime         = "auction.half_time"
	EventQuarterTime      = "auction.quarter_time"
	EventTenthTime        = "auction.tenth_time"
	EventCountdownTen     = "auction.countdown.ten"
	EventCountdownThree   = "auction.countdown.three"
	EventCountdownTwo     = "auction.countdown.two"
	EventCountdownOne     = "auction.countdown.one"
	EventCountdownEnd     = "auction.countdown.end"
	EventNewBid           = "bids.new_bid"
	EventOutbid           = "bids.outbid"
	EventRefunded         = "bids.refunded"
	EventHoldingFull      = "auction.holding_full"
	EventStateRefresh     = "auction.refresh"
)

// Ledger moves funds between the house and bidder/seller accounts. Calls are
// synchronous and fast; failures are reported as false, never panics.
// A disabled economy fails HasBalance/Withdraw and accepts Deposit as a no-op.
type Ledger interface {
	HasBalance(ctx context.Context, account uuid.UUID, amount decimal.Decimal) bool
	Withdraw(ctx context.Context, account uuid.UUID, amount decimal.Decimal) bool
	Deposit(ctx context.Context, account uuid.UUID, amount decimal.Decimal) bool
	Format(amount decimal.Decimal) string
}

// HistoryEntry is a persisted auction outcome. Rows whose status is not yet
// Collected represent items waiting in the warehouse.
type HistoryEntry struct {
	ID         int64
	Item       item.Payload
	SellerID   uuid.UUID
	SellerName string
	BuyerID    *uuid.UUID
	BuyerName  string
	StartTime  time.Time
	EndTime    time.Time
	MinBid     decimal.Decimal
	FinalBid   decimal.Decimal
	Status     auction.Status
}

// PendingRecord is a queue row loaded at startup, in arrival order.
type PendingRecord struct {
	ID         uuid.UUID
	SellerID   uuid.UUID
	SellerName string
	Item       item.Payload
	MinBid     decimal.Decimal
	StepValue  decimal.Decimal
}

type PersistenceStore interface {
	InsertPendingRecord(ctx context.Context, snap auction.Snapshot) error
	DeletePendingRecord(ctx context.Context, id uuid.UUID) error
	ClearPendingRecords(ctx context.Context) error
	LoadPendingRecords(ctx context.Context) ([]PendingRecord, error)
	InsertHistoryEntry(ctx context.Context, snap auction.Snapshot, outcome auction.Status) (int64, error)
	MarkHistoryCollected(ctx context.Context, historyID int64) error
	FindHistoryEntry(ctx context.Context, historyID int64) (*HistoryEntry, error)
	ListUncollected(ctx context.Context, account uuid.UUID) ([]HistoryEntry, error)
}

// Notifier delivery is fire-and-forget; no acknowledgement, no ordering
// guarantee between events.
type Notifier interface {
	Broadcast(event string, fields map[string]string)
	SendToAccount(account uuid.UUID, event string, fields map[string]string)
}

type BanPolicy interface {
	IsBanned(payload item.Payload) bool
}

// HoldingStore is the seller-side holding area items are returned to on
// cancellation. Return fails when the holding area cannot accept the item.
type HoldingStore interface {
	Return(ctx context.Context, account uuid.UUID, payload item.Payload) error
}

// SnapshotStore mirrors the live active-auction state for external readers.
// Writes are best-effort; the in-memory record stays authoritative.
type SnapshotStore interface {
	SaveActive(ctx context.Context, snap auction.Snapshot) error
	ClearActive(ctx context.Context) error
}

// TimerHandle cancels a scheduled callback. Cancel is idempotent; cancelling
// an already-fired or already-cancelled timer is a no-op.
type TimerHandle interface {
	Cancel()
}

// Scheduler fires callbacks on their own goroutine; callbacks re-enter the
// coordinator through its critical section, never mutating state directly.
type Scheduler interface {
	Once(d time.Duration, fn func()) TimerHandle
	Every(interval time.Duration, fn func()) TimerHandle
}

// Settings are the auction tunables re-read on reload.
type Settings struct {
	Duration         time.Duration
	MaxQueueSize     int
	StepEnabled      bool
	PublicationFee   decimal.Decimal
	BidFeePercent    float64
	CountdownEnabled bool
	SelfHealInterval time.Duration
}

type SettingsSource interface {
	Load() Settings
}
