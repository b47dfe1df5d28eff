package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/domain/item"
	"auction-hall/internal/pkg/clock"
	"auction-hall/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrItemBanned        = errs.New("item is banned from auction")
	ErrQueueFull         = errs.New("auction queue is full")
	ErrPublicationFee    = errs.New("insufficient funds for publication fee")
	ErrAuctionNotActive  = errs.New("no active auction")
	ErrBidTooLow         = errs.New("bid too low")
	ErrInsufficientFunds = errs.New("insufficient funds")
	ErrWithdrawalFailed  = errs.New("withdrawal failed")
	ErrInvalidRecord     = errs.New("invalid auction record")
	ErrPersistenceFailed = errs.New("persistence failed")
	ErrRecordNotFound    = errs.New("auction record not found")
	ErrCoordinatorClosed = errs.New("auction coordinator is shut down")
)

type EnqueueParams struct {
	SellerID   uuid.UUID
	SellerName string
	Item       item.Payload
	MinBid     decimal.Decimal
	StepValue  decimal.Decimal
}

// AuctionCommands is the surface exposed to callers (HTTP handlers, admin
// tools). Every operation returns a definite success or failure.
type AuctionCommands interface {
	Enqueue(ctx context.Context, p EnqueueParams) (uuid.UUID, error)
	PlaceBid(ctx context.Context, bidder Bidder, amount decimal.Decimal) error
	GetActive() *auction.Snapshot
	PreviewQueue(limit int) []auction.Snapshot
	CancelActive(ctx context.Context) error
	CancelQueued(ctx context.Context, id uuid.UUID) error
	ForceStart(ctx context.Context, p EnqueueParams) (uuid.UUID, error)
	Reload(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// recordTimers holds every outstanding callback for the active record.
// cancel() is safe to call any number of times.
type recordTimers struct {
	expiry      TimerHandle
	checkpoints []TimerHandle
	countdown   TimerHandle
}

func (t *recordTimers) cancel() {
	if t.expiry != nil {
		t.expiry.Cancel()
		t.expiry = nil
	}
	for _, h := range t.checkpoints {
		h.Cancel()
	}
	t.checkpoints = nil
	if t.countdown != nil {
		t.countdown.Cancel()
		t.countdown = nil
	}
}

// Coordinator owns the active slot and the pending queue. Every caller
// operation and every timer callback runs under the single mutex, so bids,
// expiries and admin overrides are totally ordered and can never interleave
// partially.
type Coordinator struct {
	mu sync.Mutex

	active *auction.Record
	queue  *auction.Queue
	closed bool

	settings Settings
	source   SettingsSource

	bids      *bidProcessor
	ledger    Ledger
	store     PersistenceStore
	notifier  Notifier
	bans      BanPolicy
	holdings  HoldingStore
	snapshots SnapshotStore
	sched     Scheduler
	clock     clock.Clock
	logger    *slog.Logger

	timers   recordTimers
	selfHeal TimerHandle
}

func NewCoordinator(
	source SettingsSource,
	ledger Ledger,
	store PersistenceStore,
	notifier Notifier,
	bans BanPolicy,
	holdings HoldingStore,
	snapshots SnapshotStore,
	sched Scheduler,
	clk clock.Clock,
	logger *slog.Logger,
) (*Coordinator, error) {
	settings := source.Load()
	queue, err := auction.NewQueue(settings.MaxQueueSize)
	if err != nil {
		return nil, errs.Wrap(err, "invalid queue capacity")
	}

	return &Coordinator{
		queue:     queue,
		settings:  settings,
		source:    source,
		bids:      newBidProcessor(ledger, logger),
		ledger:    ledger,
		store:     store,
		notifier:  notifier,
		bans:      bans,
		holdings:  holdings,
		snapshots: snapshots,
		sched:     sched,
		clock:     clk,
		logger:    logger,
	}, nil
}

// Start loads persisted pending records back into the queue, promotes the
// head if the slot is idle, and arms the periodic self-heal check.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}

	rows, err := c.store.LoadPendingRecords(ctx)
	if err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	for _, row := range rows {
		rec := auction.ReconstructRecord(
			row.ID, row.SellerID, row.SellerName, row.Item,
			row.MinBid, row.StepValue, c.settings.Duration,
		)
		if pushErr := c.queue.Push(rec); pushErr != nil {
			c.logger.Warn("dropping persisted record beyond queue capacity", "id", row.ID)
		}
	}

	if c.active == nil && c.queue.Len() > 0 {
		c.advanceLocked(ctx)
	}

	c.armSelfHealLocked()
	return nil
}

func (c *Coordinator) Enqueue(ctx context.Context, p EnqueueParams) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return uuid.Nil, ErrCoordinatorClosed
	}
	if c.bans.IsBanned(p.Item) {
		return uuid.Nil, ErrItemBanned
	}
	if c.queue.Len() >= c.queue.Capacity() {
		return uuid.Nil, ErrQueueFull
	}

	// The publication fee is charged before admission and is never refunded,
	// whatever the auction's eventual outcome.
	if c.settings.PublicationFee.IsPositive() {
		if !c.ledger.Withdraw(ctx, p.SellerID, c.settings.PublicationFee) {
			return uuid.Nil, ErrPublicationFee
		}
	}

	rec, err := auction.NewRecord(p.SellerID, p.SellerName, p.Item, p.MinBid, p.StepValue, c.settings.Duration)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRecord)
	}
	if err := c.queue.Push(rec); err != nil {
		return uuid.Nil, ErrQueueFull
	}

	if err := c.store.InsertPendingRecord(ctx, rec.Snapshot()); err != nil {
		// Roll the in-memory enqueue back; the fee stays charged.
		if _, removeErr := c.queue.Remove(rec.ID()); removeErr != nil {
			c.logger.Error("failed to roll back enqueue", "id", rec.ID(), "error", removeErr)
		}
		return uuid.Nil, errs.Mark(err, ErrPersistenceFailed)
	}

	if c.active == nil {
		c.advanceLocked(ctx)
	} else {
		c.publishStateLocked(ctx)
	}
	return rec.ID(), nil
}

func (c *Coordinator) PlaceBid(ctx context.Context, bidder Bidder, amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}
	if c.active == nil {
		return ErrAuctionNotActive
	}

	result, err := c.bids.Place(ctx, c.active, bidder, amount, c.settings.StepEnabled)
	if err != nil {
		return err
	}

	if result.Refunded {
		c.notifier.SendToAccount(*result.PreviousBidderID, EventOutbid, map[string]string{
			"bid": c.ledger.Format(result.PreviousBid),
		})
	}
	c.notifier.Broadcast(EventNewBid, map[string]string{
		"bidder": bidder.Name,
		"bid":    c.ledger.Format(amount),
		"item":   c.active.Item().Kind(),
	})
	c.publishStateLocked(ctx)
	return nil
}

func (c *Coordinator) GetActive() *auction.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return nil
	}
	snap := c.active.Snapshot()
	return &snap
}

// PreviewQueue returns the active record (position 0) followed by up to
// limit-1 pending records in arrival order.
func (c *Coordinator) PreviewQueue(limit int) []auction.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit <= 0 {
		return nil
	}
	out := make([]auction.Snapshot, 0, limit)
	if c.active != nil {
		out = append(out, c.active.Snapshot())
	}
	for _, rec := range c.queue.Peek(limit - len(out)) {
		out = append(out, rec.Snapshot())
	}
	return out
}

func (c *Coordinator) CancelActive(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}
	if c.active == nil {
		return ErrAuctionNotActive
	}

	c.refundBidderLocked(ctx, c.active)
	c.finalizeLocked(ctx, auction.StatusCancelled)
	return nil
}

func (c *Coordinator) CancelQueued(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}
	rec, err := c.queue.Remove(id)
	if err != nil {
		return ErrRecordNotFound
	}
	if err := c.store.DeletePendingRecord(ctx, id); err != nil {
		c.logger.Error("failed to delete pending record", "id", id, "error", err)
	}
	c.cancelRecordLocked(ctx, rec)
	c.publishStateLocked(ctx)
	return nil
}

// ForceStart cancels whatever occupies the slot and installs a new record
// directly, bypassing queue order.
func (c *Coordinator) ForceStart(ctx context.Context, p EnqueueParams) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return uuid.Nil, ErrCoordinatorClosed
	}
	rec, err := auction.NewRecord(p.SellerID, p.SellerName, p.Item, p.MinBid, p.StepValue, c.settings.Duration)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRecord)
	}

	if c.active != nil {
		c.timers.cancel()
		c.cancelRecordLocked(ctx, c.active)
		c.active = nil
	}

	c.active = rec
	if err := rec.Start(c.clock.Now()); err != nil {
		c.active = nil
		return uuid.Nil, errs.Mark(err, ErrInvalidRecord)
	}
	c.scheduleTimersLocked(rec, 0)
	c.notifier.Broadcast(EventForceStart, map[string]string{
		"seller": rec.SellerName(),
		"item":   rec.Item().Kind(),
	})
	c.publishStateLocked(ctx)
	return rec.ID(), nil
}

// Reload re-reads settings and reschedules the active record's timers from
// its current remaining time; bid state is untouched and elapsed checkpoints
// are not replayed.
func (c *Coordinator) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}

	c.settings = c.source.Load()
	if err := c.queue.SetCapacity(c.settings.MaxQueueSize); err != nil {
		return errs.Wrap(err, "invalid queue capacity")
	}

	if c.selfHeal != nil {
		c.selfHeal.Cancel()
	}
	c.armSelfHealLocked()

	if c.active != nil {
		elapsed := c.active.Duration() - c.active.RemainingTime(c.clock.Now())
		c.timers.cancel()
		c.scheduleTimersLocked(c.active, elapsed)
	}
	c.publishStateLocked(ctx)
	return nil
}

// Shutdown cancels all timers, then refunds and cancels the active record and
// every queued record before closing the coordinator for good. A second
// shutdown fails.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}
	c.closed = true

	if c.selfHeal != nil {
		c.selfHeal.Cancel()
		c.selfHeal = nil
	}
	c.timers.cancel()

	if c.active != nil {
		c.cancelRecordLocked(ctx, c.active)
		c.active = nil
	}
	for _, rec := range c.queue.Drain() {
		c.cancelRecordLocked(ctx, rec)
	}

	if err := c.store.ClearPendingRecords(ctx); err != nil {
		c.logger.Error("failed to clear pending records on shutdown", "error", err)
	}
	if err := c.snapshots.ClearActive(ctx); err != nil {
		c.logger.Warn("failed to clear live snapshot on shutdown", "error", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Internal transitions. Every *Locked method requires c.mu to be held.
// ---------------------------------------------------------------------------

// advanceLocked settles whatever occupies the slot as non-winning, then
// promotes the queue head. An empty queue leaves the slot idle.
func (c *Coordinator) advanceLocked(ctx context.Context) {
	if c.active != nil {
		c.settleLocked(ctx, auction.StatusExpired)
	}

	next := c.queue.Pop()
	if next == nil {
		c.publishStateLocked(ctx)
		return
	}

	c.active = next
	if err := next.Start(c.clock.Now()); err != nil {
		c.logger.Error("failed to start promoted record", "id", next.ID(), "error", err)
		c.active = nil
		return
	}
	if err := c.store.DeletePendingRecord(ctx, next.ID()); err != nil {
		c.logger.Error("failed to delete promoted record", "id", next.ID(), "error", err)
	}

	c.scheduleTimersLocked(next, 0)
	c.notifier.Broadcast(EventAuctionStart, map[string]string{
		"seller": next.SellerName(),
		"item":   next.Item().Kind(),
	})
	c.publishStateLocked(ctx)
}

// finalizeLocked settles the active record and, if more work is queued,
// advances to it.
func (c *Coordinator) finalizeLocked(ctx context.Context, reason auction.Status) {
	c.settleLocked(ctx, reason)
	if c.queue.Len() > 0 {
		c.advanceLocked(ctx)
		return
	}
	c.publishStateLocked(ctx)
}

// settleLocked moves the active record to its terminal outcome and clears the
// slot. An Expired reason becomes Sold when a bid was accepted.
func (c *Coordinator) settleLocked(ctx context.Context, reason auction.Status) {
	rec := c.active
	if rec == nil {
		return
	}
	c.timers.cancel()

	outcome := reason
	if reason == auction.StatusExpired && rec.HasBidder() {
		outcome = auction.StatusSold
	}
	if err := rec.Finalize(outcome); err != nil {
		c.logger.Error("illegal finalize", "id", rec.ID(), "outcome", outcome, "error", err)
		c.active = nil
		return
	}

	switch outcome {
	case auction.StatusSold:
		c.settleSaleLocked(ctx, rec)
	case auction.StatusExpired:
		c.persistOutcomeLocked(ctx, rec, auction.StatusExpired)
		c.notifier.Broadcast(EventAuctionExpired, map[string]string{
			"item": rec.Item().Kind(),
		})
	case auction.StatusCancelled:
		c.returnItemLocked(ctx, rec)
	}

	c.active = nil
}

func (c *Coordinator) settleSaleLocked(ctx context.Context, rec *auction.Record) {
	payout := auction.SellerPayout(rec.CurrentBid(), c.settings.BidFeePercent)
	if !c.ledger.Deposit(ctx, rec.SellerID(), payout) {
		c.logger.Error("seller payout failed, funds remain a liability",
			"seller", rec.SellerID(), "amount", payout, "auction", rec.ID())
	}
	c.persistOutcomeLocked(ctx, rec, auction.StatusSold)

	c.notifier.SendToAccount(rec.SellerID(), EventAuctionSold, map[string]string{
		"winner": rec.CurrentBidderName(),
		"bid":    c.ledger.Format(payout),
	})
	c.notifier.Broadcast(EventCountdownEnd, map[string]string{
		"item":   rec.Item().Kind(),
		"winner": rec.CurrentBidderName(),
		"bid":    c.ledger.Format(rec.CurrentBid()),
	})
}

// returnItemLocked persists the cancelled outcome and tries to hand the item
// back to the seller; when the holding area refuses it, the history row
// remains as the uncollected warehouse entry.
func (c *Coordinator) returnItemLocked(ctx context.Context, rec *auction.Record) {
	historyID := c.persistOutcomeLocked(ctx, rec, auction.StatusCancelled)

	if err := c.holdings.Return(ctx, rec.SellerID(), rec.Item()); err != nil {
		c.notifier.SendToAccount(rec.SellerID(), EventHoldingFull, nil)
		return
	}
	if historyID != 0 {
		if err := c.store.MarkHistoryCollected(ctx, historyID); err != nil {
			c.logger.Error("failed to mark returned item collected", "history", historyID, "error", err)
		}
	}
	c.notifier.SendToAccount(rec.SellerID(), EventAuctionCancelled, nil)
}

// persistOutcomeLocked writes the history row. A failed write is logged and
// the in-memory transition proceeds regardless.
func (c *Coordinator) persistOutcomeLocked(ctx context.Context, rec *auction.Record, outcome auction.Status) int64 {
	historyID, err := c.store.InsertHistoryEntry(ctx, rec.Snapshot(), outcome)
	if err != nil {
		c.logger.Error("failed to persist auction outcome",
			"id", rec.ID(), "outcome", outcome, "error", err)
		return 0
	}
	return historyID
}

// cancelRecordLocked refunds any bidder, finalizes the record as Cancelled
// and routes the item back to the seller. Used for queued records, force
// overrides and shutdown; the active-slot timer bookkeeping stays with the
// callers.
func (c *Coordinator) cancelRecordLocked(ctx context.Context, rec *auction.Record) {
	c.refundBidderLocked(ctx, rec)
	if err := rec.Finalize(auction.StatusCancelled); err != nil {
		c.logger.Error("illegal cancel", "id", rec.ID(), "error", err)
		return
	}
	c.returnItemLocked(ctx, rec)
}

func (c *Coordinator) refundBidderLocked(ctx context.Context, rec *auction.Record) {
	bidderID := rec.CurrentBidderID()
	if bidderID == nil {
		return
	}
	if !c.ledger.Deposit(ctx, *bidderID, rec.CurrentBid()) {
		c.logger.Error("bidder refund failed, funds remain a liability",
			"bidder", *bidderID, "amount", rec.CurrentBid(), "auction", rec.ID())
		return
	}
	c.notifier.SendToAccount(*bidderID, EventRefunded, map[string]string{
		"bid": c.ledger.Format(rec.CurrentBid()),
	})
}

// ---------------------------------------------------------------------------
// Timers. Callbacks capture the record id so a fire that lost the race with
// finalize (already queued behind the mutex) is recognized as stale.
// ---------------------------------------------------------------------------

func (c *Coordinator) scheduleTimersLocked(rec *auction.Record, elapsed time.Duration) {
	id := rec.ID()
	duration := rec.Duration()
	remaining := duration - elapsed

	c.timers.expiry = c.sched.Once(remaining, func() { c.onExpiry(id) })

	checkpoints := []struct {
		offset time.Duration
		event  string
	}{
		{duration / 2, EventHalfTime},
		{duration - duration/4, EventQuarterTime},
		{duration - duration/10, EventTenthTime},
	}
	for _, cp := range checkpoints {
		if cp.offset <= elapsed {
			continue
		}
		event := cp.event
		c.timers.checkpoints = append(c.timers.checkpoints,
			c.sched.Once(cp.offset-elapsed, func() { c.onCheckpoint(id, event) }))
	}

	if c.settings.CountdownEnabled {
		c.timers.countdown = c.sched.Every(time.Second, func() { c.onCountdownTick(id) })
	}
}

func (c *Coordinator) armSelfHealLocked() {
	c.selfHeal = c.sched.Every(c.settings.SelfHealInterval, c.onSelfHealTick)
}

func (c *Coordinator) onExpiry(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.active == nil || c.active.ID() != id {
		return
	}
	c.finalizeLocked(context.Background(), auction.StatusExpired)
}

func (c *Coordinator) onCheckpoint(id uuid.UUID, event string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.active == nil || c.active.ID() != id {
		return
	}
	c.notifier.Broadcast(event, map[string]string{
		"item": c.active.Item().Kind(),
		"bid":  c.ledger.Format(c.active.CurrentBid()),
	})
}

// onCountdownTick broadcasts only at the exact remaining seconds 10, 3, 2
// and 1; every other tick is silent.
func (c *Coordinator) onCountdownTick(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.active == nil || c.active.ID() != id {
		return
	}
	remaining := c.active.RemainingTime(c.clock.Now())
	if remaining > 10*time.Second {
		return
	}

	var event string
	switch int(remaining / time.Second) {
	case 10:
		event = EventCountdownTen
	case 3:
		event = EventCountdownThree
	case 2:
		event = EventCountdownTwo
	case 1:
		event = EventCountdownOne
	default:
		return
	}
	c.notifier.Broadcast(event, map[string]string{
		"item": c.active.Item().Kind(),
		"bid":  c.ledger.Format(c.active.CurrentBid()),
	})
}

// onSelfHealTick guards against a missed or lost expiry callback: an idle
// slot with queued work, or an active record past its end time, forces an
// advance.
func (c *Coordinator) onSelfHealTick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	idle := c.active == nil && c.queue.Len() > 0
	overdue := c.active != nil && c.active.HasExpired(c.clock.Now())
	if idle || overdue {
		c.advanceLocked(context.Background())
	}
}

func (c *Coordinator) publishStateLocked(ctx context.Context) {
	if c.active != nil {
		if err := c.snapshots.SaveActive(ctx, c.active.Snapshot()); err != nil {
			c.logger.Warn("failed to publish live snapshot", "error", err)
		}
	} else {
		if err := c.snapshots.ClearActive(ctx); err != nil {
			c.logger.Warn("failed to clear live snapshot", "error", err)
		}
	}
	c.notifier.Broadcast(EventStateRefresh, nil)
}
