package usecase

import (
	"context"
	"log/slog"

	"auction-hall/internal/domain/auction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bidder struct {
	ID   uuid.UUID
	Name string
}

// BidResult reports the superseded bidder so the coordinator can notify them.
type BidResult struct {
	PreviousBidderID *uuid.UUID
	PreviousBid      decimal.Decimal
	Refunded         bool
}

// bidProcessor validates and atomically applies a bid against the active
// record. It runs entirely inside the coordinator's critical section.
type bidProcessor struct {
	ledger Ledger
	logger *slog.Logger
}

func newBidProcessor(ledger Ledger, logger *slog.Logger) *bidProcessor {
	return &bidProcessor{ledger: ledger, logger: logger}
}

// Place runs the escrow sequence: validate, withdraw from the new bidder,
// commit the bid, then refund the superseded bidder. The refund happens after
// the commit so a failed deposit can never leave the new bid unrecorded; a
// refund failure is logged as an outstanding liability, not rolled back.
func (p *bidProcessor) Place(
	ctx context.Context,
	rec *auction.Record,
	bidder Bidder,
	amount decimal.Decimal,
	stepEnabled bool,
) (BidResult, error) {
	if rec.Status() != auction.StatusActive {
		return BidResult{}, ErrAuctionNotActive
	}
	if amount.LessThan(rec.MinimumNextBid(stepEnabled)) {
		return BidResult{}, ErrBidTooLow
	}
	if !p.ledger.HasBalance(ctx, bidder.ID, amount) {
		return BidResult{}, ErrInsufficientFunds
	}

	previousBidderID := rec.CurrentBidderID()
	previousBid := rec.CurrentBid()

	if !p.ledger.Withdraw(ctx, bidder.ID, amount) {
		return BidResult{}, ErrWithdrawalFailed
	}

	if err := rec.ApplyBid(bidder.ID, bidder.Name, amount, stepEnabled); err != nil {
		// Checks above make this unreachable; undo the withdrawal regardless.
		if !p.ledger.Deposit(ctx, bidder.ID, amount) {
			p.logger.Error("failed to undo withdrawal after rejected bid",
				"bidder", bidder.ID, "amount", amount)
		}
		return BidResult{}, ErrBidTooLow
	}

	result := BidResult{PreviousBidderID: previousBidderID, PreviousBid: previousBid}
	if previousBidderID != nil {
		if p.ledger.Deposit(ctx, *previousBidderID, previousBid) {
			result.Refunded = true
		} else {
			p.logger.Error("refund deposit failed, funds remain a liability",
				"bidder", *previousBidderID, "amount", previousBid, "auction", rec.ID())
		}
	}

	return result, nil
}
