package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/domain/item"
	"auction-hall/internal/infra"
	"auction-hall/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// AuctionRepository persists the pending queue and the outcome history.
//
// Schema:
//
//	CREATE TABLE auction_queue (
//	    id          UUID PRIMARY KEY,
//	    seller_id   UUID NOT NULL,
//	    seller_name TEXT NOT NULL,
//	    item        JSONB NOT NULL,
//	    min_bid     NUMERIC NOT NULL,
//	    step_value  NUMERIC NOT NULL,
//	    queued_at   TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
//	CREATE TABLE auction_history (
//	    id          BIGSERIAL PRIMARY KEY,
//	    item        JSONB NOT NULL,
//	    seller_id   UUID NOT NULL,
//	    seller_name TEXT NOT NULL,
//	    buyer_id    UUID,
//	    buyer_name  TEXT NOT NULL DEFAULT '',
//	    start_time  TIMESTAMPTZ,
//	    end_time    TIMESTAMPTZ,
//	    min_bid     NUMERIC NOT NULL,
//	    final_bid   NUMERIC NOT NULL,
//	    status      TEXT NOT NULL
//	);
type AuctionRepository struct {
	db *pgxpool.Pool
}

func NewAuctionRepository(db *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{db: db}
}

func (r *AuctionRepository) InsertPendingRecord(ctx context.Context, snap auction.Snapshot) error {
	payload, err := json.Marshal(snap.Item)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode item payload", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO auction_queue (id, seller_id, seller_name, item, min_bid, step_value)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		snap.ID, snap.SellerID, snap.SellerName, payload, snap.MinBid, snap.StepValue,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert pending record", err)
	}
	return nil
}

func (r *AuctionRepository) DeletePendingRecord(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM auction_queue WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete pending record", err)
	}
	return nil
}

func (r *AuctionRepository) ClearPendingRecords(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM auction_queue`)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to clear pending records", err)
	}
	return nil
}

func (r *AuctionRepository) LoadPendingRecords(ctx context.Context) ([]usecase.PendingRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, seller_id, seller_name, item, min_bid, step_value
		 FROM auction_queue ORDER BY queued_at ASC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load pending records", err)
	}
	defer rows.Close()

	var out []usecase.PendingRecord
	for rows.Next() {
		var (
			rec     usecase.PendingRecord
			payload []byte
		)
		if err := rows.Scan(&rec.ID, &rec.SellerID, &rec.SellerName, &payload, &rec.MinBid, &rec.StepValue); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan pending record", err)
		}
		if err := json.Unmarshal(payload, &rec.Item); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode item payload", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read pending records", err)
	}
	return out, nil
}

func (r *AuctionRepository) InsertHistoryEntry(ctx context.Context, snap auction.Snapshot, outcome auction.Status) (int64, error) {
	payload, err := json.Marshal(snap.Item)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to encode item payload", err)
	}

	var historyID int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO auction_history
		     (item, seller_id, seller_name, buyer_id, buyer_name, start_time, end_time, min_bid, final_bid, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		payload, snap.SellerID, snap.SellerName, snap.CurrentBidderID, snap.CurrentBidderName,
		snap.StartTime, snap.EndTime, snap.MinBid, snap.CurrentBid, outcome.String(),
	).Scan(&historyID)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert history entry", err)
	}
	return historyID, nil
}

func (r *AuctionRepository) MarkHistoryCollected(ctx context.Context, historyID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE auction_history SET status = $1 WHERE id = $2`,
		auction.StatusCollected.String(), historyID,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark history collected", err)
	}
	return nil
}

func (r *AuctionRepository) FindHistoryEntry(ctx context.Context, historyID int64) (*usecase.HistoryEntry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, item, seller_id, seller_name, buyer_id, buyer_name,
		        start_time, end_time, min_bid, final_bid, status
		 FROM auction_history WHERE id = $1`,
		historyID,
	)

	entry, err := scanHistoryEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "history entry not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find history entry", err)
	}
	return entry, nil
}

// ListUncollected returns the warehouse view for one account: entries it
// sold (as buyer) or failed to sell (as seller) that still hold an item.
func (r *AuctionRepository) ListUncollected(ctx context.Context, account uuid.UUID) ([]usecase.HistoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, item, seller_id, seller_name, buyer_id, buyer_name,
		        start_time, end_time, min_bid, final_bid, status
		 FROM auction_history
		 WHERE (buyer_id = $1 AND status = $2)
		    OR (seller_id = $1 AND status IN ($3, $4))
		 ORDER BY id ASC`,
		account, auction.StatusSold.String(), auction.StatusExpired.String(), auction.StatusCancelled.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list uncollected entries", err)
	}
	defer rows.Close()

	var out []usecase.HistoryEntry
	for rows.Next() {
		entry, scanErr := scanHistoryEntry(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan history entry", scanErr)
		}
		out = append(out, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read history entries", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistoryEntry(row rowScanner) (*usecase.HistoryEntry, error) {
	var (
		entry     usecase.HistoryEntry
		payload   []byte
		status    string
		startTime *time.Time
		endTime   *time.Time
		minBid    decimal.Decimal
		finalBid  decimal.Decimal
	)
	if err := row.Scan(
		&entry.ID, &payload, &entry.SellerID, &entry.SellerName, &entry.BuyerID, &entry.BuyerName,
		&startTime, &endTime, &minBid, &finalBid, &status,
	); err != nil {
		return nil, err
	}

	var p item.Payload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, err
	}
	entry.Item = p
	if startTime != nil {
		entry.StartTime = *startTime
	}
	if endTime != nil {
		entry.EndTime = *endTime
	}
	entry.MinBid = minBid
	entry.FinalBid = finalBid
	entry.Status = auction.Status(status)
	return &entry, nil
}
