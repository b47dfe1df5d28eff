package response

import (
	"time"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/domain/item"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionResponse struct {
	ID                uuid.UUID       `json:"id"`
	SellerID          uuid.UUID       `json:"sellerId"`
	SellerName        string          `json:"sellerName"`
	Item              item.Payload    `json:"item"`
	MinBid            decimal.Decimal `json:"minBid"`
	StepValue         decimal.Decimal `json:"stepValue"`
	CurrentBid        decimal.Decimal `json:"currentBid"`
	CurrentBidderID   *uuid.UUID      `json:"currentBidderId,omitempty"`
	CurrentBidderName string          `json:"currentBidderName,omitempty"`
	StartTime         *time.Time      `json:"startTime,omitempty"`
	EndTime           *time.Time      `json:"endTime,omitempty"`
	RemainingSeconds  *int64          `json:"remainingSeconds,omitempty"`
	Status            string          `json:"status"`
}

type EnqueuedResponse struct {
	ID uuid.UUID `json:"id"`
}

type QueuePreviewResponse struct {
	Auctions []*AuctionResponse `json:"auctions"`
}

func FromSnapshot(snap auction.Snapshot, now time.Time) *AuctionResponse {
	resp := &AuctionResponse{
		ID:                snap.ID,
		SellerID:          snap.SellerID,
		SellerName:        snap.SellerName,
		Item:              snap.Item,
		MinBid:            snap.MinBid,
		StepValue:         snap.StepValue,
		CurrentBid:        snap.CurrentBid,
		CurrentBidderID:   snap.CurrentBidderID,
		CurrentBidderName: snap.CurrentBidderName,
		Status:            string(snap.Status),
	}

	if snap.Status == auction.StatusActive {
		start := snap.StartTime
		end := snap.EndTime
		resp.StartTime = &start
		resp.EndTime = &end

		remaining := int64(end.Sub(now).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		resp.RemainingSeconds = &remaining
	}

	return resp
}

func FromSnapshots(snaps []auction.Snapshot, now time.Time) *QueuePreviewResponse {
	auctions := make([]*AuctionResponse, len(snaps))
	for i, snap := range snaps {
		auctions[i] = FromSnapshot(snap, now)
	}
	return &QueuePreviewResponse{Auctions: auctions}
}
