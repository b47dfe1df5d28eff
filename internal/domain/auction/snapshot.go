package auction

import (
	"time"

	"auction-hall/internal/domain/item"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Snapshot struct {
	ID                uuid.UUID       `json:"id"`
	SellerID          uuid.UUID       `json:"sellerId"`
	SellerName        string          `json:"sellerName"`
	Item              item.Payload    `json:"item"`
	MinBid            decimal.Decimal `json:"minBid"`
	StepValue         decimal.Decimal `json:"stepValue"`
	Duration          time.Duration   `json:"durationMs"`
	CurrentBid        decimal.Decimal `json:"currentBid"`
	CurrentBidderID   *uuid.UUID      `json:"currentBidderId,omitempty"`
	CurrentBidderName string          `json:"currentBidderName,omitempty"`
	StartTime         time.Time       `json:"startTime"`
	EndTime           time.Time       `json:"endTime"`
	Status            Status          `json:"status"`
}
