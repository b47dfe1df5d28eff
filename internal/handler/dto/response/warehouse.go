package response

import (
	"time"

	"auction-hall/internal/domain/item"
	"auction-hall/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WarehouseEntryResponse struct {
	ID         int64           `json:"id"`
	Item       item.Payload    `json:"item"`
	SellerID   uuid.UUID       `json:"sellerId"`
	SellerName string          `json:"sellerName"`
	BuyerID    *uuid.UUID      `json:"buyerId,omitempty"`
	BuyerName  string          `json:"buyerName,omitempty"`
	EndTime    time.Time       `json:"endTime"`
	FinalBid   decimal.Decimal `json:"finalBid"`
	Status     string          `json:"status"`
}

type WarehouseListResponse struct {
	Entries []*WarehouseEntryResponse `json:"entries"`
}

func FromHistoryEntry(entry usecase.HistoryEntry) *WarehouseEntryResponse {
	return &WarehouseEntryResponse{
		ID:         entry.ID,
		Item:       entry.Item,
		SellerID:   entry.SellerID,
		SellerName: entry.SellerName,
		BuyerID:    entry.BuyerID,
		BuyerName:  entry.BuyerName,
		EndTime:    entry.EndTime,
		FinalBid:   entry.FinalBid,
		Status:     string(entry.Status),
	}
}

func FromHistoryEntries(entries []usecase.HistoryEntry) *WarehouseListResponse {
	out := make([]*WarehouseEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = FromHistoryEntry(e)
	}
	return &WarehouseListResponse{Entries: out}
}
