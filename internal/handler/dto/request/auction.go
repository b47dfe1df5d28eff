package request

import (
	"encoding/json"
	"strings"

	"auction-hall/internal/domain/item"
	"auction-hall/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SellItemRequest struct {
	Item      ItemRequest     `json:"item" binding:"required"`
	MinBid    decimal.Decimal `json:"minBid" binding:"required"`
	StepValue decimal.Decimal `json:"stepValue"`
}

type ItemRequest struct {
	Kind  string          `json:"kind" binding:"required"`
	Attrs json.RawMessage `json:"attrs,omitempty"`
}

func (r SellItemRequest) ToParams(sellerID uuid.UUID, sellerName string) (usecase.EnqueueParams, error) {
	payload, err := item.NewPayload(strings.TrimSpace(r.Item.Kind), r.Item.Attrs)
	if err != nil {
		return usecase.EnqueueParams{}, err
	}
	return usecase.EnqueueParams{
		SellerID:   sellerID,
		SellerName: sellerName,
		Item:       payload,
		MinBid:     r.MinBid,
		StepValue:  r.StepValue,
	}, nil
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
