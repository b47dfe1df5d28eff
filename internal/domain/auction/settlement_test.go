package auction_test

import (
	"testing"

	"auction-hall/internal/domain/auction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSellerPayout(t *testing.T) {
	tests := []struct {
		name     string
		finalBid string
		feePct   float64
		want     string
	}{
		{name: "ten percent fee", finalBid: "115", feePct: 10, want: "103.5"},
		{name: "zero fee leaves bid untouched", finalBid: "115", feePct: 0, want: "115"},
		{name: "negative fee is ignored", finalBid: "115", feePct: -5, want: "115"},
		{name: "fractional bid", finalBid: "99.99", feePct: 10, want: "89.991"},
		{name: "full fee", finalBid: "50", feePct: 100, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auction.SellerPayout(decimal.RequireFromString(tt.finalBid), tt.feePct)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, got.String())
		})
	}
}
