package auction

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SellerPayout computes what the seller receives after the percentage bid fee
// is deducted from the final bid. A zero or negative fee leaves the bid
// untouched. The publication fee is charged once at enqueue time and never
// enters this calculation.
func SellerPayout(finalBid decimal.Decimal, bidFeePercent float64) decimal.Decimal {
	if bidFeePercent <= 0 {
		return finalBid
	}
	fee := finalBid.Mul(decimal.NewFromFloat(bidFeePercent)).Div(hundred)
	return finalBid.Sub(fee)
}
