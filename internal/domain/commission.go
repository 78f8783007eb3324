package domain

import "time"

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusPaid      CommissionStatus = "paid"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

const (
	// Standard agent rate: 3% of the sale.
	commissionRatePct = 3
	// Platform takes 5% of the agent's commission, not of the sale.
	platformSharePct = 5
	// Validation ceiling for externally supplied commission amounts.
	maxCommissionPct = 10
)

// Commission is the fee split recorded for a single sale. All amounts are
// integer minor units.
type Commission struct {
	ID              string           `json:"id"`
	PropertyID      string           `json:"property_id"`
	AgentID         string           `json:"agent_id"`
	SaleAmount      int64            `json:"sale_amount"`
	TotalCommission int64            `json:"total_commission"`
	PlatformFee     int64            `json:"platform_fee"`
	AgentCommission int64            `json:"agent_commission"`
	Status          CommissionStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type CommissionSplit struct {
	TotalCommission int64
	PlatformFee     int64
	AgentCommission int64
}

type CreateCommissionInput struct {
	PropertyID string
	AgentID    string
	SaleAmount int64
}

// ComputeCommission splits a sale into total commission, platform fee and
// agent commission. Each derived value is rounded half-up independently,
// in this order, so results are bit-for-bit reproducible.
func ComputeCommission(saleAmount int64) CommissionSplit {
	total := PercentHalfUp(saleAmount, commissionRatePct)
	platform := PercentHalfUp(total, platformSharePct)

	return CommissionSplit{
		TotalCommission: total,
		PlatformFee:     platform,
		AgentCommission: total - platform,
	}
}

// ValidCommissionAmount reports whether amount is a plausible commission
// for the given sale: positive and at most 10% of the sale amount.
func ValidCommissionAmount(amount, saleAmount int64) bool {
	return amount > 0 && amount <= PercentHalfUp(saleAmount, maxCommissionPct)
}
