package domain

// PercentHalfUp returns pct percent of amount, rounded half-up to the
// nearest minor unit. Amounts are integer minor units throughout, so the
// result is exact and reproducible regardless of evaluation order.
func PercentHalfUp(amount int64, pct int64) int64 {
	return (amount*pct + 50) / 100
}
