package tax

// FurusatoDonationLimit estimates the Furusato Nozei donation ceiling at
// which the out-of-pocket cost stays at 2,000 yen:
//
//	limit = incomeLevy * 20% / (90% - marginalRate * 1.021) + 2,000
//
// marginalRatePercent is the taxpayer's top national bracket rate.
func FurusatoDonationLimit(residenceIncomeLevy, marginalRatePercent int64) int64 {
	if residenceIncomeLevy <= 0 {
		return 0
	}

	denominator := 0.9 - float64(marginalRatePercent)/100*1.021
	if denominator <= 0 {
		return 0
	}

	limit := float64(residenceIncomeLevy)*0.2/denominator + 2_000
	return int64(limit)
}
