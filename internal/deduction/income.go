package deduction

import "takehome-engine/internal/model"

// NetEmploymentIncome converts gross employment income to net employment
// income using the 2025 progressive deduction bands. The two middle bands
// apply their rate to the gross rounded down to the nearest 4,000 yen; the
// 0.9 band uses the unrounded gross.
func NetEmploymentIncome(gross int64) int64 {
	switch {
	case gross < 651_000:
		return 0
	case gross < 1_900_000:
		return gross - 650_000
	case gross <= 3_600_000:
		return roundDown4000(gross)*7/10 - 80_000
	case gross <= 6_600_000:
		return roundDown4000(gross)*8/10 - 440_000
	case gross <= 8_500_000:
		return gross*9/10 - 1_100_000
	default:
		return gross - 1_950_000
	}
}

// TotalNetIncome is the figure every eligibility threshold tests against:
// net employment income plus all other net income.
func TotalNetIncome(income model.PersonIncome) int64 {
	return NetEmploymentIncome(income.GrossEmploymentIncome) + income.OtherNetIncome
}

func roundDown4000(v int64) int64 {
	return v / 4_000 * 4_000
}
