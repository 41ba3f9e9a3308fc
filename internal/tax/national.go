package tax

// rateBracket is one row of the national quick-deduction table: tax equals
// taxable income times rate minus the quick deduction.
type rateBracket struct {
	max         int64
	ratePercent int64
	quick       int64
}

const maxTaxable = int64(1) << 60

var nationalBrackets = []rateBracket{
	{1_950_000, 5, 0},
	{3_300_000, 10, 97_500},
	{6_950_000, 20, 427_500},
	{9_000_000, 23, 636_000},
	{18_000_000, 33, 1_536_000},
	{40_000_000, 40, 2_796_000},
	{maxTaxable, 45, 4_796_000},
}

// NationalBasicDeduction returns the national-tax basic deduction under the
// 2025 reform: 580,000 yen, stepped down to zero for total net incomes above
// 23.5 million.
func NationalBasicDeduction(totalNetIncome int64) int64 {
	switch {
	case totalNetIncome <= 23_500_000:
		return 580_000
	case totalNetIncome <= 24_000_000:
		return 480_000
	case totalNetIncome <= 24_500_000:
		return 320_000
	case totalNetIncome <= 25_000_000:
		return 160_000
	default:
		return 0
	}
}

// NationalIncomeTax computes the national income tax on taxable income,
// including the 2.1% reconstruction surtax. Taxable income rounds down to
// the nearest 1,000 yen, the final amount to the nearest 100 yen.
func NationalIncomeTax(taxableIncome int64) int64 {
	if taxableIncome <= 0 {
		return 0
	}
	taxable := taxableIncome / 1_000 * 1_000

	var base int64
	for _, b := range nationalBrackets {
		if taxable <= b.max {
			base = taxable*b.ratePercent/100 - b.quick
			break
		}
	}

	withSurtax := base * 1021 / 1000
	return withSurtax / 100 * 100
}

// MarginalRatePercent returns the national bracket rate applying to the top
// yen of taxable income. Used by the donation limit formula.
func MarginalRatePercent(taxableIncome int64) int64 {
	if taxableIncome <= 0 {
		return 0
	}
	for _, b := range nationalBrackets {
		if taxableIncome <= b.max {
			return b.ratePercent
		}
	}
	return 0
}
