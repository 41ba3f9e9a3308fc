package deduction

import "takehome-engine/internal/model"

// Taxpayer-income bands driving the spousal phase-out. Above the last band
// both spousal deductions are fully phased out.
const (
	taxpayerBand1Limit = 9_000_000
	taxpayerBand2Limit = 9_500_000
	taxpayerBand3Limit = 10_000_000
)

// taxpayerBand maps taxpayer total net income to a column index of the
// spousal tables, or -1 when fully phased out.
func taxpayerBand(taxpayerIncome int64) int {
	switch {
	case taxpayerIncome <= taxpayerBand1Limit:
		return 0
	case taxpayerIncome <= taxpayerBand2Limit:
		return 1
	case taxpayerIncome <= taxpayerBand3Limit:
		return 2
	default:
		return -1
	}
}

// Dependent deduction: flat amounts selected by sub-classification.
var dependentDeduction = map[Regime]map[Type]int64{
	National: {
		TypeDependentGeneral:           380_000,
		TypeDependentSpecial:           630_000,
		TypeDependentElderly:           480_000,
		TypeDependentElderlyCohabiting: 580_000,
	},
	Residence: {
		TypeDependentGeneral:           330_000,
		TypeDependentSpecial:           450_000,
		TypeDependentElderly:           380_000,
		TypeDependentElderlyCohabiting: 450_000,
	},
}

// GetDependentDeduction returns the flat dependent deduction amount for one
// of the four dependent sub-types, or 0 for any other type.
func GetDependentDeduction(t Type, regime Regime) int64 {
	return dependentDeduction[regime][t]
}

// Spouse deduction: rows are [non-elderly, elderly], columns the three
// taxpayer-income bands.
var spouseDeduction = map[Regime][2][3]int64{
	National:  {{380_000, 260_000, 130_000}, {480_000, 320_000, 160_000}},
	Residence: {{330_000, 220_000, 110_000}, {380_000, 260_000, 130_000}},
}

// GetSpouseDeduction returns the spouse deduction amount for a spouse whose
// total net income is at or below the standard limit. elderly is true for a
// spouse aged 70 or over. Returns 0 once the taxpayer's income passes the
// last phase-out band.
func GetSpouseDeduction(elderly bool, taxpayerIncome int64, regime Regime) int64 {
	band := taxpayerBand(taxpayerIncome)
	if band < 0 {
		return 0
	}
	row := 0
	if elderly {
		row = 1
	}
	return spouseDeduction[regime][row][band]
}

// phaseOutRow is one spouse-income row of the spouse special table, with one
// amount per taxpayer-income band.
type phaseOutRow struct {
	min     int64
	max     int64
	amounts [3]int64
}

var spouseSpecialNational = []phaseOutRow{
	{580_000, 950_000, [3]int64{380_000, 260_000, 130_000}},
	{950_000, 1_000_000, [3]int64{360_000, 240_000, 120_000}},
	{1_000_000, 1_050_000, [3]int64{310_000, 210_000, 110_000}},
	{1_050_000, 1_100_000, [3]int64{260_000, 180_000, 90_000}},
	{1_100_000, 1_150_000, [3]int64{210_000, 140_000, 70_000}},
	{1_150_000, 1_200_000, [3]int64{160_000, 110_000, 60_000}},
	{1_200_000, 1_250_000, [3]int64{110_000, 80_000, 40_000}},
	{1_250_000, 1_300_000, [3]int64{60_000, 40_000, 20_000}},
	{1_300_000, 1_330_000, [3]int64{30_000, 20_000, 10_000}},
}

// Residence tax merges the first two national rows: the residence spouse
// deduction already caps at 330,000, so the 380,000/360,000 split vanishes.
var spouseSpecialResidence = []phaseOutRow{
	{580_000, 1_000_000, [3]int64{330_000, 220_000, 110_000}},
	{1_000_000, 1_050_000, [3]int64{310_000, 210_000, 110_000}},
	{1_050_000, 1_100_000, [3]int64{260_000, 180_000, 90_000}},
	{1_100_000, 1_150_000, [3]int64{210_000, 140_000, 70_000}},
	{1_150_000, 1_200_000, [3]int64{160_000, 110_000, 60_000}},
	{1_200_000, 1_250_000, [3]int64{110_000, 80_000, 40_000}},
	{1_250_000, 1_300_000, [3]int64{60_000, 40_000, 20_000}},
	{1_300_000, 1_330_000, [3]int64{30_000, 20_000, 10_000}},
}

// GetSpouseSpecialDeduction returns the spouse special deduction amount for
// the given spouse income and taxpayer income. Returns 0 outside the spouse
// income range (580,000, 1,330,000] or above the taxpayer phase-out ceiling.
func GetSpouseSpecialDeduction(spouseIncome, taxpayerIncome int64, regime Regime) int64 {
	band := taxpayerBand(taxpayerIncome)
	if band < 0 {
		return 0
	}
	rows := spouseSpecialNational
	if regime == Residence {
		rows = spouseSpecialResidence
	}
	for _, r := range rows {
		if spouseIncome > r.min && spouseIncome <= r.max {
			return r.amounts[band]
		}
	}
	return 0
}

// Specific relative special deduction: keyed by the dependent's own income
// only. Unlike the spouse special deduction there is deliberately no
// taxpayer-income phase-out.
var specificRelative = map[Regime][]bracket{
	National: {
		{580_000, 850_000, 630_000},
		{850_000, 900_000, 610_000},
		{900_000, 950_000, 510_000},
		{950_000, 1_000_000, 410_000},
		{1_000_000, 1_050_000, 310_000},
		{1_050_000, 1_100_000, 210_000},
		{1_100_000, 1_150_000, 110_000},
		{1_150_000, 1_200_000, 60_000},
		{1_200_000, 1_230_000, 30_000},
	},
	// The residence special dependent deduction caps at 450,000, so the
	// first three national rows collapse to that cap.
	Residence: {
		{580_000, 850_000, 450_000},
		{850_000, 900_000, 450_000},
		{900_000, 950_000, 450_000},
		{950_000, 1_000_000, 410_000},
		{1_000_000, 1_050_000, 310_000},
		{1_050_000, 1_100_000, 210_000},
		{1_100_000, 1_150_000, 110_000},
		{1_150_000, 1_200_000, 60_000},
		{1_200_000, 1_230_000, 30_000},
	},
}

// GetSpecificRelativeDeduction returns the specific relative special
// deduction for a dependent's total net income, or 0 outside the range
// (580,000, 1,230,000].
func GetSpecificRelativeDeduction(income int64, regime Regime) int64 {
	return lookupBracket(specificRelative[regime], income)
}

// GetDisabilityDeduction returns the disability deduction amount. The
// cohabitation flag only raises the amount for the special level.
func GetDisabilityDeduction(level model.DisabilityLevel, cohabiting bool, regime Regime) int64 {
	switch level {
	case model.DisabilityRegular:
		if regime == National {
			return 270_000
		}
		return 260_000
	case model.DisabilitySpecial:
		if cohabiting {
			if regime == National {
				return 750_000
			}
			return 530_000
		}
		if regime == National {
			return 400_000
		}
		return 300_000
	default:
		return 0
	}
}
