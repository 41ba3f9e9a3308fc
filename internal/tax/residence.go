package tax

import "takehome-engine/internal/deduction"

const (
	perCapitaLevy        = 5_000
	incomeLevyPercent    = 10
	adjustmentCredit     = 2_500
	nonTaxableBase       = 450_000
	nonTaxablePerHead    = 350_000
	nonTaxableDependents = 420_000
)

// ResidenceTaxResult splits the levy into its two statutory parts.
type ResidenceTaxResult struct {
	IncomeLevy    int64 `json:"income_levy"`
	PerCapitaLevy int64 `json:"per_capita_levy"`
}

func (r ResidenceTaxResult) Total() int64 {
	return r.IncomeLevy + r.PerCapitaLevy
}

// ResidenceBasicDeduction returns the residence-tax basic deduction:
// 430,000 yen, stepped down to zero above 24 million total net income.
func ResidenceBasicDeduction(totalNetIncome int64) int64 {
	switch {
	case totalNetIncome <= 24_000_000:
		return 430_000
	case totalNetIncome <= 24_500_000:
		return 290_000
	case totalNetIncome <= 25_000_000:
		return 150_000
	default:
		return 0
	}
}

// ResidenceTax computes the residence tax from the taxpayer's total net
// income, the social insurance deduction and the dependent deduction results.
// The qualified-dependents head count from the deduction breakdown sets the
// non-taxable threshold, independently of the deduction amounts.
func ResidenceTax(totalNetIncome, socialInsurance int64, deps deduction.Results) ResidenceTaxResult {
	if totalNetIncome <= nonTaxableThreshold(deps.QualifiedDependentCount()) {
		return ResidenceTaxResult{}
	}

	taxable := totalNetIncome - socialInsurance - ResidenceBasicDeduction(totalNetIncome) - deps.ResidenceTax.Total()
	if taxable < 0 {
		taxable = 0
	}
	taxable = taxable / 1_000 * 1_000

	levy := taxable*incomeLevyPercent/100 - adjustmentCredit
	if levy < 0 {
		levy = 0
	}

	return ResidenceTaxResult{IncomeLevy: levy, PerCapitaLevy: perCapitaLevy}
}

// nonTaxableThreshold is the income-levy exemption line: 450,000 for a
// single taxpayer, 350,000 per household member plus 420,000 once any
// qualified dependent exists.
func nonTaxableThreshold(qualifiedDependents int) int64 {
	if qualifiedDependents == 0 {
		return nonTaxableBase
	}
	return nonTaxablePerHead*int64(1+qualifiedDependents) + nonTaxableDependents
}
