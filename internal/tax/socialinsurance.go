package tax

// Employee-side premium rates applied to gross salary, in basis points.
// Health and pension follow the standard-remuneration model; the pension
// base is capped at the 650,000 yen/month ceiling.
const (
	healthRateBp      = 500 // 5.00%
	nursingCareRateBp = 90  // 0.90%, ages 40-64
	pensionRateBp     = 915 // 9.15%
	employmentRateBp  = 55  // 0.55%

	pensionAnnualCap = 650_000 * 12
)

// PremiumBreakdown holds the employee share of each social insurance scheme
// for one year.
type PremiumBreakdown struct {
	Health      int64 `json:"health"`
	NursingCare int64 `json:"nursing_care"`
	Pension     int64 `json:"pension"`
	Employment  int64 `json:"employment"`
}

func (p PremiumBreakdown) Total() int64 {
	return p.Health + p.NursingCare + p.Pension + p.Employment
}

// SocialInsurancePremiums estimates the employee-side annual premiums on
// gross employment income. nursingCare adds the 40-64 long-term-care rate on
// top of health insurance.
func SocialInsurancePremiums(grossSalary int64, nursingCare bool) PremiumBreakdown {
	if grossSalary <= 0 {
		return PremiumBreakdown{}
	}

	pensionBase := grossSalary
	if pensionBase > pensionAnnualCap {
		pensionBase = pensionAnnualCap
	}

	p := PremiumBreakdown{
		Health:     grossSalary * healthRateBp / 10_000,
		Pension:    pensionBase * pensionRateBp / 10_000,
		Employment: grossSalary * employmentRateBp / 10_000,
	}
	if nursingCare {
		p.NursingCare = grossSalary * nursingCareRateBp / 10_000
	}
	return p
}
