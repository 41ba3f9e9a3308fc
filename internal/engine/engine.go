package engine

import (
	"time"

	"github.com/google/uuid"

	"takehome-engine/internal/deduction"
	"takehome-engine/internal/model"
	"takehome-engine/internal/tax"
)

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages            []model.CalculationMessage `json:"messages"`
	TotalNetIncome      int64                      `json:"total_net_income"`
	DependentDeductions deduction.Results          `json:"dependent_deductions"`
	SocialInsurance     tax.PremiumBreakdown       `json:"social_insurance"`
	NationalIncomeTax   int64                      `json:"national_income_tax"`
	ResidenceTax        tax.ResidenceTaxResult     `json:"residence_tax"`
	FurusatoLimit       int64                      `json:"furusato_donation_limit"`
	TakeHomePay         int64                      `json:"take_home_pay"`
}

// Process runs one full take-home-pay calculation: net income, dependent
// deductions, both tax regimes, social insurance and the donation limit.
// Pure over its input; every call with the same request yields the same
// result.
func Process(req *model.CalculationRequest) *CalculationResponse {
	start := time.Now()

	var messages []model.CalculationMessage

	totalNet := deduction.TotalNetIncome(req.TaxpayerIncome)

	if totalNet == 0 && hasSpouse(req.Dependents) {
		messages = append(messages, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "SPOUSE_WITH_ZERO_TAXPAYER_INCOME",
			Message: "Taxpayer income is zero; spousal deductions are computed at their full amounts",
		})
	}

	deps := deduction.Calculate(req.Dependents, totalNet)

	premiums := tax.SocialInsurancePremiums(req.TaxpayerIncome.GrossEmploymentIncome, req.IncludeNursingCare)

	nationalTaxable := totalNet - premiums.Total() - tax.NationalBasicDeduction(totalNet) - deps.NationalTax.Total()
	nationalTax := tax.NationalIncomeTax(nationalTaxable)

	residence := tax.ResidenceTax(totalNet, premiums.Total(), deps)

	furusato := tax.FurusatoDonationLimit(residence.IncomeLevy, tax.MarginalRatePercent(nationalTaxable))

	takeHome := req.TaxpayerIncome.GrossEmploymentIncome + req.TaxpayerIncome.OtherNetIncome -
		premiums.Total() - nationalTax - residence.Total()

	for i := range messages {
		messages[i].ID = i
	}
	if messages == nil {
		messages = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &CalculationResponse{
		CalculationMetadata: CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     model.OutcomeSuccess,
		},
		CalculationResult: CalculationResult{
			Messages:            messages,
			TotalNetIncome:      totalNet,
			DependentDeductions: deps,
			SocialInsurance:     premiums,
			NationalIncomeTax:   nationalTax,
			ResidenceTax:        residence,
			FurusatoLimit:       furusato,
			TakeHomePay:         takeHome,
		},
	}
}

func hasSpouse(deps []model.Dependent) bool {
	for _, d := range deps {
		if _, ok := d.(model.Spouse); ok {
			return true
		}
	}
	return false
}
