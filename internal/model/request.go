package model

// CalculationRequest is the input for one take-home-pay calculation. The
// taxpayer's own income drives the spousal deduction phase-out, so callers
// must supply it; a zero income with a spouse present produces a warning in
// the response rather than silently granting the full spouse deduction.
type CalculationRequest struct {
	TaxpayerIncome     PersonIncome  `json:"taxpayer_income"`
	IncludeNursingCare bool          `json:"include_nursing_care"`
	Dependents         DependentList `json:"dependents"`
}
