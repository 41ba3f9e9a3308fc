package deduction

import (
	json "github.com/goccy/go-json"

	"takehome-engine/internal/model"
)

// RegimeTotals holds the five per-category subtotals for one tax regime.
type RegimeTotals struct {
	Dependent        int64 `json:"dependent_deduction"`
	Spouse           int64 `json:"spouse_deduction"`
	SpouseSpecial    int64 `json:"spouse_special_deduction"`
	SpecificRelative int64 `json:"specific_relative_deduction"`
	Disability       int64 `json:"disability_deduction"`
}

// Total is derived on read so the subtotals can never drift out of sync with
// a stored grand total.
func (t RegimeTotals) Total() int64 {
	return t.Dependent + t.Spouse + t.SpouseSpecial + t.SpecificRelative + t.Disability
}

func (t RegimeTotals) MarshalJSON() ([]byte, error) {
	type alias RegimeTotals
	return json.Marshal(struct {
		alias
		Total int64 `json:"total"`
	}{alias(t), t.Total()})
}

// Breakdown is the audit record for one dependent: which deduction applied
// and the resulting amounts under both regimes, disability included.
type Breakdown struct {
	Dependent          model.Dependent `json:"dependent"`
	NationalTaxAmount  int64           `json:"national_tax_amount"`
	ResidenceTaxAmount int64           `json:"residence_tax_amount"`
	Type               Type            `json:"deduction_type"`
	Notes              []string        `json:"notes,omitempty"`
}

// Results is a stateless snapshot produced by one aggregation call.
type Results struct {
	NationalTax  RegimeTotals `json:"national_tax"`
	ResidenceTax RegimeTotals `json:"residence_tax"`
	Breakdown    []Breakdown  `json:"breakdown"`
}

// QualifiedDependentCount counts breakdown entries whose dependent's total
// net income is at or below the standard limit. The residence-tax calculator
// uses this head count for its non-taxable threshold, independently of the
// deduction amounts.
func (r Results) QualifiedDependentCount() int {
	n := 0
	for _, b := range r.Breakdown {
		if TotalNetIncome(b.Dependent.Profile().Income) <= StandardIncomeLimit {
			n++
		}
	}
	return n
}

// Calculate classifies every dependent, looks up the amounts for both
// regimes and accumulates per-category totals. taxpayerNetIncome drives the
// spousal phase-out and must be the taxpayer's real total net income.
//
// Breakdown entries follow the input order; totals do not depend on it.
func Calculate(dependents []model.Dependent, taxpayerNetIncome int64) Results {
	res := Results{Breakdown: make([]Breakdown, 0, len(dependents))}

	for _, dep := range dependents {
		p := dep.Profile()
		income := TotalNetIncome(p.Income)
		entry := Breakdown{Dependent: dep}

		// Disability is additive and evaluated before the main deduction, so
		// an otherwise ineligible dependent still gets its amount.
		if p.Disability != model.DisabilityNone {
			nat := GetDisabilityDeduction(p.Disability, p.IsCohabiting, National)
			rsd := GetDisabilityDeduction(p.Disability, p.IsCohabiting, Residence)
			res.NationalTax.Disability += nat
			res.ResidenceTax.Disability += rsd
			entry.NationalTaxAmount += nat
			entry.ResidenceTaxAmount += rsd
			entry.Notes = append(entry.Notes, disabilityNote(p.Disability, p.IsCohabiting))
		}

		verdict := Classify(dep)
		var nat, rsd int64

		switch verdict {
		case TypeSpouse:
			elderly := dep.(model.Spouse).AgeCategory == model.Spouse70Plus
			nat = GetSpouseDeduction(elderly, taxpayerNetIncome, National)
			rsd = GetSpouseDeduction(elderly, taxpayerNetIncome, Residence)
			res.NationalTax.Spouse += nat
			res.ResidenceTax.Spouse += rsd
		case TypeSpouseSpecial:
			nat = GetSpouseSpecialDeduction(income, taxpayerNetIncome, National)
			rsd = GetSpouseSpecialDeduction(income, taxpayerNetIncome, Residence)
			res.NationalTax.SpouseSpecial += nat
			res.ResidenceTax.SpouseSpecial += rsd
		case TypeSpecificRelativeSpecial:
			nat = GetSpecificRelativeDeduction(income, National)
			rsd = GetSpecificRelativeDeduction(income, Residence)
			res.NationalTax.SpecificRelative += nat
			res.ResidenceTax.SpecificRelative += rsd
		case TypeDependentGeneral, TypeDependentSpecial, TypeDependentElderly, TypeDependentElderlyCohabiting:
			nat = GetDependentDeduction(verdict, National)
			rsd = GetDependentDeduction(verdict, Residence)
			res.NationalTax.Dependent += nat
			res.ResidenceTax.Dependent += rsd
		case TypeNotEligible:
			// A disability-only entry is not "not eligible": the dependent
			// did produce a deduction.
			if entry.NationalTaxAmount > 0 || entry.ResidenceTaxAmount > 0 {
				verdict = TypeDisability
			}
		}

		if isSpousal(verdict) && nat == 0 && taxpayerBand(taxpayerNetIncome) < 0 {
			entry.Notes = append(entry.Notes, "spousal deduction fully phased out above taxpayer income 10,000,000")
		}

		entry.NationalTaxAmount += nat
		entry.ResidenceTaxAmount += rsd
		entry.Type = verdict
		res.Breakdown = append(res.Breakdown, entry)
	}

	return res
}

func isSpousal(t Type) bool {
	return t == TypeSpouse || t == TypeSpouseSpecial
}

func disabilityNote(level model.DisabilityLevel, cohabiting bool) string {
	if level == model.DisabilitySpecial && cohabiting {
		return "cohabiting special disability deduction applied"
	}
	if level == model.DisabilitySpecial {
		return "special disability deduction applied"
	}
	return "disability deduction applied"
}
