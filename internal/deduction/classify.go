package deduction

import "takehome-engine/internal/model"

// Type identifies which single deduction a dependent qualifies for. The main
// deduction types are mutually exclusive per dependent; the disability
// deduction is independent and additive on top of any of them.
type Type string

const (
	TypeSpouse                     Type = "spouse"
	TypeSpouseSpecial              Type = "spouse_special"
	TypeSpecificRelativeSpecial    Type = "specific_relative_special"
	TypeDependentGeneral           Type = "dependent_general"
	TypeDependentSpecial           Type = "dependent_special"
	TypeDependentElderly           Type = "dependent_elderly"
	TypeDependentElderlyCohabiting Type = "dependent_elderly_cohabiting"
	// TypeDisability marks a breakdown entry that carries only the additive
	// disability amount, with no main deduction.
	TypeDisability  Type = "disability"
	TypeNotEligible Type = "not_eligible"
)

// 2025-reform income thresholds (total net income, yen).
const (
	// StandardIncomeLimit is the ceiling for the spouse deduction and the
	// standard dependent deduction.
	StandardIncomeLimit = 580_000
	// SpouseSpecialIncomeLimit is the ceiling for the tapered spouse special
	// deduction.
	SpouseSpecialIncomeLimit = 1_330_000
	// SpecificRelativeIncomeLimit is the ceiling for the tapered specific
	// relative special deduction (ages 19-22 and 23-69).
	SpecificRelativeIncomeLimit = 1_230_000
)

// Classify returns the single main-deduction verdict for one dependent.
//
// For ages 19-22 the standard and specific-relative paths are income-range
// disjoint, not competing: at or below StandardIncomeLimit the record takes
// the standard path (as a special dependent), and only strictly above it does
// the specific relative special deduction apply.
func Classify(dep model.Dependent) Type {
	income := TotalNetIncome(dep.Profile().Income)

	switch d := dep.(type) {
	case model.Spouse:
		switch {
		case income <= StandardIncomeLimit:
			return TypeSpouse
		case income <= SpouseSpecialIncomeLimit:
			return TypeSpouseSpecial
		default:
			return TypeNotEligible
		}

	case model.Relative:
		if income > StandardIncomeLimit {
			if taperedAge(d.AgeCategory) && income <= SpecificRelativeIncomeLimit {
				return TypeSpecificRelativeSpecial
			}
			return TypeNotEligible
		}
		switch d.AgeCategory {
		case model.AgeUnder16:
			// Under-16 dependents moved to the child allowance system and
			// carry no income tax deduction.
			return TypeNotEligible
		case model.Age19To22:
			return TypeDependentSpecial
		case model.Age70Plus:
			if d.IsCohabiting && d.Relationship == model.RelationshipParent {
				return TypeDependentElderlyCohabiting
			}
			return TypeDependentElderly
		default:
			return TypeDependentGeneral
		}
	}

	return TypeNotEligible
}

func taperedAge(age model.DependentAgeCategory) bool {
	return age == model.Age19To22 || age == model.Age23To69
}

// IsEligibleForSpouseDeduction reports whether the spouse qualifies for the
// spouse deduction (income at or below the standard limit).
func IsEligibleForSpouseDeduction(s model.Spouse) bool {
	return Classify(s) == TypeSpouse
}

// IsEligibleForSpouseSpecialDeduction reports whether the spouse falls in the
// tapered spouse special income range.
func IsEligibleForSpouseSpecialDeduction(s model.Spouse) bool {
	return Classify(s) == TypeSpouseSpecial
}

// IsEligibleForDependentDeduction reports whether a relative qualifies for
// the standard dependent deduction in any of its variants.
func IsEligibleForDependentDeduction(r model.Relative) bool {
	switch Classify(r) {
	case TypeDependentGeneral, TypeDependentSpecial, TypeDependentElderly, TypeDependentElderlyCohabiting:
		return true
	}
	return false
}

// IsEligibleForSpecificRelativeDeduction reports whether a relative falls in
// the specific relative special income range.
func IsEligibleForSpecificRelativeDeduction(r model.Relative) bool {
	return Classify(r) == TypeSpecificRelativeSpecial
}
