package tax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"takehome-engine/internal/deduction"
	"takehome-engine/internal/model"
)

func TestResidenceTax(t *testing.T) {
	res := ResidenceTax(4_000_000, 600_000, deduction.Results{})

	// taxable = 4,000,000 - 600,000 - 430,000 = 2,970,000
	require.EqualValues(t, 294_500, res.IncomeLevy)
	require.EqualValues(t, 5_000, res.PerCapitaLevy)
	require.EqualValues(t, 299_500, res.Total())
}

func TestResidenceTaxSubtractsDependentDeductions(t *testing.T) {
	deps := deduction.Calculate([]model.Dependent{
		model.Spouse{AgeCategory: model.SpouseUnder70},
	}, 4_000_000)
	require.EqualValues(t, 330_000, deps.ResidenceTax.Total())

	res := ResidenceTax(4_000_000, 600_000, deps)

	// taxable = 2,970,000 - 330,000 = 2,640,000
	require.EqualValues(t, 261_500, res.IncomeLevy)
}

func TestResidenceTaxNonTaxable(t *testing.T) {
	require.Zero(t, ResidenceTax(450_000, 0, deduction.Results{}).Total())
	require.NotZero(t, ResidenceTax(980_001, 0, deduction.Results{}).Total())

	// One qualified dependent lifts the threshold to 350,000*2 + 420,000.
	deps := deduction.Calculate([]model.Dependent{
		model.Relative{Relationship: model.RelationshipChild, AgeCategory: model.Age16To18},
	}, 1_000_000)
	require.Zero(t, ResidenceTax(1_100_000, 0, deps).Total())
	require.Zero(t, ResidenceTax(1_120_000, 0, deps).Total())
}

func TestResidenceTaxClampsNegativeTaxable(t *testing.T) {
	// Income above the threshold but deductions exceeding it must not go
	// negative; the per-capita levy still applies.
	res := ResidenceTax(1_200_000, 900_000, deduction.Results{})
	require.EqualValues(t, 0, res.IncomeLevy)
	require.EqualValues(t, perCapitaLevy, res.Total())
}

func TestResidenceBasicDeduction(t *testing.T) {
	require.EqualValues(t, 430_000, ResidenceBasicDeduction(4_000_000))
	require.EqualValues(t, 430_000, ResidenceBasicDeduction(24_000_000))
	require.EqualValues(t, 290_000, ResidenceBasicDeduction(24_000_001))
	require.EqualValues(t, 0, ResidenceBasicDeduction(25_000_001))
}
