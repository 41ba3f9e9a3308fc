package tax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNationalIncomeTax(t *testing.T) {
	cases := []struct {
		name    string
		taxable int64
		want    int64
	}{
		{"zero", 0, 0},
		{"negative", -100_000, 0},
		{"top of first bracket", 1_950_000, 99_500},
		{"rounds taxable down to 1000", 1_950_999, 99_500},
		{"second bracket", 3_000_000, 206_700},
		{"fourth bracket", 7_000_000, 994_400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NationalIncomeTax(tc.taxable))
		})
	}
}

func TestNationalIncomeTaxRoundsTo100(t *testing.T) {
	for _, taxable := range []int64{1_000_000, 2_345_000, 8_000_000, 50_000_000} {
		require.Zero(t, NationalIncomeTax(taxable)%100, "taxable %d", taxable)
	}
}

func TestMarginalRatePercent(t *testing.T) {
	require.EqualValues(t, 0, MarginalRatePercent(0))
	require.EqualValues(t, 5, MarginalRatePercent(1_950_000))
	require.EqualValues(t, 10, MarginalRatePercent(1_950_001))
	require.EqualValues(t, 23, MarginalRatePercent(8_000_000))
	require.EqualValues(t, 45, MarginalRatePercent(50_000_000))
}

func TestNationalBasicDeduction(t *testing.T) {
	require.EqualValues(t, 580_000, NationalBasicDeduction(5_000_000))
	require.EqualValues(t, 580_000, NationalBasicDeduction(23_500_000))
	require.EqualValues(t, 480_000, NationalBasicDeduction(23_500_001))
	require.EqualValues(t, 160_000, NationalBasicDeduction(25_000_000))
	require.EqualValues(t, 0, NationalBasicDeduction(25_000_001))
}
