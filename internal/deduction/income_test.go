package deduction

import (
	"testing"

	"takehome-engine/internal/model"
)

func TestNetEmploymentIncome(t *testing.T) {
	cases := []struct {
		name  string
		gross int64
		want  int64
	}{
		{"zero", 0, 0},
		{"below floor", 650_999, 0},
		{"at floor", 651_000, 1_000},
		{"part-time threshold", 1_230_000, 580_000},
		{"one yen over threshold", 1_230_001, 580_001},
		{"top of flat band", 1_899_999, 1_249_999},
		{"bottom of 0.7 band", 1_900_000, 1_250_000},
		{"0.7 band rounds down to 4000", 2_000_001, 1_320_000},
		{"0.7 band just before next step", 2_003_999, 1_320_000},
		{"0.7 band next step", 2_004_000, 1_322_800},
		{"top of 0.7 band", 3_600_000, 2_440_000},
		{"bottom of 0.8 band", 3_600_001, 2_440_000},
		{"mid 0.8 band", 5_000_000, 3_560_000},
		{"top of 0.8 band", 6_600_000, 4_840_000},
		{"bottom of 0.9 band unrounded", 6_600_001, 4_840_000},
		{"top of 0.9 band", 8_500_000, 6_550_000},
		{"above 0.9 band", 8_500_001, 6_550_001},
		{"high income", 20_000_000, 18_050_000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NetEmploymentIncome(tc.gross); got != tc.want {
				t.Fatalf("NetEmploymentIncome(%d) = %d, want %d", tc.gross, got, tc.want)
			}
		})
	}
}

func TestTotalNetIncome(t *testing.T) {
	income := model.PersonIncome{GrossEmploymentIncome: 1_230_000, OtherNetIncome: 100_000}
	if got := TotalNetIncome(income); got != 680_000 {
		t.Fatalf("TotalNetIncome = %d, want 680000", got)
	}

	if got := TotalNetIncome(model.PersonIncome{OtherNetIncome: 580_000}); got != 580_000 {
		t.Fatalf("TotalNetIncome with no employment income = %d, want 580000", got)
	}
}
