package deduction

// Regime selects which of the two parallel tax regimes an amount table is
// read for.
type Regime string

const (
	National  Regime = "national"
	Residence Regime = "residence"
)

// bracket is one (min, max] row of an amount table. Rows are ordered,
// non-overlapping and closed: lower bound exclusive, upper bound inclusive.
type bracket struct {
	min    int64
	max    int64
	amount int64
}

// lookupBracket returns the amount of the row whose (min, max] range contains
// v, or 0 when v falls outside every row. Out-of-range means "no deduction",
// not an error.
func lookupBracket(rows []bracket, v int64) int64 {
	for _, r := range rows {
		if v > r.min && v <= r.max {
			return r.amount
		}
	}
	return 0
}
