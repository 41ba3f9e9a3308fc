package tax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFurusatoDonationLimit(t *testing.T) {
	require.Zero(t, FurusatoDonationLimit(0, 10))
	require.Zero(t, FurusatoDonationLimit(-100, 10))

	// levy 171,000 at the 5% marginal rate: 34,200 / 0.84895 + 2,000.
	limit := FurusatoDonationLimit(171_000, 5)
	require.Greater(t, limit, int64(42_000))
	require.Less(t, limit, int64(43_000))

	// A higher marginal rate shrinks the denominator and raises the limit.
	require.Greater(t, FurusatoDonationLimit(171_000, 33), limit)
}
