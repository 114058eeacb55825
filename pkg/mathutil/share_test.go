package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/pkg/mathutil"
)

func TestPercentageOf(t *testing.T) {
	tests := []struct {
		name       string
		amount     uint64
		percentage uint32
		expected   uint64
	}{
		{"zero_amount", 0, 30, 0},
		{"exact", 1000000000, 20, 200000000},
		{"floored", 999, 15, 149},
		{"one_unit", 1, 99, 0},
		{"full_share", 12345, 100, 12345},
		{"max_amount", math.MaxUint64, 100, math.MaxUint64},
		{"max_amount_half", math.MaxUint64, 50, math.MaxUint64 / 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, mathutil.PercentageOf(tt.amount, tt.percentage))
		})
	}
}

func TestFractionOfZeroDenominator(t *testing.T) {
	require.Zero(t, mathutil.FractionOf(100, 1, 0))
}

func TestSafeAdd(t *testing.T) {
	sum, ok := mathutil.SafeAdd(1, 2)
	require.True(t, ok)
	require.Equal(t, uint64(3), sum)

	_, ok = mathutil.SafeAdd(math.MaxUint64, 1)
	require.False(t, ok)
}

func TestSaturating(t *testing.T) {
	require.Zero(t, mathutil.Saturating(mathutil.Sub(1, 2)))
	require.Equal(t, uint64(5), mathutil.Saturating(mathutil.Sub(7, 2)))
}
