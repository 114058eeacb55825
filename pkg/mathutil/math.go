package mathutil

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// MaxAmount is the biggest amount representable in base units.
	MaxAmount = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)
)

// FromUint64 returns the given amount as decimal.Decimal.
func FromUint64(x uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
}

// ToUint64 truncates the given decimal to its integer part and returns it as
// uint64. The boolean is false if the value does not fit.
func ToUint64(x decimal.Decimal) (uint64, bool) {
	if x.IsNegative() || x.GreaterThan(MaxAmount) {
		return 0, false
	}
	return x.Truncate(0).BigInt().Uint64(), true
}

//Add takes two uint64 numbers and sum them x + y and returns the result as decimal.Decimal
func Add(x, y uint64) (z decimal.Decimal) {
	z = FromUint64(x).Add(FromUint64(y))
	return
}

//Sub takes two uint64 numbers and subtract them x - y and returns the result as decimal.Decimal
func Sub(x, y uint64) (z decimal.Decimal) {
	z = FromUint64(x).Sub(FromUint64(y))
	return
}

// Mul takes two uint64 numbers and multiply them x * y and returns the result as decimal.Decimal
func Mul(x, y uint64) (z decimal.Decimal) {
	z = FromUint64(x).Mul(FromUint64(y))
	return
}

// SafeAdd returns x + y, or false if the sum overflows uint64.
func SafeAdd(x, y uint64) (uint64, bool) {
	return ToUint64(Add(x, y))
}
