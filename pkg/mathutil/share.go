package mathutil

import (
	"github.com/shopspring/decimal"
)

// Hundred is the base of percentage shares.
var Hundred = uint64(100)

// PercentageOf returns floor(amount * percentage / 100). The multiplication is
// done in arbitrary precision so it never overflows, and since percentage is
// at most 100 the result always fits in uint64.
func PercentageOf(amount uint64, percentage uint32) uint64 {
	return FractionOf(amount, uint64(percentage), Hundred)
}

// FractionOf returns floor(amount * numerator / denominator), or 0 if
// denominator is 0.
func FractionOf(amount, numerator, denominator uint64) uint64 {
	if denominator == 0 {
		return 0
	}
	product := Mul(amount, numerator)
	quotient, _ := product.QuoRem(FromUint64(denominator), 0)
	res, ok := ToUint64(quotient)
	if !ok {
		return 0
	}
	return res
}

// Saturating returns z as uint64, clamping negative values to 0.
func Saturating(z decimal.Decimal) uint64 {
	if z.IsNegative() {
		return 0
	}
	res, _ := ToUint64(z)
	return res
}
