package mathutil

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimals of KOIN and VHP amounts.
const Precision = 8

var (
	//BigOne represents a single unit of a token with precision 8
	BigOne = uint64(math.Pow10(Precision))
	//BigOneDecimal represents a single unit of a token with precision 8 as decimal.Decimal
	BigOneDecimal = decimal.NewFromInt(int64(BigOne))

	maxUint64Decimal = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be a positive decimal number")
	// ErrTooManyDecimals ...
	ErrTooManyDecimals = errors.New("amount has more than 8 decimal places")
	// ErrAmountOverflow ...
	ErrAmountOverflow = errors.New("amount exceeds the uint64 range")
)

func init() {
	decimal.DivisionPrecision = Precision
}

// ParseUnits converts a decimal string like "12.5" into base units
// (1250000000). Negative values and more than 8 decimals are rejected.
func ParseUnits(amount string) (uint64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}
	if d.Exponent() < -Precision && !d.Equal(d.Truncate(Precision)) {
		return 0, ErrTooManyDecimals
	}
	units := d.Mul(BigOneDecimal)
	if units.GreaterThan(maxUint64Decimal) {
		return 0, ErrAmountOverflow
	}
	return units.BigInt().Uint64(), nil
}

// FormatUnits converts base units into a decimal string with exactly 8
// decimals, as amounts are displayed.
func FormatUnits(units uint64) string {
	return FromUnits(units).StringFixed(Precision)
}

// FromUnits returns the decimal.Decimal token amount of the given units.
func FromUnits(units uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -Precision)
}

// Add takes two uint64 numbers and sum them x + y and returns the result as decimal.Decimal
func Add(x, y uint64) decimal.Decimal {
	return toDecimal(x).Add(toDecimal(y))
}

// Mul takes two uint64 numbers and multiply them x * y and returns the result as decimal.Decimal
func Mul(x, y uint64) decimal.Decimal {
	return toDecimal(x).Mul(toDecimal(y))
}

// MulCeil multiplies x by factor and rounds the result up.
func MulCeil(x uint64, factor decimal.Decimal) uint64 {
	return toUint64(toDecimal(x).Mul(factor).Ceil())
}

// MulFloor multiplies x by factor and rounds the result down.
func MulFloor(x uint64, factor decimal.Decimal) uint64 {
	return toUint64(toDecimal(x).Mul(factor).Floor())
}

// SubFloor returns x - y, or zero if y > x.
func SubFloor(x, y uint64) uint64 {
	if y > x {
		return 0
	}
	return x - y
}

// Min returns the smaller of x and y.
func Min(x, y uint64) uint64 {
	if x < y {
		return x
	}
	return y
}

func toDecimal(x uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
}

func toUint64(d decimal.Decimal) uint64 {
	if d.IsNegative() {
		return 0
	}
	if d.GreaterThan(maxUint64Decimal) {
		return math.MaxUint64
	}
	return d.BigInt().Uint64()
}

// CeilUnits rounds d up and converts it to base units, clamped to the
// uint64 range.
func CeilUnits(d decimal.Decimal) uint64 {
	return toUint64(d.Ceil())
}
