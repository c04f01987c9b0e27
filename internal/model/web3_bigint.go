package model

import (
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// LedgerDecimals is the fixed precision used for all ledger-side amount
// arithmetic. Conversion to an asset's own precision happens only at the
// chain boundary.
const LedgerDecimals = 18

type Web3BigInt struct {
	Value   string `json:"value"`
	Decimal int    `json:"decimal"`
}

// NewWeb3BigIntFromDecimal parses a decimal string such as "0.0045" into a
// Web3BigInt scaled to the given precision. Amounts are never routed through
// floating point.
func NewWeb3BigIntFromDecimal(dec string, decimal int) (*Web3BigInt, error) {
	dec = strings.TrimSpace(dec)
	if dec == "" {
		return nil, errors.New("empty decimal string")
	}

	neg := false
	if strings.HasPrefix(dec, "-") {
		neg = true
		dec = dec[1:]
	}

	intPart := dec
	fracPart := ""
	if i := strings.IndexByte(dec, '.'); i >= 0 {
		intPart = dec[:i]
		fracPart = dec[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > decimal {
		return nil, errors.Errorf("too many fractional digits in %q (max %d)", dec, decimal)
	}

	digits := intPart + fracPart + strings.Repeat("0", decimal-len(fracPart))
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.Errorf("invalid decimal string %q", dec)
	}
	if neg {
		value.Neg(value)
	}

	return &Web3BigInt{
		Value:   value.String(),
		Decimal: decimal,
	}, nil
}

// ToDecimalString renders the value back into a plain decimal string, with
// trailing fractional zeroes trimmed ("3500000000000000" at 18 -> "0.0035").
func (w *Web3BigInt) ToDecimalString() string {
	value, ok := new(big.Int).SetString(w.Value, 10)
	if !ok {
		return "0"
	}

	neg := value.Sign() < 0
	if neg {
		value.Abs(value)
	}

	digits := value.String()
	if len(digits) <= w.Decimal {
		digits = strings.Repeat("0", w.Decimal-len(digits)+1) + digits
	}

	intPart := digits[:len(digits)-w.Decimal]
	fracPart := strings.TrimRight(digits[len(digits)-w.Decimal:], "0")

	out := intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out
}

// BigInt returns the raw integer value in the smallest unit.
func (w *Web3BigInt) BigInt() (*big.Int, bool) {
	return new(big.Int).SetString(w.Value, 10)
}

func (w *Web3BigInt) Int64() (int64, bool) {
	amt, ok := new(big.Int).SetString(w.Value, 10)
	if !ok {
		return 0, false
	}

	return amt.Int64(), true
}

func (w *Web3BigInt) ToFloat() float64 {
	num := new(big.Int)
	num.SetString(w.Value, 10)

	floatNum := new(big.Float).SetInt(num)

	divisor := new(big.Float).SetFloat64(math.Pow(10, float64(w.Decimal)))

	floatNum.Quo(floatNum, divisor)

	result, _ := floatNum.Float64()
	return result
}

func (w *Web3BigInt) Add(number *Web3BigInt) *Web3BigInt {
	num1 := new(big.Int)
	num1.SetString(w.Value, 10)

	num2 := new(big.Int)
	num2.SetString(number.Value, 10)

	result := new(big.Int)
	result.Add(num1, num2)

	return &Web3BigInt{
		Value:   result.String(),
		Decimal: w.Decimal,
	}
}

func (w *Web3BigInt) Sub(number *Web3BigInt) *Web3BigInt {
	num1 := new(big.Int)
	num1.SetString(w.Value, 10)

	num2 := new(big.Int)
	num2.SetString(number.Value, 10)

	result := new(big.Int)
	result.Sub(num1, num2)

	return &Web3BigInt{
		Value:   result.String(),
		Decimal: w.Decimal,
	}
}

// Cmp compares two values of the same precision: -1 if w < other, 0 if equal,
// +1 if w > other.
func (w *Web3BigInt) Cmp(other *Web3BigInt) int {
	num1 := new(big.Int)
	num1.SetString(w.Value, 10)

	num2 := new(big.Int)
	num2.SetString(other.Value, 10)

	return num1.Cmp(num2)
}

// Shortfall returns how much is missing from balance to reach threshold,
// clamped at zero. Both inputs are decimal strings; the result shares the
// ledger precision.
func Shortfall(balance, threshold string) (*Web3BigInt, error) {
	b, err := NewWeb3BigIntFromDecimal(balance, LedgerDecimals)
	if err != nil {
		return nil, errors.Wrap(err, "invalid balance")
	}
	t, err := NewWeb3BigIntFromDecimal(threshold, LedgerDecimals)
	if err != nil {
		return nil, errors.Wrap(err, "invalid threshold")
	}

	if b.Cmp(t) >= 0 {
		return &Web3BigInt{Value: "0", Decimal: LedgerDecimals}, nil
	}
	return t.Sub(b), nil
}

// MaxUint256 is the largest representable token amount, used for one-time
// permanent allowance grants.
func MaxUint256() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 256)
	return max.Sub(max, big.NewInt(1))
}
