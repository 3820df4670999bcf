// power.go
package power

import (
	"fmt"
	"math/big"
)

// DefaultMaxExponent is the exponent bound used when no options are given.
// Zero leaves the exponent unbounded.
const DefaultMaxExponent = 0

// Options configures Pow
type Options struct {
	// MaxExponent bounds |y|. Zero or less disables the bound.
	MaxExponent int64
}

// DefaultOptions returns options with no exponent bound
func DefaultOptions() *Options {
	return &Options{MaxExponent: DefaultMaxExponent}
}

// Pow returns x raised to the power y.
//
// For y >= 0 the result is an integer. For y < 0 it is the exact fraction
// 1 / x^|y|. The bases 0, 1 and -1 are computed without consulting
// MaxExponent since their powers never grow.
func Pow(x, y *big.Int, opts *Options) (*big.Rat, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if y.Sign() < 0 && x.Sign() == 0 {
		return nil, &Error{Op: "pow", Arg: expr(x, y), Err: ErrZeroNegativeExponent}
	}

	abs := new(big.Int).Abs(y)

	var p *big.Int
	switch {
	case y.Sign() == 0:
		p = big.NewInt(1)
	case x.Sign() == 0:
		p = new(big.Int)
	case isInt(x, 1):
		p = big.NewInt(1)
	case isInt(x, -1):
		if abs.Bit(0) == 0 {
			p = big.NewInt(1)
		} else {
			p = big.NewInt(-1)
		}
	default:
		if opts.MaxExponent > 0 && abs.Cmp(big.NewInt(opts.MaxExponent)) > 0 {
			return nil, &Error{
				Op:  "pow",
				Arg: expr(x, y),
				Err: fmt.Errorf("%w: |%s| exceeds limit %d", ErrExponentTooLarge, y, opts.MaxExponent),
			}
		}
		p = new(big.Int).Exp(x, abs, nil)
	}

	if y.Sign() < 0 {
		// SetFrac moves a negative denominator's sign onto the numerator
		return new(big.Rat).SetFrac(big.NewInt(1), p), nil
	}
	return new(big.Rat).SetInt(p), nil
}

// PowInt64 is Pow for int64 operands with default options
func PowInt64(x, y int64) (*big.Rat, error) {
	return Pow(big.NewInt(x), big.NewInt(y), nil)
}

// Format renders a computed power as "X ^ Y = RESULT".
// Fractions are written as N/D in lowest terms.
func Format(x, y *big.Int, result *big.Rat) string {
	return fmt.Sprintf("%s = %s", expr(x, y), result.RatString())
}

func expr(x, y *big.Int) string {
	return x.String() + " ^ " + y.String()
}

func isInt(v *big.Int, n int64) bool {
	return v.IsInt64() && v.Int64() == n
}
