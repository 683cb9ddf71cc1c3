package fixed

import (
	"math"
	"math/big"
)

// Fixed is a signed Q(I.F) number whose value is its raw integer divided by
// 2^F. Three raw patterns below Min are reserved for NaN, +∞ and -∞; they are
// never produced by clamped arithmetic.
//
// Fixed is an immutable value type. Operations that can raise conditions
// live on Context; the methods on Fixed never do.
type Fixed[T rawer[T]] struct {
	raw T
}

type (
	Fp32  = Fixed[Raw32]
	Fp64  = Fixed[Raw64]
	Fp128 = Fixed[Raw128]
	Fp256 = Fixed[Raw256]
)

// FromRaw reinterprets raw as a fixed-point pattern without any checks.
func FromRaw[T rawer[T]](raw T) Fixed[T] { return Fixed[T]{raw: raw} }

func (x Fixed[T]) Raw() T { return x.raw }

func (x Fixed[T]) IsNaN() bool    { return x.raw == constsOf[T]().NaN.raw }
func (x Fixed[T]) IsPosInf() bool { return x.raw == constsOf[T]().PosInf.raw }
func (x Fixed[T]) IsNegInf() bool { return x.raw == constsOf[T]().NegInf.raw }
func (x Fixed[T]) IsInf() bool    { return x.IsPosInf() || x.IsNegInf() }
func (x Fixed[T]) IsZero() bool   { return x.raw.sign() == 0 }

func (x Fixed[T]) isFinite() bool { return !x.IsNaN() && !x.IsInf() }

// Sign returns -1, 0 or +1. NaN has sign 0.
func (x Fixed[T]) Sign() int {
	switch {
	case x.IsNaN():
		return 0
	case x.IsPosInf():
		return 1
	case x.IsNegInf():
		return -1
	}
	return x.raw.sign()
}

func (x Fixed[T]) rank() int {
	if x.IsPosInf() {
		return 1
	} else if x.IsNegInf() {
		return -1
	}
	return 0
}

// Cmp compares x and y with -∞ below and +∞ above every finite value. ok is
// false if either is NaN, in which case the comparison is meaningless.
func (x Fixed[T]) Cmp(y Fixed[T]) (c int, ok bool) {
	if x.IsNaN() || y.IsNaN() {
		return 0, false
	}
	xr, yr := x.rank(), y.rank()
	switch {
	case xr < yr:
		return -1, true
	case xr > yr:
		return 1, true
	case xr != 0:
		return 0, true
	}
	return x.raw.cmp(y.raw), true
}

func (x Fixed[T]) Equal(y Fixed[T]) bool {
	c, ok := x.Cmp(y)
	return ok && c == 0
}

// NotEqual is !Equal, so it is true whenever either side is NaN.
func (x Fixed[T]) NotEqual(y Fixed[T]) bool { return !x.Equal(y) }

func (x Fixed[T]) LessThan(y Fixed[T]) bool {
	c, ok := x.Cmp(y)
	return ok && c < 0
}

func (x Fixed[T]) LessOrEqualTo(y Fixed[T]) bool {
	c, ok := x.Cmp(y)
	return ok && c <= 0
}

func (x Fixed[T]) GreaterThan(y Fixed[T]) bool {
	c, ok := x.Cmp(y)
	return ok && c > 0
}

func (x Fixed[T]) GreaterOrEqualTo(y Fixed[T]) bool {
	c, ok := x.Cmp(y)
	return ok && c >= 0
}

// Neg swaps the sign of x. Values above -Min have no negation in range and
// saturate to Min.
func (x Fixed[T]) Neg() Fixed[T] {
	c := constsOf[T]()
	switch {
	case x.IsNaN():
		return x
	case x.IsPosInf():
		return c.NegInf
	case x.IsNegInf():
		return c.PosInf
	}
	if v := x.raw.neg(); v.cmp(c.Min.raw) >= 0 {
		return Fixed[T]{raw: v}
	}
	return c.Min
}

func (x Fixed[T]) Abs() Fixed[T] {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Floor rounds toward -∞. Values in (Min-1, Min] have no representable
// floor and return Min.
func (x Fixed[T]) Floor() Fixed[T] {
	if !x.isFinite() {
		return x
	}
	c := constsOf[T]()
	f := uint(x.raw.layout().frac)
	v := x.raw.shr(f).shl(f)
	if v.cmp(c.Min.raw) < 0 {
		return c.Min
	}
	return Fixed[T]{raw: v}
}

// Round rounds half up: Floor(x + ½).
func (x Fixed[T]) Round() Fixed[T] {
	var z *Context[T]
	return z.Add(x, constsOf[T]().Half).Floor()
}

// Integer returns the integer part of the pattern, rounded toward -∞.
func (x Fixed[T]) Integer() T { return x.raw.shr(uint(x.raw.layout().frac)) }

// Fraction returns the fractional bits, which are never negative.
func (x Fixed[T]) Fraction() T {
	f := uint(x.raw.layout().frac)
	return x.raw.sub(x.raw.shr(f).shl(f))
}

// Lsh and Rsh shift the raw pattern. Rsh is arithmetic.
func (x Fixed[T]) Lsh(n uint) Fixed[T] { return Fixed[T]{raw: x.raw.shl(n)} }
func (x Fixed[T]) Rsh(n uint) Fixed[T] { return Fixed[T]{raw: x.raw.shr(n)} }

func (x Fixed[T]) isInteger() bool {
	var z T
	return x.Fraction() == z
}

// Int64 truncates toward zero. Integer parts wider than 64 bits keep their
// low 64 bits. NaN is 0 and the infinities saturate.
func (x Fixed[T]) Int64() int64 {
	switch {
	case x.IsNaN():
		return 0
	case x.IsPosInf():
		return math.MaxInt64
	case x.IsNegInf():
		return math.MinInt64
	}
	f := uint(x.raw.layout().frac)
	if x.raw.sign() < 0 {
		return x.raw.neg().shr(f).neg().toInt64()
	}
	return x.raw.shr(f).toInt64()
}

// BigFloat returns the exact value of a finite x.
func (x Fixed[T]) BigFloat() *big.Float {
	l := x.raw.layout()
	f := new(big.Float).SetPrec(uint(l.bits)).SetInt(x.raw.toBig())
	return f.SetMantExp(f, -l.frac)
}

func (x Fixed[T]) Float64() float64 {
	switch {
	case x.IsNaN():
		return math.NaN()
	case x.IsPosInf():
		return math.Inf(1)
	case x.IsNegInf():
		return math.Inf(-1)
	}
	v, _ := x.BigFloat().Float64()
	return v
}
