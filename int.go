package num

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Int is a two's-complement signed integer of the fixed width given by S.
// Arithmetic wraps modulo 2^N. The unused high bits of the top limb always
// repeat the sign bit and unused limbs are zero, so == is value equality.
type Int[S Size] struct {
	w [maxLimbs]uint64
}

// norm sign-extends bit N-1 through the rest of the top limb.
func (i *Int[S]) norm() {
	sh := shapeOf[S]()
	if sh.spare > 0 {
		top := &i.w[sh.limbs-1]
		*top = uint64(int64(*top<<sh.spare) >> sh.spare)
	}
}

func (i *Int[S]) limbs() []uint64 { return i.w[:shapeOf[S]().limbs] }

func (i Int[S]) fill() uint64 {
	if i.IsNegative() {
		return maxUint64
	}
	return 0
}

func IntFrom64[S Size](v int64) (out Int[S]) {
	out.w[0] = uint64(v)
	if v < 0 {
		for n := 1; n < shapeOf[S]().limbs; n++ {
			out.w[n] = maxUint64
		}
	}
	out.norm()
	return out
}

// IntFrom converts any native integer; unsigned values above the width's
// maximum wrap.
func IntFrom[S Size, V constraints.Integer](v V) (out Int[S]) {
	out.w[0] = uint64(v)
	if v < 0 {
		for n := 1; n < shapeOf[S]().limbs; n++ {
			out.w[n] = maxUint64
		}
	}
	out.norm()
	return out
}

// IntFromLimbs builds an Int from two's-complement little-endian limbs.
func IntFromLimbs[S Size](limbs ...uint64) (out Int[S], err error) {
	u, err := UIntFromLimbs[S](limbs...)
	if err != nil {
		return out, err
	}
	return u.Int(), nil
}

// IntFromBigInt creates an Int from a big.Int. Values out of range clamp to
// MinInt/MaxInt and set accurate to false.
func IntFromBigInt[S Size](v *big.Int) (out Int[S], accurate bool) {
	sh := shapeOf[S]()
	neg := v.Sign() < 0
	var mag UInt[S]
	if v.BitLen() > sh.bits {
		if neg {
			return MinInt[S](), false
		}
		return MaxInt[S](), false
	}
	wordsToLimbs(mag.w[:sh.limbs], v.Bits())

	if !neg {
		if mag.Bit(sh.bits-1) != 0 {
			return MaxInt[S](), false
		}
		return mag.Int(), true
	}

	lim := MinInt[S]().UInt()
	if cmp := mag.Cmp(lim); cmp > 0 {
		return MinInt[S](), false
	}
	return mag.Neg().Int(), true
}

// IntFromString parses s in the given base. Overflow clamps and sets
// accurate to false.
func IntFromString[S Size](s string, base int) (out Int[S], accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return out, false, errorf(ErrInvalidString, "int%d string %q", BitsOf[S](), s)
	}
	out, accurate = IntFromBigInt[S](b)
	return out, accurate, nil
}

func MaxInt[S Size]() Int[S] {
	sh := shapeOf[S]()
	return MaxUInt[S]().SetBit(sh.bits-1, 0).Int()
}

func MinInt[S Size]() Int[S] {
	sh := shapeOf[S]()
	return UInt[S]{}.SetBit(sh.bits-1, 1).Int()
}

func RandInt[S Size](source RandSource) Int[S] {
	return RandUInt[S](source).Int()
}

func (i Int[S]) Bits() int { return shapeOf[S]().bits }

// Limb returns limb i of the two's-complement representation.
func (i Int[S]) Limb(n int) uint64 { return i.w[n] }

func (i Int[S]) Limbs() []uint64 {
	out := make([]uint64, shapeOf[S]().limbs)
	copy(out, i.w[:])
	return out
}

// UInt reinterprets the bits of i as an unsigned value. Negative numbers
// become values above MaxInt.
func (i Int[S]) UInt() (out UInt[S]) {
	out.w = i.w
	out.norm()
	return out
}

func (i Int[S]) IsZero() bool { return i == Int[S]{} }

// IsPositive reports whether the sign bit is clear; zero is positive.
func (i Int[S]) IsPositive() bool { return !i.IsNegative() }

func (i Int[S]) IsNegative() bool {
	return int64(i.w[shapeOf[S]().limbs-1]) < 0
}

func (i Int[S]) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

func (i Int[S]) Add(n Int[S]) (v Int[S]) {
	addLimbs(v.limbs(), i.limbs(), n.limbs())
	v.norm()
	return v
}

func (i Int[S]) Add64(n int64) Int[S] { return i.Add(IntFrom64[S](n)) }

func (i Int[S]) Sub(n Int[S]) (v Int[S]) {
	subLimbs(v.limbs(), i.limbs(), n.limbs())
	v.norm()
	return v
}

func (i Int[S]) Sub64(n int64) Int[S] { return i.Sub(IntFrom64[S](n)) }

func (i Int[S]) Inc() Int[S] { return i.Add64(1) }
func (i Int[S]) Dec() Int[S] { return i.Sub64(1) }

// Neg is the two's complement of i: every limb complemented, then one added.
// Negating MinInt overflows to MinInt.
func (i Int[S]) Neg() (v Int[S]) {
	negLimbs(v.limbs(), i.limbs())
	v.norm()
	return v
}

// Abs returns the absolute value of i. Abs(MinInt) overflows to MinInt; see
// AbsUInt for a version that cannot overflow.
func (i Int[S]) Abs() Int[S] {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

// AbsUInt returns the magnitude of i as an unsigned value of the same width.
func (i Int[S]) AbsUInt() UInt[S] {
	if i.IsNegative() {
		return i.UInt().Neg()
	}
	return i.UInt()
}

// Mul multiplies the magnitudes and reapplies the combined sign, truncating
// to N bits.
func (i Int[S]) Mul(n Int[S]) Int[S] {
	neg := i.IsNegative() != n.IsNegative()
	p := i.AbsUInt().Mul(n.AbsUInt()).Int()
	if neg {
		return p.Neg()
	}
	return p
}

func (i Int[S]) Mul64(n int64) Int[S] { return i.Mul(IntFrom64[S](n)) }

// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// If by == 0, a division-by-zero run-time panic occurs.
func (i Int[S]) QuoRem(by Int[S]) (q, r Int[S]) {
	if by.IsZero() {
		panic("num: division by zero")
	}
	qNeg, rNeg := i.IsNegative() != by.IsNegative(), i.IsNegative()
	qu, ru := i.AbsUInt().QuoRem(by.AbsUInt())
	q, r = qu.Int(), ru.Int()
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient truncated toward zero. Both magnitudes are first
// reduced by their common trailing zero bits, which does not change the
// quotient and shortens the long division. If by == 0, a division-by-zero
// run-time panic occurs.
func (i Int[S]) Quo(by Int[S]) Int[S] {
	if by.IsZero() {
		panic("num: division by zero")
	}
	neg := i.IsNegative() != by.IsNegative()
	u, b := i.AbsUInt(), by.AbsUInt()
	tz := u.TrailingZeros()
	if btz := b.TrailingZeros(); btz < tz {
		tz = btz
	}
	q := u.Rsh(tz).Quo(b.Rsh(tz)).Int()
	if neg {
		return q.Neg()
	}
	return q
}

func (i Int[S]) Rem(by Int[S]) (r Int[S]) {
	_, r = i.QuoRem(by)
	return r
}

// DivMod is QuoRem with the zero divisor reported as ErrDivisionByZero.
func (i Int[S]) DivMod(by Int[S]) (q, r Int[S], err error) {
	if by.IsZero() {
		return q, r, errorf(ErrDivisionByZero, "int%d %s / 0", i.Bits(), i.AsBigInt())
	}
	q, r = i.QuoRem(by)
	return q, r, nil
}

func (i Int[S]) And(n Int[S]) Int[S] {
	for x := range i.w {
		i.w[x] &= n.w[x]
	}
	return i
}

func (i Int[S]) Or(n Int[S]) Int[S] {
	for x := range i.w {
		i.w[x] |= n.w[x]
	}
	return i
}

func (i Int[S]) Xor(n Int[S]) Int[S] {
	for x := range i.w {
		i.w[x] ^= n.w[x]
	}
	return i
}

func (i Int[S]) Not() (v Int[S]) {
	notLimbs(v.limbs(), i.limbs())
	return v
}

func (i Int[S]) Lsh(n uint) (v Int[S]) {
	shlLimbs(v.limbs(), i.limbs(), n)
	v.norm()
	return v
}

// Rsh is an arithmetic shift: vacated bits are filled with the sign bit.
func (i Int[S]) Rsh(n uint) (v Int[S]) {
	shrLimbs(v.limbs(), i.limbs(), n, i.fill())
	v.norm()
	return v
}

// Cmp is sign-aware: a negative value is less than any non-negative one,
// otherwise the limbs are compared.
func (i Int[S]) Cmp(n Int[S]) int {
	in, nn := i.IsNegative(), n.IsNegative()
	if in && !nn {
		return -1
	} else if !in && nn {
		return 1
	}
	return cmpLimbs(i.limbs(), n.limbs())
}

func (i Int[S]) Cmp64(n int64) int { return i.Cmp(IntFrom64[S](n)) }

func (i Int[S]) Equal(n Int[S]) bool            { return i == n }
func (i Int[S]) Equal64(n int64) bool           { return i == IntFrom64[S](n) }
func (i Int[S]) GreaterThan(n Int[S]) bool      { return i.Cmp(n) > 0 }
func (i Int[S]) GreaterOrEqualTo(n Int[S]) bool { return i.Cmp(n) >= 0 }
func (i Int[S]) LessThan(n Int[S]) bool         { return i.Cmp(n) < 0 }
func (i Int[S]) LessOrEqualTo(n Int[S]) bool    { return i.Cmp(n) <= 0 }

// BitLen returns the bit length of the magnitude of i.
func (i Int[S]) BitLen() int { return i.AbsUInt().BitLen() }

// Bit returns bit n of the two's-complement representation.
func (i Int[S]) Bit(n int) uint { return i.UInt().Bit(n) }

func (i Int[S]) TrailingZeros() uint { return i.UInt().TrailingZeros() }

// AsInt64 truncates i to its low 64 bits. See IsInt64 to check first.
func (i Int[S]) AsInt64() int64 { return int64(i.w[0]) }

// IsInt64 reports whether i can be represented as an int64.
func (i Int[S]) IsInt64() bool {
	fill := i.fill()
	for n := 1; n < shapeOf[S]().limbs; n++ {
		if i.w[n] != fill {
			return false
		}
	}
	return (int64(i.w[0]) < 0) == (fill != 0)
}

func (i Int[S]) IntoBigInt(b *big.Int) {
	i.AbsUInt().IntoBigInt(b)
	if i.IsNegative() {
		b.Neg(b)
	}
}

func (i Int[S]) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i Int[S]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(i.AsBigInt())
}

func (i Int[S]) AsFloat64() float64 {
	f := i.AbsUInt().AsFloat64()
	if i.IsNegative() {
		return -f
	}
	return f
}

// String returns the two's-complement bit pattern as fixed-width lowercase
// hex. Use %d for the signed decimal value.
func (i Int[S]) String() string {
	return limbsHex(i.w[:], i.Bits())
}

func (i Int[S]) Format(s fmt.State, c rune) {
	if (c == 'v' || c == 's') && !s.Flag('#') {
		fmt.Fprint(s, i.String())
		return
	}
	i.AsBigInt().Format(s, c)
}
