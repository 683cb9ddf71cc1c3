package num

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// UInt is an unsigned integer of the fixed width given by S. Arithmetic wraps
// modulo 2^N. Bits of the limb array above N are always zero, so two UInts
// holding the same value compare equal with ==.
//
// UInt is a value type; all operations return new values.
type UInt[S Size] struct {
	w [maxLimbs]uint64
}

func (u *UInt[S]) norm() {
	sh := shapeOf[S]()
	u.w[sh.limbs-1] &= sh.residual
}

func (u *UInt[S]) limbs() []uint64 { return u.w[:shapeOf[S]().limbs] }

func UIntFrom64[S Size](v uint64) (out UInt[S]) {
	out.w[0] = v
	out.norm()
	return out
}

// UIntFrom converts any native integer. Negative values wrap modulo 2^N, as a
// conversion from int64 to uint64 would.
func UIntFrom[S Size, V constraints.Integer](v V) (out UInt[S]) {
	out.w[0] = uint64(v)
	if v < 0 {
		for i := 1; i < shapeOf[S]().limbs; i++ {
			out.w[i] = maxUint64
		}
	}
	out.norm()
	return out
}

// UIntFromLimbs builds a UInt from little-endian limbs. High bits beyond the
// width are discarded; more limbs than the width holds is an error.
func UIntFromLimbs[S Size](limbs ...uint64) (out UInt[S], err error) {
	sh := shapeOf[S]()
	if len(limbs) > sh.limbs {
		return out, errorf(ErrSize, "%d limbs do not fit in %d bits", len(limbs), sh.bits)
	}
	copy(out.w[:], limbs)
	out.norm()
	return out, nil
}

// UIntFromBigInt creates a UInt from a big.Int. Negative values produce zero,
// values that are too large produce the maximum; both set accurate to false.
func UIntFromBigInt[S Size](v *big.Int) (out UInt[S], accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	sh := shapeOf[S]()
	if v.BitLen() > sh.bits {
		return MaxUInt[S](), false
	}
	wordsToLimbs(out.w[:sh.limbs], v.Bits())
	return out, true
}

// UIntFromString parses s in the given base (0 accepts Go integer literal
// prefixes). Overflow clamps to the maximum and sets accurate to false.
func UIntFromString[S Size](s string, base int) (out UInt[S], accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return out, false, errorf(ErrInvalidString, "uint%d string %q", BitsOf[S](), s)
	}
	out, accurate = UIntFromBigInt[S](b)
	return out, accurate, nil
}

// UIntFromHex parses a hexadecimal string, with or without a 0x prefix, as
// produced by String. Leading zeros are permitted.
func UIntFromHex[S Size](s string) (out UInt[S], err error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return out, errorf(ErrInvalidString, "empty hex string")
	}
	sh := shapeOf[S]()
	for i := 0; i < len(s); i++ {
		nib, ok := hexNibble(s[len(s)-1-i])
		if !ok {
			return out, errorf(ErrInvalidString, "uint%d hex %q", sh.bits, s)
		}
		if nib == 0 {
			continue
		}
		if i*4 >= sh.bits {
			return out, errorf(ErrSize, "hex %q is wider than %d bits", s, sh.bits)
		}
		out.w[i/16] |= uint64(nib) << (uint(i%16) * 4)
	}
	return out, nil
}

func ZeroUInt[S Size]() (out UInt[S]) { return out }

func MaxUInt[S Size]() (out UInt[S]) {
	sh := shapeOf[S]()
	for i := 0; i < sh.limbs; i++ {
		out.w[i] = maxUint64
	}
	out.norm()
	return out
}

func RandUInt[S Size](source RandSource) (out UInt[S]) {
	sh := shapeOf[S]()
	for i := 0; i < sh.limbs; i++ {
		out.w[i] = source.Uint64()
	}
	out.norm()
	return out
}

// Bits returns the width of u in bits.
func (u UInt[S]) Bits() int { return shapeOf[S]().bits }

// Limb returns limb i, where limb 0 holds the least significant 64 bits.
func (u UInt[S]) Limb(i int) uint64 { return u.w[i] }

// Limbs returns a copy of the active limbs, least significant first.
func (u UInt[S]) Limbs() []uint64 {
	out := make([]uint64, shapeOf[S]().limbs)
	copy(out, u.w[:])
	return out
}

func (u UInt[S]) IsZero() bool { return u == UInt[S]{} }

func (u UInt[S]) Int() (out Int[S]) {
	out.w = u.w
	out.norm()
	return out
}

func (u UInt[S]) Add(n UInt[S]) (v UInt[S]) {
	addLimbs(v.limbs(), u.limbs(), n.limbs())
	v.norm()
	return v
}

func (u UInt[S]) Add64(n uint64) (v UInt[S]) {
	addLimb(v.limbs(), u.limbs(), n)
	v.norm()
	return v
}

func (u UInt[S]) Sub(n UInt[S]) (v UInt[S]) {
	subLimbs(v.limbs(), u.limbs(), n.limbs())
	v.norm()
	return v
}

func (u UInt[S]) Sub64(n uint64) (v UInt[S]) {
	subLimb(v.limbs(), u.limbs(), n)
	v.norm()
	return v
}

func (u UInt[S]) Inc() UInt[S] { return u.Add64(1) }
func (u UInt[S]) Dec() UInt[S] { return u.Sub64(1) }

// Neg returns 2^N - u.
func (u UInt[S]) Neg() (v UInt[S]) {
	negLimbs(v.limbs(), u.limbs())
	v.norm()
	return v
}

func (u UInt[S]) Mul(n UInt[S]) (v UInt[S]) {
	mulLimbs(v.limbs(), u.limbs(), n.limbs())
	v.norm()
	return v
}

func (u UInt[S]) Mul64(n uint64) (v UInt[S]) {
	mulLimb(v.limbs(), u.limbs(), n)
	v.norm()
	return v
}

// QuoRem returns the truncated quotient and remainder of u/by. If by == 0, a
// division-by-zero run-time panic occurs; see DivMod for an error-returning
// variant.
func (u UInt[S]) QuoRem(by UInt[S]) (q, r UInt[S]) {
	if by.IsZero() {
		panic("num: division by zero")
	}
	quoRemLimbs(q.limbs(), r.limbs(), u.limbs(), by.limbs())
	return q, r
}

func (u UInt[S]) Quo(by UInt[S]) (q UInt[S]) {
	q, _ = u.QuoRem(by)
	return q
}

func (u UInt[S]) Rem(by UInt[S]) (r UInt[S]) {
	_, r = u.QuoRem(by)
	return r
}

func (u UInt[S]) QuoRem64(by uint64) (q UInt[S], r uint64) {
	if by == 0 {
		panic("num: division by zero")
	}
	r = quoRemLimb(q.limbs(), u.limbs(), by)
	return q, r
}

func (u UInt[S]) Quo64(by uint64) (q UInt[S]) {
	q, _ = u.QuoRem64(by)
	return q
}

func (u UInt[S]) Rem64(by uint64) (r uint64) {
	_, r = u.QuoRem64(by)
	return r
}

// DivMod is QuoRem with the zero divisor reported as ErrDivisionByZero.
func (u UInt[S]) DivMod(by UInt[S]) (q, r UInt[S], err error) {
	if by.IsZero() {
		return q, r, errorf(ErrDivisionByZero, "uint%d %s / 0", u.Bits(), u.AsBigInt())
	}
	q, r = u.QuoRem(by)
	return q, r, nil
}

func (u UInt[S]) And(n UInt[S]) UInt[S] {
	for i := range u.w {
		u.w[i] &= n.w[i]
	}
	return u
}

func (u UInt[S]) AndNot(n UInt[S]) UInt[S] {
	for i := range u.w {
		u.w[i] &^= n.w[i]
	}
	return u
}

func (u UInt[S]) Or(n UInt[S]) UInt[S] {
	for i := range u.w {
		u.w[i] |= n.w[i]
	}
	return u
}

func (u UInt[S]) Xor(n UInt[S]) UInt[S] {
	for i := range u.w {
		u.w[i] ^= n.w[i]
	}
	return u
}

func (u UInt[S]) Not() (v UInt[S]) {
	notLimbs(v.limbs(), u.limbs())
	v.norm()
	return v
}

// Lsh shifts left by n bits. Shifting by the full width or more yields zero.
func (u UInt[S]) Lsh(n uint) (v UInt[S]) {
	shlLimbs(v.limbs(), u.limbs(), n)
	v.norm()
	return v
}

// Rsh is a logical right shift; it never sign-extends.
func (u UInt[S]) Rsh(n uint) (v UInt[S]) {
	shrLimbs(v.limbs(), u.limbs(), n, 0)
	return v
}

// Bit returns the value of bit i.
func (u UInt[S]) Bit(i int) uint {
	if i < 0 || i >= u.Bits() {
		return 0
	}
	return uint(u.w[i/limbBits]>>(uint(i)%limbBits)) & 1
}

// SetBit returns u with bit i set to b (0 or 1). Out of range indexes are ignored.
func (u UInt[S]) SetBit(i int, b uint) UInt[S] {
	if i < 0 || i >= u.Bits() {
		return u
	}
	mask := uint64(1) << (uint(i) % limbBits)
	if b == 0 {
		u.w[i/limbBits] &^= mask
	} else {
		u.w[i/limbBits] |= mask
	}
	return u
}

func (u UInt[S]) Cmp(n UInt[S]) int { return cmpLimbs(u.limbs(), n.limbs()) }

func (u UInt[S]) Cmp64(n uint64) int { return u.Cmp(UIntFrom64[S](n)) }

func (u UInt[S]) Equal(n UInt[S]) bool            { return u == n }
func (u UInt[S]) Equal64(n uint64) bool           { return u == UIntFrom64[S](n) }
func (u UInt[S]) GreaterThan(n UInt[S]) bool      { return u.Cmp(n) > 0 }
func (u UInt[S]) GreaterOrEqualTo(n UInt[S]) bool { return u.Cmp(n) >= 0 }
func (u UInt[S]) LessThan(n UInt[S]) bool         { return u.Cmp(n) < 0 }
func (u UInt[S]) LessOrEqualTo(n UInt[S]) bool    { return u.Cmp(n) <= 0 }

// LeadingZeros counts the zero bits above the most significant set bit
// within the width. It returns the width for zero.
func (u UInt[S]) LeadingZeros() uint {
	sh := shapeOf[S]()
	return leadingZerosLimbs(u.limbs()) - sh.spare
}

// TrailingZeros returns the width for zero.
func (u UInt[S]) TrailingZeros() uint {
	sh := shapeOf[S]()
	tz := trailingZerosLimbs(u.limbs())
	if tz > uint(sh.bits) {
		tz = uint(sh.bits)
	}
	return tz
}

// Msb is LeadingZeros: the distance of the highest set bit from the top of
// the width. A result equal to the width means no bit is set.
func (u UInt[S]) Msb() uint { return u.LeadingZeros() }

// Lsb is TrailingZeros: the index of the lowest set bit, or the width if no
// bit is set.
func (u UInt[S]) Lsb() uint { return u.TrailingZeros() }

// BitLen returns the number of bits needed to represent u.
func (u UInt[S]) BitLen() int { return u.Bits() - int(u.LeadingZeros()) }

// TrimmedSize returns the number of bytes needed to hold u without leading
// zero bytes. Zero has a trimmed size of zero.
func (u UInt[S]) TrimmedSize() int { return (u.BitLen() + 7) / 8 }

// TrimmedWords returns the number of limbs needed to hold u.
func (u UInt[S]) TrimmedWords() int { return usedLimbs(u.limbs()) }

// AsUint64 truncates u to its low 64 bits. See IsUint64 to check first.
func (u UInt[S]) AsUint64() uint64 { return u.w[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u UInt[S]) IsUint64() bool { return usedLimbs(u.limbs()) <= 1 }

// IntoBigInt copies u into a big.Int, allowing you to retain and recycle memory.
func (u UInt[S]) IntoBigInt(b *big.Int) {
	b.SetBits(limbsToWords(b.Bits()[:0], u.limbs()))
}

// AsBigInt allocates a new big.Int and copies u into it.
func (u UInt[S]) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u UInt[S]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsFloat64 returns the nearest float64 to u, rounding to nearest even.
func (u UInt[S]) AsFloat64() float64 {
	if u.IsUint64() {
		return float64(u.w[0])
	}
	f, _ := u.AsBigFloat().Float64()
	return f
}

// Log returns the natural logarithm of u. Log of zero is -Inf.
func (u UInt[S]) Log() float64 {
	if u.IsUint64() {
		return math.Log(float64(u.w[0]))
	}
	// Keep the top 64 bits as the mantissa so large values lose no precision
	// beyond float64's own.
	shift := uint(u.BitLen() - 64)
	top := u.Rsh(shift).w[0]
	return math.Log(float64(top)) + float64(shift)*math.Ln2
}

// String returns the lowercase hex representation, zero-padded to exactly
// N/4 digits, most significant first.
func (u UInt[S]) String() string {
	return limbsHex(u.limbs(), u.Bits())
}

func (u UInt[S]) Format(s fmt.State, c rune) {
	// %v and %s print the fixed-width hex form; everything else goes through big.Int.
	if (c == 'v' || c == 's') && !s.Flag('#') {
		fmt.Fprint(s, u.String())
		return
	}
	u.AsBigInt().Format(s, c)
}

func limbsHex(x []uint64, nbits int) string {
	const digits = "0123456789abcdef"
	n := nbits / 4
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		nib := (x[i/16] >> (uint(i%16) * 4)) & 0xf
		out[n-1-i] = digits[nib]
	}
	return string(out)
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// wordsToLimbs packs big.Word values into limbs; on 32-bit platforms two
// words make one limb.
func wordsToLimbs(z []uint64, words []big.Word) {
	switch bits.UintSize {
	case 64:
		for i, w := range words {
			z[i] = uint64(w)
		}
	case 32:
		for i, w := range words {
			z[i/2] |= uint64(w) << (uint(i%2) * 32)
		}
	default:
		panic("num: unsupported bit size")
	}
}

func limbsToWords(z []big.Word, x []uint64) []big.Word {
	x = x[:usedLimbs(x)]
	switch bits.UintSize {
	case 64:
		for _, l := range x {
			z = append(z, big.Word(l))
		}
	case 32:
		for _, l := range x {
			z = append(z, big.Word(uint32(l)), big.Word(l>>32))
		}
	default:
		panic("num: unsupported bit size")
	}
	return z
}
