package num

import (
	"math/bits"
)

// The functions in this file operate on little-endian limb slices. Unless
// noted otherwise, every slice argument must have the same length and the
// destination may alias any of the sources.

func addLimbs(z, x, y []uint64) (carry uint64) {
	for i := range z {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

func subLimbs(z, x, y []uint64) (borrow uint64) {
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// addLimb adds a single word, rippling the carry upwards.
func addLimb(z, x []uint64, y uint64) (carry uint64) {
	carry = y
	for i := range z {
		z[i], carry = bits.Add64(x[i], carry, 0)
	}
	return carry
}

func subLimb(z, x []uint64, y uint64) (borrow uint64) {
	borrow = y
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], borrow, 0)
	}
	return borrow
}

func notLimbs(z, x []uint64) {
	for i := range z {
		z[i] = ^x[i]
	}
}

// negLimbs computes the two's complement: complement every limb, then add one.
func negLimbs(z, x []uint64) {
	notLimbs(z, x)
	addLimb(z, z, 1)
}

// mulLimbs is schoolbook multiplication truncated to len(z) limbs. Each
// 64x64 partial product is accumulated in a 128-bit hi/lo pair; the hi word
// carries into the next column. z may alias x or y.
func mulLimbs(z, x, y []uint64) {
	var t [maxLimbs]uint64
	n := len(z)
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < n; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
	}
	copy(z, t[:n])
}

// mulLimb multiplies by a single word, returning the overflow word.
func mulLimb(z, x []uint64, y uint64) (carry uint64) {
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var c uint64
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return carry
}

// shlLimbs shifts left by s bits, split into whole-limb moves plus a sub-limb
// shift carrying between adjacent limbs.
func shlLimbs(z, x []uint64, s uint) {
	n := len(z)
	if s >= uint(n*limbBits) {
		clearLimbs(z)
		return
	}
	w, b := int(s/limbBits), s%limbBits
	for i := n - 1; i >= 0; i-- {
		j := i - w
		var v uint64
		if j >= 0 {
			v = x[j] << b
			if b > 0 && j > 0 {
				v |= x[j-1] >> (limbBits - b)
			}
		}
		z[i] = v
	}
}

// shrLimbs shifts right by s bits. Vacated bits are set from fill, which
// must be 0 for a logical shift or all ones for an arithmetic shift of a
// negative value.
func shrLimbs(z, x []uint64, s uint, fill uint64) {
	n := len(z)
	if s >= uint(n*limbBits) {
		for i := range z {
			z[i] = fill
		}
		return
	}
	w, b := int(s/limbBits), s%limbBits
	for i := 0; i < n; i++ {
		j := i + w
		lo, hi := fill, fill
		if j < n {
			lo = x[j]
		}
		if j+1 < n {
			hi = x[j+1]
		}
		if b == 0 {
			z[i] = lo
		} else {
			z[i] = lo>>b | hi<<(limbBits-b)
		}
	}
}

func clearLimbs(z []uint64) {
	for i := range z {
		z[i] = 0
	}
}

func isZeroLimbs(x []uint64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

// cmpLimbs compares from the most significant limb down.
func cmpLimbs(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

func leadingZerosLimbs(x []uint64) uint {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(len(x)-1-i)*limbBits + uint(bits.LeadingZeros64(x[i]))
		}
	}
	return uint(len(x) * limbBits)
}

func trailingZerosLimbs(x []uint64) uint {
	for i, v := range x {
		if v != 0 {
			return uint(i)*limbBits + uint(bits.TrailingZeros64(v))
		}
	}
	return uint(len(x) * limbBits)
}

// usedLimbs is the number of limbs below and including the highest non-zero limb.
func usedLimbs(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// quoRemLimb divides x by a single word. q may alias x.
func quoRemLimb(q, x []uint64, y uint64) (r uint64) {
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// quoRemLimbs divides u by a non-zero by. If by is a single word it uses
// word division, if it is a power of two it shifts, otherwise it uses binary
// long division: the divisor is shifted left until its top bit lines up with
// the dividend's, then each step doubles the quotient, subtracts the divisor
// when it fits and halves the divisor.
func quoRemLimbs(q, r, u, by []uint64) {
	n := len(u)
	var ua, ba, qa [maxLimbs]uint64
	copy(ua[:n], u)
	copy(ba[:n], by)
	uw, bw := ua[:n], ba[:n]

	if usedLimbs(bw) == 1 {
		rem := quoRemLimb(q, uw, bw[0])
		clearLimbs(r)
		r[0] = rem
		return
	}

	byLeading0 := leadingZerosLimbs(bw)
	byTrailing0 := trailingZerosLimbs(bw)
	if byLeading0+byTrailing0 == uint(n*limbBits-1) {
		shrLimbs(q, uw, byTrailing0, 0)
		subLimb(bw, bw, 1)
		for i := range r {
			r[i] = uw[i] & bw[i]
		}
		return
	}

	switch cmpLimbs(uw, bw) {
	case -1:
		clearLimbs(q)
		copy(r, uw)
		return
	case 0:
		clearLimbs(q)
		q[0] = 1
		clearLimbs(r)
		return
	}

	uLeading0 := leadingZerosLimbs(uw)
	shift := int(byLeading0 - uLeading0)
	shlLimbs(bw, bw, uint(shift))

	qw := qa[:n]
	for {
		shlLimbs(qw, qw, 1)
		if cmpLimbs(uw, bw) >= 0 {
			subLimbs(uw, uw, bw)
			qw[0] |= 1
		}
		shrLimbs(bw, bw, 1, 0)

		if shift <= 0 {
			break
		}
		shift--
	}

	copy(q, qw)
	copy(r, uw)
}
