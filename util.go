package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceUInt subtracts the smaller of a and b from the larger.
func DifferenceUInt[S Size](a, b UInt[S]) UInt[S] {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerUInt[S Size](a, b UInt[S]) UInt[S] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerUInt[S Size](a, b UInt[S]) UInt[S] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceInt returns the magnitude of a - b, which cannot overflow.
func DifferenceInt[S Size](a, b Int[S]) UInt[S] {
	if a.GreaterThan(b) {
		return a.UInt().Sub(b.UInt())
	}
	return b.UInt().Sub(a.UInt())
}

func LargerInt[S Size](a, b Int[S]) Int[S] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerInt[S Size](a, b Int[S]) Int[S] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// ResizeUInt converts u to width D, zero-extending or truncating.
func ResizeUInt[D, S Size](u UInt[S]) (out UInt[D]) {
	n := shapeOf[S]().limbs
	if dn := shapeOf[D]().limbs; dn < n {
		n = dn
	}
	copy(out.w[:n], u.w[:n])
	out.norm()
	return out
}

// ResizeInt converts i to width D, sign-extending or truncating.
func ResizeInt[D, S Size](i Int[S]) (out Int[D]) {
	sn, dn := shapeOf[S]().limbs, shapeOf[D]().limbs
	fill := i.fill()
	for n := 0; n < dn; n++ {
		if n < sn {
			out.w[n] = i.w[n]
		} else {
			out.w[n] = fill
		}
	}
	out.norm()
	return out
}
