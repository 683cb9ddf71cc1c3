package fixed

// Fmod returns x - n·y for n = x/y truncated toward zero. The result has
// the sign of x and is exact.
func (c *Context[T]) Fmod(x, y Fixed[T]) Fixed[T] {
	switch {
	case x.IsNaN(), y.IsNaN(), x.IsInf():
		return c.nan(StateNaN)
	case y.IsZero():
		return c.nan(StateNaN)
	case y.IsInf():
		return x
	}
	return Fixed[T]{raw: x.raw.rem(y.raw)}
}

// Remainder returns x - Round(x/y)·y, with Round rounding halves up. The
// result is exact.
func (c *Context[T]) Remainder(x, y Fixed[T]) Fixed[T] {
	switch {
	case x.IsNaN(), y.IsNaN(), x.IsInf():
		return c.nan(StateNaN)
	case y.IsZero():
		return c.nan(StateNaN)
	case y.IsInf():
		return x
	}

	ay, r := y.raw, x.raw.rem(y.raw)
	if ay.sign() < 0 {
		ay = ay.neg()
	}
	if r.sign() < 0 {
		r = r.neg()
	}
	// r is |x| mod |y|. Rounding up takes it to r-|y|; x/y ties round up
	// only when it is positive, which is when the signs agree.
	half := ay.sub(r).cmp(r)
	if half < 0 || (half == 0 && x.Sign() == y.Sign()) {
		r = r.sub(ay)
	}
	if x.Sign() < 0 {
		r = r.neg()
	}
	return Fixed[T]{raw: r}
}
