package fixed

// nan returns NaN and raises s.
func (c *Context[T]) nan(s State) Fixed[T] {
	c.set(s)
	return c.consts().NaN
}

// inf returns the infinity with the given sign and raises StateInfinity.
func (c *Context[T]) inf(sign int) Fixed[T] {
	c.set(StateInfinity)
	if sign < 0 {
		return c.consts().NegInf
	}
	return c.consts().PosInf
}

// Add returns a+b. Same-signed infinities add to themselves and opposite
// ones give NaN. Finite sums outside [Min, Max] clamp.
func (c *Context[T]) Add(a, b Fixed[T]) Fixed[T] {
	if a.IsNaN() || b.IsNaN() {
		return c.nan(StateNaN)
	}
	if a.IsInf() || b.IsInf() {
		switch {
		case !b.IsInf():
			return c.inf(a.Sign())
		case !a.IsInf(), a == b:
			return c.inf(b.Sign())
		}
		return c.nan(StateNaN)
	}

	v := a.raw.add(b.raw)
	sa, sb := a.raw.sign(), b.raw.sign()
	if sa == sb && sa != 0 && v.sign() != sa {
		return c.overflow(sa)
	}
	return c.clamp(v, 0)
}

// Sub returns a-b, following Add for the infinities.
func (c *Context[T]) Sub(a, b Fixed[T]) Fixed[T] {
	if a.IsNaN() || b.IsNaN() {
		return c.nan(StateNaN)
	}
	if a.IsInf() || b.IsInf() {
		return c.Add(a, b.Neg())
	}

	v := a.raw.sub(b.raw)
	sa, sb := a.raw.sign(), b.raw.sign()
	if sb != 0 && sa != sb && v.sign() == sb {
		if sa == 0 {
			// 0 - b only wraps for the most negative pattern.
			return c.clamp(v, 0)
		}
		return c.overflow(sa)
	}
	return c.clamp(v, 0)
}

// Mul returns a·b computed exactly in the double-width type and shifted
// back by F. Zero times an infinity is NaN.
func (c *Context[T]) Mul(a, b Fixed[T]) Fixed[T] {
	if a.IsNaN() || b.IsNaN() {
		return c.nan(StateNaN)
	}
	if a.IsInf() || b.IsInf() {
		if a.IsZero() || b.IsZero() {
			return c.nan(StateNaN)
		}
		return c.inf(a.Sign() * b.Sign())
	}
	v, ovf := a.raw.mulFrac(b.raw)
	return c.clamp(v, ovf)
}

// Quo returns a/b truncated toward zero. x/0 is NaN: 0/0 raises StateNaN
// and any other numerator raises StateDivisionByZero.
func (c *Context[T]) Quo(a, b Fixed[T]) Fixed[T] {
	if a.IsNaN() || b.IsNaN() {
		return c.nan(StateNaN)
	}
	if b.IsZero() {
		if a.IsZero() {
			return c.nan(StateNaN)
		}
		return c.nan(StateDivisionByZero)
	}
	switch {
	case a.IsInf() && b.IsInf():
		return c.nan(StateNaN)
	case a.IsInf():
		return c.inf(a.Sign() * b.Sign())
	case b.IsInf():
		return c.consts().Zero
	}
	v, ovf := a.raw.quoFrac(b.raw)
	return c.clamp(v, ovf)
}

// Div is Quo.
func (c *Context[T]) Div(a, b Fixed[T]) Fixed[T] { return c.Quo(a, b) }

// Inv returns 1/x.
func (c *Context[T]) Inv(x Fixed[T]) Fixed[T] { return c.Quo(c.consts().One, x) }

// Neg is x.Neg, raising UNDERFLOW when x is above -Min and the result
// saturates.
func (c *Context[T]) Neg(x Fixed[T]) Fixed[T] {
	if x.isFinite() && x.raw.neg().cmp(c.consts().Min.raw) < 0 {
		return c.overflow(-1)
	}
	return x.Neg()
}

// Abs never raises anything: |Min| is always in range.
func (c *Context[T]) Abs(x Fixed[T]) Fixed[T] { return x.Abs() }

// Sign returns -1, 0 or 1 as a value of the same width. NaN stays NaN.
func (c *Context[T]) Sign(x Fixed[T]) Fixed[T] {
	if x.IsNaN() {
		return c.nan(StateNaN)
	}
	k := c.consts()
	switch x.Sign() {
	case 1:
		return k.One
	case -1:
		return k.One.Neg()
	}
	return k.Zero
}
