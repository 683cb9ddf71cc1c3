package fixed

func (c *Context[T]) SinH(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN():
		return c.nan(StateNaN)
	case x.IsInf():
		return c.inf(x.Sign())
	case x.Abs().GreaterThan(k.MaxExp):
		// e^-|x| is lost; e^|x|/2 = e^(|x|-ln2).
		var (
			q  *Context[T]
			lc Context[T]
		)
		e := lc.Exp(q.Sub(x.Abs(), k.Ln2))
		st := lc.State()
		if x.Sign() < 0 {
			e, st = negSaturated(e, st)
		}
		c.set(st)
		return e
	}
	var q *Context[T]
	return q.Sub(q.Mul(k.Half, q.Exp(x)), q.Mul(k.Half, q.Exp(x.Neg())))
}

func (c *Context[T]) CosH(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN():
		return c.nan(StateNaN)
	case x.IsInf():
		return c.inf(1)
	case x.Abs().GreaterThan(k.MaxExp):
		var q *Context[T]
		return c.Exp(q.Sub(x.Abs(), k.Ln2))
	}
	var q *Context[T]
	return q.Add(q.Mul(k.Half, q.Exp(x)), q.Mul(k.Half, q.Exp(x.Neg())))
}

// TanH saturates to ±1, including at the infinities.
func (c *Context[T]) TanH(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN():
		return c.nan(StateNaN)
	case x.IsPosInf():
		return k.One
	case x.IsNegInf():
		return k.One.Neg()
	case x.Abs().GreaterThan(k.MaxExp):
		if x.Sign() < 0 {
			return k.One.Neg()
		}
		return k.One
	}

	// tanh|x| = (1 - e^-2|x|) / (1 + e^-2|x|)
	var q *Context[T]
	e := q.Exp(q.Mul(k.Two, x.Abs()).Neg())
	t := q.Quo(q.Sub(k.One, e), q.Add(k.One, e))
	if x.Sign() < 0 {
		return t.Neg()
	}
	return t
}

// bigArg reports whether x² would not fit, in which case √(x²±1) ≈ x.
func (c *Context[T]) bigArg(x Fixed[T]) bool {
	k := c.consts()
	return x.GreaterThan(k.One.Lsh(uint((x.raw.layout().intBits() - 2) / 2)))
}

func (c *Context[T]) ASinH(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN():
		return c.nan(StateNaN)
	case x.IsInf():
		return c.inf(x.Sign())
	case x.Sign() < 0:
		return c.ASinH(x.Neg()).Neg()
	case x.IsZero():
		return x
	}
	var q *Context[T]
	if c.bigArg(x) {
		return q.Add(q.Log(x), k.Ln2)
	}
	return q.Log(q.Add(x, q.Sqrt(q.Add(q.Mul(x, x), k.One))))
}

// ACosH returns NaN below one.
func (c *Context[T]) ACosH(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN(), x.LessThan(k.One):
		return c.nan(StateNaN)
	case x.IsPosInf():
		return c.inf(1)
	}
	var q *Context[T]
	if c.bigArg(x) {
		return q.Add(q.Log(x), k.Ln2)
	}
	return q.Log(q.Add(x, q.Sqrt(q.Sub(q.Mul(x, x), k.One))))
}

// ATanH returns NaN unless |x| < 1.
func (c *Context[T]) ATanH(x Fixed[T]) Fixed[T] {
	k := c.consts()
	if !x.isFinite() || x.Abs().GreaterOrEqualTo(k.One) {
		return c.nan(StateNaN)
	}
	var q *Context[T]
	return q.Mul(k.Half, q.Log(q.Quo(q.Add(k.One, x), q.Sub(k.One, x))))
}
