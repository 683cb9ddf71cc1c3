package fixed

// shift multiplies the raw pattern by 2^k.
func (x Fixed[T]) shift(k int) Fixed[T] {
	if k >= 0 {
		return x.Lsh(uint(k))
	}
	return x.Rsh(uint(-k))
}

// Exp returns e^x. Arguments above MaxExp clamp to Max with StateOverflow
// and arguments below MinExp give zero.
func (c *Context[T]) Exp(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN():
		return c.nan(StateNaN)
	case x.IsPosInf():
		return c.inf(1)
	case x.IsNegInf(), x.LessThan(k.MinExp):
		return k.Zero
	case x.GreaterThan(k.MaxExp):
		return c.overflow(1)
	case x.IsZero():
		return k.One
	case x == k.One:
		return k.E
	}
	if x.Sign() < 0 {
		var q *Context[T]
		return q.Inv(q.exp(x.Neg()))
	}
	return c.exp(x)
}

// exp computes e^x for 0 < x <= MaxExp as 2^n·e^r with x = n·ln2 + r.
func (c *Context[T]) exp(x Fixed[T]) Fixed[T] {
	k := c.consts()
	var q *Context[T]

	n := q.Quo(x, k.Ln2).Floor()
	r := q.Sub(x, q.Mul(n, k.Ln2))

	// [5/5] Padé: e^r = P(r)/P(-r).
	p, m := k.exp[4], k.exp[4]
	nr := r.Neg()
	for i := 3; i >= 0; i-- {
		p = q.Add(k.exp[i], q.Mul(r, p))
		m = q.Add(k.exp[i], q.Mul(nr, m))
	}
	p = q.Add(k.One, q.Mul(r, p))
	m = q.Add(k.One, q.Mul(nr, m))
	e := q.Quo(p, m)

	sh := int(n.Int64())
	if e.raw.bitLen()+sh > e.raw.layout().bits-1 {
		return c.overflow(1)
	}
	return e.shift(sh)
}

// Log2 returns log₂x. Zero gives -∞ with StateInfinity; negative arguments
// give NaN.
func (c *Context[T]) Log2(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN(), x.Sign() < 0:
		return c.nan(StateNaN)
	case x.IsZero():
		return c.inf(-1)
	case x.IsPosInf():
		return c.inf(1)
	case x == k.One:
		return k.Zero
	}

	// x = 2^e·r with r in (√2/2, √2].
	e := x.raw.bitLen() - 1 - x.raw.layout().frac
	r := x.shift(-e)
	if r.GreaterThan(k.Sqrt2) {
		e++
		r = x.shift(-e)
	}

	var q *Context[T]
	return q.Add(q.FromInt64(int64(e)), c.log2Reduced(r))
}

// log2Reduced is a [4/4] Padé approximation of log₂r on (√2/2, √2].
func (c *Context[T]) log2Reduced(r Fixed[T]) Fixed[T] {
	k := c.consts()
	var q *Context[T]
	c137, c1762, c3762 := k.log2P[0], k.log2P[1], k.log2P[2]

	p := q.Add(c1762, q.Mul(c137, r))
	p = q.Add(c3762, q.Mul(r, p))
	p = q.Add(c1762, q.Mul(r, p))
	p = q.Add(c137, q.Mul(r, p))
	p = q.Mul(q.Sub(r, k.One), p)

	c24, c76, c30 := k.log2Q[0], k.log2Q[1], k.log2Q[2]
	d := q.Add(c24, r)
	d = q.Add(c76, q.Mul(r, d))
	d = q.Add(c24, q.Mul(r, d))
	d = q.Add(k.One, q.Mul(r, d))
	d = q.Mul(q.Mul(c30, q.Add(k.One, r)), d)
	d = q.Mul(d, k.Ln2)

	return q.Quo(p, d)
}

// Log returns the natural logarithm.
func (c *Context[T]) Log(x Fixed[T]) Fixed[T] {
	l := c.Log2(x)
	if !l.isFinite() {
		return l
	}
	var q *Context[T]
	return q.Quo(l, c.consts().Log2E)
}

func (c *Context[T]) Log10(x Fixed[T]) Fixed[T] {
	l := c.Log2(x)
	if !l.isFinite() {
		return l
	}
	var q *Context[T]
	return q.Quo(l, c.consts().Log210)
}

// Sqrt reduces x to 4^n·r with r in [1, 4), seeds with a Padé
// approximation and refines with two Goldschmidt iterations.
func (c *Context[T]) Sqrt(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN(), x.Sign() < 0:
		return c.nan(StateNaN)
	case x.IsPosInf():
		return c.inf(1)
	case x.IsZero(), x == k.One:
		return x
	}

	e := x.raw.bitLen() - 1 - x.raw.layout().frac
	n := e >> 1
	r := x.shift(-2 * n)

	var q *Context[T]
	c9, c11, c27, c33 := k.sqrtPQ[0], k.sqrtPQ[1], k.sqrtPQ[2], k.sqrtPQ[3]
	r3 := q.Mul(k.three, r)

	// (1+3r)(1+3r(11+r(9+r))) / (3+r)(3+r(27+r(33+r)))
	p := q.Add(c9, r)
	p = q.Add(c11, q.Mul(r, p))
	p = q.Add(k.One, q.Mul(r3, p))
	p = q.Mul(q.Add(k.One, r3), p)

	d := q.Add(c33, r)
	d = q.Add(c27, q.Mul(r, d))
	d = q.Add(k.three, q.Mul(r, d))
	d = q.Mul(q.Add(k.three, r), d)

	y := q.Quo(d, p) // ≈ 1/√r
	g := q.Mul(r, y)
	h := q.Mul(y, k.Half)
	for i := 0; i < 2; i++ {
		t := q.Sub(k.Half, q.Mul(g, h))
		g = q.Add(g, q.Mul(g, t))
		h = q.Add(h, q.Mul(h, t))
	}
	return g.shift(n)
}

// Pow returns x^y. Integer exponents use binary exponentiation and are
// valid for negative x; other exponents go through Exp(y·Log x).
func (c *Context[T]) Pow(x, y Fixed[T]) Fixed[T] {
	k := c.consts()
	if x.IsNaN() || y.IsNaN() {
		return c.nan(StateNaN)
	}
	switch {
	case y.IsZero():
		return k.One
	case x.IsZero():
		if y.Sign() < 0 {
			return c.nan(StateDivisionByZero)
		}
		return k.Zero
	case y == k.One:
		if x.IsInf() {
			return c.inf(x.Sign())
		}
		return x
	case x == k.One:
		return k.One
	}

	if y.IsInf() {
		switch ax := x.Abs(); {
		case ax == k.One:
			return k.One
		case ax.GreaterThan(k.One) == (y.Sign() > 0):
			return c.inf(1)
		}
		return k.Zero
	}

	if x.IsInf() {
		if y.Sign() < 0 {
			return k.Zero
		}
		if x.Sign() < 0 && y.isInteger() && y.Integer().bit(0) == 1 {
			return c.inf(-1)
		}
		return c.inf(1)
	}

	if y.isInteger() {
		return c.powInt(x, y)
	}
	if x.Sign() < 0 {
		return c.nan(StateNaN)
	}
	var q *Context[T]
	return c.Exp(q.Mul(y, q.Log(x)))
}

// powInt handles finite x and integer y by square and multiply over the
// bits of |y|.
func (c *Context[T]) powInt(x, y Fixed[T]) Fixed[T] {
	k := c.consts()
	var lc Context[T]

	e := y.Abs().Integer()
	n := e.bitLen()
	base, acc := x.Abs(), k.One
	for i := 0; i < n; i++ {
		if e.bit(i) == 1 {
			acc = lc.Mul(acc, base)
		}
		if i+1 < n {
			base = lc.Mul(base, base)
		}
	}
	st := lc.State()
	if x.Sign() < 0 && e.bit(0) == 1 {
		acc, st = negSaturated(acc, st)
	}

	if y.Sign() < 0 {
		if acc.IsZero() {
			// |x| < 1 raised to a large negative power.
			return c.overflow(1 - 2*int(e.bit(0))*boolInt(x.Sign() < 0))
		}
		var q *Context[T]
		return q.Inv(acc)
	}
	c.set(st)
	return acc
}

// negSaturated negates a magnitude computed under st. A magnitude clamped
// to Max, or one above -Min, ends up at Min with UNDERFLOW in place of
// OVERFLOW.
func negSaturated[T rawer[T]](x Fixed[T], st State) (Fixed[T], State) {
	var nc Context[T]
	x = nc.Neg(x)
	return x, st&^StateOverflow | nc.State()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
