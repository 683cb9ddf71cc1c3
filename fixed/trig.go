package fixed

// Sin reduces its argument modulo 2π and evaluates one of the quarter-wave
// approximations by quadrant.
func (c *Context[T]) Sin(x Fixed[T]) Fixed[T] {
	if !x.isFinite() {
		return c.nan(StateNaN)
	}
	if x.Sign() < 0 {
		return c.Sin(x.Neg()).Neg()
	}
	n, r := c.reduce(x)
	if r.IsZero() && n == 0 {
		return r
	}
	return c.quadrant(n, r)
}

func (c *Context[T]) Cos(x Fixed[T]) Fixed[T] {
	if !x.isFinite() {
		return c.nan(StateNaN)
	}
	n, r := c.reduce(x.Abs())
	if r.IsZero() && n == 0 {
		return c.consts().One
	}
	// cos(x) = sin(x + π/2)
	return c.quadrant((n+1)&3, r)
}

// reduce splits x >= 0 into the quadrant n and the offset r in [0, π/2).
func (c *Context[T]) reduce(x Fixed[T]) (n int64, r Fixed[T]) {
	k := c.consts()
	var q *Context[T]
	r = q.Fmod(x, k.TwoPi)
	n = q.Quo(r, k.Pi2).Int64()
	if n > 3 {
		n = 3
	}
	return n, q.Sub(r, q.Mul(q.FromInt64(n), k.Pi2))
}

func (c *Context[T]) quadrant(n int64, r Fixed[T]) Fixed[T] {
	switch n {
	case 0:
		return c.sinPi2(r)
	case 1:
		return c.cosPi2(r)
	case 2:
		return c.sinPi2(r).Neg()
	}
	return c.cosPi2(r).Neg()
}

// sinPi2 and cosPi2 take r in [0, π/2] and fold it onto [0, π/4].
func (c *Context[T]) sinPi2(r Fixed[T]) Fixed[T] {
	k := c.consts()
	if r.GreaterThan(k.Pi4) {
		var q *Context[T]
		return c.cosPi4(q.Sub(k.Pi2, r))
	}
	return c.sinPi4(r)
}

func (c *Context[T]) cosPi2(r Fixed[T]) Fixed[T] {
	k := c.consts()
	if r.GreaterThan(k.Pi4) {
		var q *Context[T]
		return c.sinPi4(q.Sub(k.Pi2, r))
	}
	return c.cosPi4(r)
}

func (c *Context[T]) sinPi4(r Fixed[T]) Fixed[T] {
	k := c.consts()
	var q *Context[T]
	r2 := q.Mul(r, r)
	p := q.Mul(r, q.Add(k.sinP[0], q.Mul(r2, q.Add(k.sinP[1], q.Mul(r2, k.sinP[2])))))
	d := q.Add(k.sinQ[0], q.Mul(r2, q.Add(k.sinQ[1], q.Mul(r2, k.sinQ[2]))))
	return q.Quo(p, d)
}

func (c *Context[T]) cosPi4(r Fixed[T]) Fixed[T] {
	k := c.consts()
	var q *Context[T]
	r2 := q.Mul(r, r)
	p := q.Add(k.cosP[0], q.Mul(r2, q.Add(k.cosP[1], q.Mul(r2, k.cosP[2]))))
	d := q.Add(k.cosQ[0], q.Mul(r2, q.Add(k.cosQ[1], q.Mul(r2, k.cosQ[2]))))
	return q.Quo(p, d)
}

// Tan is odd and has period π. Exactly π/2 gives +∞.
func (c *Context[T]) Tan(x Fixed[T]) Fixed[T] {
	if !x.isFinite() {
		return c.nan(StateNaN)
	}
	if x.Sign() < 0 {
		return c.Tan(x.Neg()).Neg()
	}

	k := c.consts()
	var q *Context[T]
	r := q.Fmod(x, k.Pi)
	P1, P2 := k.tanP[0], k.tanP[1]
	Q1, Q2, Q3 := k.tanQ[0], k.tanQ[1], k.tanQ[2]

	switch {
	case r.LessOrEqualTo(k.Pi4):
		r2 := q.Mul(r, r)
		p := q.Mul(r, q.Add(k.One, q.Mul(r2, q.Add(P1, q.Mul(r2, P2)))))
		d := q.Add(k.One, q.Mul(r2, q.Add(Q1, q.Mul(r2, q.Add(Q2, q.Mul(r2, Q3))))))
		return c.Quo(p, d)

	case r.LessThan(k.Pi2):
		// tan(r) = -1/tan(r - π/2)
		y := q.Sub(r, k.Pi2)
		y2 := q.Mul(y, y)
		p := q.Add(k.One, q.Mul(y2, q.Add(Q1, q.Mul(y2, q.Add(Q2, q.Mul(y2, Q3))))))
		d := q.Mul(y, q.Add(k.One, q.Mul(y2, q.Add(P1, q.Mul(y2, P2)))))
		return c.Quo(p.Neg(), d)

	case r == k.Pi2:
		return c.inf(1)
	}
	return c.Tan(q.Sub(k.Pi, r)).Neg()
}

// asinR is the NetBSD rational (asin(x)-x)/x³ evaluated at t = x².
func (c *Context[T]) asinR(t Fixed[T]) Fixed[T] {
	k := c.consts()
	var q *Context[T]
	p := k.asinP[5]
	for i := 4; i >= 0; i-- {
		p = q.Add(k.asinP[i], q.Mul(t, p))
	}
	p = q.Mul(t, p)
	d := k.asinQ[3]
	for i := 2; i >= 0; i-- {
		d = q.Add(k.asinQ[i], q.Mul(t, d))
	}
	d = q.Add(k.One, q.Mul(t, d))
	return q.Quo(p, d)
}

// ASin returns NaN outside [-1, 1].
func (c *Context[T]) ASin(x Fixed[T]) Fixed[T] {
	k := c.consts()
	if !x.isFinite() || x.Abs().GreaterThan(k.One) {
		return c.nan(StateNaN)
	}
	if x.Sign() < 0 {
		return c.ASin(x.Neg()).Neg()
	}
	if x == k.One {
		return k.Pi2
	}

	var q *Context[T]
	if x.LessThan(k.Half) {
		return q.Add(x, q.Mul(x, c.asinR(q.Mul(x, x))))
	}
	// asin(x) = π/2 - 2·asin(√((1-x)/2))
	t := q.Mul(q.Sub(k.One, x), k.Half)
	s := q.Sqrt(t)
	a := q.Add(s, q.Mul(s, c.asinR(t)))
	return q.Sub(k.Pi2, q.Mul(k.Two, a))
}

func (c *Context[T]) ACos(x Fixed[T]) Fixed[T] {
	a := c.ASin(x)
	if a.IsNaN() {
		return a
	}
	var q *Context[T]
	return q.Sub(c.consts().Pi2, a)
}

func (c *Context[T]) ATan(x Fixed[T]) Fixed[T] {
	k := c.consts()
	switch {
	case x.IsNaN():
		return c.nan(StateNaN)
	case x.IsPosInf():
		return k.Pi2
	case x.IsNegInf():
		return k.Pi2.Neg()
	case x.Sign() < 0:
		return c.ATan(x.Neg()).Neg()
	}

	var q *Context[T]
	if x.GreaterThan(k.One) {
		return q.Sub(k.Pi2, c.atan(q.Inv(x)))
	}
	return c.atan(x)
}

// atan is a Padé approximation on [0, 1].
func (c *Context[T]) atan(x Fixed[T]) Fixed[T] {
	k := c.consts()
	var q *Context[T]
	x2 := q.Mul(x, x)

	p := k.atanP[3]
	for i := 2; i >= 0; i-- {
		p = q.Add(k.atanP[i], q.Mul(x2, p))
	}
	p = q.Mul(x, q.Add(k.One, q.Mul(x2, p)))

	d := k.atanQ[4]
	for i := 3; i >= 0; i-- {
		d = q.Add(k.atanQ[i], q.Mul(x2, d))
	}
	d = q.Add(k.One, q.Mul(x2, d))
	return q.Quo(p, d)
}

// ATan2 returns the angle of the point (x, y) in (-π, π].
func (c *Context[T]) ATan2(y, x Fixed[T]) Fixed[T] {
	k := c.consts()
	var q *Context[T]
	if x.IsNaN() || y.IsNaN() {
		return c.nan(StateNaN)
	}

	switch {
	case y.IsInf():
		a := k.Pi2
		if x.IsNegInf() {
			a = q.Add(k.Pi2, k.Pi4)
		} else if x.IsPosInf() {
			a = k.Pi4
		}
		if y.Sign() < 0 {
			return a.Neg()
		}
		return a
	case x.IsPosInf():
		return k.Zero
	case x.IsNegInf():
		if y.Sign() < 0 {
			return k.Pi.Neg()
		}
		return k.Pi
	case y.IsZero() && x.IsZero():
		return k.Zero
	case y.Sign() < 0:
		return c.ATan2(y.Neg(), x).Neg()
	case x.IsZero():
		return k.Pi2
	}

	// y > 0 and x finite non-zero. Keep the ATan argument at most one so
	// y/x cannot overflow.
	ax := x.Abs()
	var a Fixed[T]
	if y.GreaterThan(ax) {
		a = q.Sub(k.Pi2, c.atan(q.Quo(ax, y)))
	} else {
		a = c.atan(q.Quo(y, ax))
	}
	if x.Sign() < 0 {
		return q.Sub(k.Pi, a)
	}
	return a
}
