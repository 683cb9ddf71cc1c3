package fixed

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// overflow clamps toward the sign of ovf and raises the matching flag.
func (c *Context[T]) overflow(ovf int) Fixed[T] {
	k := c.consts()
	if ovf > 0 {
		c.set(StateOverflow)
		return k.Max
	}
	c.set(StateUnderflow)
	return k.Min
}

// clamp checks a finite raw result against [Min, Max].
func (c *Context[T]) clamp(v T, ovf int) Fixed[T] {
	if ovf != 0 {
		return c.overflow(ovf)
	}
	if v.cmp(c.consts().Min.raw) < 0 {
		return c.overflow(-1)
	}
	return Fixed[T]{raw: v}
}

// FromInt64 converts v, clamping integers outside the width's range.
func (c *Context[T]) FromInt64(v int64) Fixed[T] {
	var z T
	l := z.layout()
	if ib := l.intBits() - 1; ib < 63 {
		lim := int64(1)<<ib - 1
		if v > lim {
			return c.overflow(1)
		} else if v < -lim {
			return c.overflow(-1)
		}
	} else if v == math.MinInt64 && ib == 63 {
		return c.overflow(-1)
	}
	return Fixed[T]{raw: z.fromInt64(v).shl(uint(l.frac))}
}

// FromInt converts any native integer.
func FromInt[T rawer[T], V constraints.Integer](c *Context[T], v V) Fixed[T] {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return c.FromBigInt(new(big.Int).SetUint64(uint64(v)))
	}
	return c.FromInt64(int64(v))
}

// FromBigInt converts the integer v, clamping if it is out of range.
func (c *Context[T]) FromBigInt(v *big.Int) Fixed[T] {
	var z T
	l := z.layout()
	return c.fromScaled(new(big.Int).Lsh(v, uint(l.frac)))
}

// fromScaled converts an exact raw value, clamping if it is out of range.
func (c *Context[T]) fromScaled(raw *big.Int) Fixed[T] {
	k := c.consts()
	if raw.Cmp(k.Max.raw.toBig()) > 0 {
		return c.overflow(1)
	} else if raw.Cmp(k.Min.raw.toBig()) < 0 {
		return c.overflow(-1)
	}
	var z T
	return Fixed[T]{raw: z.fromBig(raw)}
}

// FromFloat64 scales v by 2^F and truncates toward zero.
func (c *Context[T]) FromFloat64(v float64) Fixed[T] {
	k := c.consts()
	switch {
	case math.IsNaN(v):
		return k.NaN
	case math.IsInf(v, 1):
		return k.PosInf
	case math.IsInf(v, -1):
		return k.NegInf
	}
	var z T
	f := new(big.Float).SetFloat64(v)
	f.SetMantExp(f, z.layout().frac)
	b, _ := f.Int(nil)
	return c.fromScaled(b)
}

// FromParts builds integer + fraction/2^F from the raw fractional bits.
// Only the low F bits of fraction are used.
func (c *Context[T]) FromParts(integer int64, fraction uint64) Fixed[T] {
	x := c.FromInt64(integer)
	if x == c.consts().Max || x == c.consts().Min {
		return x
	}
	var z T
	l := z.layout()
	if l.frac < 64 {
		fraction &= 1<<uint(l.frac) - 1
	}
	f := z.fromBig(new(big.Int).SetUint64(fraction))
	return Fixed[T]{raw: x.raw.add(f)}
}
