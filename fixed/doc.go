/*
Package fixed implements signed Q(I.F) fixed-point numbers of 32, 64, 128 and
256 bits: Fp32 (Q16.16), Fp64 (Q32.32), Fp128 (Q64.64) and Fp256
(Q128.128). The two wider formats are backed by num.Int128 and num.Int256
and use num.Int256 and num.Int512 for exact products and quotients.

Results that the format cannot hold do not fail. They clamp or become one of
three reserved patterns (NaN, +∞ and -∞) and raise a sticky flag on the
Context the operation was run through:

	var ctx fixed.Ctx64
	k := fixed.Fp64Const()
	x := ctx.Quo(k.One, k.Zero) // NaN
	if ctx.IsStateDivisionByZero() {
		...
	}
	ctx.Clear()

A nil *Context drops the flags, which is convenient when only the value
matters. Only Parse and the text decoders return errors, for malformed
input.

The transcendental functions reduce their argument to a small interval and
evaluate a rational approximation there. Their error against float64 is
below the width's Tolerance constant on average.
*/
package fixed
