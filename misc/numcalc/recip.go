package main

import (
	"strconv"

	"github.com/ledgermath/go-num"
	"github.com/spf13/cobra"
)

// The recip command finds the multiplicative reciprocal a compiler would use
// to replace division by a constant with a multiply-high and a shift, the
// same scheme libdivide uses, and checks it against real long division.
// The reciprocal is computed in a type twice as wide as the operands.

func newRecipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recip <numer> <denom>",
		Short: "Find the multiply-and-shift reciprocal of a constant divisor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				r   result
				err error
			)
			switch w := a.width(); w {
			case 32:
				r, err = recipOp[num.B32, num.B64](args[0], args[1])
			case 64:
				r, err = recipOp[num.B64, num.B128](args[0], args[1])
			case 128:
				r, err = recipOp[num.B128, num.B256](args[0], args[1])
			case 256:
				r, err = recipOp[num.B256, num.B512](args[0], args[1])
			default:
				return unsupportedWidth("recip", w)
			}
			if err != nil {
				return err
			}
			a.log.Debug("reciprocal", "denom", args[1], "magic", r.Hex, "note", r.Note)
			return a.print(r)
		},
	}
}

// divider holds the reciprocal of a divisor. A zero magic means the divisor
// is a power of two and division is a plain shift.
type divider[S num.Size] struct {
	magic num.UInt[S]
	shift uint
	add   bool
}

// findDivider computes the reciprocal of denom, which must be non-zero.
// D must be twice as wide as S.
func findDivider[S, D num.Size](denom num.UInt[S]) (d divider[S]) {
	n := uint(denom.Bits())
	floorLog2 := n - 1 - denom.LeadingZeros()

	if denom.And(denom.Dec()).IsZero() {
		d.shift = floorLog2
		return d
	}

	// 2^(N+floorLog2) / denom fits in N bits because denom > 2^floorLog2.
	proposed, rem := num.UIntFrom64[D](1).
		Lsh(floorLog2).
		Lsh(n).
		QuoRem(num.ResizeUInt[D](denom))

	m, r := num.ResizeUInt[S](proposed), num.ResizeUInt[S](rem)
	d.shift = floorLog2

	if e := denom.Sub(r); e.GreaterOrEqualTo(num.UIntFrom64[S](1).Lsh(floorLog2)) {
		// The magic number needs N+1 bits; the top bit is restored by the
		// add step in divide.
		m = m.Add(m)
		twice := r.Add(r)
		if twice.GreaterOrEqualTo(denom) || twice.LessThan(r) {
			m = m.Inc()
		}
		d.add = true
	}
	d.magic = m.Inc()
	return d
}

// mulHi returns the high N bits of the 2N-bit product x·y.
func mulHi[S, D num.Size](x, y num.UInt[S]) num.UInt[S] {
	p := num.ResizeUInt[D](x).Mul(num.ResizeUInt[D](y))
	return num.ResizeUInt[S](p.Rsh(uint(x.Bits())))
}

func (d divider[S]) divide(numer num.UInt[S], hi func(x, y num.UInt[S]) num.UInt[S]) num.UInt[S] {
	if d.magic.IsZero() {
		return numer.Rsh(d.shift)
	}
	q := hi(numer, d.magic)
	if d.add {
		return numer.Sub(q).Rsh(1).Add(q).Rsh(d.shift)
	}
	return q.Rsh(d.shift)
}

func recipOp[S, D num.Size](ns, ds string) (r result, err error) {
	numer, err := parseUInt[S](ns)
	if err != nil {
		return r, err
	}
	denom, err := parseUInt[S](ds)
	if err != nil {
		return r, err
	}
	if denom.IsZero() {
		return r, num.ErrDivisionByZero
	}

	d := findDivider[S, D](denom)
	got := d.divide(numer, mulHi[S, D])
	if want := numer.Quo(denom); got != want {
		return r, Error.New("reciprocal of %s gives %s / %s = %s, want %s",
			denom.AsBigInt(), numer.AsBigInt(), denom.AsBigInt(), got.AsBigInt(), want.AsBigInt())
	}

	r = uintResult("recip", got)
	r.Hex = d.magic.String()
	r.Note = "shift " + strconv.Itoa(int(d.shift))
	if d.add {
		r.Note += ", add"
	}
	return r, nil
}
