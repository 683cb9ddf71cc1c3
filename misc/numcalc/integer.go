package main

import (
	"strconv"

	"github.com/ledgermath/go-num"
	"github.com/spf13/cobra"
)

const integerOps = "add, sub, mul, quo, rem, and, or, xor, lsh, rsh, cmp"

func newUIntCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uint <op> <a> <b>",
		Short: "Unsigned fixed-width arithmetic (" + integerOps + ")",
		Long: `Applies op to a and b as unsigned integers of --width bits. Operands
accept Go integer literal prefixes (0x, 0o, 0b). Results wrap modulo 2^width.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				r   result
				err error
			)
			switch w := a.width(); w {
			case 32:
				r, err = uintOp[num.B32](args[0], args[1], args[2])
			case 64:
				r, err = uintOp[num.B64](args[0], args[1], args[2])
			case 72:
				r, err = uintOp[num.B72](args[0], args[1], args[2])
			case 128:
				r, err = uintOp[num.B128](args[0], args[1], args[2])
			case 256:
				r, err = uintOp[num.B256](args[0], args[1], args[2])
			case 272:
				r, err = uintOp[num.B272](args[0], args[1], args[2])
			case 512:
				r, err = uintOp[num.B512](args[0], args[1], args[2])
			default:
				return unsupportedWidth("uint", w)
			}
			if err != nil {
				return err
			}
			return a.print(r)
		},
	}
}

func newIntCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "int <op> <a> <b>",
		Short: "Signed two's-complement fixed-width arithmetic (" + integerOps + ")",
		Long: `Applies op to a and b as signed integers of --width bits. Division
truncates toward zero. Use -- before negative operands.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				r   result
				err error
			)
			switch w := a.width(); w {
			case 64:
				r, err = intOp[num.B64](args[0], args[1], args[2])
			case 128:
				r, err = intOp[num.B128](args[0], args[1], args[2])
			case 256:
				r, err = intOp[num.B256](args[0], args[1], args[2])
			case 512:
				r, err = intOp[num.B512](args[0], args[1], args[2])
			default:
				return unsupportedWidth("int", w)
			}
			if err != nil {
				return err
			}
			return a.print(r)
		},
	}
}

func parseShift(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, Error.New("shift %q: %v", s, err)
	}
	return uint(n), nil
}

func parseUInt[S num.Size](s string) (num.UInt[S], error) {
	v, acc, err := num.UIntFromString[S](s, 0)
	if err != nil {
		return v, err
	} else if !acc {
		return v, Error.New("%q does not fit in uint%d", s, num.BitsOf[S]())
	}
	return v, nil
}

func parseInt[S num.Size](s string) (num.Int[S], error) {
	v, acc, err := num.IntFromString[S](s, 0)
	if err != nil {
		return v, err
	} else if !acc {
		return v, Error.New("%q does not fit in int%d", s, num.BitsOf[S]())
	}
	return v, nil
}

func uintResult[S num.Size](op string, v num.UInt[S]) result {
	return result{
		Op:     op,
		Width:  v.Bits(),
		Value:  v.AsBigInt().String(),
		Hex:    v.String(),
		Limbs:  v.Limbs(),
		bitLen: v.BitLen(),
		size:   v.TrimmedSize(),
	}
}

func uintOp[S num.Size](op, as, bs string) (r result, err error) {
	x, err := parseUInt[S](as)
	if err != nil {
		return r, err
	}

	var v num.UInt[S]
	switch op {
	case "lsh", "rsh":
		n, err := parseShift(bs)
		if err != nil {
			return r, err
		}
		if op == "lsh" {
			v = x.Lsh(n)
		} else {
			v = x.Rsh(n)
		}
		return uintResult(op, v), nil
	}

	y, err := parseUInt[S](bs)
	if err != nil {
		return r, err
	}
	switch op {
	case "add":
		v = x.Add(y)
	case "sub":
		v = x.Sub(y)
	case "mul":
		v = x.Mul(y)
	case "quo", "rem":
		q, m, err := x.DivMod(y)
		if err != nil {
			return r, err
		}
		v = q
		if op == "rem" {
			v = m
		}
	case "and":
		v = x.And(y)
	case "or":
		v = x.Or(y)
	case "xor":
		v = x.Xor(y)
	case "cmp":
		return result{Op: op, Width: x.Bits(), Value: strconv.Itoa(x.Cmp(y))}, nil
	default:
		return r, Error.New("unknown uint op %q, want one of %s", op, integerOps)
	}
	return uintResult(op, v), nil
}

func intResult[S num.Size](op string, v num.Int[S]) result {
	return result{
		Op:     op,
		Width:  v.Bits(),
		Value:  v.AsBigInt().String(),
		Hex:    v.String(),
		Limbs:  v.Limbs(),
		bitLen: v.BitLen(),
		size:   v.AbsUInt().TrimmedSize(),
	}
}

func intOp[S num.Size](op, as, bs string) (r result, err error) {
	x, err := parseInt[S](as)
	if err != nil {
		return r, err
	}

	var v num.Int[S]
	switch op {
	case "lsh", "rsh":
		n, err := parseShift(bs)
		if err != nil {
			return r, err
		}
		if op == "lsh" {
			v = x.Lsh(n)
		} else {
			v = x.Rsh(n)
		}
		return intResult(op, v), nil
	}

	y, err := parseInt[S](bs)
	if err != nil {
		return r, err
	}
	switch op {
	case "add":
		v = x.Add(y)
	case "sub":
		v = x.Sub(y)
	case "mul":
		v = x.Mul(y)
	case "quo", "rem":
		q, m, err := x.DivMod(y)
		if err != nil {
			return r, err
		}
		v = q
		if op == "rem" {
			v = m
		}
	case "and":
		v = x.And(y)
	case "or":
		v = x.Or(y)
	case "xor":
		v = x.Xor(y)
	case "cmp":
		return result{Op: op, Width: x.Bits(), Value: strconv.Itoa(x.Cmp(y))}, nil
	default:
		return r, Error.New("unknown int op %q, want one of %s", op, integerOps)
	}
	return intResult(op, v), nil
}
