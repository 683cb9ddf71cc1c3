package main

import (
	"sort"
	"strings"

	"github.com/ledgermath/go-num/fixed"
	"github.com/spf13/cobra"
)

func newFixedCmd(a *app) *cobra.Command {
	unary, binary := fixedFuncs[fixed.Raw64](nil)
	return &cobra.Command{
		Use:   "fixed <fn> <x> [y]",
		Short: "Fixed-point arithmetic and transcendental functions",
		Long: "Evaluates fn on decimal operands in Q(I.F) format of --width bits\n" +
			"(32: Q16.16, 64: Q32.32, 128: Q64.64, 256: Q128.128).\n\n" +
			"Unary:  " + strings.Join(sortedKeys(unary), ", ") + "\n" +
			"Binary: " + strings.Join(sortedKeys(binary), ", ") + "\n\n" +
			"Conditions raised along the way are printed after the value.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				r   result
				err error
			)
			switch w := a.width(); w {
			case 32:
				r, err = fixedOp[fixed.Raw32](w, args)
			case 64:
				r, err = fixedOp[fixed.Raw64](w, args)
			case 128:
				r, err = fixedOp[fixed.Raw128](w, args)
			case 256:
				r, err = fixedOp[fixed.Raw256](w, args)
			default:
				return unsupportedWidth("fixed", w)
			}
			if err != nil {
				return err
			}
			if r.State != "" {
				a.log.Warn("fixed-point condition", "fn", r.Op, "state", r.State)
			}
			return a.print(r)
		},
	}
}

type (
	unaryFunc[T fixed.Raw[T]]  func(x fixed.Fixed[T]) fixed.Fixed[T]
	binaryFunc[T fixed.Raw[T]] func(x, y fixed.Fixed[T]) fixed.Fixed[T]
)

func fixedFuncs[T fixed.Raw[T]](c *fixed.Context[T]) (map[string]unaryFunc[T], map[string]binaryFunc[T]) {
	unary := map[string]unaryFunc[T]{
		"neg": c.Neg, "abs": c.Abs, "sign": c.Sign, "inv": c.Inv,
		"exp": c.Exp, "log": c.Log, "log2": c.Log2, "log10": c.Log10, "sqrt": c.Sqrt,
		"sin": c.Sin, "cos": c.Cos, "tan": c.Tan,
		"asin": c.ASin, "acos": c.ACos, "atan": c.ATan,
		"sinh": c.SinH, "cosh": c.CosH, "tanh": c.TanH,
		"asinh": c.ASinH, "acosh": c.ACosH, "atanh": c.ATanH,
	}
	binary := map[string]binaryFunc[T]{
		"add": c.Add, "sub": c.Sub, "mul": c.Mul, "quo": c.Quo,
		"pow": c.Pow, "atan2": c.ATan2, "fmod": c.Fmod, "remainder": c.Remainder,
	}
	return unary, binary
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func fixedOp[T fixed.Raw[T]](width int, args []string) (r result, err error) {
	var c fixed.Context[T]
	unary, binary := fixedFuncs(&c)
	fn := args[0]

	operands := make([]fixed.Fixed[T], 0, 2)
	for _, s := range args[1:] {
		x, err := c.Parse(s)
		if err != nil {
			return r, err
		}
		operands = append(operands, x)
	}

	var v fixed.Fixed[T]
	if f, ok := unary[fn]; ok {
		if len(operands) != 1 {
			return r, Error.New("%s takes one operand", fn)
		}
		v = f(operands[0])
	} else if f, ok := binary[fn]; ok {
		if len(operands) != 2 {
			return r, Error.New("%s takes two operands", fn)
		}
		v = f(operands[0], operands[1])
	} else {
		return r, Error.New("unknown fixed function %q", fn)
	}

	r = result{
		Op:    fn,
		Width: width,
		Value: v.String(),
	}
	if s := c.State(); s != 0 {
		r.State = s.String()
	}
	return r, nil
}
