package fixed

import (
	"math/big"
	"strings"
)

// Parse reads [+-]digits[.digits]. Fraction digits beyond the width's
// decimal digit count are truncated. Anything else is an error of class
// Error. An integer part that does not fit clamps to Max or Min and raises
// StateOverflow or StateUnderflow; that is not an error.
func (c *Context[T]) Parse(s string) (Fixed[T], error) {
	var z T
	return c.parse(s, z.layout().digits)
}

func (c *Context[T]) parse(s string, maxDigits int) (Fixed[T], error) {
	var z T
	l := z.layout()
	in := s

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	ip, fp := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		ip, fp = s[:dot], s[dot+1:]
	}
	if ip == "" && fp == "" {
		return Fixed[T]{}, Error.New("fp%d: no digits in %q", l.bits, in)
	}
	for _, part := range [...]string{ip, fp} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return Fixed[T]{}, Error.New("fp%d: invalid character %q in %q", l.bits, part[i], in)
			}
		}
	}
	if len(fp) > maxDigits {
		fp = fp[:maxDigits]
	}

	raw := new(big.Int)
	if ip != "" {
		raw.SetString(ip, 10)
	}
	raw.Lsh(raw, uint(l.frac))
	if fp != "" {
		f, _ := new(big.Int).SetString(fp, 10)
		f.Lsh(f, uint(l.frac))
		f.Quo(f, new(big.Int).Exp(big10, big.NewInt(int64(len(fp))), nil))
		raw.Add(raw, f)
	}
	if neg {
		raw.Neg(raw)
	}
	return c.fromScaled(raw), nil
}

// parseName is parse plus the names String uses for NaN and the infinities.
func (c *Context[T]) parseName(s string) (Fixed[T], error) {
	k := c.consts()
	switch s {
	case "NaN", "nan":
		return k.NaN, nil
	case "+∞", "∞", "+Inf", "Inf", "+inf", "inf":
		return k.PosInf, nil
	case "-∞", "-Inf", "-inf":
		return k.NegInf, nil
	}
	var z T
	return c.parse(s, z.layout().frac)
}

// MustParse is Parse that panics on syntax errors. Flags are dropped.
func MustParse[T rawer[T]](s string) Fixed[T] {
	var c *Context[T]
	x, err := c.Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}
