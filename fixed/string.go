package fixed

import (
	"fmt"
	"math/big"
	"strings"
)

var big10 = big.NewInt(10)

// String formats x as [-]integer.fraction with the width's fixed number of
// fraction digits, truncated. NaN and the infinities print as "NaN", "+∞"
// and "-∞".
func (x Fixed[T]) String() string {
	return x.decimal(x.raw.layout().digits, true)
}

// decimal formats the exact value truncated to digits fraction digits. If
// pad is false trailing zeros are dropped, which with digits >= F gives the
// shortest exact form.
func (x Fixed[T]) decimal(digits int, pad bool) string {
	switch {
	case x.IsNaN():
		return "NaN"
	case x.IsPosInf():
		return "+∞"
	case x.IsNegInf():
		return "-∞"
	}

	l := x.raw.layout()
	mag := x.raw.toBig()
	neg := mag.Sign() < 0
	mag.Abs(mag)

	ip := new(big.Int).Rsh(mag, uint(l.frac))
	fp := new(big.Int).Sub(mag, new(big.Int).Lsh(ip, uint(l.frac)))
	fp.Mul(fp, new(big.Int).Exp(big10, big.NewInt(int64(digits)), nil))
	fp.Rsh(fp, uint(l.frac))

	var sb strings.Builder
	if neg && (ip.Sign() != 0 || fp.Sign() != 0) {
		sb.WriteByte('-')
	}
	sb.WriteString(ip.String())

	fs := fp.String()
	fs = strings.Repeat("0", digits-len(fs)) + fs
	if !pad {
		fs = strings.TrimRight(fs, "0")
	}
	if fs != "" {
		sb.WriteByte('.')
		sb.WriteString(fs)
	}
	return sb.String()
}

// exact is the shortest decimal string that parses back to the same pattern.
func (x Fixed[T]) exact() string {
	return x.decimal(x.raw.layout().frac, false)
}

// Format implements fmt.Formatter. %v and %s print String; %f, %e, %g and
// the other float verbs print the exact value through big.Float, so %.30f
// on a wide type shows every digit.
func (x Fixed[T]) Format(s fmt.State, c rune) {
	if !x.isFinite() || c == 'v' || c == 's' {
		w, _ := s.Width()
		str := x.String()
		if pad := w - len([]rune(str)); pad > 0 {
			if s.Flag('-') {
				str += strings.Repeat(" ", pad)
			} else {
				str = strings.Repeat(" ", pad) + str
			}
		}
		fmt.Fprint(s, str)
		return
	}
	x.BigFloat().Format(s, c)
}
