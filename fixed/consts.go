package fixed

import (
	"math/big"
)

// Consts holds the named values of one fixed-point width, as returned by
// Fp32Const, Fp64Const, Fp128Const and Fp256Const.
type Consts[T rawer[T]] struct {
	Zero, One, Half, Two Fixed[T]

	Max, Min       Fixed[T]
	MaxInt, MinInt Fixed[T]

	SmallestFraction Fixed[T]
	LargestFraction  Fixed[T] // 1 - SmallestFraction
	Tolerance        Fixed[T]

	// Exp overflows above MaxExp and underflows to zero below MinExp.
	MaxExp, MinExp Fixed[T]

	NaN, PosInf, NegInf Fixed[T]

	E, Log2E, Log210, Log10E, Ln2, Ln10 Fixed[T]

	Pi, Pi2, Pi4, TwoPi          Fixed[T]
	InvPi, TwoInvPi, TwoInvSqrtPi Fixed[T]
	Sqrt2, InvSqrt2              Fixed[T]

	three, four Fixed[T]

	// Padé and minimax coefficients used by the transcendental functions.
	exp    [5]Fixed[T] // 1/2, 1/9, 1/72, 1/1008, 1/30240
	tanP   [2]Fixed[T]
	tanQ   [3]Fixed[T]
	asinP  [6]Fixed[T]
	asinQ  [4]Fixed[T]
	atanP  [4]Fixed[T]
	atanQ  [5]Fixed[T]
	sinP   [3]Fixed[T]
	sinQ   [3]Fixed[T]
	cosP   [3]Fixed[T]
	cosQ   [3]Fixed[T]
	log2P  [4]Fixed[T]
	log2Q  [3]Fixed[T]
	sqrtPQ [4]Fixed[T]
}

var (
	fp32Consts  = makeConsts[Raw32]("0x000a65b9", "0x15")
	fp64Consts  = makeConsts[Raw64]("0x000000157cd0e714", "0x200")
	fp128Consts = makeConsts[Raw128]("", "")
	fp256Consts = makeConsts[Raw256]("", "")
)

// Fp32Const and its siblings return a copy of the width's constants.
// Changing the copy has no effect on any operation.
func Fp32Const() Consts[Raw32]   { return fp32Consts }
func Fp64Const() Consts[Raw64]   { return fp64Consts }
func Fp128Const() Consts[Raw128] { return fp128Consts }
func Fp256Const() Consts[Raw256] { return fp256Consts }

func constsOf[T rawer[T]]() *Consts[T] {
	var z T
	switch any(z).(type) {
	case Raw32:
		return any(&fp32Consts).(*Consts[T])
	case Raw64:
		return any(&fp64Consts).(*Consts[T])
	case Raw128:
		return any(&fp128Consts).(*Consts[T])
	default:
		return any(&fp256Consts).(*Consts[T])
	}
}

const (
	decE            = "2.7182818284590452353602874713526624977572470936999595749669676277240766303535475945"
	decLog2E        = "1.4426950408889634073599246810018921374266459541529859341354494069311092191811850798"
	decLog210       = "3.3219280948873623478703194294893901758648313930245806120547563958159347766086252158"
	decLog10E       = "0.4342944819032518276511289189166050822943970058036665661144537831658646492088707747"
	decLn2          = "0.6931471805599453094172321214581765680755001343602552541206800094933936219696947156"
	decLn10         = "2.3025850929940456840179914546843642076011014886287729760333279009675726096773524802"
	decPi           = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986"
	decInvPi        = "0.3183098861837906715377675267450287240689192914809128974953346881177935952684530701"
	decTwoInvSqrtPi = "1.1283791670955125738961589031215451716881012586579977136881714434212849368829868289"
	decSqrt2        = "1.4142135623730950488016887242096980785696718753769480731766797379907324784621070388"
	decInvSqrt2     = "0.7071067811865475244008443621048490392848359376884740365883398689953662392310535194"
)

// NetBSD asin rational coefficients.
var (
	asinPDec = [...]string{
		"1.66666666666666657415e-01", "-3.25565818622400915405e-01", "2.01212532134862925881e-01",
		"-4.00555345006794114027e-02", "7.91534994289814532176e-04", "3.47933107596021167570e-05",
	}
	asinQDec = [...]string{
		"-2.40339491173441421878e+00", "2.02094576023350569471e+00",
		"-6.88283971605453293030e-01", "7.70381505559019352791e-02",
	}
)

type constBuilder[T rawer[T]] struct {
	l layout
}

// raw truncates b toward zero to T.
func (cb constBuilder[T]) raw(b *big.Int) Fixed[T] {
	var z T
	return Fixed[T]{raw: z.fromBig(b)}
}

// float scales f by 2^F and truncates toward zero.
func (cb constBuilder[T]) float(f *big.Float, exp int) Fixed[T] {
	s := new(big.Float).SetPrec(f.Prec()).SetMantExp(f, cb.l.frac+exp)
	b, _ := s.Int(nil)
	return cb.raw(b)
}

func (cb constBuilder[T]) dec(s string) Fixed[T] { return cb.decExp(s, 0) }

func (cb constBuilder[T]) decExp(s string, exp int) Fixed[T] {
	f, _, err := big.ParseFloat(s, 10, 512, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return cb.float(f, exp)
}

// rat returns num/den truncated toward zero.
func (cb constBuilder[T]) rat(num, den int64) Fixed[T] {
	n := new(big.Int).Lsh(big.NewInt(num), uint(cb.l.frac))
	return cb.raw(n.Quo(n, big.NewInt(den)))
}

func (cb constBuilder[T]) int(v int64) Fixed[T] { return cb.rat(v, 1) }

func (cb constBuilder[T]) hex(s string) Fixed[T] {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("fixed: bad constant " + s)
	}
	// Patterns with the sign bit set are written unsigned.
	if b.Bit(cb.l.bits-1) != 0 {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), uint(cb.l.bits)))
	}
	return cb.raw(b)
}

func pow2(n int) *big.Int { return new(big.Int).Lsh(big.NewInt(1), uint(n)) }

// makeConsts builds the constant table from exact big arithmetic. It must
// not call into Fixed arithmetic, which reads the tables it is building.
func makeConsts[T rawer[T]](maxExp, tolerance string) (c Consts[T]) {
	var z T
	cb := constBuilder[T]{l: z.layout()}
	l := cb.l

	top := pow2(l.bits - 1)
	fracMask := new(big.Int).Sub(pow2(l.frac), big.NewInt(1))

	c.One = cb.int(1)
	c.Half = cb.rat(1, 2)
	c.Two = cb.int(2)
	c.three = cb.int(3)
	c.four = cb.int(4)

	c.Max = cb.raw(new(big.Int).Sub(top, big.NewInt(1)))
	minRaw := new(big.Int).Add(new(big.Int).Neg(top), fracMask)
	c.Min = cb.raw(minRaw)
	c.MaxInt = cb.raw(new(big.Int).Lsh(new(big.Int).Sub(pow2(l.intBits()-1), big.NewInt(1)), uint(l.frac)))
	c.MinInt = cb.raw(new(big.Int).Neg(top))
	c.SmallestFraction = cb.raw(big.NewInt(1))
	c.LargestFraction = cb.raw(fracMask)

	c.PosInf = cb.raw(new(big.Int).Neg(top))
	c.NegInf = cb.raw(new(big.Int).Sub(minRaw, big.NewInt(1)))
	c.NaN = cb.raw(new(big.Int).Add(new(big.Int).Neg(top), new(big.Int).Rsh(fracMask, 1)))

	if tolerance != "" {
		c.Tolerance = cb.hex(tolerance)
	} else {
		c.Tolerance = cb.raw(pow2(l.frac - 23))
	}
	if maxExp != "" {
		c.MaxExp = cb.hex(maxExp)
	} else {
		// ln(Max) truncated, which is (I-1)·ln2 to well below one unit.
		ln2, _, _ := big.ParseFloat(decLn2, 10, 512, big.ToNearestEven)
		c.MaxExp = cb.float(new(big.Float).SetPrec(512).Mul(ln2, big.NewFloat(float64(l.intBits()-1))), 0)
	}
	c.MinExp = Fixed[T]{raw: c.MaxExp.raw.neg()}

	c.E = cb.dec(decE)
	c.Log2E = cb.dec(decLog2E)
	c.Log210 = cb.dec(decLog210)
	c.Log10E = cb.dec(decLog10E)
	c.Ln2 = cb.dec(decLn2)
	c.Ln10 = cb.dec(decLn10)
	c.Pi = cb.dec(decPi)
	c.Pi2 = cb.decExp(decPi, -1)
	c.Pi4 = cb.decExp(decPi, -2)
	c.TwoPi = cb.decExp(decPi, 1)
	c.InvPi = cb.dec(decInvPi)
	c.TwoInvPi = cb.decExp(decInvPi, 1)
	c.TwoInvSqrtPi = cb.dec(decTwoInvSqrtPi)
	c.Sqrt2 = cb.dec(decSqrt2)
	c.InvSqrt2 = cb.dec(decInvSqrt2)

	c.exp = [...]Fixed[T]{cb.rat(1, 2), cb.rat(1, 9), cb.rat(1, 72), cb.rat(1, 1008), cb.rat(1, 30240)}
	c.tanP = [...]Fixed[T]{cb.rat(-4, 33), cb.rat(1, 495)}
	c.tanQ = [...]Fixed[T]{cb.rat(-5, 11), cb.rat(2, 99), cb.rat(-1, 10395)}
	c.atanP = [...]Fixed[T]{cb.rat(116, 57), cb.rat(2198, 1615), cb.rat(44, 133), cb.rat(5597, 264537)}
	c.atanQ = [...]Fixed[T]{cb.rat(45, 19), cb.rat(630, 323), cb.rat(210, 323), cb.rat(315, 4199), cb.rat(63, 46189)}
	for i, s := range asinPDec {
		c.asinP[i] = cb.dec(s)
	}
	for i, s := range asinQDec {
		c.asinQ[i] = cb.dec(s)
	}

	// Q16.16 cannot hold 166320, so it gets the lower-order sine.
	if l.bits == 32 {
		c.sinP = [...]Fixed[T]{cb.int(5880), cb.int(-620), {}}
		c.sinQ = [...]Fixed[T]{cb.int(5880), cb.int(360), cb.int(11)}
	} else {
		c.sinP = [...]Fixed[T]{cb.int(166320), cb.int(-22260), cb.int(551)}
		c.sinQ = [...]Fixed[T]{cb.int(166320), cb.int(5460), cb.int(75)}
	}
	c.cosP = [...]Fixed[T]{cb.int(15120), cb.int(-6900), cb.int(313)}
	c.cosQ = [...]Fixed[T]{cb.int(15120), cb.int(660), cb.int(13)}

	c.log2P = [...]Fixed[T]{cb.int(137), cb.int(1762), cb.int(3762), cb.int(30)}
	c.log2Q = [...]Fixed[T]{cb.int(24), cb.int(76), cb.int(30)}
	c.sqrtPQ = [...]Fixed[T]{cb.int(9), cb.int(11), cb.int(27), cb.int(33)}
	return c
}
