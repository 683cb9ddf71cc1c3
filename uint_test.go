package num

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/shabbyrobe/golib/assert"
)

const ulongMax = maxUint64

func TestUIntElementaryLeftShift(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := u256(3)
	tt.MustEqual(uint64(3), n1.Limb(0))
	n1 = n1.Lsh(8)
	tt.MustEqual(uint64(3<<8), n1.Limb(0))
	n1 = n1.Lsh(7)
	tt.MustEqual(uint64(3<<15), n1.Limb(0))
	n1 = n1.Lsh(35).Lsh(58)
	tt.MustEqual(uint64(3)<<44, n1.Limb(1))
	n1 = n1.Lsh(35).Lsh(58)
	tt.MustEqual(uint64(3)<<9, n1.Limb(3))

	n2 := UIntFrom64[B512](math.MaxUint32).Lsh(63)
	tt.MustEqual(uint64(1)<<63, n2.Limb(0))
	tt.MustEqual(uint64(math.MaxUint32>>1), n2.Limb(1))
}

func TestUIntIncrementCarries(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := u256(ulongMax - 100)
	for count := uint64(ulongMax - 100); count < ulongMax; count++ {
		tt.MustEqual(count, n1.Limb(0))
		bts := n1.AsBytes(LittleEndian, true)
		for i := 0; i < 8; i++ {
			tt.MustEqual(byte(count>>(8*uint(i))), bts[i])
		}
		n1 = n1.Inc()
	}
	n1 = n1.Inc()
	tt.MustEqual(uint64(0), n1.Limb(0))
	tt.MustEqual(uint64(1), n1.Limb(1))
}

func TestUIntDecrementBorrows(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := u256(ulongMax).Lsh(192)
	for i := 0; i < 100; i++ {
		n1 = n1.Dec()
	}
	tt.MustEqual([]uint64{ulongMax - 99, ulongMax, ulongMax, ulongMax - 1}, n1.Limbs())
}

func TestUIntAddition(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := u256(ulongMax).Lsh(32)
	n2 := u256(ulongMax)

	// 0x100000000fffffffeffffffff
	n3 := n1.Add(n2)
	tt.MustEqual([]uint64{0xfffffffeffffffff, 0x100000000, 0, 0}, n3.Limbs())

	n1 = n1.Lsh(32).Inc()
	n3 = n3.Add(n1)
	tt.MustEqual([]uint64{0xffffffff00000000, 0x00000000ffffffff, 0x1, 0}, n3.Limbs())
}

func TestUIntSubtraction(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := mustLimbs[B256](0xffffffff00000000, 0x00000000ffffffff, 0x1)
	n2 := u256(ulongMax).Lsh(64).Inc()
	n3 := n1.Sub(n2)
	tt.MustEqual([]uint64{0xfffffffeffffffff, 0x0000000100000000, 0, 0}, n3.Limbs())

	n2 = n2.Rsh(32)
	n3 = n3.Sub(n2)
	tt.MustEqual([]uint64{ulongMax, 0, 0, 0}, n3.Limbs())
}

func TestUIntMultiplication(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := mustLimbs[B256](0xffffffff00000000, 0x00000000ffffffff, 0x1)
	n2 := u256(ulongMax).Lsh(64).Inc()
	n3 := n1.Mul(n2)
	tt.MustEqual([]uint64{0xffffffff00000000, 0x00000001ffffffff, 0xfffffffe00000001, 0x00000000fffffffe}, n3.Limbs())

	n4 := mustLimbs[B256](0x72f4a7ca9e22b75b, 0x00000001264eb563)
	n4 = n4.Mul(u256(0xdeadbeefdeadbeef))
	tt.MustEqual([]uint64{0x38fdb7f338fdb7f5, 0xfffffffeffffffff, 0x00000000fffffffe, 0}, n4.Limbs())
	tt.MustEqual(n4, mustLimbs[B256](0x72f4a7ca9e22b75b, 0x00000001264eb563).Mul64(0xdeadbeefdeadbeef))
}

func TestUIntDivision(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := mustLimbs[B256](0xffffffff00000000, 0x00000001ffffffff, 0xfffffffe00000001, 0x00000000fffffffe)
	n2 := u256(ulongMax).Lsh(64)
	n3 := n1.Quo(n2)
	tt.MustEqual([]uint64{0xffffffff00000000, 0x00000000fffffffe, 0, 0}, n3.Limbs())

	n3 = n3.Lsh(64)
	n4 := n3
	n3 = n3.Quo64(0xdeadbeefdeadbeef)
	tt.MustEqual([]uint64{0x72f4a7ca9e22b75b, 0x00000001264eb563, 0, 0}, n3.Limbs())

	n4 = n4.Rem(u256(0xdeadbeefdeadbeef))
	tt.MustEqual([]uint64{0xc702480cc702480b, 0, 0, 0}, n4.Limbs())

	n5 := u256(ulongMax)
	tt.MustEqual(u256(ulongMax), n5.Quo(u256(1)))
	tt.MustAssert(n4.Quo(n5).IsZero())
}

func TestUIntQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r UInt256
	}{
		{u: u256(1), by: u256(2), q: u256(0), r: u256(1)},
		{u: u256(10), by: u256(3), q: u256(3), r: u256(1)},

		// Divisor with an empty low limb:
		{u: u256(1), by: mustLimbs[B256](0, 1), q: u256(0), r: u256(1)},

		// 'cmp == 0' shortcut branch:
		{u256s("0x123456789012345678901234"), u256s("0x123456789012345678901234"), u256(1), u256(0)},

		// 'cmp < 0' shortcut branch:
		{u256s("0x123456789012345678901234"), u256s("0x222222229012345678901234"), u256(0), u256s("0x123456789012345678901234")},

		// Power of two divisor spanning limbs:
		{u256s("0x1234567890123456789012345678901234567890"), u256(1).Lsh(130), u256s("0x48d159e"), u256s("0x90123456789012345678901234567890")},

		// Multi-limb divisors:
		{u256s("3289699161974853443944280720275488"), u256s("9261249991223143249760"), u256s("355211139435"), u256s("96980854802329989888")},
		{u256s("51044189592896282646990963682604803"), u256s("15356086376658915618524"), u256s("3324036368438"), u256s("6734966597368160859291")},
		{u256s("555579170280843546177"), u256s("21475569273528505412"), u256s("25"), u256s("18689938442630910877")},
	} {
		t.Run(fmt.Sprintf("%d/%d÷%d", idx, tc.u, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)

			uBig, byBig := tc.u.AsBigInt(), tc.by.AsBigInt()
			qBig, rBig := new(big.Int).QuoRem(uBig, byBig, new(big.Int))
			tt.MustEqual(qBig.String(), tc.q.AsBigInt().String(), "bad test case")
			tt.MustEqual(rBig.String(), tc.r.AsBigInt().String(), "bad test case")

			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q, q)
			tt.MustEqual(tc.r, r)
		})
	}
}

func TestUIntDivisionByZero(t *testing.T) {
	tt := assert.WrapTB(t)

	_, _, err := u256(10).DivMod(UInt256{})
	tt.MustAssert(errors.Is(err, ErrDivisionByZero), "%v", err)
	tt.MustAssert(Error.Has(err))

	defer func() {
		r := recover()
		tt.MustEqual("num: division by zero", r)
	}()
	u256(1).Quo(UInt256{})
}

func TestUIntMsbLsb(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := mustLimbs[B256](0xffffffff00000000, 0x00000001ffffffff, 0xfffffffe00000001, 0x00000000fffffffe)
	tt.MustEqual(uint(32), n1.Msb())
	tt.MustEqual(uint(32), n1.Lsb())

	n1 = n1.Lsh(17)
	tt.MustEqual(uint(15), n1.Msb())
	tt.MustEqual(uint(49), n1.Lsb())

	n1 = n1.Rsh(114)
	tt.MustEqual(uint(129), n1.Msb())
	tt.MustEqual(uint(31), n1.Lsb())

	var zero UInt256
	tt.MustEqual(uint(256), zero.Msb())
	tt.MustEqual(uint(256), zero.Lsb())

	var zero72 UInt72
	tt.MustEqual(uint(72), zero72.Msb())
	tt.MustEqual(uint(72), zero72.Lsb())
	tt.MustEqual(uint(71), UIntFrom64[B72](1).Msb())
}

func TestUIntLsh(t *testing.T) {
	tt := assert.WrapTB(t)

	n2 := u256(ulongMax).Lsh(63)
	tt.MustEqual(uint64(0x8000000000000000), n2.Limb(0))
	tt.MustEqual(uint64(ulongMax>>1), n2.Limb(1))

	n3 := u256(ulongMax).Lsh(64)
	tt.MustEqual([]uint64{0, ulongMax, 0, 0}, n3.Limbs())
	n3 = n3.Lsh(126)
	tt.MustEqual([]uint64{0, 0, 0xc000000000000000, ulongMax >> 2}, n3.Limbs())
	n3 = n3.Lsh(65)
	tt.MustEqual([]uint64{0, 0, 0, 0x8000000000000000}, n3.Limbs())

	tt.MustAssert(n3.Lsh(256).IsZero())
	tt.MustAssert(MaxUInt[B256]().Lsh(1000).IsZero())
}

func TestUIntRsh(t *testing.T) {
	tt := assert.WrapTB(t)

	n1 := u256(ulongMax).Lsh(192)
	tt.MustEqual([]uint64{0, 0, 0, ulongMax}, n1.Limbs())
	n1 = n1.Rsh(64)
	tt.MustEqual([]uint64{0, 0, ulongMax, 0}, n1.Limbs())
	n1 = n1.Rsh(126)
	tt.MustEqual([]uint64{0xfffffffffffffffc, 3, 0, 0}, n1.Limbs())
	n1 = n1.Rsh(65)
	tt.MustEqual([]uint64{1, 0, 0, 0}, n1.Limbs())

	tt.MustAssert(MaxUInt[B256]().Rsh(256).IsZero())
}

func TestUInt128ShiftsFoundByFuzzer(t *testing.T) {
	u128s := func(s string) UInt128 { return accUIntFromBigInt[B128](bigs(s)) }

	for idx, tc := range []struct {
		u   UInt128
		lsh bool
		by  uint
		r   UInt128
	}{
		{u: u128s("5080864651895"), lsh: true, by: 57, r: u128s("732229764895815899943471677440")},
		{u: u128s("63669103"), lsh: true, by: 85, r: u128s("2463079120908903847397520463364096")},
		{u: u128s("0x1f1ecfd29cb51500c1a0699657"), lsh: true, by: 104, r: u128s("0x69965700000000000000000000000000")},
		{u: u128s("0x4ff0d215cf8c26f26344"), lsh: true, by: 58, r: u128s("0xc348573e309bc98d1000000000000000")},
		{u: u128s("0x8b93924e1f7b6ac551d66f18ab520a2"), lsh: true, by: 50, r: u128s("0xdab154759bc62ad48288000000000000")},
		{u: u128s("213"), lsh: true, by: 65, r: u128s("7858312975400268988416")},
		{u: u128s("2465608830469196860151950841431"), by: 104, r: UIntFrom64[B128](0)},
		{u: u128s("377509308958315595850564"), by: 58, r: UIntFrom64[B128](1309748)},
		{u: u128s("8504691434450337657905929307096"), by: 74, r: u128s("450234615")},
		{u: u128s("11595557904603123290159404941902684322"), by: 50, r: u128s("10298924295251697538375")},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: UIntFrom64[B128](718)},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d", idx, tc.u, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var ru UInt128
			if tc.lsh {
				ru = tc.u.Lsh(tc.by)
			} else {
				ru = tc.u.Rsh(tc.by)
			}
			tt.MustEqual(tc.r.String(), ru.String())
		})
	}
}

func TestUIntCompareWalk(t *testing.T) {
	tt := assert.WrapTB(t)

	var a, b UInt256
	for count := 0; count < 16; count++ {
		tt.MustAssert(a.Equal(b))
		for i := 0; i < 128; i++ {
			a = a.Inc()
			tt.MustAssert(b.LessThan(a) && a.GreaterThan(b) && !a.Equal(b))
		}
		for i := 0; i < 128; i++ {
			tt.MustAssert(b.LessThan(a))
			b = b.Inc()
		}
		tt.MustAssert(a.Equal(b) && a.LessOrEqualTo(b) && a.GreaterOrEqualTo(b))
		for i := 0; i < 128; i++ {
			b = b.Inc()
			tt.MustAssert(b.GreaterThan(a))
		}
		for i := 0; i < 128; i++ {
			tt.MustAssert(b.GreaterThan(a))
			a = a.Inc()
		}
	}
}

func TestUIntResidualBits(t *testing.T) {
	t.Run("272 shift", func(t *testing.T) {
		tt := assert.WrapTB(t)
		n1 := UIntFrom64[B272](ulongMax).Lsh(272 - 64)
		tt.MustEqual([]uint64{0, 0, 0, 0xffffffffffff0000, 0x000000000000ffff}, n1.Limbs())
		n1 = n1.Rsh(8)
		tt.MustEqual([]uint64{0, 0, 0, 0xffffffffffffff00, 0x00000000000000ff}, n1.Limbs())
	})

	t.Run("72 inverse", func(t *testing.T) {
		tt := assert.WrapTB(t)
		inv := UInt72{}.Not()
		tt.MustEqual(uint64(0xffffffffffffffff), inv.Limb(0))
		tt.MustEqual(uint64(0xff), inv.Limb(1))
		tt.MustEqual(MaxUInt[B72](), inv)

		val := mustLimbs[B72](0xf0f0f0f0f0f0f0f0, 0xf0)
		inv2 := val.Not()
		tt.MustEqual(uint64(0x0f0f0f0f0f0f0f0f), inv2.Limb(0))
		tt.MustEqual(uint64(0x0f), inv2.Limb(1))
	})

	t.Run("72 default", func(t *testing.T) {
		tt := assert.WrapTB(t)
		var def UInt72
		tt.MustEqual([]uint64{0, 0}, def.Limbs())
		tt.MustAssert(def.IsZero())
	})

	t.Run("72 shift past width", func(t *testing.T) {
		tt := assert.WrapTB(t)
		n1 := UIntFrom64[B72](1)
		n1 = n1.Lsh(71).Rsh(71)
		tt.MustAssert(n1.Equal64(1))

		n1 = n1.Lsh(72).Rsh(72)
		tt.MustAssert(n1.IsZero())
	})

	t.Run("72 wraps", func(t *testing.T) {
		tt := assert.WrapTB(t)
		n1 := MaxUInt[B72]()
		tt.MustEqual(uint64(0xff), n1.Limb(1))
		tt.MustAssert(n1.Add64(1).IsZero())
		tt.MustAssert(n1.Add64(1).Sub64(1).Equal(n1))
		tt.MustAssert(UInt72{}.Dec().Equal(n1))
		tt.MustAssert(n1.Mul(n1).Equal64(1))
	})

	t.Run("limbs masked", func(t *testing.T) {
		tt := assert.WrapTB(t)
		n1 := mustLimbs[B72](1, 0xffff)
		tt.MustEqual(uint64(0xff), n1.Limb(1))

		_, err := UIntFromLimbs[B72](1, 2, 3)
		tt.MustAssert(errors.Is(err, ErrSize))
	})
}

func TestUIntLog(t *testing.T) {
	for _, arg := range []uint64{1, 64, 65536, math.MaxUint64} {
		t.Run(fmt.Sprint(arg), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustFloatNear(1e-15, math.Log(float64(arg)), u256(arg).Log())
		})
	}

	tt := assert.WrapTB(t)
	tt.MustAssert(math.IsInf(UInt256{}.Log(), -1))

	big := u256(1000).Lsh(200)
	tt.MustFloatNear(1e-12, math.Log(1000)+200*math.Ln2, big.Log())
}

func TestUIntAsFloat64(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0.0, UInt256{}.AsFloat64())

	for _, seed := range []float64{1, 10, 100, 1000, 10000} {
		number := u256(uint64(seed))
		for i := 0; i < 4; i++ {
			expected := seed * math.Pow(2, float64(i*64))
			tt.MustEqual(expected, number.AsFloat64(), "seed %v limb %d", seed, i)
			number = number.Lsh(64)
		}
	}
}

func TestUIntTrimmedWords(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(0, UInt32{}.TrimmedWords())
	for i := 0; i < 4; i++ {
		tt.MustEqual(1, UIntFrom64[B32](0x80).Lsh(uint(8*i)).TrimmedWords())
	}

	tt.MustEqual(0, UInt256{}.TrimmedWords())
	for i := 0; i < 32; i++ {
		tt.MustEqual(i/8+1, u256(0x80).Lsh(uint(8*i)).TrimmedWords(), "byte %d", i)
	}
}

func TestUIntTrimmedSize(t *testing.T) {
	for _, tc := range []struct {
		u    UInt256
		size int
	}{
		{UInt256{}, 0},
		{u256(1), 1},
		{u256(0xff), 1},
		{u256(0x100), 2},
		{u256(ulongMax), 8},
		{u256(1).Lsh(64), 9},
		{MaxUInt[B256](), 32},
	} {
		t.Run(tc.u.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.size, tc.u.TrimmedSize())
		})
	}
}

func TestUIntString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(strings.Repeat("0", 63)+"1", u256(1).String())
	tt.MustEqual(strings.Repeat("f", 64), MaxUInt[B256]().String())
	tt.MustEqual("0000000000000001ffffffffffffffff", UIntFrom64[B128](ulongMax).Add64(ulongMax).Add64(1).String())
	tt.MustEqual(18, len(UInt72{}.String()))

	back, err := UIntFromHex[B256](u256s("0xdeadbeef1234").String())
	tt.MustOK(err)
	tt.MustEqual(u256s("0xdeadbeef1234"), back)

	_, err = UIntFromHex[B72]("1" + strings.Repeat("0", 18))
	tt.MustAssert(errors.Is(err, ErrSize))
	_, err = UIntFromHex[B72]("xyz")
	tt.MustAssert(errors.Is(err, ErrInvalidString))
}

func TestUIntFormat(t *testing.T) {
	max128 := MaxUInt[B128]()
	for idx, tc := range []struct {
		v   interface{}
		fmt string
		out string
	}{
		{UIntFrom64[B128](1), "%d", "1"},
		{UIntFrom64[B128](1), "%v", "00000000000000000000000000000001"},
		{UIntFrom64[B128](1), "%s", "00000000000000000000000000000001"},
		{max128, "%d", "340282366920938463463374607431768211455"},
		{max128, "%o", "3" + strings.Repeat("7", 42)},
		{max128, "%b", strings.Repeat("1", 128)},
		{max128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{max128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.fmt), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.fmt, tc.v))
		})
	}
}

func TestUIntFromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   UInt256
		acc bool
	}{
		{big.NewInt(2), u256(2), true},
		{bigs("18446744073709551616"), mustLimbs[B256](0, 1), true},
		{bigs("36893488147419103231"), mustLimbs[B256](ulongMax, 1), true},
		{bigs("0x" + strings.Repeat("f", 64)), MaxUInt[B256](), true},
		{bigs("0x1" + strings.Repeat("0", 64)), MaxUInt[B256](), false},
		{big.NewInt(-1), UInt256{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := UIntFromBigInt[B256](tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestUIntFromNative(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u256(7), UIntFrom[B256](int8(7)))
	tt.MustEqual(u256(7), UIntFrom[B256](uint16(7)))
	tt.MustEqual(MaxUInt[B256](), UIntFrom[B256](-1))
	tt.MustEqual(MaxUInt[B72](), UIntFrom[B72](int64(-1)))
	tt.MustEqual(MaxUInt[B32](), UIntFrom[B32](-1))
}

func TestUIntFromString(t *testing.T) {
	tt := assert.WrapTB(t)

	v, acc, err := UIntFromString[B256]("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	tt.MustOK(err)
	tt.MustAssert(acc)
	tt.MustEqual(MaxUInt[B256](), v)

	v, acc, err = UIntFromString[B256]("115792089237316195423570985008687907853269984665640564039457584007913129639936", 10)
	tt.MustOK(err)
	tt.MustAssert(!acc)
	tt.MustEqual(MaxUInt[B256](), v)

	_, _, err = UIntFromString[B256]("12a", 10)
	tt.MustAssert(errors.Is(err, ErrInvalidString))
}

func TestUIntMarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		u := RandUInt[B256](globalRNG)

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result UInt256
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}

	var u UInt256
	tt.MustOK(json.Unmarshal([]byte(`1234`), &u))
	tt.MustAssert(u.Equal64(1234))
	tt.MustAssert(json.Unmarshal([]byte(`"1234`), &u) != nil)
}

// holiman/uint256 is a widely used 256-bit implementation with the same
// little-endian [4]uint64 layout, which makes it a direct limb oracle.
func TestUInt256AgainstHoliman(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 32)

	for i := 0; i < 20000; i++ {
		n := globalRNG.Intn(33)
		globalRNG.Read(scratch[:n])
		a, err := UIntFromBytes[B256](scratch[:n], BigEndian)
		tt.MustOK(err)
		ha := new(uint256.Int).SetBytes(scratch[:n])

		m := globalRNG.Intn(33)
		globalRNG.Read(scratch[:m])
		b, err := UIntFromBytes[B256](scratch[:m], BigEndian)
		tt.MustOK(err)
		hb := new(uint256.Int).SetBytes(scratch[:m])

		shift := uint(globalRNG.Intn(260))

		for _, op := range []struct {
			name string
			got  UInt256
			want *uint256.Int
		}{
			{"add", a.Add(b), new(uint256.Int).Add(ha, hb)},
			{"sub", a.Sub(b), new(uint256.Int).Sub(ha, hb)},
			{"mul", a.Mul(b), new(uint256.Int).Mul(ha, hb)},
			{"lsh", a.Lsh(shift), new(uint256.Int).Lsh(ha, shift)},
			{"rsh", a.Rsh(shift), new(uint256.Int).Rsh(ha, shift)},
			{"not", a.Not(), new(uint256.Int).Not(ha)},
		} {
			if diff := cmp.Diff(op.want[:], op.got.Limbs()); diff != "" {
				t.Fatalf("%s(%s, %s) shift %d: (-want +got)\n%s", op.name, a, b, shift, diff)
			}
		}

		if !b.IsZero() {
			q, r := a.QuoRem(b)
			hq, hr := new(uint256.Int).Div(ha, hb), new(uint256.Int).Mod(ha, hb)
			if diff := cmp.Diff(hq[:], q.Limbs()); diff != "" {
				t.Fatalf("quo(%s, %s): (-want +got)\n%s", a, b, diff)
			}
			if diff := cmp.Diff(hr[:], r.Limbs()); diff != "" {
				t.Fatalf("rem(%s, %s): (-want +got)\n%s", a, b, diff)
			}
		}

		tt.MustEqual(ha.Cmp(hb), a.Cmp(b))
		tt.MustEqual(ha.BitLen(), a.BitLen())
		hbts := ha.Bytes32()
		tt.MustEqual(hbts[:], a.AsBytes(BigEndian, true))
	}
}
