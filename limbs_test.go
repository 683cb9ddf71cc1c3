package num

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shabbyrobe/golib/assert"
)

func randLimbs(n int) []uint64 {
	x := make([]uint64, n)
	used := globalRNG.Intn(n + 1)
	for i := 0; i < used; i++ {
		x[i] = globalRNG.Uint64()
	}
	return x
}

func limbsBig(x []uint64) *big.Int {
	return new(big.Int).SetBits(limbsToWords(nil, x))
}

func bigLimbs(b *big.Int, n int) []uint64 {
	z := make([]uint64, n)
	b = wrapUnsigned(b, n*limbBits)
	wordsToLimbs(z, b.Bits())
	return z
}

func TestMulLimbs(t *testing.T) {
	for i := 0; i < 50000; i++ {
		n := 1 + globalRNG.Intn(maxLimbs)
		x, y := randLimbs(n), randLimbs(n)
		z := make([]uint64, n)
		mulLimbs(z, x, y)

		want := bigLimbs(new(big.Int).Mul(limbsBig(x), limbsBig(y)), n)
		if diff := cmp.Diff(want, z); diff != "" {
			t.Fatalf("failed at index %d: %x * %x (-want +got)\n%s", i, x, y, diff)
		}
	}
}

func TestMulLimbsAliased(t *testing.T) {
	tt := assert.WrapTB(t)
	x := []uint64{maxUint64, maxUint64, 0}
	want := bigLimbs(new(big.Int).Mul(limbsBig(x), limbsBig(x)), 3)
	mulLimbs(x, x, x)
	tt.MustEqual(want, x)
}

func TestAddSubLimbsCarry(t *testing.T) {
	tt := assert.WrapTB(t)

	z := make([]uint64, 3)
	carry := addLimbs(z, []uint64{maxUint64, maxUint64, maxUint64}, []uint64{1, 0, 0})
	tt.MustEqual(uint64(1), carry)
	tt.MustEqual([]uint64{0, 0, 0}, z)

	borrow := subLimbs(z, z, []uint64{1, 0, 0})
	tt.MustEqual(uint64(1), borrow)
	tt.MustEqual([]uint64{maxUint64, maxUint64, maxUint64}, z)

	carry = addLimb(z, z, 2)
	tt.MustEqual(uint64(1), carry)
	tt.MustEqual([]uint64{1, 0, 0}, z)
}

func TestShiftLimbsInPlace(t *testing.T) {
	for i := 0; i < 20000; i++ {
		n := 1 + globalRNG.Intn(maxLimbs)
		x := randLimbs(n)
		s := uint(globalRNG.Intn(n*limbBits + 10))
		xb := limbsBig(x)

		z := append([]uint64(nil), x...)
		shlLimbs(z, z, s)
		if diff := cmp.Diff(bigLimbs(new(big.Int).Lsh(xb, s), n), z); diff != "" {
			t.Fatalf("%x << %d (-want +got)\n%s", x, s, diff)
		}

		z = append(z[:0], x...)
		shrLimbs(z, z, s, 0)
		if diff := cmp.Diff(bigLimbs(new(big.Int).Rsh(xb, s), n), z); diff != "" {
			t.Fatalf("%x >> %d (-want +got)\n%s", x, s, diff)
		}
	}
}

func TestShrLimbsFill(t *testing.T) {
	tt := assert.WrapTB(t)
	z := make([]uint64, 2)
	shrLimbs(z, []uint64{0, 1 << 63}, 64, maxUint64)
	tt.MustEqual([]uint64{1 << 63, maxUint64}, z)
	shrLimbs(z, []uint64{0, 1 << 63}, 4, maxUint64)
	tt.MustEqual([]uint64{0, 0xf8 << 56}, z)
	shrLimbs(z, []uint64{0, 1 << 63}, 500, maxUint64)
	tt.MustEqual([]uint64{maxUint64, maxUint64}, z)
}

func TestQuoRemLimbs(t *testing.T) {
	for i := 0; i < 50000; i++ {
		n := 1 + globalRNG.Intn(maxLimbs)
		u, by := randLimbs(n), randLimbs(n)
		if isZeroLimbs(by) {
			by[0] = 1 + globalRNG.Uint64()%1000
		}
		if globalRNG.Intn(4) == 0 {
			// Power of two divisors take their own path.
			clearLimbs(by)
			bit := globalRNG.Intn(n * limbBits)
			by[bit/limbBits] = 1 << uint(bit%limbBits)
		}

		q, r := make([]uint64, n), make([]uint64, n)
		quoRemLimbs(q, r, u, by)

		wq, wr := new(big.Int).QuoRem(limbsBig(u), limbsBig(by), new(big.Int))
		if diff := cmp.Diff(bigLimbs(wq, n), q); diff != "" {
			t.Fatalf("%x / %x quotient (-want +got)\n%s", u, by, diff)
		}
		if diff := cmp.Diff(bigLimbs(wr, n), r); diff != "" {
			t.Fatalf("%x %% %x remainder (-want +got)\n%s", u, by, diff)
		}
	}
}

func TestLimbCounts(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(128), leadingZerosLimbs([]uint64{0, 0}))
	tt.MustEqual(uint(127), leadingZerosLimbs([]uint64{1, 0}))
	tt.MustEqual(uint(63), leadingZerosLimbs([]uint64{0, 1}))
	tt.MustEqual(uint(128), trailingZerosLimbs([]uint64{0, 0}))
	tt.MustEqual(uint(64), trailingZerosLimbs([]uint64{0, 1}))
	tt.MustEqual(0, usedLimbs([]uint64{0, 0}))
	tt.MustEqual(2, usedLimbs([]uint64{0, 1}))
	tt.MustEqual(1, cmpLimbs([]uint64{0, 1}, []uint64{maxUint64, 0}))
	tt.MustEqual(-1, cmpLimbs([]uint64{1, 0}, []uint64{2, 0}))
	tt.MustEqual(0, cmpLimbs([]uint64{2, 3}, []uint64{2, 3}))
}
