package fixed

import (
	"math/big"
	"math/bits"

	"github.com/ledgermath/go-num"
	"github.com/tinylib/msgp/msgp"
)

// layout describes a Q(I.F) format.
type layout struct {
	bits   int // I+F
	frac   int // F
	digits int // decimal fraction digits printed by String
}

func (l layout) intBits() int { return l.bits - l.frac }

// rawer is the closed set of backing integers. Every method works on the
// two's-complement pattern; none of them know about NaN or the infinities.
type rawer[T any] interface {
	Raw32 | Raw64 | Raw128 | Raw256

	layout() layout

	add(T) T
	sub(T) T
	neg() T
	cmp(T) int
	sign() int
	shl(n uint) T
	shr(n uint) T // arithmetic
	rem(T) T      // truncated; divisor must be non-zero
	bit(i int) uint
	bitLen() int // length of the magnitude

	// mulFrac returns (r*o) >> F and quoFrac returns (r << F) / o, both
	// computed exactly in the double-width type. ovf is +1 or -1 if the
	// result does not fit in T, in which case the value is meaningless.
	mulFrac(o T) (v T, ovf int)
	quoFrac(o T) (v T, ovf int)

	fromInt64(v int64) T
	toInt64() int64
	fromBig(b *big.Int) T // b must fit
	toBig() *big.Int

	appendMsg(b []byte) ([]byte, error)
	readMsg(b []byte) (T, []byte, error)
	encodeMsg(en *msgp.Writer) error
	decodeMsg(dc *msgp.Reader) (T, error)
	msgsize() int
}

// Raw is the constraint satisfied by the four backing types, for code
// outside this package that is generic over the width.
type Raw[T any] interface {
	rawer[T]
}

// Raw32 backs a Q16.16 value.
type Raw32 int32

func (Raw32) layout() layout { return layout{bits: 32, frac: 16, digits: 4} }

func (r Raw32) add(o Raw32) Raw32 { return r + o }
func (r Raw32) sub(o Raw32) Raw32 { return r - o }
func (r Raw32) neg() Raw32        { return -r }
func (r Raw32) cmp(o Raw32) int   { return cmpOrdered(r, o) }
func (r Raw32) sign() int         { return cmpOrdered(r, 0) }
func (r Raw32) shl(n uint) Raw32  { return r << n }
func (r Raw32) shr(n uint) Raw32  { return r >> n }
func (r Raw32) rem(o Raw32) Raw32 { return r % o }
func (r Raw32) bit(i int) uint    { return uint(uint32(r)>>uint(i)) & 1 }

func (r Raw32) bitLen() int {
	u := uint32(r)
	if r < 0 {
		u = -u
	}
	return bits.Len32(u)
}

func (r Raw32) mulFrac(o Raw32) (Raw32, int) {
	return narrow32((int64(r) * int64(o)) >> 16)
}

func (r Raw32) quoFrac(o Raw32) (Raw32, int) {
	return narrow32((int64(r) << 16) / int64(o))
}

func narrow32(w int64) (Raw32, int) {
	if w > int64(^uint32(0)>>1) {
		return 0, 1
	} else if w < -int64(^uint32(0)>>1)-1 {
		return 0, -1
	}
	return Raw32(w), 0
}

func (Raw32) fromInt64(v int64) Raw32     { return Raw32(v) }
func (r Raw32) toInt64() int64            { return int64(r) }
func (Raw32) fromBig(b *big.Int) Raw32    { return Raw32(b.Int64()) }
func (r Raw32) toBig() *big.Int           { return big.NewInt(int64(r)) }
func (r Raw32) msgsize() int              { return msgp.Int32Size }
func (r Raw32) encodeMsg(en *msgp.Writer) error { return en.WriteInt32(int32(r)) }

func (r Raw32) appendMsg(b []byte) ([]byte, error) { return msgp.AppendInt32(b, int32(r)), nil }

func (Raw32) readMsg(b []byte) (Raw32, []byte, error) {
	v, o, err := msgp.ReadInt32Bytes(b)
	return Raw32(v), o, err
}

func (Raw32) decodeMsg(dc *msgp.Reader) (Raw32, error) {
	v, err := dc.ReadInt32()
	return Raw32(v), err
}

// Raw64 backs a Q32.32 value. Products and quotients go through num.Int128.
type Raw64 int64

func (Raw64) layout() layout { return layout{bits: 64, frac: 32, digits: 9} }

func (r Raw64) add(o Raw64) Raw64 { return r + o }
func (r Raw64) sub(o Raw64) Raw64 { return r - o }
func (r Raw64) neg() Raw64        { return -r }
func (r Raw64) cmp(o Raw64) int   { return cmpOrdered(r, o) }
func (r Raw64) sign() int         { return cmpOrdered(r, 0) }
func (r Raw64) shl(n uint) Raw64  { return r << n }
func (r Raw64) shr(n uint) Raw64  { return r >> n }
func (r Raw64) rem(o Raw64) Raw64 { return r % o }
func (r Raw64) bit(i int) uint    { return uint(uint64(r)>>uint(i)) & 1 }

func (r Raw64) bitLen() int {
	u := uint64(r)
	if r < 0 {
		u = -u
	}
	return bits.Len64(u)
}

func (r Raw64) wide() num.Int128 { return num.IntFrom64[num.B128](int64(r)) }

func (r Raw64) mulFrac(o Raw64) (Raw64, int) {
	return narrow64(r.wide().Mul(o.wide()).Rsh(32))
}

func (r Raw64) quoFrac(o Raw64) (Raw64, int) {
	return narrow64(r.wide().Lsh(32).Quo(o.wide()))
}

func narrow64(w num.Int128) (Raw64, int) {
	if !w.IsInt64() {
		return 0, w.Sign()
	}
	return Raw64(w.AsInt64()), 0
}

func (Raw64) fromInt64(v int64) Raw64     { return Raw64(v) }
func (r Raw64) toInt64() int64            { return int64(r) }
func (Raw64) fromBig(b *big.Int) Raw64    { return Raw64(b.Int64()) }
func (r Raw64) toBig() *big.Int           { return big.NewInt(int64(r)) }
func (r Raw64) msgsize() int              { return msgp.Int64Size }
func (r Raw64) encodeMsg(en *msgp.Writer) error { return en.WriteInt64(int64(r)) }

func (r Raw64) appendMsg(b []byte) ([]byte, error) { return msgp.AppendInt64(b, int64(r)), nil }

func (Raw64) readMsg(b []byte) (Raw64, []byte, error) {
	v, o, err := msgp.ReadInt64Bytes(b)
	return Raw64(v), o, err
}

func (Raw64) decodeMsg(dc *msgp.Reader) (Raw64, error) {
	v, err := dc.ReadInt64()
	return Raw64(v), err
}

// Raw128 backs a Q64.64 value. Products and quotients go through num.Int256.
type Raw128 num.Int128

func (r Raw128) v() num.Int128 { return num.Int128(r) }

func (Raw128) layout() layout { return layout{bits: 128, frac: 64, digits: 18} }

func (r Raw128) add(o Raw128) Raw128 { return Raw128(r.v().Add(o.v())) }
func (r Raw128) sub(o Raw128) Raw128 { return Raw128(r.v().Sub(o.v())) }
func (r Raw128) neg() Raw128         { return Raw128(r.v().Neg()) }
func (r Raw128) cmp(o Raw128) int    { return r.v().Cmp(o.v()) }
func (r Raw128) sign() int           { return r.v().Sign() }
func (r Raw128) shl(n uint) Raw128   { return Raw128(r.v().Lsh(n)) }
func (r Raw128) shr(n uint) Raw128   { return Raw128(r.v().Rsh(n)) }
func (r Raw128) rem(o Raw128) Raw128 { return Raw128(r.v().Rem(o.v())) }
func (r Raw128) bit(i int) uint      { return r.v().Bit(i) }
func (r Raw128) bitLen() int         { return r.v().BitLen() }

func (r Raw128) wide() num.Int256 { return num.ResizeInt[num.B256](r.v()) }

func (r Raw128) mulFrac(o Raw128) (Raw128, int) {
	return narrow128(r.wide().Mul(o.wide()).Rsh(64))
}

func (r Raw128) quoFrac(o Raw128) (Raw128, int) {
	return narrow128(r.wide().Lsh(64).Quo(o.wide()))
}

func narrow128(w num.Int256) (Raw128, int) {
	n := num.ResizeInt[num.B128](w)
	if num.ResizeInt[num.B256](n) != w {
		return Raw128{}, w.Sign()
	}
	return Raw128(n), 0
}

func (Raw128) fromInt64(v int64) Raw128 { return Raw128(num.IntFrom64[num.B128](v)) }
func (r Raw128) toInt64() int64         { return r.v().AsInt64() }
func (r Raw128) toBig() *big.Int        { return r.v().AsBigInt() }
func (r Raw128) msgsize() int           { return r.v().Msgsize() }

func (Raw128) fromBig(b *big.Int) Raw128 {
	i, _ := num.IntFromBigInt[num.B128](b)
	return Raw128(i)
}

func (r Raw128) appendMsg(b []byte) ([]byte, error) { return r.v().MarshalMsg(b) }
func (r Raw128) encodeMsg(en *msgp.Writer) error    { return r.v().EncodeMsg(en) }

func (Raw128) readMsg(b []byte) (Raw128, []byte, error) {
	var i num.Int128
	o, err := i.UnmarshalMsg(b)
	return Raw128(i), o, err
}

func (Raw128) decodeMsg(dc *msgp.Reader) (Raw128, error) {
	var i num.Int128
	err := i.DecodeMsg(dc)
	return Raw128(i), err
}

// Raw256 backs a Q128.128 value. Products and quotients go through num.Int512.
type Raw256 num.Int256

func (r Raw256) v() num.Int256 { return num.Int256(r) }

func (Raw256) layout() layout { return layout{bits: 256, frac: 128, digits: 38} }

func (r Raw256) add(o Raw256) Raw256 { return Raw256(r.v().Add(o.v())) }
func (r Raw256) sub(o Raw256) Raw256 { return Raw256(r.v().Sub(o.v())) }
func (r Raw256) neg() Raw256         { return Raw256(r.v().Neg()) }
func (r Raw256) cmp(o Raw256) int    { return r.v().Cmp(o.v()) }
func (r Raw256) sign() int           { return r.v().Sign() }
func (r Raw256) shl(n uint) Raw256   { return Raw256(r.v().Lsh(n)) }
func (r Raw256) shr(n uint) Raw256   { return Raw256(r.v().Rsh(n)) }
func (r Raw256) rem(o Raw256) Raw256 { return Raw256(r.v().Rem(o.v())) }
func (r Raw256) bit(i int) uint      { return r.v().Bit(i) }
func (r Raw256) bitLen() int         { return r.v().BitLen() }

func (r Raw256) wide() num.Int512 { return num.ResizeInt[num.B512](r.v()) }

func (r Raw256) mulFrac(o Raw256) (Raw256, int) {
	return narrow256(r.wide().Mul(o.wide()).Rsh(128))
}

func (r Raw256) quoFrac(o Raw256) (Raw256, int) {
	return narrow256(r.wide().Lsh(128).Quo(o.wide()))
}

func narrow256(w num.Int512) (Raw256, int) {
	n := num.ResizeInt[num.B256](w)
	if num.ResizeInt[num.B512](n) != w {
		return Raw256{}, w.Sign()
	}
	return Raw256(n), 0
}

func (Raw256) fromInt64(v int64) Raw256 { return Raw256(num.IntFrom64[num.B256](v)) }
func (r Raw256) toInt64() int64         { return r.v().AsInt64() }
func (r Raw256) toBig() *big.Int        { return r.v().AsBigInt() }
func (r Raw256) msgsize() int           { return r.v().Msgsize() }

func (Raw256) fromBig(b *big.Int) Raw256 {
	i, _ := num.IntFromBigInt[num.B256](b)
	return Raw256(i)
}

func (r Raw256) appendMsg(b []byte) ([]byte, error) { return r.v().MarshalMsg(b) }
func (r Raw256) encodeMsg(en *msgp.Writer) error    { return r.v().EncodeMsg(en) }

func (Raw256) readMsg(b []byte) (Raw256, []byte, error) {
	var i num.Int256
	o, err := i.UnmarshalMsg(b)
	return Raw256(i), o, err
}

func (Raw256) decodeMsg(dc *msgp.Reader) (Raw256, error) {
	var i num.Int256
	err := i.DecodeMsg(dc)
	return Raw256(i), err
}

func cmpOrdered[V Raw32 | Raw64](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
