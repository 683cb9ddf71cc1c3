package num

import (
	"fmt"
)

// Endian selects the byte order of a byte buffer.
type Endian int

const (
	// LittleEndian maps buffer byte i to value byte i.
	LittleEndian Endian = iota

	// BigEndian puts the most significant byte first.
	BigEndian
)

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	}
	return fmt.Sprintf("Endian(%d)", int(e))
}

// ParseEndian accepts "little", "le", "big" or "be".
func ParseEndian(s string) (Endian, error) {
	switch s {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	}
	return 0, errorf(ErrInvalidString, "unknown byte order %q", s)
}

// UIntFromBytes creates a UInt from a buffer of at most N/8 bytes, such as a
// hash digest. Missing high bytes are zero.
func UIntFromBytes[S Size](b []byte, order Endian) (out UInt[S], err error) {
	sh := shapeOf[S]()
	if len(b) > sh.bits/8 {
		return out, errorf(ErrSize, "size of input byte array is bigger than %d bits", sh.bits)
	}
	n := len(b)
	for i, c := range b {
		idx := i
		if order == BigEndian {
			idx = n - 1 - i
		}
		out.w[idx/8] |= uint64(c) << (uint(idx%8) * 8)
	}
	return out, nil
}

// IntFromBytes reads a two's-complement buffer of exactly N/8 bytes, or a
// shorter buffer which is zero-extended.
func IntFromBytes[S Size](b []byte, order Endian) (out Int[S], err error) {
	u, err := UIntFromBytes[S](b, order)
	if err != nil {
		return out, err
	}
	return u.Int(), nil
}

// AsBytes exports u in the given byte order. With leadingZeros the buffer is
// always N/8 bytes long, otherwise it is TrimmedSize bytes long.
func (u UInt[S]) AsBytes(order Endian, leadingZeros bool) []byte {
	n := u.Bits() / 8
	if !leadingZeros {
		n = u.TrimmedSize()
	}
	return limbsBytes(u.w[:], n, order)
}

// AsBytes exports the full-width two's-complement representation of i.
func (i Int[S]) AsBytes(order Endian) []byte {
	return limbsBytes(i.w[:], i.Bits()/8, order)
}

func limbsBytes(x []uint64, n int, order Endian) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := byte(x[i/8] >> (uint(i%8) * 8))
		if order == BigEndian {
			out[n-1-i] = c
		} else {
			out[i] = c
		}
	}
	return out
}
