package num

import (
	"github.com/tinylib/msgp/msgp"
)

// The msgpack form of UInt and Int is an array of ceil(N/64) uint64 limbs,
// least significant first.

var (
	_ msgp.Marshaler   = UInt256{}
	_ msgp.Unmarshaler = (*UInt256)(nil)
	_ msgp.Encodable   = UInt256{}
	_ msgp.Decodable   = (*UInt256)(nil)
	_ msgp.Sizer       = UInt256{}

	_ msgp.Marshaler   = Int256{}
	_ msgp.Unmarshaler = (*Int256)(nil)
)

func appendLimbs(b []byte, x []uint64) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(x)))
	for _, l := range x {
		b = msgp.AppendUint64(b, l)
	}
	return b
}

func readLimbs(z []uint64, b []byte) (o []byte, err error) {
	sz, o, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, err
	}
	if int(sz) != len(z) {
		return b, msgp.ArrayError{Wanted: uint32(len(z)), Got: sz}
	}
	for i := range z {
		z[i], o, err = msgp.ReadUint64Bytes(o)
		if err != nil {
			return b, msgp.WrapError(err, i)
		}
	}
	return o, nil
}

func encodeLimbs(en *msgp.Writer, x []uint64) error {
	if err := en.WriteArrayHeader(uint32(len(x))); err != nil {
		return err
	}
	for _, l := range x {
		if err := en.WriteUint64(l); err != nil {
			return err
		}
	}
	return nil
}

func decodeLimbs(z []uint64, dc *msgp.Reader) error {
	sz, err := dc.ReadArrayHeader()
	if err != nil {
		return err
	}
	if int(sz) != len(z) {
		return msgp.ArrayError{Wanted: uint32(len(z)), Got: sz}
	}
	for i := range z {
		if z[i], err = dc.ReadUint64(); err != nil {
			return msgp.WrapError(err, i)
		}
	}
	return nil
}

func limbsMsgsize(n int) int { return msgp.ArrayHeaderSize + n*msgp.Uint64Size }

func (u UInt[S]) MarshalMsg(b []byte) ([]byte, error) {
	return appendLimbs(b, u.limbs()), nil
}

func (u *UInt[S]) UnmarshalMsg(b []byte) ([]byte, error) {
	var v UInt[S]
	o, err := readLimbs(v.limbs(), b)
	if err != nil {
		return b, err
	}
	v.norm()
	*u = v
	return o, nil
}

func (u UInt[S]) EncodeMsg(en *msgp.Writer) error { return encodeLimbs(en, u.limbs()) }

func (u *UInt[S]) DecodeMsg(dc *msgp.Reader) error {
	var v UInt[S]
	if err := decodeLimbs(v.limbs(), dc); err != nil {
		return err
	}
	v.norm()
	*u = v
	return nil
}

func (u UInt[S]) Msgsize() int { return limbsMsgsize(shapeOf[S]().limbs) }

func (i Int[S]) MarshalMsg(b []byte) ([]byte, error) {
	return appendLimbs(b, i.limbs()), nil
}

func (i *Int[S]) UnmarshalMsg(b []byte) ([]byte, error) {
	var v Int[S]
	o, err := readLimbs(v.limbs(), b)
	if err != nil {
		return b, err
	}
	v.norm()
	*i = v
	return o, nil
}

func (i Int[S]) EncodeMsg(en *msgp.Writer) error { return encodeLimbs(en, i.limbs()) }

func (i *Int[S]) DecodeMsg(dc *msgp.Reader) error {
	var v Int[S]
	if err := decodeLimbs(v.limbs(), dc); err != nil {
		return err
	}
	v.norm()
	*i = v
	return nil
}

func (i Int[S]) Msgsize() int { return limbsMsgsize(shapeOf[S]().limbs) }
