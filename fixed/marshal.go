package fixed

import (
	"strconv"

	"github.com/tinylib/msgp/msgp"
)

// MarshalText writes the shortest exact decimal, so a round trip through
// UnmarshalText restores the same pattern.
func (x Fixed[T]) MarshalText() ([]byte, error) {
	return []byte(x.exact()), nil
}

// UnmarshalText accepts every form MarshalText and String produce. Out of
// range values clamp silently.
func (x *Fixed[T]) UnmarshalText(bts []byte) (err error) {
	var c *Context[T]
	*x, err = c.parseName(string(bts))
	return err
}

func (x Fixed[T]) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, x.exact()), nil
}

func (x *Fixed[T]) UnmarshalJSON(bts []byte) error {
	s, err := strconv.Unquote(string(bts))
	if err != nil {
		return Error.New("fp%d: JSON value %s is not a string", x.raw.layout().bits, bts)
	}
	return x.UnmarshalText([]byte(s))
}

// The msgp wire form is the raw integer: a msgpack int for Fp32 and Fp64,
// an array of limbs for Fp128 and Fp256.

func (x Fixed[T]) MarshalMsg(b []byte) ([]byte, error) { return x.raw.appendMsg(b) }

func (x *Fixed[T]) UnmarshalMsg(b []byte) (o []byte, err error) {
	x.raw, o, err = x.raw.readMsg(b)
	return o, err
}

func (x Fixed[T]) EncodeMsg(en *msgp.Writer) error { return x.raw.encodeMsg(en) }

func (x *Fixed[T]) DecodeMsg(dc *msgp.Reader) (err error) {
	x.raw, err = x.raw.decodeMsg(dc)
	return err
}

func (x Fixed[T]) Msgsize() int { return x.raw.msgsize() }

var (
	_ msgp.Marshaler   = Fp64{}
	_ msgp.Unmarshaler = (*Fp64)(nil)
	_ msgp.Encodable   = Fp128{}
	_ msgp.Decodable   = (*Fp128)(nil)
	_ msgp.Sizer       = Fp256{}
)
