/*
Package num provides fixed-width unsigned (UInt) and signed (Int) integers of
any width that is a multiple of 8 bits up to 512, implementing most of the
big.Int API without heap allocation.

The width is a type argument. Markers for the common widths are provided
(B32, B64, B72, B128, B256, B272, B512), along with aliases such as UInt256
and Int128. Any other width can be added by declaring a type with a Bits
method:

	type B160 struct{}
	func (B160) Bits() int { return 160 }

UInt and Int are value types; all operations return new values. Arithmetic
wraps modulo 2^N like Go's native integers. Division by zero panics, as it
does for native integers; DivMod returns ErrDivisionByZero instead.

Simple example:

	u1 := num.UIntFrom64[num.B256](math.MaxUint64)
	u2 := u1.Lsh(32).Add(u1)
	fmt.Printf("%d\n", u2)
	// Output: 79228162532711081662958534655

Values can be created from a variety of sources:

	UIntFrom64[S](v uint64) UInt[S]
	UIntFrom[S, V constraints.Integer](v V) UInt[S]
	UIntFromLimbs[S](limbs ...uint64) (UInt[S], error)
	UIntFromBytes[S](b []byte, order Endian) (UInt[S], error)
	UIntFromHex[S](s string) (UInt[S], error)
	UIntFromString[S](s string, base int) (out UInt[S], accurate bool, err error)
	UIntFromBigInt[S](v *big.Int) (out UInt[S], accurate bool)

String returns the fixed-width lowercase hex form; %d and the other integer
verbs format the numeric value through big.Int.

UInt and Int support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - msgp.Marshaler, msgp.Unmarshaler, msgp.Encodable, msgp.Decodable, msgp.Sizer
*/
package num
