package num

import (
	"fmt"
)

const (
	limbBits = 64
	maxLimbs = 8
	maxBits  = limbBits * maxLimbs
)

// Size is implemented by the width markers passed to UInt and Int as type
// arguments. Bits must be a multiple of 8 no larger than 512.
type Size interface {
	Bits() int
}

type (
	B32  struct{}
	B64  struct{}
	B72  struct{}
	B128 struct{}
	B256 struct{}
	B272 struct{}
	B512 struct{}
)

func (B32) Bits() int  { return 32 }
func (B64) Bits() int  { return 64 }
func (B72) Bits() int  { return 72 }
func (B128) Bits() int { return 128 }
func (B256) Bits() int { return 256 }
func (B272) Bits() int { return 272 }
func (B512) Bits() int { return 512 }

type (
	UInt32  = UInt[B32]
	UInt64  = UInt[B64]
	UInt72  = UInt[B72]
	UInt128 = UInt[B128]
	UInt256 = UInt[B256]
	UInt272 = UInt[B272]
	UInt512 = UInt[B512]

	Int64  = Int[B64]
	Int128 = Int[B128]
	Int256 = Int[B256]
	Int512 = Int[B512]
)

// shape describes how a width maps onto the limb array.
type shape struct {
	bits  int
	limbs int

	// residual masks the bits of the top limb that belong to the value.
	residual uint64

	// spare is the number of unused high bits in the top limb.
	spare uint
}

func shapeOf[S Size]() shape {
	var s S
	n := s.Bits()
	if n <= 0 || n > maxBits || n%8 != 0 {
		panic(fmt.Sprintf("num: unsupported width %d", n))
	}
	sh := shape{bits: n, limbs: (n + limbBits - 1) / limbBits, residual: maxUint64}
	if rem := n % limbBits; rem != 0 {
		sh.spare = uint(limbBits - rem)
		sh.residual = maxUint64 >> sh.spare
	}
	return sh
}

// BitsOf returns the width of S in bits.
func BitsOf[S Size]() int { return shapeOf[S]().bits }
