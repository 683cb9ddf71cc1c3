package main

import (
	"encoding/hex"
	"strconv"

	"github.com/ledgermath/go-num"
	"github.com/spf13/cobra"
)

func newBytesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes <hex> [hex]",
		Short: "Read byte buffers, such as hash digests, as unsigned integers",
		Long: `Reads each hex-encoded buffer as an unsigned integer of --width bits in
the --endian byte order and writes it back out. With two buffers, prints how
the first compares to the second (-1, 0 or 1), the way proof-of-work scores
are ranked.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := num.ParseEndian(a.v.GetString(keyEndian))
			if err != nil {
				return err
			}
			trim := a.v.GetBool(keyTrim)

			var r result
			switch w := a.width(); w {
			case 32:
				r, err = bytesOp[num.B32](order, trim, args)
			case 64:
				r, err = bytesOp[num.B64](order, trim, args)
			case 128:
				r, err = bytesOp[num.B128](order, trim, args)
			case 256:
				r, err = bytesOp[num.B256](order, trim, args)
			case 512:
				r, err = bytesOp[num.B512](order, trim, args)
			default:
				return unsupportedWidth("bytes", w)
			}
			if err != nil {
				return err
			}
			return a.print(r)
		},
	}
	cmd.Flags().String(keyEndian, "big", "byte order of the buffers: big or little")
	cmd.Flags().Bool(keyTrim, false, "omit leading zero bytes when writing the value back")
	return cmd
}

func decodeBuffer[S num.Size](s string, order num.Endian) (num.UInt[S], error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return num.UInt[S]{}, Error.New("buffer %q: %v", s, err)
	}
	return num.UIntFromBytes[S](buf, order)
}

func bytesOp[S num.Size](order num.Endian, trim bool, args []string) (r result, err error) {
	x, err := decodeBuffer[S](args[0], order)
	if err != nil {
		return r, err
	}

	if len(args) == 2 {
		y, err := decodeBuffer[S](args[1], order)
		if err != nil {
			return r, err
		}
		return result{Op: "cmp", Width: x.Bits(), Value: strconv.Itoa(x.Cmp(y))}, nil
	}

	out := x.AsBytes(order, !trim)
	back, err := num.UIntFromBytes[S](out, order)
	if err != nil {
		return r, err
	} else if back != x {
		return r, Error.New("round trip of %x changed the value", out)
	}

	r = uintResult("bytes", x)
	r.Value = hex.EncodeToString(out)
	if len(out) == 0 {
		r.Value = "(empty)"
	}
	return r, nil
}
