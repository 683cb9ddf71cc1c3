// Command numcalc evaluates fixed-width integer and fixed-point expressions
// from the command line, using the same code paths as the num and fixed
// packages.
//
//	numcalc uint add 0xffffffffffffffff 1 --width 128
//	numcalc int quo -- -7 2
//	numcalc fixed exp 1.5 --width 64
//	numcalc bytes 00ff --endian big --dump
//	numcalc recip 1000 7 --width 64
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
