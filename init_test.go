package num

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/bits"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "num.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "num.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "num.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "num.fuzztype", "Fuzz type (u72, u128, u256, u272, u512, i128, i256, i512) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	if testing.Short() && fuzzIterations == fuzzDefaultIterations {
		fuzzIterations = fuzzDefaultIterations / 20
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("integer sz:", bits.UintSize)

	code := m.Run()
	os.Exit(code)
}

var trimFloatPattern = regexp.MustCompile(`(\.0+$|(\.\d+[1-9])\0+$)`)

func cleanFloatStr(str string) string {
	return trimFloatPattern.ReplaceAllString(str, "$2")
}

func accUIntFromBigInt[S Size](b *big.Int) UInt[S] {
	u, acc := UIntFromBigInt[S](b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to uint%d in fuzz tester for %s", BitsOf[S](), b))
	}
	return u
}

func accIntFromBigInt[S Size](b *big.Int) Int[S] {
	i, acc := IntFromBigInt[S](b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to int%d in fuzz tester for %s", BitsOf[S](), b))
	}
	return i
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBig returns a value of up to width bits whose bit length is uniformly
// distributed, so that small values are generated as often as large ones.
func randomBig(rng *rand.Rand, width int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	n := rng.Intn(width+1) - 1 // +1 for "0 bits"
	if n < 0 {
		return v // "-1 bits" == "0"
	}
	v.Rand(rng, wrapBig(n))
	v.SetBit(v, n, 1)
	return v
}

// wrapBig returns 1 << n.
func wrapBig(n int) *big.Int {
	return new(big.Int).Lsh(big1, uint(n))
}

// wrapUnsigned reduces b modulo 2^n, simulating over- and underflow.
func wrapUnsigned(b *big.Int, n int) *big.Int {
	return new(big.Int).Mod(b, wrapBig(n))
}

// wrapSigned reduces b into [-2^(n-1), 2^(n-1)).
func wrapSigned(b *big.Int, n int) *big.Int {
	r := wrapUnsigned(b, n)
	if r.Cmp(wrapBig(n-1)) >= 0 {
		r.Sub(r, wrapBig(n))
	}
	return r
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num: big string %q invalid", s))
	}
	return b
}

func u256s(s string) UInt256 {
	return accUIntFromBigInt[B256](bigs(s))
}

func i256s(s string) Int256 {
	return accIntFromBigInt[B256](bigs(s))
}

func u256(v uint64) UInt256 { return UIntFrom64[B256](v) }

func mustLimbs[S Size](limbs ...uint64) UInt[S] {
	u, err := UIntFromLimbs[S](limbs...)
	if err != nil {
		panic(err)
	}
	return u
}
