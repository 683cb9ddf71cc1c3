package fixed

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of every error returned by this package.
var Error = errs.Class("fixed")

// State is a set of sticky condition flags.
type State uint32

const (
	StateNaN State = 1 << iota
	StateDivisionByZero
	StateUnderflow
	StateOverflow
	StateInfinity
)

var stateNames = [...]string{"nan", "division by zero", "underflow", "overflow", "infinity"}

func (s State) String() string {
	if s == 0 {
		return "ok"
	}
	var names []string
	for i, n := range stateNames {
		if s&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

// Context collects the conditions raised by the operations run through it.
// Flags are only ever added; Clear resets them. A nil *Context is valid and
// discards everything.
//
// A Context is not safe for concurrent use. Values are, so give each
// goroutine its own Context.
type Context[T rawer[T]] struct {
	state State
}

type (
	Ctx32  = Context[Raw32]
	Ctx64  = Context[Raw64]
	Ctx128 = Context[Raw128]
	Ctx256 = Context[Raw256]
)

func (c *Context[T]) set(s State) {
	if c != nil {
		c.state |= s
	}
}

func (c *Context[T]) State() State {
	if c == nil {
		return 0
	}
	return c.state
}

func (c *Context[T]) Clear() {
	if c != nil {
		c.state = 0
	}
}

// Set adds s to the flags.
func (c *Context[T]) Set(s State) { c.set(s) }

func (c *Context[T]) IsStateNaN() bool            { return c.State()&StateNaN != 0 }
func (c *Context[T]) IsStateDivisionByZero() bool { return c.State()&StateDivisionByZero != 0 }
func (c *Context[T]) IsStateUnderflow() bool      { return c.State()&StateUnderflow != 0 }
func (c *Context[T]) IsStateOverflow() bool       { return c.State()&StateOverflow != 0 }
func (c *Context[T]) IsStateInfinity() bool       { return c.State()&StateInfinity != 0 }

// Err returns nil if no flag is set.
func (c *Context[T]) Err() error {
	s := c.State()
	if s == 0 {
		return nil
	}
	var z T
	return Error.New("fp%d: %s", z.layout().bits, s)
}

func (c *Context[T]) consts() *Consts[T] { return constsOf[T]() }
