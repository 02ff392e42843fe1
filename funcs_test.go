package rpncalc

import (
	"errors"
	"math"
	"testing"
)

func TestUnaryDomains(t *testing.T) {
	cases := []struct {
		op   Op
		in   float64
		want DomainKind
	}{
		{OpNeg, 0, DomainNone},
		{OpSin, 1e300, DomainNone},
		{OpCos, -1e300, DomainNone},
		{OpTan, 1, DomainNone},
		{OpCot, 0, CotangentUndefined},
		{OpCot, 1, DomainNone},
		{OpAsin, 1, DomainNone},
		{OpAsin, -1, DomainNone},
		{OpAsin, 1.0000001, OutOfDomain},
		{OpAsin, -2, OutOfDomain},
		{OpAcos, 1, DomainNone},
		{OpAcos, -1.0000001, OutOfDomain},
		{OpAcos, 2, OutOfDomain},
		{OpAtan, 1e300, DomainNone},
		{OpSqrt, 0, DomainNone},
		{OpSqrt, -1e-300, NegativeRadicand},
		{OpLn, 1e-300, DomainNone},
		{OpLn, 0, NonPositiveLogArgument},
		{OpLn, -1, NonPositiveLogArgument},
		{OpLog, 1e-300, DomainNone},
		{OpLog, 0, NonPositiveLogArgument},
		{OpLog, -5, NonPositiveLogArgument},
	}
	for _, c := range cases {
		r, k, ok := unary(c.op, c.in)
		if !ok {
			t.Errorf("%v is not unary", c.op)
			continue
		}
		if k != c.want {
			t.Errorf("%v(%g): want %v, got %v", c.op, c.in, c.want, k)
		}
		if k != DomainNone && r != 0 {
			t.Errorf("%v(%g): domain error with result %g", c.op, c.in, r)
		}
	}
}

func TestBinaryDomains(t *testing.T) {
	cases := []struct {
		op   Op
		a, b float64
		r    float64
		want DomainKind
	}{
		{OpAdd, 1, 2, 3, DomainNone},
		{OpSub, 1, 2, -1, DomainNone},
		{OpMul, 3, 2, 6, DomainNone},
		{OpDiv, 3, 2, 1.5, DomainNone},
		{OpDiv, 3, 0, 0, DivisionByZero},
		{OpDiv, 0, 0, 0, DivisionByZero},
		{OpDiv, 3, math.Copysign(0, -1), 0, DivisionByZero},
		{OpPow, 2, 10, 1024, DomainNone},
		{OpPow, 0, 0, 1, DomainNone},
		{OpMod, 7, 5, 2, DomainNone},
		{OpMod, -7, 5, -2, DomainNone},
		{OpMod, 7, -5, 2, DomainNone},
		{OpMod, 7, 0, 0, ModuloByZero},
	}
	for _, c := range cases {
		r, k, ok := binary(c.op, c.a, c.b)
		if !ok {
			t.Errorf("%v is not binary", c.op)
			continue
		}
		if k != c.want {
			t.Errorf("%g %v %g: want %v, got %v", c.a, c.op, c.b, c.want, k)
		}
		if r != c.r {
			t.Errorf("%g %v %g: want %g, got %g", c.a, c.op, c.b, c.r, r)
		}
	}
}

func TestWrongArity(t *testing.T) {
	for op := OpAdd; op <= OpLog; op++ {
		_, _, bok := binary(op, 1, 1)
		_, _, uok := unary(op, 1)
		if bok == uok {
			t.Errorf("%v: binary %t, unary %t", op, bok, uok)
		}
		if uok != op.Unary() {
			t.Errorf("%v: applies as unary %t but Unary reports %t", op, uok, op.Unary())
		}
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	sentinels := map[DomainKind]error{
		DivisionByZero:         ErrDivisionByZero,
		ModuloByZero:           ErrModuloByZero,
		CotangentUndefined:     ErrCotangentUndefined,
		OutOfDomain:            ErrOutOfDomain,
		NegativeRadicand:       ErrNegativeRadicand,
		NonPositiveLogArgument: ErrNonPositiveLog,
	}
	for k, want := range sentinels {
		err := &DomainError{Kind: k, Func: "f", Col: 3}
		if !errors.Is(err, want) {
			t.Errorf("%v does not unwrap to %v", err, want)
		}
		for k2, other := range sentinels {
			if k2 != k && errors.Is(err, other) {
				t.Errorf("%v unwraps to %v", err, other)
			}
		}
	}
	if err := (&DomainError{}).Unwrap(); err != nil {
		t.Errorf("zero DomainError unwraps to %v", err)
	}
}

func TestDomainErrorMessages(t *testing.T) {
	cases := []struct {
		err  *DomainError
		want string
	}{
		{&DomainError{Kind: DivisionByZero, Func: "/", Col: 7}, "7: division by zero"},
		{&DomainError{Kind: ModuloByZero, Func: "mod", Col: 3}, "3: modulo by zero"},
		{&DomainError{Kind: NegativeRadicand, Func: "sqrt", X: -1, Col: 1}, "1: sqrt(-1): negative radicand"},
		{&DomainError{Kind: NonPositiveLogArgument, Func: "log", X: 0, Col: 2}, "2: log(0): logarithm of non-positive number"},
		{&DomainError{Kind: OutOfDomain, Func: "asin", X: 2.5, Col: 1}, "1: asin(2.5): argument outside [-1, 1]"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}
