package rpncalc

import (
	"errors"
	"math"
	"strconv"
)

// DomainKind classifies a DomainError.
type DomainKind int8

const (
	DomainNone DomainKind = iota
	// DivisionByZero is a / with a zero divisor.
	DivisionByZero
	// ModuloByZero is a mod with a zero divisor.
	ModuloByZero
	// CotangentUndefined is cot of an argument whose tangent is zero.
	CotangentUndefined
	// OutOfDomain is asin or acos of an argument outside [-1, 1].
	OutOfDomain
	// NegativeRadicand is sqrt of a negative argument.
	NegativeRadicand
	// NonPositiveLogArgument is ln or log of an argument that is not
	// positive.
	NonPositiveLogArgument
)

// Sentinel errors that DomainError unwraps to, one per DomainKind.
var (
	ErrDivisionByZero     = errors.New("division by zero")
	ErrModuloByZero       = errors.New("modulo by zero")
	ErrCotangentUndefined = errors.New("cotangent undefined")
	ErrOutOfDomain        = errors.New("argument outside [-1, 1]")
	ErrNegativeRadicand   = errors.New("negative radicand")
	ErrNonPositiveLog     = errors.New("logarithm of non-positive number")
)

var domainerrs = [...]error{
	DivisionByZero:         ErrDivisionByZero,
	ModuloByZero:           ErrModuloByZero,
	CotangentUndefined:     ErrCotangentUndefined,
	OutOfDomain:            ErrOutOfDomain,
	NegativeRadicand:       ErrNegativeRadicand,
	NonPositiveLogArgument: ErrNonPositiveLog,
}

func (k DomainKind) String() string {
	if k <= DomainNone || int(k) >= len(domainerrs) {
		return "DomainKind(" + strconv.Itoa(int(k)) + ")"
	}
	return domainerrs[k].Error()
}

// DomainError is an error returned when an operator or function is applied to
// an argument outside its domain. It unwraps to the sentinel error for its
// Kind, e.g. ErrDivisionByZero. It implements InputError.
type DomainError struct {
	// Kind is the class of failure.
	Kind DomainKind
	// Func is the operator or function name.
	Func string
	// X is the out-of-domain argument: the divisor for / and mod, otherwise
	// the function's operand.
	X float64
	// Col is the position of the operator or function.
	Col int
}

func (err *DomainError) Error() string {
	switch err.Kind {
	case DivisionByZero, ModuloByZero:
		return errpos(err.Col, err.Kind.String())
	}
	return errpos(err.Col, err.Func+"("+strconv.FormatFloat(err.X, 'g', -1, 64)+"): "+err.Kind.String())
}

func (err *DomainError) Unwrap() error {
	if err.Kind <= DomainNone || int(err.Kind) >= len(domainerrs) {
		return nil
	}
	return domainerrs[err.Kind]
}

func (err *DomainError) Pos() int {
	return err.Col
}

// binary applies a binary operator. If the operands are outside the operator's
// domain, the result is a non-zero DomainKind. ok is false if op is not a
// binary operator.
func binary(op Op, a, b float64) (r float64, k DomainKind, ok bool) {
	switch op {
	case OpAdd:
		return a + b, DomainNone, true
	case OpSub:
		return a - b, DomainNone, true
	case OpMul:
		return a * b, DomainNone, true
	case OpDiv:
		if b == 0 {
			return 0, DivisionByZero, true
		}
		return a / b, DomainNone, true
	case OpPow:
		return math.Pow(a, b), DomainNone, true
	case OpMod:
		if b == 0 {
			return 0, ModuloByZero, true
		}
		return math.Mod(a, b), DomainNone, true
	}
	return 0, DomainNone, false
}

// unary applies unary minus or a named function, in the same manner as
// binary.
func unary(op Op, a float64) (r float64, k DomainKind, ok bool) {
	switch op {
	case OpNeg:
		return -a, DomainNone, true
	case OpSin:
		return math.Sin(a), DomainNone, true
	case OpCos:
		return math.Cos(a), DomainNone, true
	case OpTan:
		return math.Tan(a), DomainNone, true
	case OpCot:
		t := math.Tan(a)
		if t == 0 {
			return 0, CotangentUndefined, true
		}
		return 1 / t, DomainNone, true
	case OpAsin:
		if a < -1 || a > 1 {
			return 0, OutOfDomain, true
		}
		return math.Asin(a), DomainNone, true
	case OpAcos:
		if a < -1 || a > 1 {
			return 0, OutOfDomain, true
		}
		return math.Acos(a), DomainNone, true
	case OpAtan:
		return math.Atan(a), DomainNone, true
	case OpSqrt:
		if a < 0 {
			return 0, NegativeRadicand, true
		}
		return math.Sqrt(a), DomainNone, true
	case OpLn:
		if a <= 0 {
			return 0, NonPositiveLogArgument, true
		}
		return math.Log(a), DomainNone, true
	case OpLog:
		if a <= 0 {
			return 0, NonPositiveLogArgument, true
		}
		return math.Log10(a), DomainNone, true
	}
	return 0, DomainNone, false
}
