package rpncalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision in bits used by EvalRPNBig when none is given.
const DefaultPrec = 64

// EvalBig evaluates the expression to prec bits of precision with the
// variable set to x.
func (e *Expr) EvalBig(x *big.Float, prec uint) (*big.Float, error) {
	return EvalRPNBig(e.rpn, x, prec)
}

// EvalRPNBig evaluates a postfix token sequence like EvalRPN, but computes in
// arbitrary precision. Literals are parsed from their source text at prec
// bits; a prec of 0 means DefaultPrec. Arity rules, domain checks, and error
// types are the same as EvalRPN.
//
// The trigonometric functions are computed in float64 precision.
func EvalRPNBig(rpn []Token, x *big.Float, prec uint) (r *big.Float, err error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		// e.g. inf - inf
		r, err = nil, &ResultError{X: math.NaN()}
	}()
	stack := make([]*big.Float, 0, len(rpn)/2+1)
	for _, tok := range rpn {
		switch tok.Kind {
		case KindNumber:
			v, err := literal(tok, prec)
			if err != nil {
				return nil, err
			}
			stack = append(stack, v)
		case KindVariable:
			v := new(big.Float).SetPrec(prec)
			if x != nil {
				v.Set(x)
			}
			stack = append(stack, v)
		case KindBinary:
			n := len(stack)
			if n < 2 {
				return nil, &ArityError{Col: tok.Pos, Op: tok.Op.String(), Want: 2, Have: n}
			}
			if err := bigBinary(tok, stack[n-2], stack[n-1]); err != nil {
				return nil, err
			}
			stack = stack[:n-1]
		case KindUnary:
			n := len(stack)
			if n < 1 {
				return nil, &ArityError{Col: tok.Pos, Op: tok.Op.String(), Want: 1, Have: 0}
			}
			if err := bigUnary(tok, stack[n-1]); err != nil {
				return nil, err
			}
		default:
			return nil, &TokenError{Col: tok.Pos, Token: tok.String()}
		}
	}
	if len(stack) != 1 {
		return nil, &MalformedError{Values: len(stack)}
	}
	r = stack[0]
	if r.IsInf() {
		f, _ := r.Float64()
		return nil, &ResultError{X: f}
	}
	return r, nil
}

// literal converts a Number token to a big.Float, preferring its source text
// so that e.g. 0.1 is exact to prec bits rather than to 53.
func literal(tok Token, prec uint) (*big.Float, error) {
	v := new(big.Float).SetPrec(prec)
	if tok.Text == "" {
		if math.IsNaN(tok.Value) {
			return nil, &ResultError{X: tok.Value}
		}
		return v.SetFloat64(tok.Value), nil
	}
	if _, ok := v.SetString(tok.Text); !ok {
		return nil, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
	}
	return v, nil
}

// bigBinary sets a to a op b.
func bigBinary(tok Token, a, b *big.Float) error {
	switch tok.Op {
	case OpAdd:
		a.Add(a, b)
	case OpSub:
		a.Sub(a, b)
	case OpMul:
		a.Mul(a, b)
	case OpDiv:
		if b.Sign() == 0 {
			return &DomainError{Kind: DivisionByZero, Func: "/", Col: tok.Pos}
		}
		a.Quo(a, b)
	case OpPow:
		return bigPow(a, b)
	case OpMod:
		if b.Sign() == 0 {
			return &DomainError{Kind: ModuloByZero, Func: "mod", Col: tok.Pos}
		}
		return bigMod(a, b)
	default:
		return &TokenError{Col: tok.Pos, Token: tok.String()}
	}
	return nil
}

// bigPow sets a to a^b. bigfloat.Pow only accepts non-negative bases, so
// negative bases are handled here for integer exponents.
func bigPow(a, b *big.Float) error {
	switch {
	case b.Sign() == 0:
		a.SetInt64(1)
	case a.Sign() == 0:
		if b.Sign() < 0 {
			return &ResultError{X: math.Inf(1)}
		}
		a.SetInt64(0)
	case a.Sign() < 0:
		if !b.IsInt() {
			return &ResultError{X: math.NaN()}
		}
		a.Neg(a)
		bigfloat.Pow(a, a, b)
		if odd(b) {
			a.Neg(a)
		}
	default:
		bigfloat.Pow(a, a, b)
	}
	return nil
}

// bigMod sets a to the remainder of a/b truncated toward zero, matching
// math.Mod. The remainder is exact before the final rounding to a's
// precision.
func bigMod(a, b *big.Float) error {
	switch {
	case a.IsInf():
		return &ResultError{X: math.NaN()}
	case b.IsInf(), a.Sign() == 0:
		return nil
	}
	// Enough bits for the integer part of a/b plus guard bits, so the
	// truncated quotient is at most one too large in magnitude.
	prec := a.Prec() + 64
	if d := a.MantExp(nil) - b.MantExp(nil); d > 0 {
		prec += uint(d)
	}
	q := new(big.Float).SetPrec(prec).Quo(a, b)
	i, _ := q.Int(nil)
	if i.Sign() == 0 {
		return nil
	}
	q.SetPrec(uint(i.BitLen())).SetInt(i)
	q.SetPrec(q.Prec()+b.Prec()).Mul(q, b)
	r := new(big.Float).SetPrec(a.Prec()+b.Prec()+4).Sub(a, q)
	if r.Sign() != 0 && r.Sign() != a.Sign() {
		// The quotient rounded up across an integer.
		m := new(big.Float).Abs(b)
		if r.Sign() < 0 {
			r.Add(r, m)
		} else {
			r.Sub(r, m)
		}
	}
	a.Set(r)
	return nil
}

// odd reports whether an integral b is odd.
func odd(b *big.Float) bool {
	i, _ := b.Int(nil)
	return i.Bit(0) == 1
}

// bigUnary sets a to op(a).
func bigUnary(tok Token, a *big.Float) error {
	switch tok.Op {
	case OpNeg:
		a.Neg(a)
	case OpSqrt:
		if a.Sign() < 0 {
			f, _ := a.Float64()
			return &DomainError{Kind: NegativeRadicand, Func: "sqrt", X: f, Col: tok.Pos}
		}
		if a.Sign() > 0 && !a.IsInf() {
			a.Sqrt(a)
		}
	case OpLn, OpLog:
		if a.Sign() <= 0 {
			f, _ := a.Float64()
			return &DomainError{Kind: NonPositiveLogArgument, Func: tok.Op.String(), X: f, Col: tok.Pos}
		}
		if a.IsInf() {
			return nil
		}
		bigfloat.Log(a, a)
		if tok.Op == OpLog {
			ten := new(big.Float).SetPrec(a.Prec()).SetInt64(10)
			bigfloat.Log(ten, ten)
			a.Quo(a, ten)
		}
	default:
		// Trigonometric functions: no implementation in the dependency, so
		// fall back to float64.
		f, _ := a.Float64()
		r, k, ok := unary(tok.Op, f)
		if !ok {
			return &TokenError{Col: tok.Pos, Token: tok.String()}
		}
		if k != DomainNone {
			return &DomainError{Kind: k, Func: tok.Op.String(), X: f, Col: tok.Pos}
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return &ResultError{X: r}
		}
		a.SetFloat64(r)
	}
	return nil
}
