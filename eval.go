package rpncalc

import "math"

// Expr is a compiled expression: the postfix form of a tokenized, bracket
// checked input. An Expr is never modified after Compile returns it, so it is
// safe to evaluate concurrently.
type Expr struct {
	rpn []Token
}

// Compile tokenizes an expression, checks its brackets, and converts it to
// postfix form, stopping at the first error.
func Compile(expression string) (*Expr, error) {
	toks, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}
	if err := CheckBrackets(toks); err != nil {
		return nil, err
	}
	rpn, err := ToRPN(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// Eval evaluates the expression with the variable x set to x.
func (e *Expr) Eval(x float64) (float64, error) {
	return EvalRPN(e.rpn, x)
}

// RPN returns a copy of the expression's postfix tokens.
func (e *Expr) RPN() []Token {
	return append([]Token(nil), e.rpn...)
}

// String renders the expression in postfix form, e.g. "2 x * 1 +".
func (e *Expr) String() string {
	return join(e.rpn)
}

// Evaluate is a shortcut to compile an expression and evaluate it once.
func Evaluate(expression string, x float64) (float64, error) {
	e, err := Compile(expression)
	if err != nil {
		return 0, err
	}
	return e.Eval(x)
}

// EvalRPN evaluates a postfix token sequence with the variable set to x. Each
// operator consumes its operands from a value stack; exactly one value must
// remain at the end, and it must be finite.
func EvalRPN(rpn []Token, x float64) (float64, error) {
	stack := make([]float64, 0, len(rpn)/2+1)
	for _, tok := range rpn {
		switch tok.Kind {
		case KindNumber:
			stack = append(stack, tok.Value)
		case KindVariable:
			stack = append(stack, x)
		case KindBinary:
			n := len(stack)
			if n < 2 {
				return 0, &ArityError{Col: tok.Pos, Op: tok.Op.String(), Want: 2, Have: n}
			}
			a, b := stack[n-2], stack[n-1]
			r, k, ok := binary(tok.Op, a, b)
			if !ok {
				return 0, &TokenError{Col: tok.Pos, Token: tok.String()}
			}
			if k != DomainNone {
				return 0, &DomainError{Kind: k, Func: tok.Op.String(), X: b, Col: tok.Pos}
			}
			stack[n-2] = r
			stack = stack[:n-1]
		case KindUnary:
			n := len(stack)
			if n < 1 {
				return 0, &ArityError{Col: tok.Pos, Op: tok.Op.String(), Want: 1, Have: 0}
			}
			a := stack[n-1]
			r, k, ok := unary(tok.Op, a)
			if !ok {
				return 0, &TokenError{Col: tok.Pos, Token: tok.String()}
			}
			if k != DomainNone {
				return 0, &DomainError{Kind: k, Func: tok.Op.String(), X: a, Col: tok.Pos}
			}
			stack[n-1] = r
		default:
			return 0, &TokenError{Col: tok.Pos, Token: tok.String()}
		}
	}
	if len(stack) != 1 {
		return 0, &MalformedError{Values: len(stack)}
	}
	r := stack[0]
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &ResultError{X: r}
	}
	return r, nil
}
