package rpncalc

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit of an expression. Tokens are plain values;
// the tokenizer, converter, and evaluator each take and return their own
// slices of them.
type Token struct {
	// Kind is the token's variant.
	Kind Kind
	// Op is the operator or function for Binary and Unary tokens.
	Op Op
	// Value is the literal's value for Number tokens.
	Value float64
	// Text is the literal's source text for Number tokens. It is used by
	// arbitrary-precision evaluation; if it is empty, Value is used instead.
	Text string
	// Pos is the 1-based rune column of the token's first rune in the source,
	// or 0 if the token was not produced by Tokenize.
	Pos int
}

// Kind is the variant of a token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNumber is a numeric literal.
	KindNumber
	// KindVariable is the free variable x.
	KindVariable
	// KindBinary is an infix operator: + - * / ^ mod.
	KindBinary
	// KindUnary is unary minus or a named function.
	KindUnary
	// KindLeftParen is (.
	KindLeftParen
	// KindRightParen is ).
	KindRightParen
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

// Op identifies an operator or function.
type Op int8

const (
	OpNone Op = iota

	OpAdd // a + b
	OpSub // a - b
	OpMul // a * b
	OpDiv // a / b
	OpPow // a ^ b, right-associative
	OpMod // a mod b, remainder truncated toward zero

	OpNeg  // -a
	OpSin  // sin a
	OpCos  // cos a
	OpTan  // tan a
	OpCot  // 1/tan a
	OpAsin // asin a
	OpAcos // acos a
	OpAtan // atan a
	OpSqrt // sqrt a
	OpLn   // natural log
	OpLog  // base-10 log
)

// Precedence ranks. Brackets have no rank; ToRPN stops unwinding at them.
const (
	precAdd   = 1
	precMul   = 2
	precPow   = 3
	precUnary = 4
)

type operator struct {
	// name is the operator's spelling in expressions.
	name string
	// prec is the precedence rank. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// unary is true for prefix operators and functions.
	unary bool
}

var operators = [...]operator{
	OpNone: {},
	OpAdd:  {"+", precAdd, false, false},
	OpSub:  {"-", precAdd, false, false},
	OpMul:  {"*", precMul, false, false},
	OpDiv:  {"/", precMul, false, false},
	OpPow:  {"^", precPow, true, false},
	OpMod:  {"mod", precMul, false, false},
	OpNeg:  {"neg", precUnary, true, true},
	OpSin:  {"sin", precUnary, true, true},
	OpCos:  {"cos", precUnary, true, true},
	OpTan:  {"tan", precUnary, true, true},
	OpCot:  {"cot", precUnary, true, true},
	OpAsin: {"asin", precUnary, true, true},
	OpAcos: {"acos", precUnary, true, true},
	OpAtan: {"atan", precUnary, true, true},
	OpSqrt: {"sqrt", precUnary, true, true},
	OpLn:   {"ln", precUnary, true, true},
	OpLog:  {"log", precUnary, true, true},
}

func (op Op) operator() operator {
	if op < 0 || int(op) >= len(operators) {
		return operator{}
	}
	return operators[op]
}

// String returns the operator's spelling. Unary minus is "neg" so that it is
// distinguishable from subtraction in postfix output.
func (op Op) String() string {
	if o := op.operator(); o.name != "" {
		return o.name
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Prec returns the operator's precedence rank, or 0 for OpNone.
func (op Op) Prec() int {
	return int(op.operator().prec)
}

// RightAssoc reports whether the operator groups right to left.
func (op Op) RightAssoc() bool {
	return op.operator().right
}

// Unary reports whether the operator takes a single operand.
func (op Op) Unary() bool {
	return op.operator().unary
}

// yields reports whether an operator p already on the stack must be output
// before the incoming binary operator in is pushed.
func (p Op) yields(in Op) bool {
	if p.Prec() != in.Prec() {
		return p.Prec() > in.Prec()
	}
	return !in.RightAssoc()
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		if t.Text != "" {
			return t.Text
		}
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case KindVariable:
		return "x"
	case KindBinary, KindUnary:
		return t.Op.String()
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	default:
		return t.Kind.String()
	}
}

// join renders a token sequence separated by spaces.
func join(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
