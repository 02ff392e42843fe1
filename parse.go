package rpncalc

// ToRPN converts an infix token sequence to postfix order using the
// shunting-yard algorithm. Unary operators and functions are pushed without
// unwinding the operator stack, since they bind only the operand after them.
// Binary operators unwind every stacked operator that binds at least as
// tightly, except that ^ does not unwind another ^.
//
// An empty input produces an empty result, which EvalRPN rejects.
func ToRPN(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case KindNumber, KindVariable:
			out = append(out, tok)
		case KindLeftParen, KindUnary:
			stack = append(stack, tok)
		case KindRightParen:
			k := len(stack) - 1
			for k >= 0 && stack[k].Kind != KindLeftParen {
				out = append(out, stack[k])
				k--
			}
			if k < 0 {
				return nil, &BracketError{Col: tok.Pos, Right: ")"}
			}
			// Discard the open bracket.
			stack = stack[:k]
		case KindBinary:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == KindLeftParen || !top.Op.yields(tok.Op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			return nil, &TokenError{Col: tok.Pos, Token: tok.String()}
		}
	}
	for k := len(stack) - 1; k >= 0; k-- {
		if stack[k].Kind == KindLeftParen {
			return nil, &BracketError{Col: stack[k].Pos, Left: "("}
		}
		out = append(out, stack[k])
	}
	return out, nil
}

// CheckBrackets checks that the brackets in an infix token sequence balance.
// A close bracket that has no open bracket before it is reported at its own
// position; otherwise the innermost unclosed open bracket is reported.
func CheckBrackets(tokens []Token) error {
	var open []int
	for _, tok := range tokens {
		switch tok.Kind {
		case KindLeftParen:
			open = append(open, tok.Pos)
		case KindRightParen:
			if len(open) == 0 {
				return &BracketError{Col: tok.Pos, Right: ")"}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &BracketError{Col: open[len(open)-1], Left: "("}
	}
	return nil
}
