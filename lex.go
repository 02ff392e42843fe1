package rpncalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywords are matched at the current position before single-rune operators.
// Longer names come first so that e.g. asin is never read as a followed by sin.
var keywords = [...]struct {
	text string
	op   Op
}{
	{"sqrt", OpSqrt},
	{"asin", OpAsin},
	{"acos", OpAcos},
	{"atan", OpAtan},
	{"sin", OpSin},
	{"cos", OpCos},
	{"tan", OpTan},
	{"cot", OpCot},
	{"mod", OpMod},
	{"log", OpLog},
	{"ln", OpLn},
}

type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// col is the 1-based column of the next rune.
	col int
	// buf holds a pending numeric literal, which began at column num.
	buf  strings.Builder
	num  int
	toks []Token
}

// Tokenize splits an expression into tokens. Whitespace separates tokens but
// is otherwise ignored. A + or - is unary when it begins the expression or
// follows an open bracket, an operator, or a function name; unary + produces
// no token.
func Tokenize(expression string) ([]Token, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &EmptyExpressionError{Col: 1}
	}
	l := lexer{src: expression, col: 1}
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if '0' <= r && r <= '9' || r == '.' {
			if l.buf.Len() == 0 {
				l.num = l.col
			}
			l.buf.WriteRune(r)
			l.advance(sz, 1)
			continue
		}
		if err := l.closeNum(); err != nil {
			return nil, err
		}
		switch {
		case unicode.IsSpace(r):
			l.advance(sz, 1)
		case r == 'x':
			l.emit(Token{Kind: KindVariable}, sz, 1)
		default:
			if err := l.scanOp(r, sz); err != nil {
				return nil, err
			}
		}
	}
	if err := l.closeNum(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// scanOp scans a keyword, operator, or bracket starting with r.
func (l *lexer) scanOp(r rune, sz int) error {
	rest := l.src[l.off:]
	for _, kw := range keywords {
		if strings.HasPrefix(rest, kw.text) {
			kind := KindUnary
			if !kw.op.Unary() {
				kind = KindBinary
			}
			l.emit(Token{Kind: kind, Op: kw.op}, len(kw.text), len(kw.text))
			return nil
		}
	}
	switch r {
	case '+':
		if l.unaryContext() {
			// Unary plus is a no-op.
			l.advance(sz, 1)
			return nil
		}
		l.emit(Token{Kind: KindBinary, Op: OpAdd}, sz, 1)
	case '-':
		if l.unaryContext() {
			l.emit(Token{Kind: KindUnary, Op: OpNeg}, sz, 1)
			return nil
		}
		l.emit(Token{Kind: KindBinary, Op: OpSub}, sz, 1)
	case '*':
		l.emit(Token{Kind: KindBinary, Op: OpMul}, sz, 1)
	case '/':
		l.emit(Token{Kind: KindBinary, Op: OpDiv}, sz, 1)
	case '^':
		l.emit(Token{Kind: KindBinary, Op: OpPow}, sz, 1)
	case '(':
		l.emit(Token{Kind: KindLeftParen}, sz, 1)
	case ')':
		l.emit(Token{Kind: KindRightParen}, sz, 1)
	default:
		return &LexError{Text: string(r), Col: l.col}
	}
	return nil
}

// unaryContext reports whether a sign at the current position is a prefix
// operator rather than a binary one.
func (l *lexer) unaryContext() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch l.toks[len(l.toks)-1].Kind {
	case KindLeftParen, KindBinary, KindUnary:
		return true
	}
	return false
}

// closeNum converts the pending literal, if any, to a Number token.
func (l *lexer) closeNum() error {
	if l.buf.Len() == 0 {
		return nil
	}
	defer l.buf.Reset()
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &LexError{Text: text, Kind: "number", Col: l.num, Err: err}
	}
	l.toks = append(l.toks, Token{Kind: KindNumber, Value: v, Text: text, Pos: l.num})
	return nil
}

// emit appends tok at the current column and advances past it.
func (l *lexer) emit(tok Token, bytes, runes int) {
	tok.Pos = l.col
	l.toks = append(l.toks, tok)
	l.advance(bytes, runes)
}

func (l *lexer) advance(bytes, runes int) {
	l.off += bytes
	l.col += runes
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid character, or the whole literal for an invalid
	// number.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" for
	// an unparsable numeric literal and the empty string for a character that
	// begins no token.
	Kind string
	// Col is the column of the first rune of Text.
	Col int
	// Err is the underlying conversion error for numbers.
	Err error
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Pos() int {
	return err.Col
}
