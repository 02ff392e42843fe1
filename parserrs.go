package rpncalc

import "strconv"

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unclosed opening bracket, if that is the problem.
	Left string
	// Right is the closing bracket with no opening bracket, if that is the
	// problem.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an input with no tokens. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position at which an expression was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token that cannot appear where it was
// found, e.g. a bracket in a postfix sequence. It only arises from token
// sequences that were not produced by this package. It implements InputError.
type TokenError struct {
	// Col is the token's position.
	Col int
	// Token is the token's text.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// ArityError is an error indicating an operator or function with fewer
// operands available than it consumes. It implements InputError.
type ArityError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator or function name.
	Op string
	// Want is the number of operands the operator takes.
	Want int
	// Have is the number of operands that were available.
	Have int
}

func (err *ArityError) Error() string {
	return errpos(err.Col, err.Op+" needs "+strconv.Itoa(err.Want)+" operands but has "+strconv.Itoa(err.Have))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// MalformedError is an error indicating that a postfix sequence did not reduce
// to exactly one value, e.g. "2 3" or "()".
type MalformedError struct {
	// Values is the number of values left after evaluation.
	Values int
}

func (err *MalformedError) Error() string {
	if err.Values == 0 {
		return "malformed expression: no value"
	}
	return "malformed expression: " + strconv.Itoa(err.Values) + " values without operators"
}

// ResultError is an error indicating a result that is not a finite number,
// even though no single operation was outside its domain.
type ResultError struct {
	// X is the offending result. It is NaN when arbitrary-precision
	// evaluation produced no value at all.
	X float64
}

func (err *ResultError) Error() string {
	return "invalid result: " + strconv.FormatFloat(err.X, 'g', -1, 64)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// a particular token of the input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based column of the
	// first rune of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*LexError)(nil)
)
