// Package rpncalc evaluates single-line arithmetic expressions in one
// variable.
//
// An expression is made of decimal literals, the variable x, the binary
// operators + - * / ^ and mod, unary minus and plus, the functions sin, cos,
// tan, cot, asin, acos, atan, sqrt, ln and log (base 10), and parentheses.
// "2^3^2" is "2^(3^2)". Functions and unary minus bind tighter than every
// binary operator, so "-2^2" is 4 and "sin x^2" is "(sin x)^2".
//
// Evaluation is a pipeline of three pure stages: Tokenize splits the input
// into tokens, ToRPN reorders them into postfix form with the shunting-yard
// algorithm, and EvalRPN reduces the postfix form on a value stack. Compile
// runs the first two once so that an expression can be evaluated for many
// values of x, as when sampling it for a plot.
//
// Every failure is a distinct error type: *LexError, *EmptyExpressionError,
// *BracketError, *ArityError, *MalformedError, *DomainError, and
// *ResultError. DomainError additionally unwraps to a sentinel such as
// ErrDivisionByZero.
//
package rpncalc
