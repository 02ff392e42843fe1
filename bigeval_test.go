package rpncalc_test

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/zephyrtronium/rpncalc"
)

func TestEvalBigAgrees(t *testing.T) {
	cases := []struct {
		src string
		x   float64
	}{
		{"2+2*2", 0},
		{"5-2+3+4/2*3", 0},
		{"(930-480)*16+(2004-999)*17-18*101", 0},
		{"15/(7-(1+1))*3-(2+(1+1))+15", 0},
		{"7mod5+3.6mod1.8", 0},
		{"-7 mod 2", 0},
		{"x mod -3", 10},
		{"9007199254740991 mod 3.25", 0},
		{"-9007199254740991 mod 3.25", 0},
		{"4503599627370495.5 mod 0.75", 0},
		{"x mod 0.375", -1125899906842623.5},
		{"2^10", 0},
		{"2^3^2", 0},
		{"2^-2", 0},
		{"(-2)^3", 0},
		{"-2^2", 0},
		{"x^0.5", 2},
		{"0^2", 0},
		{"sqrt(2)", 0},
		{"sqrt(0)", 0},
		{"ln(2.718281828)", 0},
		{"log(100)", 0},
		{"log(x)", 0.001},
		{"sin(x)+cos(x)", 0.5},
		{"atan(x)*4", 1},
		{"cot(x)", 1},
		{"asin(x)+acos(x)", 0.3},
		{"x^3/2 - x", 3},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			want, err := rpncalc.Evaluate(c.src, c.x)
			if err != nil {
				t.Fatalf("float64 evaluation: %v", err)
			}
			e, err := rpncalc.Compile(c.src)
			if err != nil {
				t.Fatal(err)
			}
			for _, prec := range []uint{0, 53, 200} {
				r, err := e.EvalBig(big.NewFloat(c.x), prec)
				if err != nil {
					t.Errorf("prec %d: %v", prec, err)
					continue
				}
				got, _ := r.Float64()
				if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
					t.Errorf("prec %d: want %g, got %g (%v)", prec, want, got, r)
				}
			}
		})
	}
}

func TestEvalRPNBigModExact(t *testing.T) {
	type pair struct{ a, b float64 }
	cases := []pair{
		{8.126404612241015e+09, 11.73212890625},
		{1.8217879912375e+10, 1.4000000000000001},
		{-8.126404612241015e+09, 11.73212890625},
		{1e300, 3},
		{5, 1e300},
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		b := 1 + rng.Float64()*20
		a := math.Nextafter(float64(rng.Int63n(1e10)+1)*b, 0)
		if i%2 == 1 {
			a = -a
		}
		cases = append(cases, pair{a, b})
	}
	for _, c := range cases {
		want := math.Mod(c.a, c.b)
		rpn := []rpncalc.Token{
			{Kind: rpncalc.KindNumber, Value: c.a},
			{Kind: rpncalc.KindNumber, Value: c.b},
			{Kind: rpncalc.KindBinary, Op: rpncalc.OpMod},
		}
		for _, prec := range []uint{53, 64, 200} {
			r, err := rpncalc.EvalRPNBig(rpn, nil, prec)
			if err != nil {
				t.Errorf("%g mod %g at prec %d: %v", c.a, c.b, prec, err)
				continue
			}
			got, _ := r.Float64()
			if got != want {
				t.Errorf("%g mod %g at prec %d: want %g, got %g", c.a, c.b, prec, want, got)
			}
		}
	}
}

func TestEvalBigLiteralPrecision(t *testing.T) {
	e, err := rpncalc.Compile("0.1")
	if err != nil {
		t.Fatal(err)
	}
	r, err := e.EvalBig(nil, 200)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := new(big.Float).SetPrec(200).SetString("0.1")
	if r.Cmp(want) != 0 {
		t.Errorf("want %v, got %v", want.Text('g', 60), r.Text('g', 60))
	}
	if r.Cmp(big.NewFloat(0.1)) == 0 {
		t.Errorf("0.1 was only parsed to float64 precision")
	}
}

func TestEvalBigNilX(t *testing.T) {
	e, err := rpncalc.Compile("x + 1")
	if err != nil {
		t.Fatal(err)
	}
	r, err := e.EvalBig(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(big.NewFloat(1)) != 0 {
		t.Errorf("want 1, got %v", r)
	}
}

func TestEvalBigErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		check func(error) bool
	}{
		{"div-zero", "1/(2-2)", is(rpncalc.ErrDivisionByZero)},
		{"mod-zero", "5 mod 0", is(rpncalc.ErrModuloByZero)},
		{"sqrt-neg", "sqrt(-1)", is(rpncalc.ErrNegativeRadicand)},
		{"log-zero", "log(0)", is(rpncalc.ErrNonPositiveLog)},
		{"ln-neg", "ln(-2)", is(rpncalc.ErrNonPositiveLog)},
		{"cot-zero", "cot(0)", is(rpncalc.ErrCotangentUndefined)},
		{"asin-big", "asin(2)", is(rpncalc.ErrOutOfDomain)},
		{"neg-root", "(-8)^(1/3)", as[*rpncalc.ResultError]},
		{"zero-neg-pow", "0^-1", as[*rpncalc.ResultError]},
		{"two-nums", "2 3", as[*rpncalc.MalformedError]},
		{"trailing-op", "2+", as[*rpncalc.ArityError]},
		{"func-no-arg", "sin()", as[*rpncalc.ArityError]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := rpncalc.Compile(c.src)
			if err != nil {
				t.Fatal(err)
			}
			r, err := e.EvalBig(big.NewFloat(0), 64)
			if err == nil {
				t.Fatalf("no error; result %v", r)
			}
			if !c.check(err) {
				t.Errorf("wrong error %#v", err)
			}
			if r != nil {
				t.Errorf("error with result %v", r)
			}
		})
	}
}

func TestEvalRPNBigBadToken(t *testing.T) {
	_, err := rpncalc.EvalRPNBig([]rpncalc.Token{{Kind: rpncalc.KindRightParen, Pos: 4}}, nil, 0)
	var terr *rpncalc.TokenError
	if !errors.As(err, &terr) {
		t.Fatalf("%#v is not *TokenError", err)
	}
	if terr.Pos() != 4 {
		t.Errorf("wrong position %d", terr.Pos())
	}
}

func BenchmarkEvalBig(b *testing.B) {
	e, err := rpncalc.Compile("(3+1)*4+((2+2)*((2+2)*2))/8 + sqrt(x)")
	if err != nil {
		b.Fatal(err)
	}
	x := big.NewFloat(2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.EvalBig(x, 128)
	}
}
