package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/big"
	"os"
	"strings"

	"github.com/zephyrtronium/rpncalc"
)

func main() {
	log.SetFlags(0)
	var (
		cfgname, inname string
		verb, plot      string
		x               float64
		prec            uint
		echo            bool
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "TOML, YAML, or JSON file of default settings")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Float64Var(&x, "x", 0, "value of the variable x")
	flag.UintVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.BoolVar(&echo, "echo", false, "print expressions in postfix form")
	flag.StringVar(&plot, "plot", "", "sample each expression over from:to:n instead of at x")
	flag.Parse()

	cfg := defaultConfig()
	if cfgname != "" {
		c, err := loadConfig(cfgname)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "x":
			cfg.X = x
		case "p":
			cfg.Prec = prec
		case "echo":
			cfg.Echo = echo
		case "plot":
			cfg.Plot = plot
		}
	})
	c, err := newCalc(os.Stdout, cfg)
	if err != nil {
		log.Fatal(err)
	}

	in, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if in != nil {
		defer in.Close()
		if err := c.repl(in); err != nil {
			log.Fatal(err)
		}
	}
	for _, arg := range flag.Args() {
		if err := c.line(arg); err != nil {
			log.Fatal(err)
		}
	}
}

// infile opens the named input, or stdin for "-" or when std is set and no
// name is given. It returns nil if there is no input file.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// calc evaluates input lines and prints their results.
type calc struct {
	w    io.Writer
	cfg  config
	verb string
	plot *sampling
}

func newCalc(w io.Writer, cfg config) (*calc, error) {
	if math.IsNaN(cfg.X) {
		return nil, fmt.Errorf("x cannot be NaN")
	}
	c := calc{w: w, cfg: cfg, verb: cfg.Format + "\n"}
	if cfg.Plot != "" {
		s, err := parseRange(cfg.Plot)
		if err != nil {
			return nil, err
		}
		c.plot = &s
	}
	return &c, nil
}

// repl evaluates each line of in. Evaluation errors are printed and do not
// stop the loop; only read errors are returned.
func (c *calc) repl(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := c.line(sc.Text()); err != nil {
			fmt.Fprintln(c.w, err)
		}
	}
	return sc.Err()
}

// line evaluates one line. A line "x = expr" sets x for later lines.
func (c *calc) line(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if lhs, rhs, ok := strings.Cut(s, "="); ok {
		if strings.TrimSpace(lhs) != "x" {
			return fmt.Errorf("can only assign to x, not %q", strings.TrimSpace(lhs))
		}
		v, err := rpncalc.Evaluate(rhs, c.cfg.X)
		if err != nil {
			return fmt.Errorf("setting x: %w", err)
		}
		c.cfg.X = v
		return nil
	}
	e, err := rpncalc.Compile(s)
	if err != nil {
		return err
	}
	if c.cfg.Echo {
		fmt.Fprintf(c.w, "%v : ", e)
	}
	if c.plot != nil {
		fmt.Fprintln(c.w)
		for _, p := range rpncalc.Sample(e, c.plot.from, c.plot.to, c.plot.n) {
			if p.Err != nil {
				fmt.Fprintf(c.w, "%g\t%v\n", p.X, p.Err)
				continue
			}
			fmt.Fprintf(c.w, "%g\t"+c.verb, p.X, p.Y)
		}
		return nil
	}
	if c.cfg.Prec > 0 {
		x := new(big.Float).SetPrec(c.cfg.Prec).SetFloat64(c.cfg.X)
		r, err := e.EvalBig(x, c.cfg.Prec)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.w, c.verb, r)
		return nil
	}
	r, err := e.Eval(c.cfg.X)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.w, c.verb, r)
	return nil
}
