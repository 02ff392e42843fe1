package rpncalc

// Point is one sample of an expression's curve.
type Point struct {
	X, Y float64
	// Err is the evaluation error at X, if any. Y is 0 when Err is non-nil.
	Err error
}

// Sample evaluates e at n evenly spaced values of x from from to to, both
// included. A single point is evaluated at from, and n < 1 gives no points.
// A failure at one point is recorded in that point and does not stop the
// others, so a plot of the result has gaps where the expression is undefined.
func Sample(e *Expr, from, to float64, n int) []Point {
	if n < 1 {
		return nil
	}
	pts := make([]Point, n)
	var step float64
	if n > 1 {
		step = (to - from) / float64(n-1)
	}
	for i := range pts {
		x := from + float64(i)*step
		if i == n-1 && n > 1 {
			// Avoid accumulated error at the end of the range.
			x = to
		}
		y, err := e.Eval(x)
		pts[i] = Point{X: x, Y: y, Err: err}
	}
	return pts
}
