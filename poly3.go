package xodr

import "math"

// poly3Epsilon is the tolerance used to detect degenerate (lower-order)
// polynomials when searching for extrema.
const poly3Epsilon = 1e-6

// Poly3 is a cubic polynomial f(t) = a + b*t + c*t^2 + d*t^3, used both for
// the Poly3 and ParamPoly3 reference-line geometries and for per-lane width
// functions.
type Poly3 struct {
	A, B, C, D float64
}

// Eval returns f(t).
func (p Poly3) Eval(t float64) float64 {
	return p.A + t*(p.B+t*(p.C+t*p.D))
}

// EvalDerivative returns f'(t).
func (p Poly3) EvalDerivative(t float64) float64 {
	return p.B + t*(2*p.C+t*3*p.D)
}

// Eval2ndDerivative returns f''(t).
func (p Poly3) Eval2ndDerivative(t float64) float64 {
	return 2*p.C + t*6*p.D
}

// EvalAntiDerivative returns the antiderivative of f evaluated at t, with the
// constant of integration chosen so that the antiderivative is 0 at t=0.
func (p Poly3) EvalAntiDerivative(t float64) float64 {
	return t * (p.A + t*((1.0/2)*p.B+t*((1.0/3)*p.C+t*(1.0/4)*p.D)))
}

// Add returns the coefficient-wise sum of p and q.
func (p Poly3) Add(q Poly3) Poly3 {
	return Poly3{A: p.A + q.A, B: p.B + q.B, C: p.C + q.C, D: p.D + q.D}
}

// Equal reports coefficient-wise equality.
func (p Poly3) Equal(q Poly3) bool {
	return p.A == q.A && p.B == q.B && p.C == q.C && p.D == q.D
}

// Translate returns a polynomial p2 such that p2.Eval(t) == p.Eval(t+offset)
// for all t, computed by symbolic substitution of the coefficients.
func (p Poly3) Translate(offset float64) Poly3 {
	return Poly3{
		D: p.D,
		C: 3*offset*p.D + p.C,
		B: 3*offset*offset*p.D + 2*offset*p.C + p.B,
		A: offset*offset*offset*p.D + offset*offset*p.C + offset*p.B + p.A,
	}
}

// Scale returns a polynomial p2 such that p2.Eval(t) == p.Eval(t*factor) for
// all t.
func (p Poly3) Scale(factor float64) Poly3 {
	return Poly3{
		A: p.A,
		B: p.B * factor,
		C: p.C * factor * factor,
		D: p.D * factor * factor * factor,
	}
}

// MaxValueInInterval returns the maximum value this polynomial takes over the
// closed interval [startT, endT].
func (p Poly3) MaxValueInInterval(startT, endT float64) float64 {
	return p.extremeValueInInterval(startT, endT, func(a, b float64) bool { return a < b })
}

// MinValueInInterval returns the minimum value this polynomial takes over the
// closed interval [startT, endT].
func (p Poly3) MinValueInInterval(startT, endT float64) float64 {
	return p.extremeValueInInterval(startT, endT, func(a, b float64) bool { return a > b })
}

// extremeValueInInterval finds the exact optimum of p on [startT, endT],
// evaluating the endpoints plus all real roots of p' that fall inside the
// interval. less(a, b) decides whether b should replace a as the running
// extreme: pass `<` for a maximum search, `>` for a minimum search.
func (p Poly3) extremeValueInInterval(startT, endT float64, less func(a, b float64) bool) float64 {
	extreme := p.Eval(startT)
	if cand := p.Eval(endT); less(extreme, cand) {
		extreme = cand
	}
	consider := func(root float64) {
		if root > startT && root < endT {
			if cand := p.Eval(root); less(extreme, cand) {
				extreme = cand
			}
		}
	}

	if math.Abs(p.D) < poly3Epsilon {
		// Effectively a quadratic (or simpler) function.
		if math.Abs(p.C) < poly3Epsilon {
			return extreme
		}
		root := -p.B / (2 * p.C)
		consider(root)
		return extreme
	}

	derivDiscSq := 4*p.C*p.C - 12*p.D*p.B
	switch {
	case derivDiscSq > 0:
		derivDisc := math.Sqrt(derivDiscSq)
		consider((derivDisc - 2*p.C) / (6 * p.D))
		consider((-derivDisc - 2*p.C) / (6 * p.D))
	case derivDiscSq > -poly3Epsilon:
		consider(p.C / (-3 * p.D))
	}
	return extreme
}
