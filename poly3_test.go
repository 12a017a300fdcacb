package xodr

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPoly3Eval(t *testing.T) {
	p := Poly3{A: 1, B: 2, C: 3, D: 4}
	got := p.Eval(2)
	want := 1.0 + 2*2 + 3*4 + 4*8
	if !almostEqual(got, want) {
		t.Errorf("Eval(2) = %v, want %v", got, want)
	}
}

func TestPoly3EvalDerivative(t *testing.T) {
	p := Poly3{A: 1, B: 2, C: 3, D: 4}
	got := p.EvalDerivative(2)
	want := 2.0 + 2*3*2 + 3*4*4
	if !almostEqual(got, want) {
		t.Errorf("EvalDerivative(2) = %v, want %v", got, want)
	}
}

func TestPoly3EvalAntiDerivativeAtZero(t *testing.T) {
	p := Poly3{A: 1, B: 2, C: 3, D: 4}
	if got := p.EvalAntiDerivative(0); got != 0 {
		t.Errorf("antiderivative at 0 = %v, want 0", got)
	}
}

func TestPoly3Translate(t *testing.T) {
	p := Poly3{A: 1, B: 2, C: 3, D: 4}
	offset := 2.5
	translated := p.Translate(offset)
	for _, s := range []float64{-3, 0, 1, 7.25} {
		got := translated.Eval(s)
		want := p.Eval(s + offset)
		if !almostEqual(got, want) {
			t.Errorf("translated.Eval(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestPoly3Scale(t *testing.T) {
	p := Poly3{A: 1, B: 2, C: 3, D: 4}
	factor := 1.75
	scaled := p.Scale(factor)
	for _, s := range []float64{-2, 0, 1, 3.5} {
		got := scaled.Eval(s)
		want := p.Eval(s * factor)
		if !almostEqual(got, want) {
			t.Errorf("scaled.Eval(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestPoly3MaxValueInIntervalConstant(t *testing.T) {
	p := Poly3{A: 5}
	if got := p.MaxValueInInterval(-10, 10); got != 5 {
		t.Errorf("MaxValueInInterval = %v, want 5", got)
	}
}

func TestPoly3MaxMinValueInIntervalQuadratic(t *testing.T) {
	// f(t) = -(t-1)^2 + 4 = -t^2 + 2t + 3, max at t=1 is 4.
	p := Poly3{A: 3, B: 2, C: -1}
	if got := p.MaxValueInInterval(-5, 5); !almostEqual(got, 4) {
		t.Errorf("MaxValueInInterval = %v, want 4", got)
	}
	if got := p.MinValueInInterval(-5, 5); got >= 4 {
		t.Errorf("MinValueInInterval = %v, should be below the interior maximum", got)
	}
}

func TestPoly3Add(t *testing.T) {
	p := Poly3{A: 1, B: 1, C: 1, D: 1}
	q := Poly3{A: 2, B: 3, C: 4, D: 5}
	got := p.Add(q)
	want := Poly3{A: 3, B: 4, C: 5, D: 6}
	if !got.Equal(want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
}
