package xodr

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestLineEndVertex(t *testing.T) {
	g := NewLine(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: 0}, 10)
	end := g.EndVertex()
	if !almostEqual(end.Position.X(), 10) || !almostEqual(end.Position.Y(), 0) {
		t.Errorf("line end position = %v, want (10,0)", end.Position)
	}
	if !almostEqual(end.SCoord, 10) {
		t.Errorf("line end SCoord = %v, want 10", end.SCoord)
	}
}

func TestLineEvalCurvatureIsZero(t *testing.T) {
	g := NewLine(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: math.Pi / 4}, 5)
	if c := g.EvalCurvature(2); c != 0 {
		t.Errorf("line curvature = %v, want 0", c)
	}
}

func TestArcEndVertexQuarterCircle(t *testing.T) {
	// Positive curvature curves left: starting at the origin heading +x with
	// the turn center at (0,radius), a quarter turn ends at (radius,radius)
	// heading +y.
	radius := 10.0
	curvature := 1 / radius
	length := math.Pi / 2 * radius // quarter circle
	g := NewArc(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: 0}, length, curvature)
	end := g.EndVertex()
	if !almostEqual(end.Position.X(), radius) {
		t.Errorf("arc end X = %v, want %v", end.Position.X(), radius)
	}
	if !almostEqual(end.Position.Y(), radius) {
		t.Errorf("arc end Y = %v, want %v", end.Position.Y(), radius)
	}
	if !almostEqual(end.Heading, math.Pi/2) {
		t.Errorf("arc end heading = %v, want %v", end.Heading, math.Pi/2)
	}
}

func TestArcCurvatureConstant(t *testing.T) {
	g := NewArc(Vertex{SCoord: 5, Position: orb.Point{0, 0}, Heading: 0}, 20, 0.1)
	if c := g.EvalCurvature(12); !almostEqual(c, 0.1) {
		t.Errorf("arc curvature = %v, want 0.1", c)
	}
}

func TestSpiralCurvatureLinear(t *testing.T) {
	g := NewSpiral(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: 0}, 10, 0.0, 0.1)
	if c := g.EvalCurvature(0); !almostEqual(c, 0.0) {
		t.Errorf("spiral curvature at start = %v, want 0", c)
	}
	if c := g.EvalCurvature(5); !almostEqual(c, 0.05) {
		t.Errorf("spiral curvature at midpoint = %v, want 0.05", c)
	}
	if c := g.EvalCurvature(10); !almostEqual(c, 0.1) {
		t.Errorf("spiral curvature at end = %v, want 0.1", c)
	}
}

func TestPoly3GeometryEndVertexAtZeroPoly(t *testing.T) {
	// A zero polynomial degenerates to a straight line along the start heading.
	g := NewPoly3Geometry(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: 0}, 4, Poly3{})
	end := g.EndVertex()
	if !almostEqual(end.Position.X(), 4) || !almostEqual(end.Position.Y(), 0) {
		t.Errorf("poly3 end position = %v, want (4,0)", end.Position)
	}
}

func TestGeometryTypeString(t *testing.T) {
	cases := map[GeometryType]string{
		GeometryLine:       "line",
		GeometryArc:        "arc",
		GeometrySpiral:     "spiral",
		GeometryPoly3:      "poly3",
		GeometryParamPoly3: "paramPoly3",
	}
	for gt, want := range cases {
		if got := gt.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(gt), got, want)
		}
	}
}

// simpsonFresnel integrates the Fresnel kernels directly with composite
// Simpson's rule, giving a reference independent of fresnel's own series and
// asymptotic branches.
func simpsonFresnel(t float64) (c, s float64) {
	if t == 0 {
		return 0, 0
	}
	neg := t < 0
	if neg {
		t = -t
	}

	const n = 20000 // even, required by composite Simpson's rule
	h := t / n
	kernelC := func(u float64) float64 { return math.Cos(math.Pi * u * u / 2) }
	kernelS := func(u float64) float64 { return math.Sin(math.Pi * u * u / 2) }

	sumC := kernelC(0) + kernelC(t)
	sumS := kernelS(0) + kernelS(t)
	for i := 1; i < n; i++ {
		u := float64(i) * h
		coeff := 4.0
		if i%2 == 0 {
			coeff = 2.0
		}
		sumC += coeff * kernelC(u)
		sumS += coeff * kernelS(u)
	}
	c, s = sumC*h/3, sumS*h/3
	if neg {
		c, s = -c, -s
	}
	return c, s
}

// simpsonClothoid integrates a fixed-rate Euler spiral's position directly
// with composite Simpson's rule, as an odrSpiral reference that never goes
// through fresnel at all.
func simpsonClothoid(s, curvRate float64) (x, y float64) {
	if s == 0 {
		return 0, 0
	}
	const n = 20000
	h := s / n
	kernelX := func(u float64) float64 { return math.Cos(curvRate * u * u / 2) }
	kernelY := func(u float64) float64 { return math.Sin(curvRate * u * u / 2) }

	sumX := kernelX(0) + kernelX(s)
	sumY := kernelY(0) + kernelY(s)
	for i := 1; i < n; i++ {
		u := float64(i) * h
		coeff := 4.0
		if i%2 == 0 {
			coeff = 2.0
		}
		sumX += coeff * kernelX(u)
		sumY += coeff * kernelY(u)
	}
	return sumX * h / 3, sumY * h / 3
}

func TestFresnelMatchesSimpsonQuadrature(t *testing.T) {
	cases := []struct {
		name string
		t    float64
	}{
		{"power series, t=1.0", 1.0},
		{"power series, t=2.0", 2.0},
		{"power series, t=3.0", 3.0},
		{"power series, just below switchover", 3.799},
		{"asymptotic, at switchover", 3.8},
		{"asymptotic, t=4.5", 4.5},
		{"asymptotic, t=6.0", 6.0},
		{"asymptotic, t=9.0", 9.0},
	}
	const tol = 1e-5
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotC, gotS := fresnel(tc.t)
			wantC, wantS := simpsonFresnel(tc.t)
			if math.Abs(gotC-wantC) > tol {
				t.Errorf("C(%v) = %v, want %v (Simpson reference)", tc.t, gotC, wantC)
			}
			if math.Abs(gotS-wantS) > tol {
				t.Errorf("S(%v) = %v, want %v (Simpson reference)", tc.t, gotS, wantS)
			}
		})
	}
}

// TestOdrSpiralMatchesSimpsonQuadrature exercises the evalSpiral/
// endVertexSpiral/tessellateSpiral caller path with a gentle curvature rate
// of change, where fresnel's asymptotic-branch error is amplified the most
// by the 1/k rescale in odrSpiral.
func TestOdrSpiralMatchesSimpsonQuadrature(t *testing.T) {
	const curvRate = 0.01 // gentle, amplifies fresnel error by roughly 1/k ~ 17.7x
	cases := []struct {
		name string
		s    float64
	}{
		{"power series branch", 30.0}, // t = s*sqrt(curvRate/pi) ~ 1.69
		{"near switchover", 67.3},     // t ~ 3.8
		{"asymptotic branch", 120.0},  // t ~ 6.8
	}
	const tol = 5e-4
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotX, gotY, _ := odrSpiral(tc.s, curvRate)
			wantX, wantY := simpsonClothoid(tc.s, curvRate)
			if math.Abs(gotX-wantX) > tol {
				t.Errorf("x(%v) = %v, want %v (Simpson reference)", tc.s, gotX, wantX)
			}
			if math.Abs(gotY-wantY) > tol {
				t.Errorf("y(%v) = %v, want %v (Simpson reference)", tc.s, gotY, wantY)
			}
		})
	}
}

func TestTessellateLineIncludesEndpoints(t *testing.T) {
	g := NewLine(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: 0}, 10)
	out := g.Tessellate(nil, 0, 10, true)
	if len(out) < 2 {
		t.Fatalf("expected at least 2 vertices, got %d", len(out))
	}
	first, last := out[0], out[len(out)-1]
	if !almostEqual(first.SCoord, 0) {
		t.Errorf("first vertex SCoord = %v, want 0", first.SCoord)
	}
	if !almostEqual(last.SCoord, 10) {
		t.Errorf("last vertex SCoord = %v, want 10", last.SCoord)
	}
}
