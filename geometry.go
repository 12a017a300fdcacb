package xodr

import (
	"math"

	"github.com/paulmach/orb"
)

// geometryEpsilon is the tolerance used when checking whether an s-coordinate
// falls within a geometry's nominal s-range.
const geometryEpsilon = 1e-5

// verticesPerMeter is the fixed tessellation density used by every geometry
// variant's Tessellate implementation: one vertex per meter of arc length.
const verticesPerMeter = 1.0

// GeometryType identifies which variant a Geometry value holds.
type GeometryType int

const (
	GeometryLine GeometryType = iota
	GeometryArc
	GeometrySpiral
	GeometryPoly3
	GeometryParamPoly3
)

func (t GeometryType) String() string {
	switch t {
	case GeometryLine:
		return "line"
	case GeometryArc:
		return "arc"
	case GeometrySpiral:
		return "spiral"
	case GeometryPoly3:
		return "poly3"
	case GeometryParamPoly3:
		return "paramPoly3"
	default:
		return "unknown"
	}
}

// PRange selects the parameter domain used by a ParamPoly3 geometry.
type PRange int

const (
	PRangeArcLength PRange = iota
	PRangeNormalized
)

// Geometry is one analytic piece of a ReferenceLine: a line, arc, spiral,
// explicit cubic, or parametric cubic. It's represented as a tagged union
// rather than an interface hierarchy: all five variants are small, fixed-size
// value types, so there's no benefit to heap-allocating each one separately
// the way the polymorphic C++ original does with unique_ptr<Geometry>.
type Geometry struct {
	Type       GeometryType
	StartVertex Vertex
	Length     float64

	// Arc
	Curvature float64

	// Spiral
	StartCurvature float64
	EndCurvature   float64

	// Poly3
	Poly Poly3

	// ParamPoly3
	UPoly  Poly3
	VPoly  Poly3
	PRange PRange
}

// NewLine constructs a line geometry.
func NewLine(startVertex Vertex, length float64) Geometry {
	return Geometry{Type: GeometryLine, StartVertex: startVertex, Length: length}
}

// NewArc constructs an arc geometry with constant curvature.
func NewArc(startVertex Vertex, length, curvature float64) Geometry {
	return Geometry{Type: GeometryArc, StartVertex: startVertex, Length: length, Curvature: curvature}
}

// ArcFromCircleSegment constructs an Arc geometry from a circle center,
// radius, start angle (relative to +x), and signed segment angle (positive
// extends counter-clockwise from the start point).
func ArcFromCircleSegment(startS float64, center orb.Point, radius, startAngle, segmentAngle float64) Geometry {
	toStart := orb.Point{math.Cos(startAngle) * radius, math.Sin(startAngle) * radius}
	startPos := orb.Point{center[0] + toStart[0], center[1] + toStart[1]}

	var heading, curvature float64
	if segmentAngle > 0 {
		heading = startAngle + math.Pi/2
		curvature = 1 / radius
	} else {
		heading = startAngle - math.Pi/2
		curvature = -1 / radius
	}

	return Geometry{
		Type:      GeometryArc,
		StartVertex: Vertex{SCoord: startS, Position: startPos, Heading: heading},
		Length:    math.Abs(segmentAngle) * radius,
		Curvature: curvature,
	}
}

// NewSpiral constructs a Euler-spiral geometry whose curvature changes
// linearly from startCurvature to endCurvature over length.
func NewSpiral(startVertex Vertex, length, startCurvature, endCurvature float64) Geometry {
	return Geometry{
		Type: GeometrySpiral, StartVertex: startVertex, Length: length,
		StartCurvature: startCurvature, EndCurvature: endCurvature,
	}
}

// NewPoly3Geometry constructs an explicit-cubic geometry.
func NewPoly3Geometry(startVertex Vertex, length float64, poly Poly3) Geometry {
	return Geometry{Type: GeometryPoly3, StartVertex: startVertex, Length: length, Poly: poly}
}

// NewParamPoly3 constructs a parametric-cubic geometry.
func NewParamPoly3(startVertex Vertex, length float64, uPoly, vPoly Poly3, pRange PRange) Geometry {
	return Geometry{
		Type: GeometryParamPoly3, StartVertex: startVertex, Length: length,
		UPoly: uPoly, VPoly: vPoly, PRange: pRange,
	}
}

// curvatureRateOfChange returns (EndCurvature-StartCurvature)/Length for a
// Spiral geometry.
func (g Geometry) curvatureRateOfChange() float64 {
	return (g.EndCurvature - g.StartCurvature) / g.Length
}

// inSRange reports whether s lies within this geometry's s-range, with
// tolerance geometryEpsilon.
func (g Geometry) inSRange(s float64) bool {
	localS := s - g.StartVertex.SCoord
	return localS >= -geometryEpsilon && localS < g.Length+geometryEpsilon
}

// Eval evaluates the point and tangent direction of this geometry at s.
func (g Geometry) Eval(s float64) PointAndTangentDir {
	switch g.Type {
	case GeometryLine:
		return g.evalLine(s)
	case GeometryArc:
		return g.evalArc(s)
	case GeometrySpiral:
		return g.evalSpiral(s)
	case GeometryPoly3:
		return g.evalPoly3(s)
	case GeometryParamPoly3:
		return g.evalParamPoly3(s)
	default:
		panic("xodr: unknown geometry type")
	}
}

// EvalCurvature evaluates the signed curvature of this geometry at s.
func (g Geometry) EvalCurvature(s float64) float64 {
	switch g.Type {
	case GeometryLine:
		return 0
	case GeometryArc:
		return g.Curvature
	case GeometrySpiral:
		return g.StartCurvature + (s-g.StartVertex.SCoord)*g.curvatureRateOfChange()
	case GeometryPoly3:
		return g.curvaturePoly3(s)
	case GeometryParamPoly3:
		return g.curvatureParamPoly3(s)
	default:
		panic("xodr: unknown geometry type")
	}
}

// EndVertex returns the vertex at the end of this geometry, computed
// analytically.
func (g Geometry) EndVertex() Vertex {
	switch g.Type {
	case GeometryLine:
		return g.endVertexLine()
	case GeometryArc:
		return g.endVertexArc()
	case GeometrySpiral:
		return g.endVertexSpiral()
	case GeometryPoly3:
		return g.endVertexPoly3()
	case GeometryParamPoly3:
		return g.endVertexParamPoly3()
	default:
		panic("xodr: unknown geometry type")
	}
}

// Tessellate appends a piecewise-linear approximation of the section of this
// geometry in [startS, endS] to out. startS and endS must satisfy
// g.StartVertex.SCoord <= startS < endS <= g.StartVertex.SCoord+g.Length+eps.
// If includeEndPt is true, a final vertex at endS is appended.
func (g Geometry) Tessellate(out Tessellation, startS, endS float64, includeEndPt bool) Tessellation {
	switch g.Type {
	case GeometryLine:
		return g.tessellateLine(out, startS, endS, includeEndPt)
	case GeometryArc:
		return g.tessellateArc(out, startS, endS, includeEndPt)
	case GeometrySpiral:
		return g.tessellateSpiral(out, startS, endS, includeEndPt)
	case GeometryPoly3:
		return g.tessellatePoly3(out, startS, endS, includeEndPt)
	case GeometryParamPoly3:
		return g.tessellateParamPoly3(out, startS, endS, includeEndPt)
	default:
		panic("xodr: unknown geometry type")
	}
}

// tessellationStepCount returns the (step count, step size) pair shared by
// every variant's Tessellate: one vertex per meter, stepping evenly over
// [startS, endS].
func tessellationStepCount(startS, endS float64) (numSteps int, stepSize float64) {
	numSteps = int(math.Ceil((endS - startS) * verticesPerMeter))
	if numSteps < 1 {
		numSteps = 1
	}
	stepSize = (endS - startS) / float64(numSteps)
	return numSteps, stepSize
}
