package xodr

import (
	"math"

	"github.com/paulmach/orb"
)

// parampoly3Param maps an s-coordinate to the polynomial parameter t,
// according to this geometry's PRange.
func (g Geometry) parampoly3Param(s float64) float64 {
	ds := s - g.StartVertex.SCoord
	if g.PRange == PRangeNormalized {
		return ds / g.Length
	}
	return ds
}

func (g Geometry) parampoly3LocalPointAndHeading(t float64) (local orb.Point, headingDelta float64) {
	u := g.UPoly.Eval(t)
	v := g.VPoly.Eval(t)
	up := g.UPoly.EvalDerivative(t)
	vp := g.VPoly.EvalDerivative(t)
	return orb.Point{u, v}, math.Atan2(vp, up)
}

func (g Geometry) evalParamPoly3(s float64) PointAndTangentDir {
	t := g.parampoly3Param(s)
	local, headingDelta := g.parampoly3LocalPointAndHeading(t)
	heading := g.StartVertex.Heading + headingDelta
	return PointAndTangentDir{
		Point:      g.worldFromLocal(local),
		TangentDir: orb.Point{math.Cos(heading), math.Sin(heading)},
	}
}

func (g Geometry) curvatureParamPoly3(s float64) float64 {
	t := g.parampoly3Param(s)
	up := g.UPoly.EvalDerivative(t)
	vp := g.VPoly.EvalDerivative(t)
	upp := g.UPoly.Eval2ndDerivative(t)
	vpp := g.VPoly.Eval2ndDerivative(t)
	denom := math.Pow(up*up+vp*vp, 1.5)
	// Whether t is the arc-length parameter or t=s/length, the extra
	// 1/length factors introduced into the first and second s-derivatives by
	// the chain rule cancel exactly between numerator and denominator, so
	// the formula is the same for both PRange variants.
	return (up*vpp - vp*upp) / denom
}

func (g Geometry) endVertexParamPoly3() Vertex {
	sv := g.StartVertex
	var t float64
	if g.PRange == PRangeNormalized {
		t = 1
	} else {
		t = g.Length
	}
	local, headingDelta := g.parampoly3LocalPointAndHeading(t)
	return Vertex{
		SCoord:   sv.SCoord + g.Length,
		Position: g.worldFromLocal(local),
		Heading:  sv.Heading + headingDelta,
	}
}

func (g Geometry) tessellateParamPoly3(out Tessellation, startS, endS float64, includeEndPt bool) Tessellation {
	sv := g.StartVertex
	num, step := tessellationStepCount(startS, endS)
	if includeEndPt {
		num++
	}
	for i := 0; i < num; i++ {
		s := startS + float64(i)*step
		t := g.parampoly3Param(s)
		local, headingDelta := g.parampoly3LocalPointAndHeading(t)
		out = append(out, Vertex{
			SCoord:   s,
			Position: g.worldFromLocal(local),
			Heading:  sv.Heading + headingDelta,
		})
	}
	return out
}
