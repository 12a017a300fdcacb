package xodr

import (
	"math"

	"github.com/paulmach/orb"
)

// poly3LocalPoint returns the local-frame point (u, f(u)) and heading-delta
// atan2(f'(u), 1) for the explicit-cubic geometry at local parameter u.
func (g Geometry) poly3LocalPoint(u float64) (local orb.Point, headingDelta float64) {
	fu := g.Poly.Eval(u)
	fpu := g.Poly.EvalDerivative(u)
	return orb.Point{u, fu}, math.Atan2(fpu, 1)
}

func (g Geometry) worldFromLocal(local orb.Point) orb.Point {
	sv := g.StartVertex
	rotated := rotate(local, sv.Heading)
	return orb.Point{sv.Position[0] + rotated[0], sv.Position[1] + rotated[1]}
}

func (g Geometry) evalPoly3(s float64) PointAndTangentDir {
	sv := g.StartVertex
	u := s - sv.SCoord
	local, headingDelta := g.poly3LocalPoint(u)
	heading := sv.Heading + headingDelta
	return PointAndTangentDir{
		Point:      g.worldFromLocal(local),
		TangentDir: orb.Point{math.Cos(heading), math.Sin(heading)},
	}
}

func (g Geometry) curvaturePoly3(s float64) float64 {
	u := s - g.StartVertex.SCoord
	fp := g.Poly.EvalDerivative(u)
	fpp := g.Poly.Eval2ndDerivative(u)
	return fpp / math.Pow(1+fp*fp, 1.5)
}

func (g Geometry) endVertexPoly3() Vertex {
	sv := g.StartVertex
	u := g.Length
	local, headingDelta := g.poly3LocalPoint(u)
	return Vertex{
		SCoord:   sv.SCoord + g.Length,
		Position: g.worldFromLocal(local),
		Heading:  sv.Heading + headingDelta,
	}
}

func (g Geometry) tessellatePoly3(out Tessellation, startS, endS float64, includeEndPt bool) Tessellation {
	sv := g.StartVertex
	num, step := tessellationStepCount(startS, endS)
	if includeEndPt {
		num++
	}
	for i := 0; i < num; i++ {
		s := startS + float64(i)*step
		u := s - sv.SCoord
		local, headingDelta := g.poly3LocalPoint(u)
		out = append(out, Vertex{
			SCoord:   s,
			Position: g.worldFromLocal(local),
			Heading:  sv.Heading + headingDelta,
		})
	}
	return out
}
