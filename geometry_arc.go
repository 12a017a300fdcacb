package xodr

import (
	"math"

	"github.com/paulmach/orb"
)

func (g Geometry) arcCenter() orb.Point {
	sv := g.StartVertex
	radius := 1 / g.Curvature
	toCenter := orb.Point{-math.Sin(sv.Heading), math.Cos(sv.Heading)}
	return orb.Point{sv.Position[0] + toCenter[0]*radius, sv.Position[1] + toCenter[1]*radius}
}

func (g Geometry) evalArc(s float64) PointAndTangentDir {
	sv := g.StartVertex
	radius := 1 / g.Curvature
	center := g.arcCenter()

	heading := sv.Heading + (s-sv.SCoord)*g.Curvature
	tangent := orb.Point{math.Cos(heading), math.Sin(heading)}
	point := orb.Point{
		center[0] + tangent[1]*radius,
		center[1] - tangent[0]*radius,
	}
	return PointAndTangentDir{Point: point, TangentDir: tangent}
}

func (g Geometry) endVertexArc() Vertex {
	sv := g.StartVertex
	pt := g.evalArc(sv.SCoord + g.Length)
	heading := sv.Heading + g.Length*g.Curvature
	return Vertex{SCoord: sv.SCoord + g.Length, Position: pt.Point, Heading: heading}
}

func (g Geometry) tessellateArc(out Tessellation, startS, endS float64, includeEndPt bool) Tessellation {
	sv := g.StartVertex
	radius := 1 / g.Curvature
	center := g.arcCenter()

	num, step := tessellationStepCount(startS, endS)
	if includeEndPt {
		num++
	}

	clampedStartHeading := sv.Heading + (startS-sv.SCoord)*g.Curvature
	for i := 0; i < num; i++ {
		heading := clampedStartHeading + float64(i)*step*g.Curvature
		toCircle := orb.Point{math.Sin(heading), -math.Cos(heading)}
		out = append(out, Vertex{
			SCoord:   startS + float64(i)*step,
			Position: orb.Point{center[0] + toCircle[0]*radius, center[1] + toCircle[1]*radius},
			Heading:  heading,
		})
	}
	return out
}
