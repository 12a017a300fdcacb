package xodr

import (
	"math"

	"github.com/paulmach/orb"
)

func (g Geometry) evalLine(s float64) PointAndTangentDir {
	sv := g.StartVertex
	tangent := orb.Point{math.Cos(sv.Heading), math.Sin(sv.Heading)}
	ds := s - sv.SCoord
	point := orb.Point{sv.Position[0] + ds*tangent[0], sv.Position[1] + ds*tangent[1]}
	return PointAndTangentDir{Point: point, TangentDir: tangent}
}

func (g Geometry) endVertexLine() Vertex {
	sv := g.StartVertex
	forward := orb.Point{math.Cos(sv.Heading), math.Sin(sv.Heading)}
	return Vertex{
		SCoord:   sv.SCoord + g.Length,
		Position: orb.Point{sv.Position[0] + g.Length*forward[0], sv.Position[1] + g.Length*forward[1]},
		Heading:  sv.Heading,
	}
}

func (g Geometry) tessellateLine(out Tessellation, startS, endS float64, includeEndPt bool) Tessellation {
	sv := g.StartVertex
	forward := orb.Point{math.Cos(sv.Heading), math.Sin(sv.Heading)}
	startT := startS - sv.SCoord

	num, step := tessellationStepCount(startS, endS)
	if includeEndPt {
		num++
	}

	for i := 0; i < num; i++ {
		t := startT + float64(i)*step
		out = append(out, Vertex{
			SCoord:   startS + float64(i)*step,
			Position: orb.Point{sv.Position[0] + t*forward[0], sv.Position[1] + t*forward[1]},
			Heading:  sv.Heading,
		})
	}
	return out
}
