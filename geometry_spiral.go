package xodr

import (
	"math"

	"github.com/paulmach/orb"
)

func (g Geometry) evalSpiral(s float64) PointAndTangentDir {
	sv := g.StartVertex
	roc := g.curvatureRateOfChange()
	startParam := g.StartCurvature / roc
	evalParam := startParam + (s - sv.SCoord)

	startX, startY, startHeading := odrSpiral(startParam, roc)
	evalX, evalY, evalHeading := odrSpiral(evalParam, roc)

	offset := orb.Point{evalX - startX, evalY - startY}
	rotation := sv.Heading - startHeading
	offset = rotate(offset, rotation)

	heading := sv.Heading + (evalHeading - startHeading)
	return PointAndTangentDir{
		Point:      orb.Point{sv.Position[0] + offset[0], sv.Position[1] + offset[1]},
		TangentDir: orb.Point{math.Cos(heading), math.Sin(heading)},
	}
}

func (g Geometry) endVertexSpiral() Vertex {
	sv := g.StartVertex
	roc := g.curvatureRateOfChange()
	startParam := g.StartCurvature / roc
	endParam := startParam + g.Length

	startX, startY, startHeading := odrSpiral(startParam, roc)
	endX, endY, endHeading := odrSpiral(endParam, roc)

	offset := rotate(orb.Point{endX - startX, endY - startY}, sv.Heading-startHeading)

	return Vertex{
		SCoord:   sv.SCoord + g.Length,
		Position: orb.Point{sv.Position[0] + offset[0], sv.Position[1] + offset[1]},
		Heading:  sv.Heading + (endHeading - startHeading),
	}
}

func (g Geometry) tessellateSpiral(out Tessellation, startS, endS float64, includeEndPt bool) Tessellation {
	sv := g.StartVertex
	roc := (g.EndCurvature - g.StartCurvature) / g.Length
	startParam := g.StartCurvature / roc

	curveStartX, curveStartY, curveStartHeading := odrSpiral(startParam, roc)
	rotation := sv.Heading - curveStartHeading

	num, step := tessellationStepCount(startS, endS)
	if includeEndPt {
		num++
	}

	baseParam := startParam + (startS - sv.SCoord)
	for i := 0; i < num; i++ {
		param := baseParam + float64(i)*step
		curveX, curveY, curveHeading := odrSpiral(param, roc)

		offset := rotate(orb.Point{curveX - curveStartX, curveY - curveStartY}, rotation)
		out = append(out, Vertex{
			SCoord:   startS + float64(i)*step,
			Position: orb.Point{sv.Position[0] + offset[0], sv.Position[1] + offset[1]},
			Heading:  sv.Heading + (curveHeading - curveStartHeading),
		})
	}
	return out
}

// rotate rotates p counter-clockwise by angle radians.
func rotate(p orb.Point, angle float64) orb.Point {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	return orb.Point{
		p[0]*cosA - p[1]*sinA,
		p[0]*sinA + p[1]*cosA,
	}
}
