package xodr

import (
	"testing"

	"github.com/paulmach/orb"
)

func straightReferenceLine() ReferenceLine {
	g1 := NewLine(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: 0}, 10)
	g2 := NewLine(g1.EndVertex(), 5)
	return NewReferenceLine([]Geometry{g1, g2})
}

func TestReferenceLineEndS(t *testing.T) {
	rl := straightReferenceLine()
	if got := rl.EndS(); !almostEqual(got, 15) {
		t.Errorf("EndS() = %v, want 15", got)
	}
}

func TestReferenceLineEvalAtSegmentBoundary(t *testing.T) {
	rl := straightReferenceLine()
	p := rl.Eval(10)
	if !almostEqual(p.Point.X(), 10) || !almostEqual(p.Point.Y(), 0) {
		t.Errorf("Eval(10) = %v, want (10,0)", p.Point)
	}
}

func TestReferenceLineTessellateCoversFullRange(t *testing.T) {
	rl := straightReferenceLine()
	tess := rl.Tessellate(0, rl.EndS())
	if len(tess) < 2 {
		t.Fatalf("expected at least 2 vertices, got %d", len(tess))
	}
	first := tess[0]
	last := tess[len(tess)-1]
	if !almostEqual(first.SCoord, 0) {
		t.Errorf("first SCoord = %v, want 0", first.SCoord)
	}
	if !almostEqual(last.SCoord, rl.EndS()) {
		t.Errorf("last SCoord = %v, want %v", last.SCoord, rl.EndS())
	}
	// Each geometry boundary is emitted exactly once: no duplicate s=10 vertex.
	seenTen := 0
	for _, v := range tess {
		if almostEqual(v.SCoord, 10) {
			seenTen++
		}
	}
	if seenTen != 1 {
		t.Errorf("s=10 boundary vertex emitted %d times, want 1", seenTen)
	}
}

func TestReferenceLineGeometryContainingBinarySearch(t *testing.T) {
	rl := straightReferenceLine()
	if got := rl.geometryContaining(12); got.StartVertex.SCoord != 10 {
		t.Errorf("geometryContaining(12) picked geometry starting at %v, want 10", got.StartVertex.SCoord)
	}
	if got := rl.geometryContaining(5); got.StartVertex.SCoord != 0 {
		t.Errorf("geometryContaining(5) picked geometry starting at %v, want 0", got.StartVertex.SCoord)
	}
}
