package xodr

import (
	"testing"

	"github.com/paulmach/orb"
)

func flatWidthLane(id LaneID, width float64) Lane {
	return Lane{
		ID:          id,
		Type:        LaneTypeDriving,
		WidthPoly3s: []WidthPoly3{{SOffset: 0, Poly: Poly3{A: width}}},
	}
}

func TestLaneIndexIdRoundTrip(t *testing.T) {
	sec := LaneSection{
		NumLeftLanes: 2,
		Lanes: []Lane{
			flatWidthLane(2, 3.5),
			flatWidthLane(1, 3.5),
			flatWidthLane(-1, 3.0),
			flatWidthLane(-2, 3.0),
		},
	}
	for idx, want := range []LaneID{2, 1, -1, -2} {
		if got := sec.LaneIndexToId(idx); got != want {
			t.Errorf("LaneIndexToId(%d) = %v, want %v", idx, got, want)
		}
		if got := sec.LaneIdToIndex(want); got != idx {
			t.Errorf("LaneIdToIndex(%v) = %v, want %v", want, got, idx)
		}
	}
}

func TestLaneByID(t *testing.T) {
	sec := LaneSection{
		NumLeftLanes: 1,
		Lanes: []Lane{
			flatWidthLane(1, 3.5),
			flatWidthLane(-1, 3.0),
		},
	}
	lane, ok := sec.LaneByID(-1)
	if !ok {
		t.Fatal("LaneByID(-1) not found")
	}
	if lane.ID != -1 {
		t.Errorf("LaneByID(-1).ID = %v, want -1", lane.ID)
	}
	if _, ok := sec.LaneByID(0); ok {
		t.Error("LaneByID(0) should fail: center lane is never addressable")
	}
	if _, ok := sec.LaneByID(5); ok {
		t.Error("LaneByID(5) should fail: out of range")
	}
}

func TestTessellateLaneBoundariesSymmetric(t *testing.T) {
	sec := LaneSection{
		StartS:       0,
		EndS:         10,
		NumLeftLanes: 1,
		Lanes: []Lane{
			flatWidthLane(1, 3.0),
			flatWidthLane(-1, 3.0),
		},
	}
	refLine := NewReferenceLine([]Geometry{NewLine(Vertex{SCoord: 0, Position: orb.Point{0, 0}, Heading: 0}, 10)})
	refTess := refLine.Tessellate(0, 10)

	boundaries := sec.TessellateLaneBoundaries(refTess)
	if len(boundaries) != len(sec.Lanes)+1 {
		t.Fatalf("got %d boundaries, want %d", len(boundaries), len(sec.Lanes)+1)
	}
	// boundary[0] is the left lane's outer edge: +3.0; boundary[2] is the
	// right lane's outer edge: -3.0. The reference line itself (boundary
	// index NumLeftLanes=1) is the 0 line.
	for i, samples := range boundaries[sec.NumLeftLanes].LateralPositions {
		if samples != 0 {
			t.Fatalf("reference-line boundary sample %d = %v, want 0", i, samples)
		}
	}
	for i, v := range boundaries[2].LateralPositions {
		if !almostEqual(v, -3.0) {
			t.Errorf("right outer boundary sample %d = %v, want -3.0", i, v)
		}
	}
	for i, v := range boundaries[0].LateralPositions {
		if !almostEqual(v, 3.0) {
			t.Errorf("left outer boundary sample %d = %v, want 3.0", i, v)
		}
	}
}

func TestLaneSectionValidateDetectsOutOfOrderSOffsets(t *testing.T) {
	sec := LaneSection{
		StartS: 0,
		EndS:   10,
		Lanes: []Lane{
			{
				ID:          -1,
				WidthPoly3s: []WidthPoly3{{SOffset: 5}, {SOffset: 2}},
			},
		},
	}
	errs := sec.Validate()
	found := false
	for _, e := range errs {
		if e.Kind == KindLaneAttributeSOffsetOutOfOrder {
			found = true
		}
	}
	if !found {
		t.Error("expected KindLaneAttributeSOffsetOutOfOrder for decreasing WidthPoly3 sOffsets")
	}
}

func TestLaneWidthAtSCoord(t *testing.T) {
	lane := Lane{
		WidthPoly3s: []WidthPoly3{
			{SOffset: 0, Poly: Poly3{A: 3.0}},
			{SOffset: 5, Poly: Poly3{A: 3.5}},
		},
	}
	if got := lane.WidthAtSCoord(2); !almostEqual(got, 3.0) {
		t.Errorf("WidthAtSCoord(2) = %v, want 3.0", got)
	}
	if got := lane.WidthAtSCoord(7); !almostEqual(got, 3.5) {
		t.Errorf("WidthAtSCoord(7) = %v, want 3.5", got)
	}
}
