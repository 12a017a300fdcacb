package xodr

import "testing"

func twoSymmetricallyLinkedRoads() []Road {
	return []Road{
		{
			LaneSections: []LaneSection{{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Successor: SomeLaneID(1)}}}},
			Links: RoadLinks{
				Successor: RoadLink{ElementType: RoadLinkToRoad, RoadIdx: 1, ContactPoint: ContactPointStart},
			},
		},
		{
			LaneSections: []LaneSection{{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Predecessor: SomeLaneID(1)}}}},
			Links: RoadLinks{
				Predecessor: RoadLink{ElementType: RoadLinkToRoad, RoadIdx: 0, ContactPoint: ContactPointEnd},
			},
		},
	}
}

func TestValidateLinksRoadRoadSymmetric(t *testing.T) {
	m := &XodrMap{Roads: twoSymmetricallyLinkedRoads()}
	errs := validateLinks(m)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateLinksRoadBackLinkNotSpecified(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{Links: RoadLinks{Successor: RoadLink{ElementType: RoadLinkToRoad, RoadIdx: 1, ContactPoint: ContactPointStart}}},
			{},
		},
	}
	errs := validateLinks(m)
	if len(errs) != 1 || errs[0].Kind != KindRoadBackLinkNotSpecified {
		t.Fatalf("expected a single KindRoadBackLinkNotSpecified error, got %v", errs)
	}
}

func TestValidateLinksRoadLinkMismatch(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{Links: RoadLinks{Successor: RoadLink{ElementType: RoadLinkToRoad, RoadIdx: 1, ContactPoint: ContactPointStart}}},
			{Links: RoadLinks{Predecessor: RoadLink{ElementType: RoadLinkToRoad, RoadIdx: 0, ContactPoint: ContactPointStart}}},
		},
	}
	errs := validateLinks(m)
	found := false
	for _, e := range errs {
		if e.Kind == KindRoadLinkMisMatch {
			found = true
		}
	}
	if !found {
		t.Errorf("expected KindRoadLinkMisMatch, got %v", errs)
	}
}

func TestValidateLinksDirectLinkToJunctionRoad(t *testing.T) {
	junctionIdx := 0
	m := &XodrMap{
		Roads: []Road{
			{Links: RoadLinks{Successor: RoadLink{ElementType: RoadLinkToRoad, RoadIdx: 1, ContactPoint: ContactPointStart}}},
			{JunctionRef: &junctionIdx},
		},
	}
	errs := validateLinks(m)
	if len(errs) != 1 || errs[0].Kind != KindDirectLinkToJunctionRoad {
		t.Fatalf("expected a single KindDirectLinkToJunctionRoad error, got %v", errs)
	}
}

func TestValidateLinksRoadToJunctionIncomingConnecting(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{
				LaneSections: []LaneSection{{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Successor: SomeLaneID(1)}}}},
				Links:        RoadLinks{Successor: RoadLink{ElementType: RoadLinkToJunction, JunctionIdx: 0}},
			},
			{
				LaneSections: []LaneSection{{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Predecessor: SomeLaneID(1)}}}},
				Links:        RoadLinks{Predecessor: RoadLink{ElementType: RoadLinkToRoad, RoadIdx: 0, ContactPoint: ContactPointEnd}},
				JunctionRef:  intPtr(0),
			},
		},
		Junctions: []Junction{
			{Connections: []Connection{{IncomingRoadIdx: 0, ConnectingRoadIdx: 1, ContactPoint: ContactPointStart, LaneLinks: []LaneLink{{From: 1, To: 1}}}}},
		},
	}
	errs := validateLinks(m)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func intPtr(v int) *int {
	return &v
}
