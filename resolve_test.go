package xodr

import "testing"

func TestResolveReferencesRoadLink(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{ID: "1", junctionID: "-1", Links: RoadLinks{Successor: RoadLink{ElementType: RoadLinkToRoad, ElementID: "2"}}},
			{ID: "2", junctionID: "-1", Links: RoadLinks{Predecessor: RoadLink{ElementType: RoadLinkToRoad, ElementID: "1"}}},
		},
	}
	errs := m.resolveReferences()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if m.Roads[0].Links.Successor.RoadIdx != 1 {
		t.Errorf("road 1 successor resolved to index %d, want 1", m.Roads[0].Links.Successor.RoadIdx)
	}
	if m.Roads[1].Links.Predecessor.RoadIdx != 0 {
		t.Errorf("road 2 predecessor resolved to index %d, want 0", m.Roads[1].Links.Predecessor.RoadIdx)
	}
}

func TestResolveReferencesUnresolvedRoadLink(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{ID: "1", junctionID: "-1", Links: RoadLinks{Successor: RoadLink{ElementType: RoadLinkToRoad, ElementID: "missing"}}},
		},
	}
	errs := m.resolveReferences()
	if len(errs) != 1 || errs[0].Kind != KindUnresolvedReference {
		t.Fatalf("expected a single KindUnresolvedReference error, got %v", errs)
	}
}

func TestResolveReferencesDuplicateRoadID(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{ID: "1", junctionID: "-1"},
			{ID: "1", junctionID: "-1"},
		},
	}
	errs := m.resolveReferences()
	if len(errs) != 1 || errs[0].Kind != KindDuplicateId {
		t.Fatalf("expected a single KindDuplicateId error, got %v", errs)
	}
}

func TestResolveReferencesJunctionRef(t *testing.T) {
	m := &XodrMap{
		Roads:     []Road{{ID: "1", junctionID: "7"}},
		Junctions: []Junction{{ID: "7"}},
	}
	errs := m.resolveReferences()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if m.Roads[0].JunctionRef == nil || *m.Roads[0].JunctionRef != 0 {
		t.Errorf("JunctionRef = %v, want pointer to 0", m.Roads[0].JunctionRef)
	}
}

func TestAssignGlobalLaneIndices(t *testing.T) {
	roads := []Road{
		{LaneSections: []LaneSection{{Lanes: []Lane{{ID: 1}, {ID: -1}}}}},
		{LaneSections: []LaneSection{{Lanes: []Lane{{ID: 1}}}}},
	}
	total := assignGlobalLaneIndices(roads)
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if roads[0].GlobalLaneIndicesBegin != 0 || roads[0].GlobalLaneIndicesEnd != 2 {
		t.Errorf("road 0 global range = [%d,%d), want [0,2)", roads[0].GlobalLaneIndicesBegin, roads[0].GlobalLaneIndicesEnd)
	}
	if roads[1].GlobalLaneIndicesBegin != 2 || roads[1].GlobalLaneIndicesEnd != 3 {
		t.Errorf("road 1 global range = [%d,%d), want [2,3)", roads[1].GlobalLaneIndicesBegin, roads[1].GlobalLaneIndicesEnd)
	}
	if roads[0].LaneSections[0].Lanes[0].GlobalIndex != 0 || roads[0].LaneSections[0].Lanes[1].GlobalIndex != 1 {
		t.Errorf("road 0 lane global indices = %d,%d, want 0,1", roads[0].LaneSections[0].Lanes[0].GlobalIndex, roads[0].LaneSections[0].Lanes[1].GlobalIndex)
	}
	if roads[1].LaneSections[0].Lanes[0].GlobalIndex != 2 {
		t.Errorf("road 1 lane global index = %d, want 2", roads[1].LaneSections[0].Lanes[0].GlobalIndex)
	}
}
