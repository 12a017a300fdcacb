package xodr

import "testing"

func contiguousLaneSectionRoad(fromLink, toLink LaneIDOpt) []LaneSection {
	return []LaneSection{
		{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Successor: fromLink}}},
		{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Predecessor: toLink}}},
	}
}

func TestValidateRoadInternalLaneLinksSymmetric(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{LaneSections: contiguousLaneSectionRoad(SomeLaneID(1), SomeLaneID(1))},
		},
	}
	errs := validateRoadInternalLaneLinks(m, 0)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateRoadInternalLaneLinksMismatch(t *testing.T) {
	m := &XodrMap{
		Roads: []Road{
			{LaneSections: contiguousLaneSectionRoad(SomeLaneID(1), SomeLaneID(2))},
		},
	}
	errs := validateRoadInternalLaneLinks(m, 0)
	found := false
	for _, e := range errs {
		if e.Kind == KindLaneLinkMisMatch {
			found = true
		}
	}
	if !found {
		t.Errorf("expected KindLaneLinkMisMatch, got %v", errs)
	}
}

func TestValidateLaneLinkToCenterLane(t *testing.T) {
	fromSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Successor: SomeLaneID(0)}}}
	toSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1}}}
	fromKey := LaneSectionContactPointKey{RoadIdx: 0, SectionIdx: 0, ContactPoint: ContactPointEnd}
	toKey := LaneSectionContactPointKey{RoadIdx: 0, SectionIdx: 1, ContactPoint: ContactPointStart}

	errs := validateLaneLinks(&fromSection, &toSection, fromKey, toKey)
	if len(errs) != 1 || errs[0].Kind != KindLaneLinkToCenterLane {
		t.Fatalf("expected a single KindLaneLinkToCenterLane error, got %v", errs)
	}
}

func TestValidateLaneLinkTargetOutOfRange(t *testing.T) {
	fromSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Successor: SomeLaneID(5)}}}
	toSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1}}}
	fromKey := LaneSectionContactPointKey{RoadIdx: 0, SectionIdx: 0, ContactPoint: ContactPointEnd}
	toKey := LaneSectionContactPointKey{RoadIdx: 0, SectionIdx: 1, ContactPoint: ContactPointStart}

	errs := validateLaneLinks(&fromSection, &toSection, fromKey, toKey)
	if len(errs) != 1 || errs[0].Kind != KindLaneLinkTargetOutOfRange {
		t.Fatalf("expected a single KindLaneLinkTargetOutOfRange error, got %v", errs)
	}
}

func TestValidateLaneLinkOpposingDirections(t *testing.T) {
	// Both contact points are ContactPointEnd: the two roads run toward each
	// other, so a same-side link (left-to-left) is wrong.
	fromSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Successor: SomeLaneID(1)}}}
	toSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1}}}
	fromKey := LaneSectionContactPointKey{RoadIdx: 0, SectionIdx: 0, ContactPoint: ContactPointEnd}
	toKey := LaneSectionContactPointKey{RoadIdx: 1, SectionIdx: 0, ContactPoint: ContactPointEnd}

	errs := validateLaneLinks(&fromSection, &toSection, fromKey, toKey)
	if len(errs) != 1 || errs[0].Kind != KindLaneLinkOpposingDirections {
		t.Fatalf("expected a single KindLaneLinkOpposingDirections error, got %v", errs)
	}
}

func TestValidateLaneLinkBackLinkNotSpecified(t *testing.T) {
	fromSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1, Successor: SomeLaneID(1)}}}
	toSection := LaneSection{NumLeftLanes: 1, Lanes: []Lane{{ID: 1}}}
	fromKey := LaneSectionContactPointKey{RoadIdx: 0, SectionIdx: 0, ContactPoint: ContactPointEnd}
	toKey := LaneSectionContactPointKey{RoadIdx: 0, SectionIdx: 1, ContactPoint: ContactPointStart}

	errs := validateLaneLinks(&fromSection, &toSection, fromKey, toKey)
	if len(errs) != 1 || errs[0].Kind != KindLaneBackLinkNotSpecified {
		t.Fatalf("expected a single KindLaneBackLinkNotSpecified error, got %v", errs)
	}
}
