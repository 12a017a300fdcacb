package xodr

import (
	"encoding/xml"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseLanes reads a road's <lanes>: one-or-more <laneSection>. EndS for
// each section is derived afterwards from the next section's StartS (or
// roadLength for the last section), since a section's own XML never states
// its end.
func parseLanes(dec *xml.Decoder, start xml.StartElement, roadLength float64) ([]LaneSection, Errors) {
	var sections []LaneSection
	var errs Errors

	children := xmlkit.NewChildParser("lanes").
		Element("laneSection", xmlkit.OneOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			sec, secErrs := parseLaneSection(dec, start)
			sections = append(sections, sec)
			errs = append(errs, secErrs...)
			return nil
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	for i := range sections {
		if i+1 < len(sections) {
			sections[i].EndS = sections[i+1].StartS
		} else {
			sections[i].EndS = roadLength
		}
	}

	return sections, errs
}

// parseLaneSection reads one <laneSection s [singleSided]>: optional <left>,
// required <center>, optional <right>.
func parseLaneSection(dec *xml.Decoder, start xml.StartElement) (LaneSection, Errors) {
	var sec LaneSection
	var errs Errors

	attrs := xmlkit.NewAttrParser("laneSection").
		Field("s", xmlkit.Float(&sec.StartS)).
		OptionalField("singleSided", xmlkit.Bool(&sec.SingleSided), func() { sec.SingleSided = false })
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	if sec.StartS < 0 {
		errs = append(errs, &Error{Kind: KindNegativeSOffset, Element: "laneSection"})
	}

	children := xmlkit.NewChildParser("laneSection").
		Element("left", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			lanes, sideErrs := parseLaneSide(dec, start, true)
			sec.Lanes = append(sec.Lanes, lanes...)
			sec.NumLeftLanes = len(lanes)
			errs = append(errs, sideErrs...)
			return nil
		}, nil).
		Element("center", xmlkit.One, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			// The left run must end at lane id 1 right before the center
			// lane; this is the only place that catches a <left> block whose
			// ids don't actually terminate there (e.g. 5,4,3 instead of
			// 3,2,1), since each lane on its own still passes parseLaneSide's
			// per-lane sign/consecutive checks.
			if len(sec.Lanes) > 0 && sec.Lanes[len(sec.Lanes)-1].ID != 1 {
				errs = append(errs, &Error{Kind: KindNonConsecutiveLaneIds, LaneID: sec.Lanes[len(sec.Lanes)-1].ID, Detail: "left lane run must end at id 1"})
			}

			// The center lane (id 0) carries no width and isn't stored; its
			// <lane id="0" type=...> child is read only to keep the byte
			// offset correct.
			_, centerErrs := parseLaneSide(dec, start, false)
			errs = append(errs, centerErrs...)
			return nil
		}, nil).
		Element("right", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			lanes, sideErrs := parseLaneSide(dec, start, false)
			sec.Lanes = append(sec.Lanes, lanes...)
			errs = append(errs, sideErrs...)
			return nil
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	return sec, errs
}

// parseLaneSide reads the <lane> elements of a <left>, <center> or <right>
// block, checking consecutive-descending ids and side-appropriate sign as it
// goes. isLeft is only consulted for <left>/<right>; callers pass it as
// irrelevant (false) for <center>, whose single lane (id 0) is discarded.
func parseLaneSide(dec *xml.Decoder, start xml.StartElement, isLeft bool) ([]Lane, Errors) {
	var lanes []Lane
	var errs Errors
	elementName := start.Name.Local

	children := xmlkit.NewChildParser(elementName).
		Element("lane", xmlkit.OneOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			lane, laneErrs := parseLane(dec, start)

			if elementName != "center" {
				if isLeft && lane.ID <= 0 {
					laneErrs = append(laneErrs, &Error{Kind: KindLeftLaneNegativeId, LaneID: lane.ID})
				}
				if !isLeft && lane.ID >= 0 {
					laneErrs = append(laneErrs, &Error{Kind: KindRightLanePositiveId, LaneID: lane.ID})
				}
				if len(lanes) > 0 && int(lanes[len(lanes)-1].ID)-1 != int(lane.ID) {
					laneErrs = append(laneErrs, &Error{Kind: KindNonConsecutiveLaneIds, LaneID: lane.ID, LaneID2: lanes[len(lanes)-1].ID})
				} else if len(lanes) == 0 && elementName == "right" && lane.ID != -1 {
					laneErrs = append(laneErrs, &Error{Kind: KindNonConsecutiveLaneIds, LaneID: lane.ID})
				}
				lanes = append(lanes, lane)
			}

			errs = append(errs, laneErrs...)
			return nil
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)
	return lanes, errs
}

// parseLane reads one <lane id type [level]>: optional <link>
// predecessor/successor and one-or-more <width> (zero-or-more for the center
// lane, id 0), plus optional attribute records.
func parseLane(dec *xml.Decoder, start xml.StartElement) (Lane, Errors) {
	var lane Lane
	var errs Errors

	attrs := xmlkit.NewAttrParser("lane").
		Field("id", xmlkit.Enum(&lane.ID, func(s string) (LaneID, bool) {
			id, err := ParseLaneID(s)
			return id, err == nil
		})).
		Field("type", xmlkit.Enum(&lane.Type, func(s string) (LaneType, bool) { return ParseLaneType(s) })).
		OptionalField("level", xmlkit.Bool(&lane.Level), func() { lane.Level = false })
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	widthMult := xmlkit.OneOrMore
	if lane.ID == 0 {
		widthMult = xmlkit.ZeroOrMore
	}

	children := xmlkit.NewChildParser("lane").
		Element("link", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			pred, succ, linkErrs := parseLaneLinkElement(dec, start)
			lane.Predecessor = pred
			lane.Successor = succ
			errs = append(errs, linkErrs...)
			return nil
		}, nil).
		Element("width", widthMult, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			w, iss := parseWidthPoly3(start)
			lane.WidthPoly3s = append(lane.WidthPoly3s, w)
			dec.Skip()
			return iss
		}, nil).
		Element("material", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			m, iss := parseLaneMaterial(start)
			lane.Materials = append(lane.Materials, m)
			dec.Skip()
			return iss
		}, nil).
		Element("visibility", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			v, iss := parseLaneVisibility(start)
			lane.Visibilities = append(lane.Visibilities, v)
			dec.Skip()
			return iss
		}, nil).
		Element("speed", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			sp, iss := parseLaneSpeedLimit(start)
			lane.SpeedLimits = append(lane.SpeedLimits, sp)
			dec.Skip()
			return iss
		}, nil).
		Element("access", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			ac, iss := parseLaneAccess(start)
			lane.Accesses = append(lane.Accesses, ac)
			dec.Skip()
			return iss
		}, nil).
		Element("height", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			h, iss := parseLaneHeight(start)
			lane.Heights = append(lane.Heights, h)
			dec.Skip()
			return iss
		}, nil).
		Element("rule", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			r, iss := parseLaneRule(start)
			lane.Rules = append(lane.Rules, r)
			dec.Skip()
			return iss
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	return lane, errs
}

func parseWidthPoly3(start xml.StartElement) (WidthPoly3, []xmlkit.Issue) {
	var w WidthPoly3
	a := xmlkit.NewAttrParser("width").
		Field("sOffset", xmlkit.Float(&w.SOffset)).
		Field("a", xmlkit.Float(&w.Poly.A)).
		Field("b", xmlkit.Float(&w.Poly.B)).
		Field("c", xmlkit.Float(&w.Poly.C)).
		Field("d", xmlkit.Float(&w.Poly.D))
	return w, a.Parse(start.Attr)
}

func parseLaneMaterial(start xml.StartElement) (LaneMaterial, []xmlkit.Issue) {
	var m LaneMaterial
	a := xmlkit.NewAttrParser("material").
		Field("sOffset", xmlkit.Float(&m.SOffset)).
		OptionalField("surface", xmlkit.Str(&m.Surface), func() {}).
		OptionalField("friction", xmlkit.Float(&m.Friction), func() {}).
		OptionalField("roughness", xmlkit.Float(&m.Roughness), func() {})
	return m, a.Parse(start.Attr)
}

func parseLaneVisibility(start xml.StartElement) (LaneVisibility, []xmlkit.Issue) {
	var v LaneVisibility
	a := xmlkit.NewAttrParser("visibility").
		Field("sOffset", xmlkit.Float(&v.SOffset)).
		OptionalField("forward", xmlkit.Float(&v.Forward), func() {}).
		OptionalField("back", xmlkit.Float(&v.Back), func() {}).
		OptionalField("left", xmlkit.Float(&v.Left), func() {}).
		OptionalField("right", xmlkit.Float(&v.Right), func() {})
	return v, a.Parse(start.Attr)
}

func parseLaneSpeedLimit(start xml.StartElement) (LaneSpeedLimit, []xmlkit.Issue) {
	var sp LaneSpeedLimit
	a := xmlkit.NewAttrParser("speed").
		Field("sOffset", xmlkit.Float(&sp.SOffset)).
		Field("max", xmlkit.Float(&sp.Max)).
		OptionalField("unit", xmlkit.Enum(&sp.Unit, func(s string) (SpeedUnit, bool) { return ParseSpeedUnit(s) }), func() { sp.Unit = SpeedNotSpecified })
	return sp, a.Parse(start.Attr)
}

func parseLaneAccess(start xml.StartElement) (LaneAccess, []xmlkit.Issue) {
	var ac LaneAccess
	a := xmlkit.NewAttrParser("access").
		Field("sOffset", xmlkit.Float(&ac.SOffset)).
		Field("restriction", xmlkit.Str(&ac.Restriction))
	return ac, a.Parse(start.Attr)
}

func parseLaneHeight(start xml.StartElement) (LaneHeight, []xmlkit.Issue) {
	var h LaneHeight
	a := xmlkit.NewAttrParser("height").
		Field("sOffset", xmlkit.Float(&h.SOffset)).
		Field("inner", xmlkit.Float(&h.InnerHeight)).
		Field("outer", xmlkit.Float(&h.OuterHeight))
	return h, a.Parse(start.Attr)
}

func parseLaneRule(start xml.StartElement) (LaneRule, []xmlkit.Issue) {
	var r LaneRule
	a := xmlkit.NewAttrParser("rule").
		Field("sOffset", xmlkit.Float(&r.SOffset)).
		Field("value", xmlkit.Str(&r.Value))
	return r, a.Parse(start.Attr)
}

// parseLaneLinkElement reads a lane's <link>: optional <predecessor id> and
// <successor id>.
func parseLaneLinkElement(dec *xml.Decoder, start xml.StartElement) (pred, succ LaneIDOpt, errs Errors) {
	children := xmlkit.NewChildParser("link").
		Element("predecessor", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			var id LaneID
			a := xmlkit.NewAttrParser("predecessor").Field("id", xmlkit.Enum(&id, func(s string) (LaneID, bool) {
				v, err := ParseLaneID(s)
				return v, err == nil
			}))
			iss := a.Parse(start.Attr)
			pred = SomeLaneID(id)
			dec.Skip()
			return iss
		}, nil).
		Element("successor", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			var id LaneID
			a := xmlkit.NewAttrParser("successor").Field("id", xmlkit.Enum(&id, func(s string) (LaneID, bool) {
				v, err := ParseLaneID(s)
				return v, err == nil
			}))
			iss := a.Parse(start.Attr)
			succ = SomeLaneID(id)
			dec.Skip()
			return iss
		}, nil)

	errs = xmlIssuesToErrors(children.Parse(dec, start))
	return pred, succ, errs
}
