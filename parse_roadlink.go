package xodr

import (
	"encoding/xml"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseRoadLinks reads a road's <link>: optional <predecessor>/<successor>
// and zero-or-more <neighbor>.
func parseRoadLinks(dec *xml.Decoder, start xml.StartElement) (RoadLinks, Errors) {
	var links RoadLinks
	var errs Errors

	children := xmlkit.NewChildParser("link").
		Element("predecessor", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			link, linkErrs := parseRoadLinkEnd("predecessor", start)
			links.Predecessor = link
			errs = append(errs, linkErrs...)
			dec.Skip()
			return nil
		}, nil).
		Element("successor", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			link, linkErrs := parseRoadLinkEnd("successor", start)
			links.Successor = link
			errs = append(errs, linkErrs...)
			dec.Skip()
			return nil
		}, nil).
		Element("neighbor", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			neighbor, neighborErrs := parseNeighborLink(start)
			if neighbor.Side == NeighborLeft {
				links.LeftNeighbor = &neighbor
			} else {
				links.RightNeighbor = &neighbor
			}
			errs = append(errs, neighborErrs...)
			dec.Skip()
			return nil
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)
	return links, errs
}

// parseRoadLinkEnd reads a <predecessor> or <successor>'s elementType,
// elementId and (when elementType=road) contactPoint attributes.
func parseRoadLinkEnd(element string, start xml.StartElement) (RoadLink, Errors) {
	var link RoadLink
	var elementType, contactPoint string
	var errs Errors

	attrs := xmlkit.NewAttrParser(element).
		Field("elementType", xmlkit.Enum(&elementType, func(s string) (string, bool) {
			if s == "road" || s == "junction" {
				return s, true
			}
			return "", false
		})).
		Field("elementId", xmlkit.Str(&link.ElementID)).
		OptionalField("contactPoint", xmlkit.Str(&contactPoint), func() {})
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	switch elementType {
	case "road":
		link.ElementType = RoadLinkToRoad
		if contactPoint == "end" {
			link.ContactPoint = ContactPointEnd
		} else if contactPoint == "start" {
			link.ContactPoint = ContactPointStart
		} else {
			errs = append(errs, &Error{Kind: KindMissingAttribute, Element: element, Attribute: "contactPoint", Detail: "required when elementType=road"})
		}
	case "junction":
		link.ElementType = RoadLinkToJunction
	}

	return link, errs
}

// parseNeighborLink reads a <neighbor side elementId direction> entry.
func parseNeighborLink(start xml.StartElement) (NeighborLink, Errors) {
	var n NeighborLink
	var side, direction string

	attrs := xmlkit.NewAttrParser("neighbor").
		Field("side", xmlkit.Enum(&side, func(s string) (string, bool) {
			return s, s == "left" || s == "right"
		})).
		Field("elementId", xmlkit.Str(&n.ElementID)).
		Field("direction", xmlkit.Enum(&direction, func(s string) (string, bool) {
			return s, s == "same" || s == "opposite"
		}))
	errs := xmlIssuesToErrors(attrs.Parse(start.Attr))

	if side == "right" {
		n.Side = NeighborRight
	} else {
		n.Side = NeighborLeft
	}
	if direction == "opposite" {
		n.Direction = NeighborOppositeDirection
	} else {
		n.Direction = NeighborSameDirection
	}

	return n, errs
}
