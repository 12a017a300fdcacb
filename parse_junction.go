package xodr

import (
	"encoding/xml"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseJunction reads one <junction name id>: one-or-more <connection>.
func parseJunction(dec *xml.Decoder, start xml.StartElement) (Junction, Errors) {
	var j Junction
	var errs Errors

	attrs := xmlkit.NewAttrParser("junction").
		Field("name", xmlkit.Str(&j.Name)).
		Field("id", xmlkit.Str(&j.ID))
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	children := xmlkit.NewChildParser("junction").
		Element("connection", xmlkit.OneOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			conn, connErrs := parseConnection(dec, start)
			j.Connections = append(j.Connections, conn)
			errs = append(errs, connErrs...)
			return nil
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	return j, errs
}

// parseConnection reads one <connection id incomingRoad connectingRoad
// contactPoint>: zero-or-more <laneLink from to>.
func parseConnection(dec *xml.Decoder, start xml.StartElement) (Connection, Errors) {
	var c Connection
	var contactPoint string
	var errs Errors

	attrs := xmlkit.NewAttrParser("connection").
		Field("id", xmlkit.Str(&c.ID)).
		Field("incomingRoad", xmlkit.Str(&c.IncomingRoadID)).
		Field("connectingRoad", xmlkit.Str(&c.ConnectingRoadID)).
		Field("contactPoint", xmlkit.Enum(&contactPoint, func(s string) (string, bool) {
			return s, s == "start" || s == "end"
		}))
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	if contactPoint == "end" {
		c.ContactPoint = ContactPointEnd
	} else {
		c.ContactPoint = ContactPointStart
	}

	children := xmlkit.NewChildParser("connection").
		Element("laneLink", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			ll, iss := parseLaneLink(start)
			c.LaneLinks = append(c.LaneLinks, ll)
			dec.Skip()
			return iss
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	return c, errs
}

// parseLaneLink reads one <laneLink from to>.
func parseLaneLink(start xml.StartElement) (LaneLink, []xmlkit.Issue) {
	var ll LaneLink
	a := xmlkit.NewAttrParser("laneLink").
		Field("from", xmlkit.Enum(&ll.From, func(s string) (LaneID, bool) {
			id, err := ParseLaneID(s)
			return id, err == nil
		})).
		Field("to", xmlkit.Enum(&ll.To, func(s string) (LaneID, bool) {
			id, err := ParseLaneID(s)
			return id, err == nil
		}))
	return ll, a.Parse(start.Attr)
}
