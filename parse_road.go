package xodr

import (
	"encoding/xml"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseRoad reads one <road name id junction length> element: its
// <planView>, <lanes>, and optional <link>, <elevationProfile>, <objects>.
func parseRoad(dec *xml.Decoder, start xml.StartElement) (Road, Errors) {
	var road Road
	var errs Errors

	attrs := xmlkit.NewAttrParser("road").
		Field("name", xmlkit.Str(&road.Name)).
		Field("id", xmlkit.Str(&road.ID)).
		Field("length", xmlkit.Float(&road.Length)).
		OptionalField("junction", xmlkit.Str(&road.junctionID), func() { road.junctionID = "-1" })
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	if road.Length <= 0 {
		errs = append(errs, &Error{Kind: KindNonPositiveLength, Element: "road", Detail: "road length must be positive"})
	}

	children := xmlkit.NewChildParser("road").
		Element("link", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			links, linkErrs := parseRoadLinks(dec, start)
			road.Links = links
			errs = append(errs, linkErrs...)
			return nil
		}, nil).
		Element("planView", xmlkit.One, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			refLine, refLineErrs := parsePlanView(dec, start)
			road.ReferenceLine = refLine
			errs = append(errs, refLineErrs...)
			return nil
		}, nil).
		Element("elevationProfile", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			profile, profileErrs := parseElevationProfile(dec, start)
			road.ElevationProfile = profile
			errs = append(errs, profileErrs...)
			return nil
		}, nil).
		Element("lanes", xmlkit.One, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			sections, laneErrs := parseLanes(dec, start, road.Length)
			road.LaneSections = sections
			errs = append(errs, laneErrs...)
			return nil
		}, nil).
		Element("objects", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			objects, objectErrs := parseRoadObjects(dec, start)
			road.RoadObjects = objects
			errs = append(errs, objectErrs...)
			return nil
		}, nil).
		Element("objectReference", xmlkit.ZeroOrMore, notImplementedHandler("objectReference", &errs), nil).
		Element("tunnel", xmlkit.ZeroOrMore, notImplementedHandler("tunnel", &errs), nil).
		Element("bridge", xmlkit.ZeroOrMore, notImplementedHandler("bridge", &errs), nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	return road, errs
}
