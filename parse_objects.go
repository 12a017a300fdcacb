package xodr

import (
	"encoding/xml"
	"math"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseRoadObjects reads a road's <objects>: zero-or-more <object>.
func parseRoadObjects(dec *xml.Decoder, start xml.StartElement) ([]RoadObject, Errors) {
	var objects []RoadObject
	var errs Errors

	children := xmlkit.NewChildParser("objects").
		Element("object", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			obj, objErrs := parseRoadObject(dec, start)
			objects = append(objects, obj)
			errs = append(errs, objErrs...)
			return nil
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)
	return objects, errs
}

// parseRoadObject reads one <object>, whose shape is exactly one of a
// box (length+width, with height), a cylinder (radius, with height), or an
// extruded <outline>. length/width/radius default to NaN so their absence
// can be distinguished from a legitimate zero.
func parseRoadObject(dec *xml.Decoder, start xml.StartElement) (RoadObject, Errors) {
	var obj RoadObject
	var errs Errors

	nan := func() float64 { return math.NaN() }

	attrs := xmlkit.NewAttrParser("object").
		Field("id", xmlkit.Str(&obj.ID)).
		Field("name", xmlkit.Str(&obj.Name)).
		Field("type", xmlkit.Str(&obj.Type)).
		Field("s", xmlkit.Float(&obj.S)).
		Field("t", xmlkit.Float(&obj.T)).
		Field("zOffset", xmlkit.Float(&obj.ZOffset)).
		Field("hdg", xmlkit.Float(&obj.Heading)).
		OptionalField("length", xmlkit.Float(&obj.Length), func() { obj.Length = nan() }).
		OptionalField("width", xmlkit.Float(&obj.Width), func() { obj.Width = nan() }).
		OptionalField("radius", xmlkit.Float(&obj.Radius), func() { obj.Radius = nan() }).
		OptionalField("height", xmlkit.Float(&obj.Height), func() { obj.Height = nan() })
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	hasOutline := false
	children := xmlkit.NewChildParser("object").
		Element("outline", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			hasOutline = true
			local, corners, outlineErrs := parseRoadObjectOutline(dec, start)
			obj.OutlineIsLocal = local
			obj.Corners = corners
			errs = append(errs, outlineErrs...)
			return nil
		}, nil).
		Element("repeat", xmlkit.ZeroOrMore, notImplementedHandler("repeat", &errs), nil).
		Element("validity", xmlkit.ZeroOrMore, notImplementedHandler("validity", &errs), nil).
		Element("parkingSpace", xmlkit.ZeroOrMore, notImplementedHandler("parkingSpace", &errs), nil)
	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	hasLength := !math.IsNaN(obj.Length)
	hasWidth := !math.IsNaN(obj.Width)
	hasRadius := !math.IsNaN(obj.Radius)

	switch {
	case hasOutline && (hasLength || hasWidth || hasRadius):
		errs = append(errs, &Error{Kind: KindRoadObjectGeometryInconsistent, Element: "object", Detail: "object has both an outline and box/cylinder dimensions"})
	case hasRadius && (hasLength || hasWidth):
		errs = append(errs, &Error{Kind: KindRoadObjectGeometryInconsistent, Element: "object", Detail: "object has both a radius and box dimensions"})
	case hasOutline:
		obj.Shape = RoadObjectOutline
	case hasRadius:
		obj.Shape = RoadObjectCylinder
	case hasLength && hasWidth:
		obj.Shape = RoadObjectBox
	default:
		errs = append(errs, &Error{Kind: KindRoadObjectGeometryInconsistent, Element: "object", Detail: "object has neither length+width, radius, nor outline"})
	}

	return obj, errs
}

// parseRoadObjectOutline reads an <outline>'s zero-or-more <cornerRoad> or
// <cornerLocal> entries. All corners of one outline use the same coordinate
// system; the result reports local coordinates when any corner is a
// <cornerLocal> (a mix of both corner kinds is not rejected), consistent with the
// original implementation's one-outline-one-system invariant.
func parseRoadObjectOutline(dec *xml.Decoder, start xml.StartElement) (bool, []RoadObjectCorner, Errors) {
	var corners []RoadObjectCorner
	var isLocal bool
	var errs Errors

	children := xmlkit.NewChildParser("outline").
		Element("cornerRoad", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			var s, t, height float64
			a := xmlkit.NewAttrParser("cornerRoad").
				Field("s", xmlkit.Float(&s)).
				Field("t", xmlkit.Float(&t)).
				OptionalField("dz", xmlkit.Float(new(float64)), func() {}).
				Field("height", xmlkit.Float(&height))
			iss := a.Parse(start.Attr)
			corners = append(corners, RoadObjectCorner{U: s, V: t, Height: height})
			dec.Skip()
			return iss
		}, nil).
		Element("cornerLocal", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			isLocal = true
			var u, v, height float64
			a := xmlkit.NewAttrParser("cornerLocal").
				Field("u", xmlkit.Float(&u)).
				Field("v", xmlkit.Float(&v)).
				OptionalField("z", xmlkit.Float(new(float64)), func() {}).
				Field("height", xmlkit.Float(&height))
			iss := a.Parse(start.Attr)
			corners = append(corners, RoadObjectCorner{U: u, V: v, Height: height})
			dec.Skip()
			return iss
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)
	return isLocal, corners, errs
}
