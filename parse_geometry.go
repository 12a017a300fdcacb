package xodr

import (
	"encoding/xml"

	"github.com/paulmach/orb"

	"github.com/nav-stack/xodr/xmlkit"
)

// parsePlanView reads a road's <planView>: one-or-more <geometry>, building a
// ReferenceLine from the resulting contiguous Geometry slice.
func parsePlanView(dec *xml.Decoder, start xml.StartElement) (ReferenceLine, Errors) {
	var geometries []Geometry
	var errs Errors

	children := xmlkit.NewChildParser("planView").
		Element("geometry", xmlkit.OneOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			geom, geomErrs := parseGeometry(dec, start)
			geometries = append(geometries, geom)
			errs = append(errs, geomErrs...)
			return nil
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)
	return NewReferenceLine(geometries), errs
}

// parseGeometry reads one <geometry s x y hdg length> and its exactly-one
// variant child (<line/>, <spiral/>, <arc/>, <poly3/>, <paramPoly3/>).
func parseGeometry(dec *xml.Decoder, start xml.StartElement) (Geometry, Errors) {
	var s, x, y, hdg, length float64
	var errs Errors

	attrs := xmlkit.NewAttrParser("geometry").
		Field("s", xmlkit.Float(&s)).
		Field("x", xmlkit.Float(&x)).
		Field("y", xmlkit.Float(&y)).
		Field("hdg", xmlkit.Float(&hdg)).
		Field("length", xmlkit.Float(&length))
	errs = append(errs, xmlIssuesToErrors(attrs.Parse(start.Attr))...)

	if s < 0 {
		errs = append(errs, &Error{Kind: KindNegativeSOffset, Element: "geometry"})
	}
	if length <= 0 {
		errs = append(errs, &Error{Kind: KindNonPositiveLength, Element: "geometry"})
	}

	startVertex := Vertex{SCoord: s, Position: orb.Point{x, y}, Heading: hdg}
	var geom Geometry
	variantCount := 0

	children := xmlkit.NewChildParser("geometry").
		Element("line", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			variantCount++
			geom = NewLine(startVertex, length)
			dec.Skip()
			return nil
		}, nil).
		Element("arc", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			variantCount++
			var curvature float64
			a := xmlkit.NewAttrParser("arc").Field("curvature", xmlkit.Float(&curvature))
			iss := a.Parse(start.Attr)
			if curvature == 0 {
				errs = append(errs, &Error{Kind: KindArcZeroCurvature, Element: "arc"})
			}
			geom = NewArc(startVertex, length, curvature)
			dec.Skip()
			return iss
		}, nil).
		Element("spiral", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			variantCount++
			var curvStart, curvEnd float64
			a := xmlkit.NewAttrParser("spiral").
				Field("curvStart", xmlkit.Float(&curvStart)).
				Field("curvEnd", xmlkit.Float(&curvEnd))
			iss := a.Parse(start.Attr)
			if curvStart == curvEnd {
				errs = append(errs, &Error{Kind: KindSpiralZeroRateOfChange, Element: "spiral"})
			}
			geom = NewSpiral(startVertex, length, curvStart, curvEnd)
			dec.Skip()
			return iss
		}, nil).
		Element("poly3", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			variantCount++
			var poly Poly3
			a := xmlkit.NewAttrParser("poly3").
				Field("a", xmlkit.Float(&poly.A)).
				Field("b", xmlkit.Float(&poly.B)).
				Field("c", xmlkit.Float(&poly.C)).
				Field("d", xmlkit.Float(&poly.D))
			iss := a.Parse(start.Attr)
			geom = NewPoly3Geometry(startVertex, length, poly)
			dec.Skip()
			return iss
		}, nil).
		Element("paramPoly3", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			variantCount++
			var uPoly, vPoly Poly3
			var pRangeStr string
			a := xmlkit.NewAttrParser("paramPoly3").
				Field("aU", xmlkit.Float(&uPoly.A)).
				Field("bU", xmlkit.Float(&uPoly.B)).
				Field("cU", xmlkit.Float(&uPoly.C)).
				Field("dU", xmlkit.Float(&uPoly.D)).
				Field("aV", xmlkit.Float(&vPoly.A)).
				Field("bV", xmlkit.Float(&vPoly.B)).
				Field("cV", xmlkit.Float(&vPoly.C)).
				Field("dV", xmlkit.Float(&vPoly.D)).
				OptionalField("pRange", xmlkit.Str(&pRangeStr), func() { pRangeStr = "arcLength" })
			iss := a.Parse(start.Attr)
			pRange := PRangeArcLength
			if pRangeStr == "normalized" {
				pRange = PRangeNormalized
			}
			geom = NewParamPoly3(startVertex, length, uPoly, vPoly, pRange)
			dec.Skip()
			return iss
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)

	switch {
	case variantCount == 0:
		errs = append(errs, &Error{Kind: KindMissingChildElement, Element: "geometry", Detail: "one of line/arc/spiral/poly3/paramPoly3 is required"})
		geom = NewLine(startVertex, length)
	case variantCount > 1:
		errs = append(errs, &Error{Kind: KindUnexpectedChildElement, Element: "geometry", Detail: "more than one geometry variant element present"})
	}

	return geom, errs
}
