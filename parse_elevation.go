package xodr

import (
	"encoding/xml"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseElevationProfile reads <elevationProfile>'s zero-or-more
// <elevation s a b c d> records.
func parseElevationProfile(dec *xml.Decoder, start xml.StartElement) ([]ElevationRecord, Errors) {
	var records []ElevationRecord
	var errs Errors

	children := xmlkit.NewChildParser("elevationProfile").
		Element("elevation", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			var rec ElevationRecord
			a := xmlkit.NewAttrParser("elevation").
				Field("s", xmlkit.Float(&rec.SOffset)).
				Field("a", xmlkit.Float(&rec.Poly.A)).
				Field("b", xmlkit.Float(&rec.Poly.B)).
				Field("c", xmlkit.Float(&rec.Poly.C)).
				Field("d", xmlkit.Float(&rec.Poly.D))
			iss := a.Parse(start.Attr)
			records = append(records, rec)
			dec.Skip()
			return iss
		}, nil)

	errs = append(errs, xmlIssuesToErrors(children.Parse(dec, start))...)
	return records, errs
}
