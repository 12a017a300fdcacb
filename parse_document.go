package xodr

import (
	"encoding/xml"
	"io"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseOpenDRIVEDocument reads the <OpenDRIVE> root element: an optional
// <header> (with its optional <geoReference> CDATA), one-or-more <road>, and
// zero-or-more <junction>. It returns a fresh, not-yet-finalized XodrMap and
// every error accumulated while parsing (Parser.Parse appends finalize's
// errors on top).
func parseOpenDRIVEDocument(dec *xml.Decoder) (*XodrMap, Errors, error) {
	m := &XodrMap{}
	var errs Errors

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "OpenDRIVE" {
			continue
		}

		root := xmlkit.NewChildParser("OpenDRIVE").
			Element("header", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
				geoRef, hasGeoRef, iss := parseHeader(dec, start)
				m.GeoReference = geoRef
				m.hasGeoRef = hasGeoRef
				return iss
			}, nil).
			Element("road", xmlkit.OneOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
				road, roadErrs := parseRoad(dec, start)
				m.Roads = append(m.Roads, road)
				errs = append(errs, roadErrs...)
				return nil
			}, nil).
			Element("junction", xmlkit.ZeroOrMore, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
				junction, junctionErrs := parseJunction(dec, start)
				m.Junctions = append(m.Junctions, junction)
				errs = append(errs, junctionErrs...)
				return nil
			}, nil)

		errs = append(errs, xmlIssuesToErrors(root.Parse(dec, start))...)
		return m, errs, nil
	}

	return m, errs, nil
}
