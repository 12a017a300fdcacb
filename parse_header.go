package xodr

import (
	"encoding/xml"
	"strings"

	"github.com/nav-stack/xodr/xmlkit"
)

// parseHeader reads <header>'s optional <geoReference> CDATA proj string.
func parseHeader(dec *xml.Decoder, start xml.StartElement) (geoRef string, has bool, issues []xmlkit.Issue) {
	child := xmlkit.NewChildParser("header").
		Element("geoReference", xmlkit.ZeroOrOne, func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
			text := readCharData(dec, start)
			geoRef = text
			has = true
			return nil
		}, nil)
	issues = child.Parse(dec, start)
	return geoRef, has, issues
}

// readCharData reads the character content of a simple (no child elements)
// element and consumes its end tag.
func readCharData(dec *xml.Decoder, start xml.StartElement) string {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return sb.String()
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return sb.String()
			}
			depth--
		}
	}
}
