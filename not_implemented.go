package xodr

import (
	"encoding/xml"

	"github.com/nav-stack/xodr/xmlkit"
)

// notImplementedHandler returns an xmlkit.Handler that skips one occurrence
// of a recognized-but-unsupported child element and records a single
// KindNotImplementedElement warning against errs. Used for elements the
// format defines but this repo deliberately doesn't interpret (repeat,
// validity, parkingSpace, objectReference, tunnel, bridge): recognizing them
// by name keeps them from being reported as unknown, while the warning keeps
// their absence from ingestion visible.
func notImplementedHandler(element string, errs *Errors) xmlkit.Handler {
	return func(dec *xml.Decoder, start xml.StartElement) []xmlkit.Issue {
		dec.Skip()
		*errs = append(*errs, &Error{Kind: KindNotImplementedElement, Element: element, Detail: "element not implemented yet"})
		return nil
	}
}
