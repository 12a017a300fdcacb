package xodr

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/nav-stack/xodr/xmlkit"
)

// Parser builds a XodrMap from an xodr document, configured through With*
// options before calling Parse.
type Parser struct {
	source io.Reader
	path   string
	lax    bool
}

// NewParser builds a Parser from the given options.
func NewParser(options ...func(*Parser)) *Parser {
	parser := &Parser{}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithSource sets the XML document to parse directly from a reader.
func WithSource(r io.Reader) func(*Parser) {
	return func(parser *Parser) {
		parser.source = r
	}
}

// WithFilePath sets the XML document to parse by path; Parse opens it.
func WithFilePath(path string) func(*Parser) {
	return func(parser *Parser) {
		parser.path = path
	}
}

// WithLaxMode, when true, drops every ClassNone warning (UnexpectedAttribute,
// UnexpectedChildElement, NotImplementedElement, ...) from the returned Errors
// entirely instead of merely classing them ClassNone. Most callers don't need this: Errors.HasFatalErrors already
// ignores ClassNone.
func WithLaxMode(lax bool) func(*Parser) {
	return func(parser *Parser) {
		parser.lax = lax
	}
}

// ParseResult bundles a finalized XodrMap with every error accumulated while
// building it: XML-structural issues, resolution failures, and validation
// failures, in that order.
type ParseResult struct {
	Map    *XodrMap
	Errors Errors
}

// Parse reads the configured xodr document, builds a XodrMap, resolves every
// cross-reference, and runs geometric and link validation. The returned map
// is always usable, even when Errors is non-empty: callers decide how to
// react using each Error's invalidation class.
func (parser *Parser) Parse() (*ParseResult, error) {
	r := parser.source
	if r == nil {
		if parser.path == "" {
			return nil, errors.New("xodr: Parser requires WithSource or WithFilePath")
		}
		f, err := os.Open(parser.path)
		if err != nil {
			return nil, errors.Wrapf(err, "xodr: opening %s", parser.path)
		}
		defer f.Close()
		r = f
	}

	dec := xml.NewDecoder(r)

	m, errs, err := parseOpenDRIVEDocument(dec)
	if err != nil {
		return nil, errors.Wrap(err, "xodr: decoding document")
	}

	errs = append(errs, m.finalize()...)

	if parser.lax {
		var filtered Errors
		for _, e := range errs {
			if e.Class() != ClassNone {
				filtered = append(filtered, e)
			}
		}
		errs = filtered
	}

	return &ParseResult{Map: m, Errors: errs}, nil
}

// ParseFile is shorthand for NewParser(WithFilePath(path)).Parse().
func ParseFile(path string) (*ParseResult, error) {
	return NewParser(WithFilePath(path)).Parse()
}

// xmlIssuesToErrors translates the generic xmlkit.Issue list produced by one
// element's AttrParser/ChildParser into xodr's own Error taxonomy, so every
// leaf parse function can return a single Errors list mixing structural and
// semantic problems.
func xmlIssuesToErrors(issues []xmlkit.Issue) Errors {
	var errs Errors
	for _, iss := range issues {
		errs = append(errs, &Error{Kind: xmlIssueKind(iss.Kind), Element: iss.Element, Attribute: iss.Name, Detail: iss.Detail})
	}
	return errs
}

func xmlIssueKind(k xmlkit.IssueKind) ErrorKind {
	switch k {
	case xmlkit.MissingAttribute:
		return KindMissingAttribute
	case xmlkit.UnexpectedAttribute:
		return KindUnexpectedAttribute
	case xmlkit.InvalidAttributeValue:
		return KindInvalidAttributeValue
	case xmlkit.MissingChildElement:
		return KindMissingChildElement
	case xmlkit.UnexpectedChildElement:
		return KindUnexpectedChildElement
	case xmlkit.DuplicateChildElement:
		return KindDuplicateChildElement
	default:
		return KindInvalidAttributeValue
	}
}
